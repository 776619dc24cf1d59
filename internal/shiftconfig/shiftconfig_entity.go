package shiftconfig

import (
	"strings"
	"time"

	"github.com/danishbarkat/bytechsol-portal-sub000/internal/shiftclock"
)

// SettingName keys the single shift row; the portal runs one shift.
const SettingName = "shift"

type ShiftSetting struct {
	Name                           string `gorm:"column:name;primaryKey"`
	StartTime                      string `gorm:"column:start_time;type:varchar(5);not null"`
	EndTime                        string `gorm:"column:end_time;type:varchar(5);not null"`
	GracePeriodMinutes             int    `gorm:"column:grace_period_minutes;not null;default:30"`
	EarlyCheckoutRelaxationMinutes int    `gorm:"column:early_checkout_relaxation_minutes;not null;default:30"`
	Timezone                       string `gorm:"column:timezone;type:varchar(64);not null"`
	FridayExemptSuffixes           string `gorm:"column:friday_exempt_suffixes;type:text"`
	FridayCutoff                   string `gorm:"column:friday_cutoff;type:varchar(5)"`
	UpdatedBy                      string `gorm:"column:updated_by;type:varchar(64)"`
	UpdatedAt                      time.Time
}

func (ShiftSetting) TableName() string {
	return "shift_settings"
}

func (s ShiftSetting) ToConfig() shiftclock.Config {
	var suffixes []string
	for _, part := range strings.Split(s.FridayExemptSuffixes, ",") {
		if p := strings.TrimSpace(part); p != "" {
			suffixes = append(suffixes, p)
		}
	}
	return shiftclock.Config{
		Start:                          s.StartTime,
		End:                            s.EndTime,
		GracePeriodMinutes:             s.GracePeriodMinutes,
		EarlyCheckoutRelaxationMinutes: s.EarlyCheckoutRelaxationMinutes,
		Timezone:                       s.Timezone,
		FridayExemptSuffixes:           suffixes,
		FridayCutoff:                   s.FridayCutoff,
	}
}

// DefaultConfig applies until the first saved configuration.
func DefaultConfig() shiftclock.Config {
	return shiftclock.Config{
		Start:                          "09:00",
		End:                            "17:00",
		GracePeriodMinutes:             30,
		EarlyCheckoutRelaxationMinutes: 30,
		Timezone:                       "Asia/Karachi",
	}
}
