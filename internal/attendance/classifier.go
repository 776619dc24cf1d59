package attendance

import (
	"time"

	"github.com/danishbarkat/bytechsol-portal-sub000/internal/shiftclock"
)

const (
	StatusEarly  = "EARLY"
	StatusOnTime = "ON_TIME"
	StatusLate   = "LATE"

	CheckoutActive   = "ACTIVE"
	CheckoutEarly    = "EARLY"
	CheckoutOnTime   = "ON_TIME"
	CheckoutOvertime = "OVERTIME"
)

type ClassifyOptions struct {
	// Remote staff are not subject to arrival windows.
	Remote bool
	// BadgeSuffix is matched against the Friday exemption list.
	BadgeSuffix string
}

// ClassifyCheckIn derives the arrival status for an instant. The Friday
// carve-out is evaluated before the general rule, with its cutoff lifted
// onto the shift axis by the same rule as the arrival time, so the two
// stay comparable across midnight.
func ClassifyCheckIn(t time.Time, cfg shiftclock.Config, opts ClassifyOptions) string {
	if opts.Remote {
		return StatusOnTime
	}

	current := shiftclock.ShiftAdjustedMinutes(t, cfg)
	start := cfg.StartMinutes()

	if opts.BadgeSuffix != "" &&
		shiftclock.ShiftDayWeekday(t, cfg) == time.Friday &&
		suffixExempt(opts.BadgeSuffix, cfg.FridayExemptSuffixes) {
		if cutoff, ok := shiftclock.ParseHHMM(cfg.FridayCutoff); ok {
			if current <= shiftclock.AdjustMinutes(cutoff, cfg) {
				return StatusOnTime
			}
		}
	}

	switch {
	case current < start:
		return StatusEarly
	case current <= start+cfg.GracePeriodMinutes:
		return StatusOnTime
	default:
		return StatusLate
	}
}

// ClassifyCheckOut derives the departure status at display time; it is
// never stored on the record.
func ClassifyCheckOut(checkOut *time.Time, cfg shiftclock.Config) string {
	if checkOut == nil {
		return CheckoutActive
	}

	current := shiftclock.AdjustCheckoutMinutes(shiftclock.MinutesOfDay(*checkOut, cfg), cfg)
	end := cfg.EndMinutesOnAxis()

	switch {
	case current < end-cfg.EarlyCheckoutRelaxationMinutes:
		return CheckoutEarly
	case current > end:
		return CheckoutOvertime
	default:
		return CheckoutOnTime
	}
}

func suffixExempt(suffix string, exempt []string) bool {
	for _, s := range exempt {
		if s == suffix {
			return true
		}
	}
	return false
}
