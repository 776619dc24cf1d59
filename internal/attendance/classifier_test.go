package attendance

import (
	"testing"
	"time"

	"github.com/danishbarkat/bytechsol-portal-sub000/internal/shiftclock"

	"github.com/stretchr/testify/assert"
)

func nightShift() shiftclock.Config {
	return shiftclock.Config{
		Start:              "20:00",
		End:                "05:00",
		GracePeriodMinutes: 30,
		Timezone:           "UTC",
	}
}

func dayShift() shiftclock.Config {
	return shiftclock.Config{
		Start:              "09:00",
		End:                "17:00",
		GracePeriodMinutes: 15,
		Timezone:           "UTC",
	}
}

func at(hour, min int, day int) time.Time {
	return time.Date(2024, 1, day, hour, min, 0, 0, time.UTC)
}

func TestClassifyCheckIn_NightShiftGraceWindow(t *testing.T) {
	cfg := nightShift()

	// 20:10 is inside the 30 minute grace window.
	assert.Equal(t, StatusOnTime, ClassifyCheckIn(at(20, 10, 10), cfg, ClassifyOptions{}))
	// 20:45 is past the grace window.
	assert.Equal(t, StatusLate, ClassifyCheckIn(at(20, 45, 10), cfg, ClassifyOptions{}))
	// 19:30 is before the window opens.
	assert.Equal(t, StatusEarly, ClassifyCheckIn(at(19, 30, 10), cfg, ClassifyOptions{}))
}

func TestClassifyCheckIn_ExactBoundaries(t *testing.T) {
	cfg := dayShift()

	assert.Equal(t, StatusOnTime, ClassifyCheckIn(at(9, 0, 10), cfg, ClassifyOptions{}))
	// Exactly at start+grace still counts as on time.
	assert.Equal(t, StatusOnTime, ClassifyCheckIn(at(9, 15, 10), cfg, ClassifyOptions{}))
	assert.Equal(t, StatusLate, ClassifyCheckIn(at(9, 16, 10), cfg, ClassifyOptions{}))
}

func TestClassifyCheckIn_RemoteAlwaysOnTime(t *testing.T) {
	cfg := dayShift()

	assert.Equal(t, StatusOnTime, ClassifyCheckIn(at(13, 0, 10), cfg, ClassifyOptions{Remote: true}))
	assert.Equal(t, StatusOnTime, ClassifyCheckIn(at(2, 0, 10), cfg, ClassifyOptions{Remote: true}))
}

func TestClassifyCheckIn_FridayExemption(t *testing.T) {
	cfg := dayShift()
	cfg.FridayExemptSuffixes = []string{"031", "007"}
	cfg.FridayCutoff = "11:00"

	// 2024-01-12 is a Friday.
	friday := time.Date(2024, 1, 12, 10, 30, 0, 0, time.UTC)

	assert.Equal(t, StatusOnTime, ClassifyCheckIn(friday, cfg, ClassifyOptions{BadgeSuffix: "031"}))
	// Non-exempt badge gets the normal rules.
	assert.Equal(t, StatusLate, ClassifyCheckIn(friday, cfg, ClassifyOptions{BadgeSuffix: "099"}))
	// Past the cutoff even the exempt badge is late.
	pastCutoff := time.Date(2024, 1, 12, 11, 30, 0, 0, time.UTC)
	assert.Equal(t, StatusLate, ClassifyCheckIn(pastCutoff, cfg, ClassifyOptions{BadgeSuffix: "031"}))

	// The same arrival on a Thursday gets no carve-out.
	thursday := time.Date(2024, 1, 11, 10, 30, 0, 0, time.UTC)
	assert.Equal(t, StatusLate, ClassifyCheckIn(thursday, cfg, ClassifyOptions{BadgeSuffix: "031"}))
}

func TestClassifyCheckIn_FridayExemptionOvernight(t *testing.T) {
	cfg := nightShift()
	cfg.FridayExemptSuffixes = []string{"300"}
	cfg.FridayCutoff = "22:00"

	// Saturday 01:00 still belongs to the Friday shift day.
	saturdayEarly := time.Date(2024, 1, 13, 1, 0, 0, 0, time.UTC)
	assert.Equal(t, StatusLate, ClassifyCheckIn(saturdayEarly, cfg, ClassifyOptions{BadgeSuffix: "999"}))

	fridayNight := time.Date(2024, 1, 12, 21, 30, 0, 0, time.UTC)
	assert.Equal(t, StatusOnTime, ClassifyCheckIn(fridayNight, cfg, ClassifyOptions{BadgeSuffix: "300"}))
}

func TestClassifyCheckOut(t *testing.T) {
	cfg := nightShift()
	cfg.EarlyCheckoutRelaxationMinutes = 30

	assert.Equal(t, CheckoutActive, ClassifyCheckOut(nil, cfg))

	early := at(3, 0, 11)
	assert.Equal(t, CheckoutEarly, ClassifyCheckOut(&early, cfg))

	// Inside the relaxation window before the shift end.
	relaxed := at(4, 40, 11)
	assert.Equal(t, CheckoutOnTime, ClassifyCheckOut(&relaxed, cfg))

	over := at(5, 30, 11)
	assert.Equal(t, CheckoutOvertime, ClassifyCheckOut(&over, cfg))
}
