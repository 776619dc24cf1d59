package shiftclock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func dayConfig() Config {
	return Config{Start: "09:00", End: "17:00", Timezone: "UTC"}
}

func nightConfig() Config {
	return Config{Start: "20:00", End: "05:00", Timezone: "UTC"}
}

func TestParseHHMM(t *testing.T) {
	m, ok := ParseHHMM("20:30")
	assert.True(t, ok)
	assert.Equal(t, 1230, m)

	_, ok = ParseHHMM("24:00")
	assert.False(t, ok)
	_, ok = ParseHHMM("garbage")
	assert.False(t, ok)
	_, ok = ParseHHMM("")
	assert.False(t, ok)
}

func TestConfig_MalformedTimesFallBack(t *testing.T) {
	cfg := Config{Start: "not-a-time", End: "also-bad"}
	assert.Equal(t, 540, cfg.StartMinutes())
	assert.Equal(t, 1020, cfg.EndMinutes())
	assert.False(t, cfg.IsOvernight())
}

func TestConfig_Overnight(t *testing.T) {
	assert.False(t, dayConfig().IsOvernight())
	assert.True(t, nightConfig().IsOvernight())

	// Equal start and end is a zero-duration day shift, not 24h overnight.
	zero := Config{Start: "09:00", End: "09:00"}
	assert.False(t, zero.IsOvernight())
	assert.Equal(t, 0.0, zero.DurationHours())

	assert.Equal(t, 8.0, dayConfig().DurationHours())
	assert.Equal(t, 9.0, nightConfig().DurationHours())
}

func TestResolveShiftDay_DayShiftMatchesCalendarDate(t *testing.T) {
	cfg := dayConfig()
	for _, hour := range []int{0, 8, 12, 23} {
		instant := time.Date(2024, 3, 15, hour, 30, 0, 0, time.UTC)
		assert.Equal(t, "2024-03-15", ResolveShiftDay(instant, cfg))
	}
}

func TestResolveShiftDay_OvernightEarlyPortionBelongsToPreviousDay(t *testing.T) {
	cfg := nightConfig()

	checkIn := time.Date(2024, 1, 10, 23, 50, 0, 0, time.UTC)
	checkOut := time.Date(2024, 1, 11, 4, 50, 0, 0, time.UTC)

	assert.Equal(t, "2024-01-10", ResolveShiftDay(checkIn, cfg))
	assert.Equal(t, "2024-01-10", ResolveShiftDay(checkOut, cfg))

	// After the shift end the calendar day applies again.
	morning := time.Date(2024, 1, 11, 6, 0, 0, 0, time.UTC)
	assert.Equal(t, "2024-01-11", ResolveShiftDay(morning, cfg))
}

func TestShiftAdjustedMinutes(t *testing.T) {
	cfg := nightConfig()

	late := time.Date(2024, 1, 10, 23, 50, 0, 0, time.UTC)
	assert.Equal(t, 23*60+50, ShiftAdjustedMinutes(late, cfg))

	early := time.Date(2024, 1, 11, 4, 50, 0, 0, time.UTC)
	assert.Equal(t, 4*60+50+1440, ShiftAdjustedMinutes(early, cfg))

	// Day shifts never adjust.
	assert.Equal(t, 290, ShiftAdjustedMinutes(early, dayConfig()))
}

func TestAdjustCheckoutMinutes(t *testing.T) {
	cfg := nightConfig()

	// 06:00 is past the 05:00 end but before the 20:00 start: still the
	// same shift on the checkout axis, one hour over.
	assert.Equal(t, 6*60+1440, AdjustCheckoutMinutes(6*60, cfg))
	assert.Equal(t, cfg.EndMinutes()+1440, cfg.EndMinutesOnAxis())

	// At or after the start no adjustment happens.
	assert.Equal(t, 20*60, AdjustCheckoutMinutes(20*60, cfg))
}

func TestShiftDayWeekday(t *testing.T) {
	cfg := nightConfig()

	// 2024-01-13 01:00 is a Saturday, but the shift began Friday night.
	saturdayNight := time.Date(2024, 1, 13, 1, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Friday, ShiftDayWeekday(saturdayNight, cfg))
}

func TestLocation_FallsBackToUTC(t *testing.T) {
	cfg := Config{Timezone: "Not/AZone"}
	assert.Equal(t, time.UTC, cfg.Location())

	cfg = Config{Timezone: "Asia/Karachi"}
	loc := cfg.Location()
	assert.Equal(t, "Asia/Karachi", loc.String())
}
