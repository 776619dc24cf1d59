// Package shiftclock maps instants onto the configured work shift. A shift
// whose end is before its start spans midnight; every time within one such
// shift is compared on a single minute axis so plain arithmetic works.
package shiftclock

import (
	"strconv"
	"strings"
	"time"
)

const (
	minutesPerDay = 24 * 60

	defaultStart = "09:00"
	defaultEnd   = "17:00"
)

// Config is the process-wide shift definition. It is always threaded as a
// value parameter; nothing in this package holds it as hidden state, so a
// config edit is observed simply by re-invoking with the new value.
type Config struct {
	Start                          string `json:"start"`
	End                            string `json:"end"`
	GracePeriodMinutes             int    `json:"grace_period_minutes"`
	EarlyCheckoutRelaxationMinutes int    `json:"early_checkout_relaxation_minutes"`
	Timezone                       string `json:"timezone"`

	// Friday arrival carve-out: employees whose badge suffix is listed here
	// classify On-Time up to the cutoff regardless of the grace period.
	FridayExemptSuffixes []string `json:"friday_exempt_suffixes"`
	FridayCutoff         string   `json:"friday_cutoff"`
}

// Location resolves the business timezone, falling back to UTC so a bad
// config edit never stops attendance computation.
func (c Config) Location() *time.Location {
	if c.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// ParseHHMM converts "HH:MM" to minutes of day. Malformed values report ok
// false so callers can substitute a default instead of failing.
func ParseHHMM(s string) (int, bool) {
	parts := strings.SplitN(strings.TrimSpace(s), ":", 2)
	if len(parts) != 2 {
		return 0, false
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}

func minutesOrDefault(s, fallback string) int {
	if m, ok := ParseHHMM(s); ok {
		return m
	}
	m, _ := ParseHHMM(fallback)
	return m
}

func (c Config) StartMinutes() int {
	return minutesOrDefault(c.Start, defaultStart)
}

func (c Config) EndMinutes() int {
	return minutesOrDefault(c.End, defaultEnd)
}

// IsOvernight reports whether the shift spans midnight. Equal start and end
// is a zero-duration day shift, not a 24h overnight one.
func (c Config) IsOvernight() bool {
	return c.EndMinutes() < c.StartMinutes()
}

// DurationHours is the scheduled shift length, overnight-aware.
func (c Config) DurationHours() float64 {
	start, end := c.StartMinutes(), c.EndMinutes()
	if c.IsOvernight() {
		return float64(minutesPerDay-start+end) / 60
	}
	return float64(end-start) / 60
}

// LocalTime converts an instant to the business-local wall clock.
func LocalTime(t time.Time, c Config) time.Time {
	return t.In(c.Location())
}

// MinutesOfDay is the business-local minutes since midnight.
func MinutesOfDay(t time.Time, c Config) int {
	lt := LocalTime(t, c)
	return lt.Hour()*60 + lt.Minute()
}

// AdjustMinutes lifts minutes-of-day onto the shift axis: for an overnight
// shift, times in the early portion (before the local shift end) belong to
// the previous day's shift and gain a full day. Used for check-ins, the
// Friday cutoff and shift-day resolution, so all of them move together.
func AdjustMinutes(m int, c Config) int {
	if c.IsOvernight() && m < c.EndMinutes() {
		return m + minutesPerDay
	}
	return m
}

// ShiftAdjustedMinutes is AdjustMinutes applied to an instant.
func ShiftAdjustedMinutes(t time.Time, c Config) int {
	return AdjustMinutes(MinutesOfDay(t, c), c)
}

// AdjustCheckoutMinutes lifts a checkout onto the shift axis. A checkout is
// adjusted whenever it falls before the shift start: leaving at 06:00 after
// a 20:00-05:00 night is an hour of overtime, not an early departure.
func AdjustCheckoutMinutes(m int, c Config) int {
	if c.IsOvernight() && m < c.StartMinutes() {
		return m + minutesPerDay
	}
	return m
}

// EndMinutesOnAxis is the shift end on the adjusted axis, comparable with
// AdjustCheckoutMinutes output.
func (c Config) EndMinutesOnAxis() int {
	if c.IsOvernight() {
		return c.EndMinutes() + minutesPerDay
	}
	return c.EndMinutes()
}

// ShiftDayTime returns business-local midnight of the shift day the instant
// belongs to. For overnight shifts, the early hours still count as the
// previous day's shift.
func ShiftDayTime(t time.Time, c Config) time.Time {
	lt := LocalTime(t, c)
	day := time.Date(lt.Year(), lt.Month(), lt.Day(), 0, 0, 0, 0, lt.Location())
	if c.IsOvernight() && MinutesOfDay(t, c) < c.EndMinutes() {
		day = day.AddDate(0, 0, -1)
	}
	return day
}

// ResolveShiftDay formats the shift day as "YYYY-MM-DD".
func ResolveShiftDay(t time.Time, c Config) string {
	return ShiftDayTime(t, c).Format("2006-01-02")
}

// ShiftDayWeekday is the weekday of the shift day, not of the calendar
// instant; a 01:00 check-in on Saturday still counts as Friday's shift.
func ShiftDayWeekday(t time.Time, c Config) time.Weekday {
	return ShiftDayTime(t, c).Weekday()
}
