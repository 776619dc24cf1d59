package payroll

import (
	"math"
	"time"

	"github.com/danishbarkat/bytechsol-portal-sub000/internal/shiftclock"
)

const (
	// A single shift never spans more than this; elapsed times outside the
	// bound mean clock skew or a timezone anomaly and fall back to the
	// shift-adjusted axis.
	maxSaneShiftHours = 18.0

	weeklyOvertimeThreshold = 40.0

	// Salary figures are monthly; day rates divide by a flat 30.
	payableDaysPerMonth = 30.0

	taxFreeCeiling    = 50000.0
	lowerBracketCeil  = 100000.0
	lowerBracketRate  = 0.01
	upperBracketBase  = 500.0
	upperBracketRate  = 0.05
)

// sanitize guards every figure that reaches arithmetic: corrupt records
// must stay renderable, so non-finite input becomes 0 instead of an error.
func sanitize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// TotalHours is the worked span of a closed record. Real elapsed time wins
// when it is a sane single-shift value; otherwise the span is rebuilt on
// the shift-adjusted minute axis so DST jumps or skewed clocks cannot
// yield negative or day-spanning totals.
func TotalHours(checkIn, checkOut time.Time, cfg shiftclock.Config) float64 {
	elapsed := checkOut.Sub(checkIn).Hours()
	if elapsed >= 0 && elapsed <= maxSaneShiftHours {
		return sanitize(elapsed)
	}

	in := shiftclock.ShiftAdjustedMinutes(checkIn, cfg)
	out := shiftclock.ShiftAdjustedMinutes(checkOut, cfg)
	diff := float64(out-in) / 60
	if diff < 0 {
		diff = 0
	}
	return sanitize(diff)
}

// OvertimeHours counts minutes worked before the shift start plus minutes
// worked past the shift end.
func OvertimeHours(checkIn, checkOut time.Time, cfg shiftclock.Config) float64 {
	early := cfg.StartMinutes() - shiftclock.ShiftAdjustedMinutes(checkIn, cfg)
	if early < 0 {
		early = 0
	}

	late := shiftclock.AdjustCheckoutMinutes(shiftclock.MinutesOfDay(checkOut, cfg), cfg) - cfg.EndMinutesOnAxis()
	if late < 0 {
		late = 0
	}

	return float64(early+late) / 60
}

// TimeEntry is the slice of an attendance record the calculator needs.
type TimeEntry struct {
	CheckIn       time.Time
	CheckOut      *time.Time
	TotalHours    *float64
	OvertimeHours *float64
}

// WeeklyOvertime sums worked hours over the current calendar week (Sunday
// start, business-local midnight) and returns the excess over the 40h pool.
// The week is keyed on the local calendar date of the check-in, not the
// shift day.
func WeeklyOvertime(entries []TimeEntry, now time.Time, cfg shiftclock.Config) float64 {
	loc := cfg.Location()
	local := now.In(loc)
	midnight := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	weekStart := midnight.AddDate(0, 0, -int(midnight.Weekday()))
	weekEnd := weekStart.AddDate(0, 0, 7)

	sum := 0.0
	for _, e := range entries {
		d := e.CheckIn.In(loc)
		if d.Before(weekStart) || !d.Before(weekEnd) {
			continue
		}
		switch {
		case e.TotalHours != nil:
			sum += sanitize(*e.TotalHours)
		case e.CheckOut != nil:
			sum += TotalHours(e.CheckIn, *e.CheckOut, cfg)
		}
	}

	return math.Max(0, sum-weeklyOvertimeThreshold)
}

// LeaveSpan is the slice of a leave request payroll needs.
type LeaveSpan struct {
	StartDate time.Time
	EndDate   time.Time
	Approved  bool
	IsPaid    bool
}

type Statement struct {
	Basic           float64
	Allowances      float64
	OvertimeHours   float64
	OvertimePay     float64
	UnpaidLeaveDays int
	LeaveDeduction  float64
	Tax             float64
	NetPay          float64
}

// MonthlyStatement assembles the payroll figures for one employee and
// month. Overtime is recomputed live from the punches rather than the
// cached fields, so a manual correction is reflected without waiting for
// the next reconciliation sweep. Overtime pay is never taxed.
func MonthlyStatement(
	basic, allowances float64,
	entries []TimeEntry,
	leaves []LeaveSpan,
	year int, month time.Month,
	cfg shiftclock.Config,
) Statement {
	monthly := sanitize(basic) + sanitize(allowances)

	otHours := 0.0
	for _, e := range entries {
		if e.CheckOut == nil {
			continue
		}
		day := shiftclock.ShiftDayTime(e.CheckIn, cfg)
		if day.Year() != year || day.Month() != month {
			continue
		}
		otHours += OvertimeHours(e.CheckIn, *e.CheckOut, cfg)
	}

	hourlyRate := 0.0
	if dur := cfg.DurationHours(); dur > 0 {
		hourlyRate = (monthly / payableDaysPerMonth) / dur
	}
	overtimePay := sanitize(otHours * hourlyRate)

	unpaidDays := 0
	for _, l := range leaves {
		if !l.Approved || l.IsPaid {
			continue
		}
		unpaidDays += overlapDays(l.StartDate, l.EndDate, year, month)
	}
	leaveDeduction := float64(unpaidDays) * (monthly / payableDaysPerMonth)

	taxableBase := math.Max(0, monthly-leaveDeduction)
	tax := ProgressiveTax(taxableBase)

	return Statement{
		Basic:           sanitize(basic),
		Allowances:      sanitize(allowances),
		OvertimeHours:   otHours,
		OvertimePay:     overtimePay,
		UnpaidLeaveDays: unpaidDays,
		LeaveDeduction:  leaveDeduction,
		Tax:             tax,
		NetPay:          math.Max(0, taxableBase-tax) + overtimePay,
	}
}

// ProgressiveTax: nothing up to 50k, 1% of the excess up to 100k, then a
// flat 500 plus 5% of the excess over 100k.
func ProgressiveTax(taxableBase float64) float64 {
	base := math.Max(0, sanitize(taxableBase))
	switch {
	case base <= taxFreeCeiling:
		return 0
	case base <= lowerBracketCeil:
		return (base - taxFreeCeiling) * lowerBracketRate
	default:
		return upperBracketBase + (base-lowerBracketCeil)*upperBracketRate
	}
}

// overlapDays counts the calendar days a leave shares with the target
// month, inclusive on both ends and clipped to the month boundaries.
// Leaves are calendar-granular requests, so the shift day plays no role
// here.
func overlapDays(start, end time.Time, year int, month time.Month) int {
	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, -1)

	s := truncateToDay(start)
	e := truncateToDay(end)
	if s.Before(monthStart) {
		s = monthStart
	}
	if e.After(monthEnd) {
		e = monthEnd
	}
	if e.Before(s) {
		return 0
	}
	return int(e.Sub(s).Hours()/24) + 1
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
