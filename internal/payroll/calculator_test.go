package payroll

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
	return shiftclock.Config{Start: "09:00", End: "17:00", Timezone: "UTC"}
}

func ts(day, hour, min int) time.Time {
	return time.Date(2024, 1, day, hour, min, 0, 0, time.UTC)
}

func tsPtr(day, hour, min int) *time.Time {
	t := ts(day, hour, min)
	return &t
}

func TestTotalHours_OvernightShift(t *testing.T) {
	cfg := nightShift()

	// 19:30 to 05:00 the next day.
	total := TotalHours(ts(10, 19, 30), ts(11, 5, 0), cfg)
	assert.InDelta(t, 9.5, total, 0.001)
}

func TestTotalHours_FallsBackToShiftAxisOnBadTimestamps(t *testing.T) {
	cfg := nightShift()

	// Same wall-clock punches recorded on the same calendar day produce a
	// negative elapsed; the shift axis recovers the true span.
	total := TotalHours(ts(10, 19, 30), ts(10, 4, 30), cfg)
	assert.InDelta(t, 9.0, total, 0.001)
}

func TestOvertimeHours(t *testing.T) {
	cfg := nightShift()

	// 30 minutes early, on-time leave.
	ot := OvertimeHours(ts(10, 19, 30), ts(11, 5, 0), cfg)
	assert.InDelta(t, 0.5, ot, 0.001)

	// Early arrival and a late leave both count.
	ot = OvertimeHours(ts(10, 19, 0), ts(11, 6, 0), cfg)
	assert.InDelta(t, 2.0, ot, 0.001)

	// Inside the window there is no overtime.
	ot = OvertimeHours(ts(10, 20, 15), ts(11, 4, 30), cfg)
	assert.Equal(t, 0.0, ot)
}

func TestWeeklyOvertime(t *testing.T) {
	cfg := dayShift()
	// Wednesday 2024-01-10; the week runs Sunday the 7th through Saturday
	// the 13th.
	now := ts(10, 12, 0)

	hours := func(v float64) *float64 { return &v }

	entries := []TimeEntry{
		{CheckIn: ts(8, 9, 0), TotalHours: hours(12)},
		{CheckIn: ts(9, 9, 0), TotalHours: hours(12)},
		{CheckIn: ts(10, 9, 0), TotalHours: hours(12)},
		// Previous week, ignored.
		{CheckIn: ts(3, 9, 0), TotalHours: hours(12)},
	}
	assert.InDelta(t, 0, WeeklyOvertime(entries[:2], now, cfg), 0.001)
	assert.InDelta(t, 0, WeeklyOvertime(entries, now, cfg), 0.001)

	entries = append(entries, TimeEntry{CheckIn: ts(11, 9, 0), TotalHours: hours(12)})
	assert.InDelta(t, 8, WeeklyOvertime(entries, now, cfg), 0.001)
}

func TestWeeklyOvertime_LiveFallbackWhenCacheMissing(t *testing.T) {
	cfg := dayShift()
	now := ts(10, 12, 0)

	entries := []TimeEntry{
		{CheckIn: ts(8, 9, 0), CheckOut: tsPtr(8, 17, 0)},
		// Open record contributes nothing.
		{CheckIn: ts(9, 9, 0)},
	}
	assert.InDelta(t, 0, WeeklyOvertime(entries, now, cfg), 0.001)
}

func TestProgressiveTax(t *testing.T) {
	assert.Equal(t, 0.0, ProgressiveTax(0))
	assert.Equal(t, 0.0, ProgressiveTax(50000))
	assert.InDelta(t, 100, ProgressiveTax(60000), 0.001)
	assert.InDelta(t, 500, ProgressiveTax(100000), 0.001)
	assert.InDelta(t, 500+2500, ProgressiveTax(150000), 0.001)
	assert.Equal(t, 0.0, ProgressiveTax(-10))
}

func TestMonthlyStatement_TaxAndNet(t *testing.T) {
	cfg := dayShift()

	st := MonthlyStatement(60000, 0, nil, nil, 2024, time.January, cfg)
	assert.InDelta(t, 100, st.Tax, 0.001)
	assert.InDelta(t, 59900, st.NetPay, 0.001)
	assert.Equal(t, 0, st.UnpaidLeaveDays)
}

func TestMonthlyStatement_OvertimeNeverTaxed(t *testing.T) {
	cfg := dayShift()

	entries := []TimeEntry{
		// Two hours past the shift end.
		{CheckIn: ts(10, 9, 0), CheckOut: tsPtr(10, 19, 0)},
	}

	st := MonthlyStatement(60000, 0, entries, nil, 2024, time.January, cfg)
	assert.InDelta(t, 2, st.OvertimeHours, 0.001)

	// hourly rate = (60000/30)/8 = 250
	assert.InDelta(t, 500, st.OvertimePay, 0.001)
	assert.InDelta(t, 100, st.Tax, 0.001)
	assert.InDelta(t, 59900+500, st.NetPay, 0.001)
}

func TestMonthlyStatement_UnpaidLeaveDeduction(t *testing.T) {
	cfg := dayShift()

	leaves := []LeaveSpan{
		{StartDate: ts(8, 0, 0), EndDate: ts(10, 0, 0), Approved: true, IsPaid: false},
		// Paid leave deducts nothing.
		{StartDate: ts(15, 0, 0), EndDate: ts(16, 0, 0), Approved: true, IsPaid: true},
		// Pending leave deducts nothing.
		{StartDate: ts(20, 0, 0), EndDate: ts(22, 0, 0), Approved: false, IsPaid: false},
	}

	st := MonthlyStatement(60000, 0, nil, leaves, 2024, time.January, cfg)
	assert.Equal(t, 3, st.UnpaidLeaveDays)
	// 3 days * 2000/day
	assert.InDelta(t, 6000, st.LeaveDeduction, 0.001)
	// taxable 54000 -> tax 40
	assert.InDelta(t, 40, st.Tax, 0.001)
	assert.InDelta(t, 53960, st.NetPay, 0.001)
}

func TestMonthlyStatement_LeaveSpanClippedToMonth(t *testing.T) {
	cfg := dayShift()

	leaves := []LeaveSpan{
		{
			StartDate: time.Date(2023, 12, 30, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
			Approved:  true,
		},
	}

	st := MonthlyStatement(30000, 0, nil, leaves, 2024, time.January, cfg)
	assert.Equal(t, 2, st.UnpaidLeaveDays)
}

func TestMonthlyStatement_DeductionNeverGoesNegative(t *testing.T) {
	cfg := dayShift()

	leaves := []LeaveSpan{
		{StartDate: ts(1, 0, 0), EndDate: ts(31, 0, 0), Approved: true, IsPaid: false},
	}

	st := MonthlyStatement(1000, 0, nil, leaves, 2024, time.January, cfg)
	assert.GreaterOrEqual(t, st.NetPay, 0.0)
	assert.Equal(t, 0.0, st.Tax)
}

func TestMonthlyStatement_ZeroDurationShift(t *testing.T) {
	cfg := shiftclock.Config{Start: "09:00", End: "09:00", Timezone: "UTC"}

	entries := []TimeEntry{
		{CheckIn: ts(10, 8, 0), CheckOut: tsPtr(10, 10, 0)},
	}

	st := MonthlyStatement(60000, 0, entries, nil, 2024, time.January, cfg)
	// No hourly rate can be derived, so overtime pay stays zero.
	assert.Equal(t, 0.0, st.OvertimePay)
}
