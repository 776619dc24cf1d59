package reconcile

import (
	"testing"
	"time"

	"github.com/danishbarkat/bytechsol-portal-sub000/internal/attendance"
	"github.com/danishbarkat/bytechsol-portal-sub000/internal/shiftclock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func dayShift() shiftclock.Config {
	return shiftclock.Config{Start: "09:00", End: "17:00", Timezone: "UTC"}
}

func completedRecord(totalHours, overtimeHours *float64) *attendance.Record {
	out := time.Date(2024, 1, 10, 19, 0, 0, 0, time.UTC)
	return &attendance.Record{
		ID:            uuid.New(),
		EmployeeID:    uuid.NewString(),
		CheckIn:       time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC),
		CheckOut:      &out,
		TotalHours:    totalHours,
		OvertimeHours: overtimeHours,
	}
}

func hoursPtr(v float64) *float64 { return &v }

func TestRefreshDerived_RepairsStaleHours(t *testing.T) {
	cfg := dayShift()

	stale := completedRecord(hoursPtr(3), nil)
	changed := RefreshDerived([]*attendance.Record{stale}, cfg)

	assert.Len(t, changed, 1)
	assert.InDelta(t, 10, *stale.TotalHours, 0.001)
	// 17:00 to 19:00 past the end.
	assert.InDelta(t, 2, *stale.OvertimeHours, 0.001)
}

func TestRefreshDerived_Idempotent(t *testing.T) {
	cfg := dayShift()

	rec := completedRecord(nil, nil)
	first := RefreshDerived([]*attendance.Record{rec}, cfg)
	assert.Len(t, first, 1)

	second := RefreshDerived([]*attendance.Record{rec}, cfg)
	assert.Empty(t, second)
}

func TestRefreshDerived_ToleratesSmallDrift(t *testing.T) {
	cfg := dayShift()

	rec := completedRecord(hoursPtr(10.005), hoursPtr(2.004))
	changed := RefreshDerived([]*attendance.Record{rec}, cfg)

	assert.Empty(t, changed)
	assert.InDelta(t, 10.005, *rec.TotalHours, 0.0001)
}

func TestRefreshDerived_ClearsPhantomOvertime(t *testing.T) {
	cfg := dayShift()

	out := time.Date(2024, 1, 10, 16, 0, 0, 0, time.UTC)
	rec := &attendance.Record{
		ID:            uuid.New(),
		CheckIn:       time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC),
		CheckOut:      &out,
		TotalHours:    hoursPtr(7),
		OvertimeHours: hoursPtr(1.5),
	}

	changed := RefreshDerived([]*attendance.Record{rec}, cfg)
	assert.Len(t, changed, 1)
	assert.Nil(t, rec.OvertimeHours)
}

func TestRefreshDerived_SkipsOpenRecords(t *testing.T) {
	cfg := dayShift()

	rec := &attendance.Record{
		ID:      uuid.New(),
		CheckIn: time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC),
	}
	assert.Empty(t, RefreshDerived([]*attendance.Record{rec}, cfg))
	assert.Nil(t, rec.TotalHours)
}

func TestCanonicalBadge(t *testing.T) {
	assert.Equal(t, "BS-031", CanonicalBadge("bs-031"))
	assert.Equal(t, "BS-031", CanonicalBadge(" BS-031 "))
	assert.Equal(t, "BS-031", CanonicalBadge("031"))
	assert.Equal(t, "BS-031", CanonicalBadge("BS-BS-031"))
	assert.Equal(t, "", CanonicalBadge("   "))
}

func TestRelinkOwners_MatchesByBadgeThenName(t *testing.T) {
	roster := []RosterEntry{
		{ID: uuid.NewString(), EmployeeNumber: "BS-031", FullName: "Aisha Khan"},
		{ID: uuid.NewString(), EmployeeNumber: "BS-007", FullName: "Omar Farooq"},
	}

	byBadge := &attendance.Record{ID: uuid.New(), EmployeeID: "bs-031", EmployeeName: "A. Khan"}
	byName := &attendance.Record{ID: uuid.New(), EmployeeID: "legacy-99", EmployeeName: "omar farooq"}
	orphan := &attendance.Record{ID: uuid.New(), EmployeeID: "legacy-12", EmployeeName: "Nobody Here"}

	changed := RelinkOwners([]*attendance.Record{byBadge, byName, orphan}, roster)

	assert.Len(t, changed, 2)
	assert.Equal(t, roster[0].ID, byBadge.EmployeeID)
	assert.Equal(t, "Aisha Khan", byBadge.EmployeeName)
	assert.Equal(t, roster[1].ID, byName.EmployeeID)
	// No match leaves the row untouched.
	assert.Equal(t, "legacy-12", orphan.EmployeeID)
}

func TestRelinkOwners_Idempotent(t *testing.T) {
	roster := []RosterEntry{
		{ID: uuid.NewString(), EmployeeNumber: "BS-031", FullName: "Aisha Khan"},
	}
	rec := &attendance.Record{ID: uuid.New(), EmployeeID: "031", EmployeeName: "ignored"}

	first := RelinkOwners([]*attendance.Record{rec}, roster)
	assert.Len(t, first, 1)

	second := RelinkOwners([]*attendance.Record{rec}, roster)
	assert.Empty(t, second)
}
