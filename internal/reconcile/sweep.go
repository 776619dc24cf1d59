package reconcile

import (
	"math"
	"strings"

	"github.com/danishbarkat/bytechsol-portal-sub000/internal/attendance"
	"github.com/danishbarkat/bytechsol-portal-sub000/internal/payroll"
	"github.com/danishbarkat/bytechsol-portal-sub000/internal/shiftclock"
)

// hoursTolerance is the drift below which a stored derived value is
// considered correct and left alone, so repeated sweeps converge instead
// of rewriting rows forever over float noise.
const hoursTolerance = 0.01

const badgePrefix = "BS-"

// RosterEntry is the minimal projection of an employee the relink pass
// needs.
type RosterEntry struct {
	ID             string
	EmployeeNumber string
	FullName       string
}

// RefreshDerived recomputes the cached hour fields of every completed
// record and returns the records that actually changed. Open records
// (no checkout) are never touched.
func RefreshDerived(records []*attendance.Record, cfg shiftclock.Config) []*attendance.Record {
	var changed []*attendance.Record
	for _, rec := range records {
		if rec.CheckOut == nil {
			continue
		}

		total := payroll.TotalHours(rec.CheckIn, *rec.CheckOut, cfg)
		overtime := payroll.OvertimeHours(rec.CheckIn, *rec.CheckOut, cfg)

		dirty := false
		if rec.TotalHours == nil || math.Abs(*rec.TotalHours-total) > hoursTolerance {
			rec.TotalHours = &total
			dirty = true
		}
		if overtime > 0 {
			if rec.OvertimeHours == nil || math.Abs(*rec.OvertimeHours-overtime) > hoursTolerance {
				rec.OvertimeHours = &overtime
				dirty = true
			}
		} else if rec.OvertimeHours != nil {
			rec.OvertimeHours = nil
			dirty = true
		}

		if dirty {
			changed = append(changed, rec)
		}
	}
	return changed
}

// RelinkOwners rewrites legacy owner ids on attendance records to the
// roster's uuid. A record is matched first by canonical badge, then by
// case-insensitive full name. Records with no match are left untouched.
func RelinkOwners(records []*attendance.Record, roster []RosterEntry) []*attendance.Record {
	byBadge := make(map[string]RosterEntry, len(roster))
	byName := make(map[string]RosterEntry, len(roster))
	byID := make(map[string]struct{}, len(roster))
	for _, entry := range roster {
		byBadge[CanonicalBadge(entry.EmployeeNumber)] = entry
		byName[strings.ToLower(strings.TrimSpace(entry.FullName))] = entry
		byID[entry.ID] = struct{}{}
	}

	var changed []*attendance.Record
	for _, rec := range records {
		if _, ok := byID[rec.EmployeeID]; ok {
			continue
		}

		entry, ok := byBadge[CanonicalBadge(rec.EmployeeID)]
		if !ok {
			entry, ok = byName[strings.ToLower(strings.TrimSpace(rec.EmployeeName))]
		}
		if !ok {
			continue
		}

		rec.EmployeeID = entry.ID
		rec.EmployeeName = entry.FullName
		changed = append(changed, rec)
	}
	return changed
}

// CanonicalBadge normalizes a badge id: whitespace stripped, uppercased,
// and exactly one "BS-" prefix. "bs-031", " BS-031 " and "031" all map
// to "BS-031".
func CanonicalBadge(raw string) string {
	s := strings.ToUpper(strings.Join(strings.Fields(raw), ""))
	for strings.HasPrefix(s, badgePrefix) {
		s = strings.TrimPrefix(s, badgePrefix)
	}
	if s == "" {
		return ""
	}
	return badgePrefix + s
}
