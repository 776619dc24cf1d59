package attendance

import (
	"time"

	"github.com/google/uuid"
)

// Record is one check-in/check-out pair attributed to a shift day.
//
// EmployeeID is a string on purpose: rows imported from the legacy portal
// may still carry a badge id ("bs-031") instead of an employee UUID until
// the reconciliation sweep relinks them. TotalHours and OvertimeHours are a
// cache over CheckIn/CheckOut and the shift config, never a source of
// truth; the sweep repairs them after any config change.
type Record struct {
	ID            uuid.UUID  `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID    string     `gorm:"column:employee_id;type:varchar(64);not null;index;index:idx_open_record,unique,where:check_out IS NULL"`
	EmployeeName  string     `gorm:"column:employee_name;type:varchar(120)"`
	ShiftDate     time.Time  `gorm:"column:shift_date;type:date;not null;index"`
	CheckIn       time.Time  `gorm:"column:check_in;type:timestamptz;not null"`
	CheckOut      *time.Time `gorm:"column:check_out;type:timestamptz"`
	Status        string     `gorm:"column:status;type:varchar(10);not null"`
	TotalHours    *float64   `gorm:"column:total_hours"`
	OvertimeHours *float64   `gorm:"column:overtime_hours"`
	Notes         *string    `gorm:"column:notes;type:text"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (Record) TableName() string {
	return "attendance_records"
}

type EmployeeRef struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeNumber string    `gorm:"column:employee_number"`
	FullName       string    `gorm:"column:full_name"`
	WorkMode       string    `gorm:"column:work_mode"`
}

func (EmployeeRef) TableName() string {
	return "employees"
}
