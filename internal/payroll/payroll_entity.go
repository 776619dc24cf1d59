package payroll

import (
	"time"

	"github.com/google/uuid"
)

type EmployeeSalary struct {
	EmployeeID  uuid.UUID `gorm:"column:employee_id;type:uuid;primaryKey"`
	BasicSalary float64   `gorm:"column:basic_salary;not null;default:0"`
	Allowances  float64   `gorm:"column:allowances;not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (EmployeeSalary) TableName() string {
	return "employee_salaries"
}

// AttendanceRow is the read-only projection of attendance_records this
// package needs for statement computation.
type AttendanceRow struct {
	EmployeeID    string     `gorm:"column:employee_id"`
	CheckIn       time.Time  `gorm:"column:check_in"`
	CheckOut      *time.Time `gorm:"column:check_out"`
	TotalHours    *float64   `gorm:"column:total_hours"`
	OvertimeHours *float64   `gorm:"column:overtime_hours"`
}

func (AttendanceRow) TableName() string {
	return "attendance_records"
}

// LeaveRow mirrors the columns of leaves relevant to unpaid-day deduction.
type LeaveRow struct {
	EmployeeID string    `gorm:"column:employee_id"`
	StartDate  time.Time `gorm:"column:start_date"`
	EndDate    time.Time `gorm:"column:end_date"`
	Status     string    `gorm:"column:status"`
	IsPaid     bool      `gorm:"column:is_paid"`
}

func (LeaveRow) TableName() string {
	return "leaves"
}

type EmployeeRef struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	FullName string    `gorm:"column:full_name"`
}

func (EmployeeRef) TableName() string {
	return "employees"
}
