package employee

import (
	"time"

	"github.com/google/uuid"
)

const (
	WorkModeOnsite = "ONSITE"
	WorkModeRemote = "REMOTE"
)

type Employee struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeNumber string    `gorm:"uniqueIndex;not null"`
	FullName       string    `gorm:"not null"`
	WorkMode       string    `gorm:"not null;default:ONSITE"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (Employee) TableName() string {
	return "employees"
}

// AttendanceRef covers the cascade delete of a departed employee's
// attendance rows without importing the attendance package.
type AttendanceRef struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID string
}

func (AttendanceRef) TableName() string {
	return "attendance_records"
}
