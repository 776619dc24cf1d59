package leave

import (
	"time"

	"github.com/google/uuid"
)

type Leave struct {
	ID         uuid.UUID  `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID uuid.UUID  `gorm:"column:employee_id;type:uuid;not null;index"`
	StartDate  time.Time  `gorm:"column:start_date;type:date;not null"`
	EndDate    time.Time  `gorm:"column:end_date;type:date;not null"`
	Status     string     `gorm:"column:status;type:varchar(20);not null;default:'PENDING';index"`
	IsPaid     bool       `gorm:"column:is_paid;not null;default:false"`
	Reason     string     `gorm:"column:reason;type:text"`
	DecidedBy  *uuid.UUID `gorm:"column:decided_by;type:uuid"`
	DecidedAt  *time.Time `gorm:"column:decided_at"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (Leave) TableName() string {
	return "leaves"
}

type EmployeeRef struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	FullName string    `gorm:"column:full_name"`
}

func (EmployeeRef) TableName() string {
	return "employees"
}
