package notification

import (
	"time"
)

// Notification identity is the semantic id string, not a surrogate key.
// Producers build deterministic ids ("profile-incomplete:<employeeID>",
// "leave-approved:<leaveID>") so regenerating the same fact lands on the
// same row instead of duplicating it.
type Notification struct {
	ID            string    `gorm:"column:id;type:varchar(120);primaryKey"`
	EmployeeID    string    `gorm:"column:employee_id;type:varchar(64);not null;index"`
	Title         string    `gorm:"column:title;type:varchar(200);not null"`
	Message       string    `gorm:"column:message;type:text"`
	CreatedAt     time.Time `gorm:"column:created_at"`
	Read          bool      `gorm:"column:read;not null;default:false"`
	AutoGenerated bool      `gorm:"column:auto_generated;not null;default:false"`
	UpdatedAt     time.Time
}

func (Notification) TableName() string {
	return "notifications"
}

type EmployeeRef struct {
	ID             string `gorm:"type:uuid;primaryKey"`
	EmployeeNumber string `gorm:"column:employee_number"`
	FullName       string `gorm:"column:full_name"`
	WorkMode       string `gorm:"column:work_mode"`
}

func (EmployeeRef) TableName() string {
	return "employees"
}
