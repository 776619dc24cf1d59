package events

import "time"

const EmployeeLifecycleTopic = "portal.employee.lifecycle.v1"

const (
	EmployeeUpdated = "employee.updated"
	EmployeeDeleted = "employee.deleted"
)

type EmployeeLifecycleEvent struct {
	EventType      string    `json:"event_type"`
	EmployeeID     string    `json:"employee_id"`
	EmployeeNumber string    `json:"employee_number"`
	OccurredAt     time.Time `json:"occurred_at"`
}
