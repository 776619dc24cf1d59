package leave

type CreateLeaveRequest struct {
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
	Reason    string `json:"reason"`
}

type LeaveResponse struct {
	ID         string  `json:"id"`
	EmployeeID string  `json:"employee_id"`
	StartDate  string  `json:"start_date"`
	EndDate    string  `json:"end_date"`
	TotalDays  int     `json:"total_days"`
	Status     string  `json:"status"`
	IsPaid     bool    `json:"is_paid"`
	Reason     string  `json:"reason,omitempty"`
	DecidedBy  *string `json:"decided_by,omitempty"`
}
