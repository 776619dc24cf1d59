package attendance

type CheckInRequest struct {
	Notes *string `json:"notes"`
}

type CheckOutRequest struct {
	Notes *string `json:"notes"`
}

// CorrectRecordRequest is the administrative fix-up for a mispunched
// record. Derived hours are recomputed from the corrected instants.
type CorrectRecordRequest struct {
	CheckIn  string  `json:"check_in" binding:"required"`
	CheckOut *string `json:"check_out"`
}

type RecordResponse struct {
	ID             string   `json:"id"`
	EmployeeID     string   `json:"employee_id"`
	EmployeeName   string   `json:"employee_name,omitempty"`
	ShiftDate      string   `json:"shift_date"`
	CheckIn        string   `json:"check_in"`
	CheckOut       *string  `json:"check_out,omitempty"`
	Status         string   `json:"status"`
	CheckOutStatus string   `json:"check_out_status"`
	TotalHours     *float64 `json:"total_hours,omitempty"`
	OvertimeHours  *float64 `json:"overtime_hours,omitempty"`
	Notes          *string  `json:"notes,omitempty"`
}
