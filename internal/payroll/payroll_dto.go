package payroll

type UpsertSalaryRequest struct {
	BasicSalary float64 `json:"basic_salary" binding:"min=0"`
	Allowances  float64 `json:"allowances" binding:"min=0"`
}

type SalaryResponse struct {
	EmployeeID  string  `json:"employee_id"`
	BasicSalary float64 `json:"basic_salary"`
	Allowances  float64 `json:"allowances"`
}

type StatementResponse struct {
	EmployeeID      string  `json:"employee_id"`
	EmployeeName    string  `json:"employee_name,omitempty"`
	Month           string  `json:"month"`
	Basic           float64 `json:"basic"`
	Allowances      float64 `json:"allowances"`
	OvertimeHours   float64 `json:"overtime_hours"`
	OvertimePay     float64 `json:"overtime_pay"`
	UnpaidLeaveDays int     `json:"unpaid_leave_days"`
	LeaveDeduction  float64 `json:"leave_deduction"`
	Tax             float64 `json:"tax"`
	NetPay          float64 `json:"net_pay"`
}

type WeeklyOvertimeResponse struct {
	EmployeeID    string  `json:"employee_id"`
	OvertimeHours float64 `json:"overtime_hours"`
}
