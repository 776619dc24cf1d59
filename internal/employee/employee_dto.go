package employee

type CreateEmployeeRequest struct {
	EmployeeNumber string `json:"employee_number" binding:"required"`
	FullName       string `json:"full_name" binding:"required"`
	WorkMode       string `json:"work_mode" binding:"omitempty,oneof=ONSITE REMOTE"`
}

type UpdateEmployeeRequest struct {
	EmployeeNumber string `json:"employee_number" binding:"required"`
	FullName       string `json:"full_name" binding:"required"`
	WorkMode       string `json:"work_mode" binding:"required,oneof=ONSITE REMOTE"`
}

type EmployeeResponse struct {
	ID             string `json:"id"`
	EmployeeNumber string `json:"employee_number"`
	FullName       string `json:"full_name"`
	WorkMode       string `json:"work_mode"`
}
