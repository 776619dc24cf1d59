package notification

type NotificationResponse struct {
	ID            string `json:"id"`
	EmployeeID    string `json:"employee_id"`
	Title         string `json:"title"`
	Message       string `json:"message,omitempty"`
	CreatedAt     string `json:"created_at"`
	Read          bool   `json:"read"`
	AutoGenerated bool   `json:"auto_generated,omitempty"`
}
