package payroll

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	payroll := r.Group("/payroll")
	{
		payroll.GET("/statements/:employeeID", h.GetMonthlyStatement)
		payroll.GET("/weekly-overtime/:employeeID", h.GetWeeklyOvertime)
		payroll.PUT("/salaries/:employeeID", h.UpsertSalary)
	}
}
