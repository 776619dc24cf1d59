package attendance

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	attendances := r.Group("/attendances")
	{
		attendances.GET("", h.GetAll)
		attendances.POST("/check-in", h.CheckIn)
		attendances.POST("/check-out", h.CheckOut)
		attendances.PUT("/:id/correct", h.Correct)
	}
}
