package notification

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	notifications := r.Group("/notifications")
	{
		notifications.GET("", h.GetAll)
		notifications.POST("/:id/read", h.MarkRead)
	}
}
