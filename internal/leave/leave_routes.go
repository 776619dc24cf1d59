package leave

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	leaves := r.Group("/leaves")
	{
		leaves.GET("", h.GetAll)
		leaves.POST("", h.Create)
		leaves.POST("/:id/approve", h.Approve)
		leaves.POST("/:id/reject", h.Reject)
		leaves.POST("/:id/cancel", h.Cancel)
	}
}
