package shiftconfig

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	cfg := r.Group("/shift-config")
	{
		cfg.GET("", h.Get)
		cfg.PUT("", h.Update)
	}
}
