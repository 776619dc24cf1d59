package middleware

import (
	"github.com/danishbarkat/bytechsol-portal-sub000/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ContextLogger attaches a request-scoped logger plus tracing metadata to
// the request context. The acting employee is taken from the X-Employee-ID
// header set by the gateway; this service performs no authentication itself.
func ContextLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader("X-Request-ID")
		if rid == "" {
			rid = uuid.New().String()
		}
		c.Header("X-Request-ID", rid)

		actorID := c.GetHeader("X-Employee-ID")
		c.Set("employee_id", actorID)

		reqLogger := logger.With(
			zap.String("request_id", rid),
			zap.String("employee_id", actorID),
		)

		ctx := c.Request.Context()
		ctx = contextutil.WithRequestID(ctx, rid)
		ctx = contextutil.WithActorID(ctx, actorID)
		ctx = contextutil.WithLogger(ctx, reqLogger)

		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
