package respond

import (
	"github.com/gin-gonic/gin"

	"todo-backend/internal/shared/telemetry"
)

// Error logs the failure server-side and replies with the status code only.
// The client never receives diagnostic detail; the status is the signal.
func Error(c *gin.Context, status int, code string) {
	telemetry.Error("http.error", map[string]any{
		"status":     status,
		"code":       code,
		"path":       c.Request.URL.Path,
		"method":     c.Request.Method,
		"request_id": c.GetString("requestId"),
	})

	c.AbortWithStatus(status)
}
