package middleware

import (
	"github.com/gin-gonic/gin"

	"tade-autism-centre/backend/utils"
)

// ErrorHandler forwards handler errors to Sentry with request context.
// Handlers attach downstream failures via c.Error before responding.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			for _, ginErr := range c.Errors {
				utils.CaptureError(ginErr.Err, map[string]interface{}{
					"endpoint": c.Request.URL.Path,
					"method":   c.Request.Method,
					"status":   c.Writer.Status(),
				})
			}
		}
	}
}
