package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"github.com/Contak-cpu/inmob-sub001/pkg/logger"
)

// Recovery turns a handler panic into a 500 response instead of dropping the
// connection mid-generation. The stack is logged with the request id and the
// office so a failed document can be traced back to its caller.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				attrs := []any{
					"error", err,
					"method", c.Request.Method,
					"path", c.Request.URL.Path,
					"stack", string(debug.Stack()),
				}
				if office := GetOffice(c); office != "" {
					attrs = append(attrs, "office", office)
				}
				logger.Error(c.Request.Context(), "panic recovered", attrs...)

				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error":      "Internal server error",
					"request_id": GetRequestID(c),
				})
			}
		}()

		c.Next()
	}
}
