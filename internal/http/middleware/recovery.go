package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"github.com/ovenly/bakeshop-backend/internal/http/response"
	"github.com/ovenly/bakeshop-backend/internal/pkg/logger"
)

// Recovery converts panics into 500 responses. The stack always goes to the
// log; it reaches the response body only in debug mode.
func Recovery(log *logger.Logger, debugMode bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				stack := string(debug.Stack())
				if log != nil {
					log.Error("Panic recovered", "panic", r, "path", c.Request.URL.Path, "stack", stack)
				}
				detail := "Internal server error"
				if debugMode {
					detail = fmt.Sprintf("%v\n%s", r, stack)
				}
				c.AbortWithStatusJSON(http.StatusInternalServerError, response.ErrorBody{Detail: detail})
			}
		}()
		c.Next()
	}
}
