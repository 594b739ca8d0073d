package middleware

import (
	"fmt"

	"github.com/gin-gonic/gin"

	apperrors "rewardstracker/internal/errors"
	"rewardstracker/internal/logger"
)

// Recovery returns a Gin middleware that turns a panic in a later handler
// into a logged 500 with the usual {"error": "...", "code": "..."} body, so
// clients always receive an error string they can show.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			recovered := recover()
			if recovered == nil {
				return
			}

			logger.Get().Errorw("panic recovered",
				"panic", fmt.Sprint(recovered),
				"path", c.Request.URL.Path,
				"method", c.Request.Method,
			)
			_ = c.Error(fmt.Errorf("panic: %v", recovered))

			if c.Writer.Written() {
				c.Abort()
				return
			}
			c.AbortWithStatusJSON(apperrors.ErrInternalServer.StatusCode, gin.H{
				"error": apperrors.ErrInternalServer.Message,
				"code":  apperrors.ErrInternalServer.Code,
			})
		}()

		c.Next()
	}
}
