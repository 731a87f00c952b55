package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/Laisky/errors/v2"
	"github.com/Laisky/zap"
	"github.com/gin-gonic/gin"

	"github.com/qa-demo/casegen/common/logger"
	"github.com/qa-demo/casegen/dto"
)

// PanicRecover turns a handler panic into a 500 JSON response so one bad
// request never takes the process down.
func PanicRecover() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Logger.Error("panic detected",
					zap.Any("panic", err),
					zap.String("stacktrace", string(debug.Stack())),
					zap.String("method", c.Request.Method),
					zap.String("path", c.Request.URL.Path))
				AbortWithError(c, http.StatusInternalServerError, dto.ErrInternal,
					errors.Errorf("panic detected: %v", err))
			}
		}()
		c.Next()
	}
}
