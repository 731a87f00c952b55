package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/qa-demo/casegen/common/graceful"
)

// RequestTracker counts in-flight requests so shutdown can drain them.
func RequestTracker() gin.HandlerFunc {
	return func(c *gin.Context) {
		end := graceful.BeginRequest()
		defer end()

		if graceful.IsDraining() {
			c.Header("Connection", "close")
		}
		c.Next()
	}
}
