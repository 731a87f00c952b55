package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/qa-demo/casegen/monitor"
)

const unmatchedRoute = "unmatched"

func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = unmatchedRoute
		}
		monitor.RecordHTTPRequest(c.Request.Method, path, c.Writer.Status())
	}
}
