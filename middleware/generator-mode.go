package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/qa-demo/casegen/common/helper"
	"github.com/qa-demo/casegen/generator"
)

// GeneratorMode advertises the generation mode on OPTIONS requests to path.
// It must run before CORS, which answers browser preflights itself.
func GeneratorMode(gen generator.Generator, path string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions && c.Request.URL.Path == path {
			c.Header(helper.GeneratorModeKey, gen.Mode().Label())
		}
		c.Next()
	}
}
