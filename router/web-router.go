package router

import (
	"github.com/gin-contrib/static"
	"github.com/gin-gonic/gin"

	"github.com/qa-demo/casegen/controller"
)

// SetWebRouter serves publicDir at the site root. Paths that are neither an
// API route nor an existing file get a JSON 404.
func SetWebRouter(router *gin.Engine, publicDir string) {
	router.NoRoute(
		static.Serve("/", static.LocalFile(publicDir, false)),
		controller.NotFound,
	)
}
