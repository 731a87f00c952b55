package router

import (
	"github.com/gin-gonic/gin"

	"github.com/qa-demo/casegen/common/config"
	"github.com/qa-demo/casegen/common/logger"
	"github.com/qa-demo/casegen/generator"
	"github.com/qa-demo/casegen/middleware"
	"github.com/qa-demo/casegen/monitor"
)

// SetRouter registers the API, metrics and static routes on server. It must
// run before any other route is added so the CORS and metrics middleware
// cover every handler.
func SetRouter(server *gin.Engine, gen generator.Generator) {
	server.Use(middleware.GeneratorMode(gen, generatePath))
	server.Use(middleware.CORS())
	if config.EnablePrometheusMetrics {
		server.Use(middleware.PrometheusMiddleware())
		server.GET("/metrics", gin.WrapH(monitor.Handler()))
		logger.Logger.Info("Prometheus metrics endpoint available at /metrics")
	}

	SetApiRouter(server, gen)
	SetWebRouter(server, config.PublicDir)
}
