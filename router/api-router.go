package router

import (
	"github.com/gin-gonic/gin"

	"github.com/qa-demo/casegen/common/config"
	"github.com/qa-demo/casegen/controller"
	"github.com/qa-demo/casegen/generator"
	"github.com/qa-demo/casegen/middleware"
)

const generatePath = "/api/generate"

func SetApiRouter(router *gin.Engine, gen generator.Generator) {
	apiRouter := router.Group("/api")
	apiRouter.Use(middleware.RequestBodyLimit(config.MaxRequestBodyBytes))
	{
		apiRouter.GET("/status", controller.GetStatus(gen))
		apiRouter.GET("/scenarios", controller.ListScenarios(config.ScenariosDir))

		apiRouter.POST("/generate", controller.Generate(gen))
		apiRouter.OPTIONS("/generate", controller.GenerateOptions(gen))
	}
}
