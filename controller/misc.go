package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/qa-demo/casegen/common"
	"github.com/qa-demo/casegen/dto"
	"github.com/qa-demo/casegen/generator"
)

func GetStatus(gen generator.Generator) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "",
			"data": gin.H{
				"version":    common.Version,
				"start_time": common.StartTime,
				"mode":       gen.Mode(),
				"model":      gen.Model(),
			},
		})
	}
}

// NotFound is the fallback for routes that match neither the API nor a static file.
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: dto.ErrNotFound})
}
