package controller

import (
	"net/http"
	"strings"
	"time"

	gmw "github.com/Laisky/gin-middlewares/v6"
	"github.com/Laisky/zap"
	"github.com/gin-gonic/gin"

	"github.com/qa-demo/casegen/common/helper"
	"github.com/qa-demo/casegen/dto"
	"github.com/qa-demo/casegen/generator"
)

// Generate handles POST /api/generate.
func Generate(gen generator.Generator) gin.HandlerFunc {
	return func(c *gin.Context) {
		lg := gmw.GetLogger(c)

		var req dto.GenerateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			lg.Debug("reject generate request", zap.Error(err))
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: dto.ErrTaskRequired})
			return
		}

		start := time.Now()
		result, err := gen.Generate(gmw.Ctx(c), generator.Request{
			Task:    strings.TrimSpace(req.Task),
			Context: strings.TrimSpace(req.Context),
		})
		if err != nil {
			lg.Error("generation error", zap.Error(err))
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
				Error:  dto.ErrGenerationFailed,
				Detail: err.Error(),
			})
			return
		}

		c.JSON(http.StatusOK, dto.GenerateResponse{
			RunId:      helper.GenRunID(start),
			Model:      result.Model,
			LatencyMs:  helper.CalcElapsedTime(start),
			Completion: result.Completion,
			Mode:       gen.Mode().Label(),
		})
	}
}

// GenerateOptions answers OPTIONS /api/generate with the active mode.
func GenerateOptions(gen generator.Generator) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header(helper.GeneratorModeKey, gen.Mode().Label())
		c.String(http.StatusOK, http.StatusText(http.StatusOK))
	}
}
