package controller

import (
	"net/http"

	gmw "github.com/Laisky/gin-middlewares/v6"
	"github.com/Laisky/zap"
	"github.com/gin-gonic/gin"
	"github.com/jinzhu/copier"

	"github.com/qa-demo/casegen/dto"
	"github.com/qa-demo/casegen/model"
)

// ListScenarios handles GET /api/scenarios. The directory is read on every
// request so newly dropped fixtures show up without a restart.
func ListScenarios(dir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		lg := gmw.GetLogger(c)

		scenarios, err := model.ListScenarios(dir)
		if err != nil {
			lg.Error("failed to list scenarios", zap.String("dir", dir), zap.Error(err))
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: dto.ErrScenarioListFailed})
			return
		}

		entries := make([]dto.ScenarioEntry, 0, len(scenarios))
		if len(scenarios) > 0 {
			if err = copier.Copy(&entries, &scenarios); err != nil {
				lg.Error("failed to convert scenarios", zap.Error(err))
				c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: dto.ErrScenarioListFailed})
				return
			}
		}

		c.JSON(http.StatusOK, dto.ScenarioListResponse{Scenarios: entries})
	}
}
