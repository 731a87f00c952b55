package middleware

import (
	gmw "github.com/Laisky/gin-middlewares/v6"
	"github.com/Laisky/zap"
	"github.com/gin-gonic/gin"

	"github.com/qa-demo/casegen/common/helper"
	"github.com/qa-demo/casegen/dto"
)

// AbortWithError logs err and aborts the request with an ErrorResponse.
func AbortWithError(c *gin.Context, statusCode int, code string, err error) {
	gmw.GetLogger(c).Error("server abort",
		zap.Int("status_code", statusCode),
		zap.String("request_id", c.GetString(helper.RequestIdKey)),
		zap.Error(err))

	c.AbortWithStatusJSON(statusCode, dto.ErrorResponse{
		Error:  code,
		Detail: helper.MessageWithRequestId(err.Error(), c.GetString(helper.RequestIdKey)),
	})
}
