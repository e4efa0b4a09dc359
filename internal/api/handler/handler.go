package handler

import (
	"strconv"

	"filmorate-go/internal/api/middleware"
	"filmorate-go/internal/api/response"
	"filmorate-go/internal/service"
	"filmorate-go/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// parseIDParam 从 URL 路径参数中解析正整数 ID
func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(c, "无效的路径参数: "+name)
		return 0, false
	}
	return id, true
}

// handleServiceError 按业务错误类别返回对应状态码，未知错误只记录日志不暴露细节
func handleServiceError(c *gin.Context, err error, op string) {
	switch service.KindOf(err) {
	case service.KindNotFound:
		response.NotFound(c, err.Error())
	case service.KindValidation:
		response.BadRequest(c, err.Error())
	case service.KindConflict:
		response.Conflict(c, err.Error())
	default:
		logger.Error(op+" failed",
			zap.String("request_id", c.GetString(middleware.RequestIDKey)),
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
		response.InternalError(c, "操作失败，请稍后重试")
	}
}
