package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequestIDKey 请求 ID 在 gin.Context 中的键，由 RequestID 中间件写入
const RequestIDKey = "request_id"

// 错误类型，客户端按此区分处理
const (
	TypeBadRequest      = "BadRequest"
	TypeNotFound        = "NotFound"
	TypeConflict        = "Conflict"
	TypeTooManyRequests = "TooManyRequests"
	TypeInternal        = "InternalServerError"
)

// Response 统一成功响应
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorInfo 错误详情
type ErrorInfo struct {
	Code      int    `json:"code"`
	Message   string `json:"message"`
	Type      string `json:"type"`
	RequestID string `json:"request_id,omitempty"`
}

// ErrorResponse 统一错误响应
type ErrorResponse struct {
	Error ErrorInfo `json:"error"`
}

func success(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, Response{Success: true, Message: message, Data: data})
}

func OK(c *gin.Context, message string, data interface{}) {
	success(c, http.StatusOK, message, data)
}

func Created(c *gin.Context, message string, data interface{}) {
	success(c, http.StatusCreated, message, data)
}

// Fail 写入错误响应并中止后续 handler
func Fail(c *gin.Context, statusCode int, errType string, message string) {
	c.AbortWithStatusJSON(statusCode, ErrorResponse{
		Error: ErrorInfo{
			Code:      statusCode,
			Message:   message,
			Type:      errType,
			RequestID: c.GetString(RequestIDKey),
		},
	})
}

func BadRequest(c *gin.Context, message string) {
	Fail(c, http.StatusBadRequest, TypeBadRequest, message)
}

func NotFound(c *gin.Context, message string) {
	Fail(c, http.StatusNotFound, TypeNotFound, message)
}

func Conflict(c *gin.Context, message string) {
	Fail(c, http.StatusConflict, TypeConflict, message)
}

func TooManyRequests(c *gin.Context, message string) {
	Fail(c, http.StatusTooManyRequests, TypeTooManyRequests, message)
}

func InternalError(c *gin.Context, message string) {
	Fail(c, http.StatusInternalServerError, TypeInternal, message)
}
