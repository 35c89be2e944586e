package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"batikin/internal/service"
	"batikin/pkg/logger"
)

// Envelope 统一响应结构 {success, data?, error?}
type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// OK 200
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Envelope{Success: true, Data: data})
}

// Created 201
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Envelope{Success: true, Data: data})
}

// Fail 按业务错误类别输出状态码
// 内部错误只返回通用文案，细节写日志
func Fail(c *gin.Context, err error) {
	appErr := service.AsAppError(err)
	status := appErr.Kind.HTTPStatus()
	message := appErr.Message
	if status >= http.StatusInternalServerError {
		logger.L().Error("请求处理失败",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
		message = "internal server error"
	}
	c.JSON(status, Envelope{Success: false, Error: message})
}

// Abort 中间件中止请求
func Abort(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, Envelope{Success: false, Error: message})
}

// AbortWithError 中间件按业务错误中止请求
func AbortWithError(c *gin.Context, err error) {
	Fail(c, err)
	c.Abort()
}

// BadRequest 参数绑定错误
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Envelope{Success: false, Error: message})
}
