package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"batikin/internal/api/response"
	"batikin/internal/service"
)

// ==================== 调用者身份 ====================

// HeaderUserEmail 调用者身份头，未经认证，仅作标识
const HeaderUserEmail = "X-User-Email"

const callerEmailKey = "caller_email"

type callerContextKey struct{}

// Identity 读取 X-User-Email 写入 gin 与 request context
// 不做校验，由需要身份的接口自行解析
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		email := strings.TrimSpace(c.GetHeader(HeaderUserEmail))
		if email != "" {
			c.Set(callerEmailKey, email)
			c.Request = c.Request.WithContext(WithCallerEmail(c.Request.Context(), email))
		}
		c.Next()
	}
}

// GetCallerEmail 从 gin context 获取调用者邮箱
func GetCallerEmail(c *gin.Context) string {
	return c.GetString(callerEmailKey)
}

// WithCallerEmail 注入调用者邮箱
func WithCallerEmail(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, callerContextKey{}, email)
}

// CallerEmailFromContext 从 request context 获取调用者邮箱
func CallerEmailFromContext(ctx context.Context) string {
	email, _ := ctx.Value(callerContextKey{}).(string)
	return email
}

// RequireAdmin 调用者必须是管理员：缺失/未知 401，非管理员 403
func RequireAdmin(identity *service.IdentityService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, err := identity.RequireAdmin(c.Request.Context(), GetCallerEmail(c)); err != nil {
			response.AbortWithError(c, err)
			return
		}
		c.Next()
	}
}
