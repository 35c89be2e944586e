package controller

import (
	"github.com/gin-gonic/gin"

	"batikin/internal/api/dto"
	"batikin/internal/api/response"
	"batikin/internal/service"
)

// ==================== AuthController 登录注册 ====================

// AuthController 登录注册控制器
type AuthController struct {
	authService *service.AuthService
}

// NewAuthController 创建控制器
func NewAuthController(s *service.AuthService) *AuthController {
	return &AuthController{authService: s}
}

// Login 邮箱登录
// @Summary 邮箱登录
// @Description 按邮箱（大小写不敏感）返回用户；不校验密码
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "登录信息"
// @Success 200 {object} response.Envelope{data=model.User}
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /api/auth/login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := ctrl.authService.Login(c.Request.Context(), &req)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, user)
}

// Register 工匠注册
// @Summary 工匠注册
// @Description 同时创建 pending 状态的用户与工匠资料，不自动登录
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "注册信息"
// @Success 201 {object} response.Envelope{data=model.User}
// @Failure 400 {object} response.Envelope "字段缺失或邮箱已被使用"
// @Router /api/auth/register [post]
func (ctrl *AuthController) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := ctrl.authService.Register(c.Request.Context(), &req)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Created(c, user)
}
