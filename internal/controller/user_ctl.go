package controller

import (
	"github.com/gin-gonic/gin"

	"batikin/internal/api/dto"
	"batikin/internal/api/response"
	"batikin/internal/middleware"
	"batikin/internal/service"
)

// ==================== UserController 用户 ====================

// UserController 通用用户接口
type UserController struct {
	userService *service.UserService
}

// NewUserController 创建控制器
func NewUserController(userService *service.UserService) *UserController {
	return &UserController{userService: userService}
}

// List 用户分页列表
// @Summary 用户列表
// @Tags User
// @Produce json
// @Param cursor query string false "上一页返回的 next"
// @Param limit query int false "每页数量"
// @Success 200 {object} response.Envelope
// @Router /api/users [get]
func (ctrl *UserController) List(c *gin.Context) {
	cursor, limit, ok := parsePaging(c)
	if !ok {
		return
	}
	page, err := ctrl.userService.List(c.Request.Context(), cursor, limit)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, page)
}

// Create 创建用户
// @Summary 创建用户
// @Tags User
// @Accept json
// @Produce json
// @Param X-User-Email header string false "创建 admin 时必须是管理员邮箱"
// @Param request body dto.CreateUserRequest true "用户信息"
// @Success 201 {object} response.Envelope{data=model.User}
// @Failure 400 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Router /api/users [post]
func (ctrl *UserController) Create(c *gin.Context) {
	var req dto.CreateUserRequest
	if !bindJSON(c, &req) {
		return
	}
	user, err := ctrl.userService.Create(c.Request.Context(), middleware.GetCallerEmail(c), &req)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Created(c, user)
}

// Delete 删除用户
// @Summary 删除用户
// @Tags User
// @Produce json
// @Param id path string true "用户 ID"
// @Success 200 {object} response.Envelope{data=dto.DeleteUserResponse}
// @Router /api/users/{id} [delete]
func (ctrl *UserController) Delete(c *gin.Context) {
	resp, err := ctrl.userService.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, resp)
}

// DeleteMany 批量删除
// @Summary 批量删除用户
// @Tags User
// @Accept json
// @Produce json
// @Param request body dto.DeleteManyRequest true "用户 ID 列表"
// @Success 200 {object} response.Envelope{data=dto.DeleteManyResponse}
// @Failure 400 {object} response.Envelope
// @Router /api/users/deleteMany [post]
func (ctrl *UserController) DeleteMany(c *gin.Context) {
	var req dto.DeleteManyRequest
	if !bindJSON(c, &req) {
		return
	}
	resp, err := ctrl.userService.DeleteMany(c.Request.Context(), &req)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, resp)
}
