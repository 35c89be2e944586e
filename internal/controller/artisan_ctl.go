package controller

import (
	"github.com/gin-gonic/gin"

	"batikin/internal/api/dto"
	"batikin/internal/api/response"
	"batikin/internal/service"
)

// ArtisanController 工匠列表与审核
type ArtisanController struct {
	artisanService *service.ArtisanService
}

// NewArtisanController 创建控制器
func NewArtisanController(s *service.ArtisanService) *ArtisanController {
	return &ArtisanController{artisanService: s}
}

// List 工匠列表
// @Summary 工匠列表（含店铺资料）
// @Tags Artisan
// @Produce json
// @Success 200 {object} response.Envelope{data=dto.ArtisanListResponse}
// @Router /api/artisans [get]
func (ctrl *ArtisanController) List(c *gin.Context) {
	resp, err := ctrl.artisanService.List(c.Request.Context())
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, resp)
}

// Get 工匠详情
// @Summary 工匠详情
// @Tags Artisan
// @Produce json
// @Param id path string true "用户 ID"
// @Success 200 {object} response.Envelope{data=model.ArtisanWithDetails}
// @Failure 404 {object} response.Envelope
// @Router /api/artisans/{id} [get]
func (ctrl *ArtisanController) Get(c *gin.Context) {
	artisan, err := ctrl.artisanService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, artisan)
}

// UpdateStatus 审核工匠
// @Summary 审核工匠
// @Description status 只能是 verified 或 rejected
// @Tags Artisan
// @Accept json
// @Produce json
// @Param id path string true "用户 ID"
// @Param request body dto.UpdateArtisanStatusRequest true "审核结果"
// @Success 200 {object} response.Envelope{data=model.User}
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /api/artisans/{id}/status [put]
func (ctrl *ArtisanController) UpdateStatus(c *gin.Context) {
	var req dto.UpdateArtisanStatusRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := ctrl.artisanService.UpdateStatus(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, user)
}
