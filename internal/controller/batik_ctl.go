package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"batikin/internal/api/dto"
	"batikin/internal/api/response"
	"batikin/internal/middleware"
	"batikin/internal/service"
)

// ==================== BatikController 作品 ====================

// BatikController 作品增删改查与二维码
type BatikController struct {
	batikService *service.BatikService
	qrService    *service.QRService
}

// NewBatikController 创建控制器
func NewBatikController(batikService *service.BatikService, qrService *service.QRService) *BatikController {
	return &BatikController{batikService: batikService, qrService: qrService}
}

// List 作品分页列表
// @Summary 作品列表
// @Tags Batik
// @Produce json
// @Param cursor query string false "上一页返回的 next"
// @Param limit query int false "每页数量，默认 20，最大 100"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /api/batiks [get]
func (ctrl *BatikController) List(c *gin.Context) {
	cursor, limit, ok := parsePaging(c)
	if !ok {
		return
	}
	page, err := ctrl.batikService.List(c.Request.Context(), cursor, limit)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, page)
}

// Get 作品详情
// @Summary 作品详情
// @Tags Batik
// @Produce json
// @Param id path string true "作品 ID"
// @Success 200 {object} response.Envelope{data=model.Batik}
// @Failure 404 {object} response.Envelope
// @Router /api/batiks/{id} [get]
func (ctrl *BatikController) Get(c *gin.Context) {
	batik, err := ctrl.batikService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, batik)
}

// ListByArtisan 某工匠的作品
// @Summary 工匠作品列表
// @Tags Batik
// @Produce json
// @Param artisanId path string true "工匠用户 ID"
// @Success 200 {object} response.Envelope{data=[]model.Batik}
// @Router /api/batiks/artisan/{artisanId} [get]
func (ctrl *BatikController) ListByArtisan(c *gin.Context) {
	items, err := ctrl.batikService.ListByArtisan(c.Request.Context(), c.Param("artisanId"))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, items)
}

// Create 新建作品
// @Summary 新建作品
// @Description 需要 X-User-Email，调用者必须是工匠
// @Tags Batik
// @Accept json
// @Produce json
// @Param X-User-Email header string true "调用者邮箱"
// @Param request body dto.CreateBatikRequest true "作品信息"
// @Success 201 {object} response.Envelope{data=model.Batik}
// @Failure 400 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Router /api/batiks [post]
func (ctrl *BatikController) Create(c *gin.Context) {
	var req dto.CreateBatikRequest
	if !bindJSON(c, &req) {
		return
	}

	batik, err := ctrl.batikService.Create(c.Request.Context(), middleware.GetCallerEmail(c), &req)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Created(c, batik)
}

// Update 部分更新
// @Summary 修改作品
// @Description 作者本人或管理员
// @Tags Batik
// @Accept json
// @Produce json
// @Param X-User-Email header string true "调用者邮箱"
// @Param id path string true "作品 ID"
// @Param request body dto.UpdateBatikRequest true "需要修改的字段"
// @Success 200 {object} response.Envelope{data=model.Batik}
// @Failure 401 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /api/batiks/{id} [put]
func (ctrl *BatikController) Update(c *gin.Context) {
	var req dto.UpdateBatikRequest
	if !bindJSON(c, &req) {
		return
	}

	batik, err := ctrl.batikService.Update(c.Request.Context(), middleware.GetCallerEmail(c), c.Param("id"), &req)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, batik)
}

// Delete 删除作品
// @Summary 删除作品
// @Description 作者本人或管理员
// @Tags Batik
// @Produce json
// @Param X-User-Email header string true "调用者邮箱"
// @Param id path string true "作品 ID"
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /api/batiks/{id} [delete]
func (ctrl *BatikController) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := ctrl.batikService.Delete(c.Request.Context(), middleware.GetCallerEmail(c), id); err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, gin.H{"id": id, "deleted": true})
}

// QRCode 作品二维码
// @Summary 作品二维码
// @Description 内容为 {origin}/batik/{id}；format=url 时返回 JSON
// @Tags Batik
// @Produce png
// @Produce json
// @Param id path string true "作品 ID"
// @Param format query string false "png（默认）或 url"
// @Success 200 {file} binary
// @Failure 404 {object} response.Envelope
// @Router /api/batiks/{id}/qr [get]
func (ctrl *BatikController) QRCode(c *gin.Context) {
	id := c.Param("id")
	ctx := c.Request.Context()

	if c.Query("format") == "url" {
		url, err := ctrl.qrService.URL(ctx, id)
		if err != nil {
			response.Fail(c, err)
			return
		}
		response.OK(c, dto.QRCodeResponse{BatikID: id, URL: url})
		return
	}

	png, err := ctrl.qrService.PNG(ctx, id)
	if err != nil {
		response.Fail(c, err)
		return
	}
	c.Header("Cache-Control", "public, max-age=600")
	c.Data(http.StatusOK, "image/png", png)
}
