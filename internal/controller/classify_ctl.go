package controller

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"batikin/internal/api/response"
	"batikin/internal/service"
)

// ==================== ClassifyController 纹样识别 ====================

// ClassifyController 纹样识别、相似检索与可解释性分析
type ClassifyController struct {
	classifyService *service.ClassificationService
	maxBytes        int64
}

// NewClassifyController maxBytes 为单张图片读取上限
func NewClassifyController(s *service.ClassificationService, maxBytes int64) *ClassifyController {
	return &ClassifyController{classifyService: s, maxBytes: maxBytes}
}

func (ctrl *ClassifyController) readImage(c *gin.Context) (service.ImageInput, bool) {
	filename, contentType, data, err := readFormFile(c, "image", ctrl.maxBytes)
	if err != nil {
		response.BadRequest(c, "invalid multipart body")
		return service.ImageInput{}, false
	}
	return service.ImageInput{Filename: filename, ContentType: contentType, Data: data}, true
}

// Classify 纹样识别
// @Summary 纹样识别
// @Description 优先调用 ML 服务，失败时返回确定性模拟结果（source=simulation）
// @Tags Classify
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "batik 图片（png/jpeg/webp，最大 5MB）"
// @Success 200 {object} response.Envelope{data=service.ClassificationResult}
// @Failure 400 {object} response.Envelope
// @Failure 429 {object} response.Envelope
// @Router /api/classify-batik [post]
func (ctrl *ClassifyController) Classify(c *gin.Context) {
	img, ok := ctrl.readImage(c)
	if !ok {
		return
	}
	res, err := ctrl.classifyService.Classify(c.Request.Context(), img)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, res)
}

// Similarity 相似作品检索
// @Summary 相似作品检索
// @Description 透传 ML 服务，失败返回 400
// @Tags Classify
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "batik 图片"
// @Param top_k formData int false "返回数量，默认 5"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /api/batik/similarity [post]
func (ctrl *ClassifyController) Similarity(c *gin.Context) {
	img, ok := ctrl.readImage(c)
	if !ok {
		return
	}

	topK := 0
	raw := c.PostForm("top_k")
	if raw == "" {
		raw = c.Query("top_k")
	}
	if raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v <= 0 {
			response.BadRequest(c, "top_k must be a positive integer")
			return
		}
		topK = v
	}

	out, err := ctrl.classifyService.Similarity(c.Request.Context(), img, topK)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, out)
}

// Explain 可解释性分析
// @Summary 可解释性分析
// @Description 透传 ML 服务，失败返回 400
// @Tags Classify
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "batik 图片"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /api/batik/explain [post]
func (ctrl *ClassifyController) Explain(c *gin.Context) {
	img, ok := ctrl.readImage(c)
	if !ok {
		return
	}
	out, err := ctrl.classifyService.Explain(c.Request.Context(), img)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, out)
}

// Motifs 纹样数据集
// @Summary 纹样寓意数据集
// @Tags Classify
// @Produce json
// @Success 200 {object} response.Envelope{data=[]service.MotifInfo}
// @Router /api/motifs [get]
func (ctrl *ClassifyController) Motifs(c *gin.Context) {
	response.OK(c, ctrl.classifyService.Motifs())
}

// Stats 识别统计
// @Summary 识别统计（管理员）
// @Tags Admin
// @Produce json
// @Param X-User-Email header string true "管理员邮箱"
// @Param days query int false "统计天数，默认 7"
// @Success 200 {object} response.Envelope{data=service.ClassificationStatsResponse}
// @Failure 401 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Router /api/admin/classifications/stats [get]
func (ctrl *ClassifyController) Stats(c *gin.Context) {
	days := 0
	if raw := c.Query("days"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v <= 0 || v > 366 {
			response.BadRequest(c, "days must be between 1 and 366")
			return
		}
		days = v
	}

	stats, err := ctrl.classifyService.Stats(c.Request.Context(), days)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, stats)
}
