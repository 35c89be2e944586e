package controller

import (
	"github.com/gin-gonic/gin"

	"batikin/internal/api/dto"
	"batikin/internal/api/response"
	"batikin/internal/service"
)

// APIName /api/test 返回的名称
const APIName = "Warisan Digital API"

// SystemController 探活与上传
type SystemController struct {
	classifyService *service.ClassificationService
	storageService  *service.StorageService
	maxBytes        int64
}

// NewSystemController 创建控制器
func NewSystemController(classifyService *service.ClassificationService, storageService *service.StorageService, maxBytes int64) *SystemController {
	return &SystemController{classifyService: classifyService, storageService: storageService, maxBytes: maxBytes}
}

// Info 接口名称
// @Summary API 信息
// @Tags System
// @Produce json
// @Success 200 {object} response.Envelope{data=dto.APIInfoResponse}
// @Router /api/test [get]
func (ctrl *SystemController) Info(c *gin.Context) {
	response.OK(c, dto.APIInfoResponse{Name: APIName})
}

// Health 健康检查
// @Summary 健康检查
// @Tags System
// @Produce json
// @Success 200 {object} response.Envelope{data=dto.HealthResponse}
// @Router /api/health [get]
func (ctrl *SystemController) Health(c *gin.Context) {
	response.OK(c, dto.HealthResponse{
		Status:       "ok",
		MLConfigured: ctrl.classifyService.RemoteConfigured(),
		MLAvailable:  ctrl.classifyService.RemoteUsable(),
	})
}

// Upload 上传作品图片或资质文件
// @Summary 上传文件
// @Description kind=image 允许 png/jpeg/webp；kind=document 额外允许 pdf
// @Tags System
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "文件"
// @Param kind formData string false "image（默认）或 document"
// @Success 201 {object} response.Envelope{data=dto.UploadResponse}
// @Failure 400 {object} response.Envelope
// @Router /api/uploads [post]
func (ctrl *SystemController) Upload(c *gin.Context) {
	filename, _, data, err := readFormFile(c, "file", ctrl.maxBytes)
	if err != nil {
		response.BadRequest(c, "invalid multipart body")
		return
	}

	resp, err := ctrl.storageService.UploadFile(c.Request.Context(), c.PostForm("kind"), filename, data)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Created(c, resp)
}
