package dto

// UploadResponse 上传结果
type UploadResponse struct {
	URL         string `json:"url"`
	ContentType string `json:"contentType"`
	Size        int64  `json:"size"`
}

// HealthResponse 健康检查
type HealthResponse struct {
	Status       string `json:"status"`
	MLConfigured bool   `json:"mlConfigured"`
	MLAvailable  bool   `json:"mlAvailable"`
}

// APIInfoResponse /api/test
type APIInfoResponse struct {
	Name string `json:"name"`
}
