package model

// ClassificationLog 纹样识别调用日志
type ClassificationLog struct {
	BaseModel

	// 调用信息
	Source    string `gorm:"size:32;index;comment:结果来源(ml-service/simulation)"`
	Filename  string `gorm:"size:255;comment:上传文件名"`
	SizeBytes int64  `gorm:"default:0;comment:文件大小"`

	// 识别结果
	TopMotif   string  `gorm:"size:128;index;comment:首选纹样"`
	Confidence float64 `gorm:"type:decimal(6,4);default:0;comment:置信度"`

	// 性能
	DurationMs int64 `gorm:"comment:耗时(毫秒)"`

	// 状态: 远端失败但已回退时 Status 仍为 success，ErrorMsg 记录远端错误
	Status   string `gorm:"size:32;index;default:success;comment:状态(success/failed)"`
	ErrorMsg string `gorm:"size:1024;comment:错误信息"`
}

func (ClassificationLog) TableName() string {
	return "classification_logs"
}

// ==================== 来源常量 ====================

const (
	ClassificationSourceRemote     = "ml-service"
	ClassificationSourceSimulation = "simulation"
)

// ==================== 状态常量 ====================

const (
	ClassificationStatusSuccess = "success"
	ClassificationStatusFailed  = "failed"
)
