package dto

// ==================== 登录 ====================

// LoginRequest 登录请求（仅邮箱，不校验密码）
type LoginRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ==================== 注册 ====================

// RegisterRequest 工匠注册请求
type RegisterRequest struct {
	Name                     string `json:"name" validate:"required"`
	Email                    string `json:"email" validate:"required,email"`
	StoreName                string `json:"storeName" validate:"required"`
	Address                  string `json:"address" validate:"required"`
	PhoneNumber              string `json:"phoneNumber" validate:"required"`
	QualificationDocumentURL string `json:"qualificationDocumentUrl"`
}
