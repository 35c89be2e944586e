package model

// PengrajinDetails 工匠资料，与 artisan 用户 1:1
// ID 与 UserID 保持一致，按 UserID 直接定位
type PengrajinDetails struct {
	ID                       string `json:"id"`
	UserID                   string `json:"userId"`
	StoreName                string `json:"storeName"`
	Address                  string `json:"address"`
	PhoneNumber              string `json:"phoneNumber"`
	QualificationDocumentURL string `json:"qualificationDocumentUrl"`
}

// ArtisanWithDetails 用户 + 工匠资料 (资料可能缺失)
type ArtisanWithDetails struct {
	User
	Details *PengrajinDetails `json:"details,omitempty"`
}
