package dto

// CreateBatikRequest 新建作品，artisanId/artisanName 由服务端按调用者填写
type CreateBatikRequest struct {
	Name     string `json:"name" validate:"required"`
	Motif    string `json:"motif" validate:"required"`
	Origin   string `json:"origin"`
	History  string `json:"history"`
	ImageURL string `json:"imageUrl" validate:"omitempty,url"`
}

// UpdateBatikRequest 部分更新，nil 字段保持不变
type UpdateBatikRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=1"`
	Motif    *string `json:"motif" validate:"omitempty,min=1"`
	Origin   *string `json:"origin"`
	History  *string `json:"history"`
	ImageURL *string `json:"imageUrl" validate:"omitempty,url"`
}

// Fields 转为 patch map，只包含非 nil 字段
func (r *UpdateBatikRequest) Fields() map[string]interface{} {
	fields := make(map[string]interface{})
	set := func(key string, v *string) {
		if v != nil {
			fields[key] = *v
		}
	}
	set("name", r.Name)
	set("motif", r.Motif)
	set("origin", r.Origin)
	set("history", r.History)
	set("imageUrl", r.ImageURL)
	return fields
}

// QRCodeResponse 二维码内容
type QRCodeResponse struct {
	BatikID string `json:"batikId"`
	URL     string `json:"url"`
}
