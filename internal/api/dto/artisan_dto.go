package dto

import "batikin/internal/model"

// UpdateArtisanStatusRequest 审核工匠
type UpdateArtisanStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=verified rejected"`
}

// ArtisanListResponse 工匠列表
type ArtisanListResponse struct {
	Items []model.ArtisanWithDetails `json:"items"`
}
