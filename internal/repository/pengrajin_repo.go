package repository

import (
	"context"

	"batikin/internal/model"
)

// ==================== PengrajinRepository 工匠资料仓库 ====================

// PengrajinRepository 工匠资料仓库接口，主键 = userId
type PengrajinRepository interface {
	Create(ctx context.Context, details *model.PengrajinDetails) (*model.PengrajinDetails, error)
	FindByUserID(ctx context.Context, userID string) (*model.PengrajinDetails, error)
	Patch(ctx context.Context, userID string, fields map[string]interface{}) (*model.PengrajinDetails, error)
	Delete(ctx context.Context, userID string) (bool, error)
	All(ctx context.Context) ([]model.PengrajinDetails, error)
	EnsureSeed(ctx context.Context) (int, error)
	WithStore(tx *Store) PengrajinRepository
}

type pengrajinRepository struct {
	entity *Entity[model.PengrajinDetails]
}

// NewPengrajinRepository 创建工匠资料仓库
func NewPengrajinRepository(store *Store) PengrajinRepository {
	return &pengrajinRepository{
		entity: NewEntity(store, Descriptor[model.PengrajinDetails]{
			EntityName: "pengrajin-details",
			IndexName:  "pengrajin-details",
			KeyOf:      func(d model.PengrajinDetails) string { return d.UserID },
			Seed:       SeedPengrajinDetails(),
		}),
	}
}

func (r *pengrajinRepository) WithStore(tx *Store) PengrajinRepository {
	return &pengrajinRepository{entity: r.entity.WithStore(tx)}
}

// Create 创建资料，ID 强制与 UserID 一致
func (r *pengrajinRepository) Create(ctx context.Context, details *model.PengrajinDetails) (*model.PengrajinDetails, error) {
	d := *details
	d.ID = d.UserID
	created, err := r.entity.Create(ctx, d)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// FindByUserID 按所属用户查询
func (r *pengrajinRepository) FindByUserID(ctx context.Context, userID string) (*model.PengrajinDetails, error) {
	d, err := r.entity.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// Patch 部分更新
func (r *pengrajinRepository) Patch(ctx context.Context, userID string, fields map[string]interface{}) (*model.PengrajinDetails, error) {
	d, err := r.entity.Patch(ctx, userID, fields)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// Delete 删除资料
func (r *pengrajinRepository) Delete(ctx context.Context, userID string) (bool, error) {
	return r.entity.Delete(ctx, userID)
}

// All 全部资料
func (r *pengrajinRepository) All(ctx context.Context) ([]model.PengrajinDetails, error) {
	return r.entity.All(ctx)
}

// EnsureSeed 写入种子资料
func (r *pengrajinRepository) EnsureSeed(ctx context.Context) (int, error) {
	return r.entity.EnsureSeed(ctx)
}
