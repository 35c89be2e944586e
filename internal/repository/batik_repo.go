package repository

import (
	"context"

	"batikin/internal/model"
)

// ==================== BatikRepository 作品仓库 ====================

// BatikRepository 作品仓库接口
type BatikRepository interface {
	Create(ctx context.Context, batik *model.Batik) (*model.Batik, error)
	FindByID(ctx context.Context, id string) (*model.Batik, error)
	Patch(ctx context.Context, id string, fields map[string]interface{}) (*model.Batik, error)
	Delete(ctx context.Context, id string) (bool, error)
	List(ctx context.Context, cursor string, limit int) (*Page[model.Batik], error)
	ListByArtisan(ctx context.Context, artisanID string) ([]model.Batik, error)
	EnsureSeed(ctx context.Context) (int, error)
	WithStore(tx *Store) BatikRepository
}

type batikRepository struct {
	entity *Entity[model.Batik]
}

// NewBatikRepository 创建作品仓库
func NewBatikRepository(store *Store) BatikRepository {
	return &batikRepository{
		entity: NewEntity(store, Descriptor[model.Batik]{
			EntityName: "batik",
			IndexName:  "batiks",
			Seed:       SeedBatiks(),
		}),
	}
}

func (r *batikRepository) WithStore(tx *Store) BatikRepository {
	return &batikRepository{entity: r.entity.WithStore(tx)}
}

func (r *batikRepository) Create(ctx context.Context, batik *model.Batik) (*model.Batik, error) {
	created, err := r.entity.Create(ctx, *batik)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *batikRepository) FindByID(ctx context.Context, id string) (*model.Batik, error) {
	b, err := r.entity.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *batikRepository) Patch(ctx context.Context, id string, fields map[string]interface{}) (*model.Batik, error) {
	b, err := r.entity.Patch(ctx, id, fields)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *batikRepository) Delete(ctx context.Context, id string) (bool, error) {
	return r.entity.Delete(ctx, id)
}

func (r *batikRepository) List(ctx context.Context, cursor string, limit int) (*Page[model.Batik], error) {
	return r.entity.List(ctx, cursor, limit)
}

// ListByArtisan 全量扫描后按 artisanId 过滤，保持插入顺序
func (r *batikRepository) ListByArtisan(ctx context.Context, artisanID string) ([]model.Batik, error) {
	all, err := r.entity.All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]model.Batik, 0)
	for _, b := range all {
		if b.ArtisanID == artisanID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *batikRepository) EnsureSeed(ctx context.Context) (int, error) {
	return r.entity.EnsureSeed(ctx)
}
