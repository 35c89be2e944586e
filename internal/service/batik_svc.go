package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"batikin/internal/api/dto"
	"batikin/internal/model"
	"batikin/internal/repository"
)

// ==================== BatikService 作品管理 ====================

// BatikService 作品增删改查
// 写操作需要 X-User-Email：新建限工匠，修改/删除限作者本人或管理员
type BatikService struct {
	batiks   repository.BatikRepository
	identity *IdentityService
	events   EventPublisher
	log      *zap.Logger
}

// NewBatikService 创建作品服务
func NewBatikService(batiks repository.BatikRepository, identity *IdentityService, events EventPublisher, log *zap.Logger) *BatikService {
	return &BatikService{batiks: batiks, identity: identity, events: events, log: log}
}

// List 分页列表
func (s *BatikService) List(ctx context.Context, cursor string, limit int) (*repository.Page[model.Batik], error) {
	page, err := s.batiks.List(ctx, cursor, limit)
	if err != nil {
		return nil, fromRepo(err, "")
	}
	return page, nil
}

// Get 作品详情
func (s *BatikService) Get(ctx context.Context, id string) (*model.Batik, error) {
	b, err := s.batiks.FindByID(ctx, id)
	if err != nil {
		return nil, fromRepo(err, "batik not found")
	}
	return b, nil
}

// ListByArtisan 某位工匠的全部作品
func (s *BatikService) ListByArtisan(ctx context.Context, artisanID string) ([]model.Batik, error) {
	items, err := s.batiks.ListByArtisan(ctx, artisanID)
	if err != nil {
		return nil, fromRepo(err, "")
	}
	return items, nil
}

// Create 新建作品，作者信息取自调用者
func (s *BatikService) Create(ctx context.Context, callerEmail string, req *dto.CreateBatikRequest) (*model.Batik, error) {
	caller, err := s.identity.Resolve(ctx, callerEmail)
	if err != nil {
		return nil, err
	}
	if !caller.IsArtisan() {
		return nil, newError(KindForbidden, "only artisans can create batik")
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Motif = strings.TrimSpace(req.Motif)
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	batik := &model.Batik{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Motif:       req.Motif,
		Origin:      strings.TrimSpace(req.Origin),
		History:     req.History,
		ImageURL:    strings.TrimSpace(req.ImageURL),
		ArtisanID:   caller.ID,
		ArtisanName: caller.Name,
	}
	created, err := s.batiks.Create(ctx, batik)
	if err != nil {
		return nil, fromRepo(err, "")
	}

	s.log.Info("新建作品", zap.String("batik_id", created.ID), zap.String("artisan_id", caller.ID))
	publishQuietly(ctx, s.events, s.log, NewEvent(EventBatikCreated, created.ID, created))
	return created, nil
}

// Update 部分更新
func (s *BatikService) Update(ctx context.Context, callerEmail, id string, req *dto.UpdateBatikRequest) (*model.Batik, error) {
	if _, err := s.authorize(ctx, callerEmail, id); err != nil {
		return nil, err
	}
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	for field, v := range map[string]*string{"name": req.Name, "motif": req.Motif} {
		if v != nil && strings.TrimSpace(*v) == "" {
			return nil, newError(KindBadRequest, "%s cannot be empty", field)
		}
	}

	updated, err := s.batiks.Patch(ctx, id, req.Fields())
	if err != nil {
		return nil, fromRepo(err, "batik not found")
	}

	publishQuietly(ctx, s.events, s.log, NewEvent(EventBatikUpdated, id, updated))
	return updated, nil
}

// Delete 删除作品
func (s *BatikService) Delete(ctx context.Context, callerEmail, id string) error {
	if _, err := s.authorize(ctx, callerEmail, id); err != nil {
		return err
	}

	deleted, err := s.batiks.Delete(ctx, id)
	if err != nil {
		return fromRepo(err, "")
	}
	if !deleted {
		return newError(KindNotFound, "batik not found")
	}

	s.log.Info("删除作品", zap.String("batik_id", id))
	publishQuietly(ctx, s.events, s.log, NewEvent(EventBatikDeleted, id, nil))
	return nil
}

// authorize 依次检查：调用者身份 → 作品存在 → 作者本人或管理员
func (s *BatikService) authorize(ctx context.Context, callerEmail, id string) (*model.Batik, error) {
	caller, err := s.identity.Resolve(ctx, callerEmail)
	if err != nil {
		return nil, err
	}
	batik, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !caller.IsAdmin() && !batik.OwnedBy(caller.ID) {
		return nil, newError(KindForbidden, "you do not own this batik")
	}
	return batik, nil
}
