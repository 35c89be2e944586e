package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"batikin/internal/api/dto"
	"batikin/internal/model"
	"batikin/internal/repository"
)

// ==================== ArtisanService 工匠管理 ====================

// ArtisanService 工匠列表、详情与审核
type ArtisanService struct {
	users     repository.UserRepository
	pengrajin repository.PengrajinRepository
	events    EventPublisher
	log       *zap.Logger
}

// NewArtisanService 创建工匠服务
func NewArtisanService(users repository.UserRepository, pengrajin repository.PengrajinRepository, events EventPublisher, log *zap.Logger) *ArtisanService {
	return &ArtisanService{users: users, pengrajin: pengrajin, events: events, log: log}
}

// List 全部工匠（含资料）
func (s *ArtisanService) List(ctx context.Context) (*dto.ArtisanListResponse, error) {
	users, err := s.users.All(ctx)
	if err != nil {
		return nil, fromRepo(err, "")
	}

	items := make([]model.ArtisanWithDetails, 0, len(users))
	for _, u := range users {
		if !u.IsArtisan() {
			continue
		}
		details, err := s.detailsOf(ctx, u.ID)
		if err != nil {
			return nil, err
		}
		items = append(items, model.ArtisanWithDetails{User: u, Details: details})
	}
	return &dto.ArtisanListResponse{Items: items}, nil
}

// Get 单个工匠（含资料）
func (s *ArtisanService) Get(ctx context.Context, id string) (*model.ArtisanWithDetails, error) {
	user, err := s.findArtisan(ctx, id)
	if err != nil {
		return nil, err
	}
	details, err := s.detailsOf(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	return &model.ArtisanWithDetails{User: *user, Details: details}, nil
}

// UpdateStatus 审核：verified / rejected
func (s *ArtisanService) UpdateStatus(ctx context.Context, id string, req *dto.UpdateArtisanStatusRequest) (*model.User, error) {
	req.Status = strings.TrimSpace(req.Status)
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	if _, err := s.findArtisan(ctx, id); err != nil {
		return nil, err
	}

	updated, err := s.users.Patch(ctx, id, map[string]interface{}{"status": req.Status})
	if err != nil {
		return nil, fromRepo(err, "artisan not found")
	}

	s.log.Info("工匠审核状态变更", zap.String("user_id", id), zap.String("status", req.Status))
	publishQuietly(ctx, s.events, s.log, NewEvent(EventArtisanStatusChanged, id, updated))
	return updated, nil
}

func (s *ArtisanService) findArtisan(ctx context.Context, id string) (*model.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, fromRepo(err, "artisan not found")
	}
	if !user.IsArtisan() {
		return nil, newError(KindNotFound, "artisan not found")
	}
	return user, nil
}

// detailsOf 资料缺失时返回 nil
func (s *ArtisanService) detailsOf(ctx context.Context, userID string) (*model.PengrajinDetails, error) {
	details, err := s.pengrajin.FindByUserID(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fromRepo(err, "")
	}
	return details, nil
}
