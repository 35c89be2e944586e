package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"batikin/internal/api/dto"
	"batikin/internal/model"
	"batikin/internal/repository"
)

// ==================== AuthService 登录注册 ====================

// AuthService 登录与工匠注册
// 登录只按邮箱查用户，不做密码校验（已知的安全缺口）
type AuthService struct {
	store     *repository.Store
	users     repository.UserRepository
	pengrajin repository.PengrajinRepository
	events    EventPublisher
	log       *zap.Logger
}

// NewAuthService 工厂方法
func NewAuthService(
	store *repository.Store,
	users repository.UserRepository,
	pengrajin repository.PengrajinRepository,
	events EventPublisher,
	log *zap.Logger,
) *AuthService {
	return &AuthService{
		store:     store,
		users:     users,
		pengrajin: pengrajin,
		events:    events,
		log:       log,
	}
}

// Login 按邮箱（大小写不敏感）返回用户
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*model.User, error) {
	req.Email = strings.TrimSpace(req.Email)
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, fromRepo(err, "user not found")
	}
	return user, nil
}

// Register 注册工匠：User(pending) + PengrajinDetails 在同一事务内写入
// 返回新用户，不自动登录
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*model.User, error) {
	trimRegisterRequest(req)
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	exists, err := s.users.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, fromRepo(err, "")
	}
	if exists {
		return nil, ErrEmailInUse
	}

	user := &model.User{
		ID:     uuid.NewString(),
		Name:   req.Name,
		Email:  req.Email,
		Role:   model.UserRoleArtisan,
		Status: model.UserStatusPending,
	}
	details := &model.PengrajinDetails{
		UserID:                   user.ID,
		StoreName:                req.StoreName,
		Address:                  req.Address,
		PhoneNumber:              req.PhoneNumber,
		QualificationDocumentURL: req.QualificationDocumentURL,
	}

	var created *model.User
	err = s.store.Transaction(ctx, func(tx *repository.Store) error {
		u, err := s.users.WithStore(tx).Create(ctx, user)
		if err != nil {
			return err
		}
		if _, err := s.pengrajin.WithStore(tx).Create(ctx, details); err != nil {
			return err
		}
		created = u
		return nil
	})
	if errors.Is(err, repository.ErrConflict) {
		// 并发注册同一邮箱时由 user-email 唯一约束兜底
		return nil, ErrEmailInUse
	}
	if err != nil {
		return nil, fromRepo(err, "")
	}

	s.log.Info("工匠注册成功", zap.String("user_id", created.ID), zap.String("store", details.StoreName))
	publishQuietly(ctx, s.events, s.log, NewEvent(EventArtisanRegistered, created.ID, created))
	return created, nil
}

func trimRegisterRequest(req *dto.RegisterRequest) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.StoreName = strings.TrimSpace(req.StoreName)
	req.Address = strings.TrimSpace(req.Address)
	req.PhoneNumber = strings.TrimSpace(req.PhoneNumber)
	req.QualificationDocumentURL = strings.TrimSpace(req.QualificationDocumentURL)
}

// ==================== 错误定义 ====================

var (
	ErrEmailInUse = newError(KindBadRequest, "email already in use")
)
