package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"batikin/internal/api/dto"
	"batikin/internal/model"
	"batikin/internal/repository"
)

// ==================== UserService 通用用户接口 ====================

// UserService 用户列表、创建与删除
type UserService struct {
	users    repository.UserRepository
	identity *IdentityService
}

// NewUserService 创建用户服务
func NewUserService(users repository.UserRepository, identity *IdentityService) *UserService {
	return &UserService{users: users, identity: identity}
}

// List 分页列表
func (s *UserService) List(ctx context.Context, cursor string, limit int) (*repository.Page[model.User], error) {
	page, err := s.users.List(ctx, cursor, limit)
	if err != nil {
		return nil, fromRepo(err, "")
	}
	return page, nil
}

// Create 新建用户，状态固定为 pending
// 创建管理员需要调用者本身是管理员
func (s *UserService) Create(ctx context.Context, callerEmail string, req *dto.CreateUserRequest) (*model.User, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Role = strings.TrimSpace(req.Role)
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	if req.Role == model.UserRoleAdmin {
		if _, err := s.identity.RequireAdmin(ctx, callerEmail); err != nil {
			return nil, err
		}
	}

	user, err := s.users.Create(ctx, &model.User{
		ID:     uuid.NewString(),
		Name:   req.Name,
		Email:  req.Email,
		Role:   req.Role,
		Status: model.UserStatusPending,
	})
	if errors.Is(err, repository.ErrConflict) {
		return nil, ErrEmailInUse
	}
	if err != nil {
		return nil, fromRepo(err, "")
	}
	return user, nil
}

// Delete 删除用户，不存在时 deleted=false
func (s *UserService) Delete(ctx context.Context, id string) (*dto.DeleteUserResponse, error) {
	deleted, err := s.users.Delete(ctx, id)
	if err != nil {
		return nil, fromRepo(err, "")
	}
	return &dto.DeleteUserResponse{ID: id, Deleted: deleted}, nil
}

// DeleteMany 批量删除，忽略空 id
func (s *UserService) DeleteMany(ctx context.Context, req *dto.DeleteManyRequest) (*dto.DeleteManyResponse, error) {
	ids := make([]string, 0, len(req.IDs))
	for _, id := range req.IDs {
		if strings.TrimSpace(id) != "" {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return nil, newError(KindBadRequest, "ids required")
	}

	count, err := s.users.DeleteMany(ctx, ids)
	if err != nil {
		return nil, fromRepo(err, "")
	}
	return &dto.DeleteManyResponse{DeletedCount: count, IDs: ids}, nil
}
