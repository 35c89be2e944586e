package service

import (
	"context"
	"errors"
	"strings"

	"batikin/internal/model"
	"batikin/internal/repository"
)

// IdentityService 通过 X-User-Email 识别调用者
// 没有任何密码或签名校验，只是身份代理
type IdentityService struct {
	users repository.UserRepository
}

// NewIdentityService 创建身份服务
func NewIdentityService(users repository.UserRepository) *IdentityService {
	return &IdentityService{users: users}
}

// Resolve 根据邮箱找到调用者；邮箱为空或未注册返回 Unauthorized
func (s *IdentityService) Resolve(ctx context.Context, email string) (*model.User, error) {
	if strings.TrimSpace(email) == "" {
		return nil, newError(KindUnauthorized, "missing X-User-Email header")
	}
	user, err := s.users.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, newError(KindUnauthorized, "unknown user")
	}
	if err != nil {
		return nil, fromRepo(err, "")
	}
	return user, nil
}

// RequireAdmin 调用者必须是管理员
func (s *IdentityService) RequireAdmin(ctx context.Context, email string) (*model.User, error) {
	user, err := s.Resolve(ctx, email)
	if err != nil {
		return nil, err
	}
	if !user.IsAdmin() {
		return nil, newError(KindForbidden, "admin role required")
	}
	return user, nil
}
