package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"batikin/internal/model"
)

// ==================== UserRepository 用户仓库 ====================

const (
	userEntityName   = "user"
	userIndexName    = "users"
	userEmailIndex   = "user-email"
	userEmailPatchNG = "email"
)

// UserRepository 用户仓库接口
// 主键为 id；邮箱（小写）经二级索引 user-email 反查 id
type UserRepository interface {
	Create(ctx context.Context, user *model.User) (*model.User, error)
	FindByID(ctx context.Context, id string) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Patch(ctx context.Context, id string, fields map[string]interface{}) (*model.User, error)
	Delete(ctx context.Context, id string) (bool, error)
	DeleteMany(ctx context.Context, ids []string) (int, error)
	List(ctx context.Context, cursor string, limit int) (*Page[model.User], error)
	All(ctx context.Context) ([]model.User, error)
	EnsureSeed(ctx context.Context) (int, error)
	WithStore(tx *Store) UserRepository
}

// NormalizeEmail 邮箱统一小写去空格，作为索引键
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ==================== 实现 ====================

type userRepository struct {
	entity *Entity[model.User]
	emails *Index
}

// NewUserRepository 创建用户仓库
func NewUserRepository(store *Store) UserRepository {
	return &userRepository{
		entity: NewEntity(store, userDescriptor(SeedUsers())),
		emails: NewUniqueIndex(store, userEmailIndex),
	}
}

func userDescriptor(seed []model.User) Descriptor[model.User] {
	return Descriptor[model.User]{
		EntityName: userEntityName,
		IndexName:  userIndexName,
		InitialState: model.User{
			Role:   model.UserRoleArtisan,
			Status: model.UserStatusPending,
		},
		KeyOf: func(u model.User) string { return u.ID },
		Seed:  seed,
		AfterCreate: func(ctx context.Context, tx *Store, u model.User) error {
			email := NormalizeEmail(u.Email)
			if email == "" {
				return fmt.Errorf("%w: user email is empty", ErrValidation)
			}
			if err := NewUniqueIndex(tx, userEmailIndex).Add(ctx, email, u.ID); err != nil {
				if errors.Is(err, ErrConflict) {
					return fmt.Errorf("%w: email %q", ErrConflict, email)
				}
				return err
			}
			return nil
		},
		AfterDelete: func(ctx context.Context, tx *Store, u model.User) error {
			_, err := NewUniqueIndex(tx, userEmailIndex).Remove(ctx, NormalizeEmail(u.Email), u.ID)
			return err
		},
	}
}

func (r *userRepository) WithStore(tx *Store) UserRepository {
	return &userRepository{
		entity: r.entity.WithStore(tx),
		emails: r.emails.WithStore(tx),
	}
}

// Create 创建用户（记录 + 列表索引 + 邮箱索引 同一事务）
func (r *userRepository) Create(ctx context.Context, user *model.User) (*model.User, error) {
	created, err := r.entity.Create(ctx, *user)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// FindByID 根据 ID 获取用户
func (r *userRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	user, err := r.entity.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByEmail 根据邮箱获取用户（大小写不敏感）
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	id, found, err := r.emails.Resolve(ctx, NormalizeEmail(email))
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrNotFound
	}
	return r.FindByID(ctx, id)
}

// ExistsByEmail 检查邮箱是否已注册
func (r *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, found, err := r.emails.Resolve(ctx, NormalizeEmail(email))
	return found, err
}

// Patch 部分更新；邮箱是索引键，不允许在这里修改
func (r *userRepository) Patch(ctx context.Context, id string, fields map[string]interface{}) (*model.User, error) {
	if _, ok := fields[userEmailPatchNG]; ok {
		return nil, fmt.Errorf("%w: email cannot be patched", ErrValidation)
	}
	user, err := r.entity.Patch(ctx, id, fields)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Delete 删除用户及其邮箱索引
func (r *userRepository) Delete(ctx context.Context, id string) (bool, error) {
	return r.entity.Delete(ctx, id)
}

// DeleteMany 批量删除
func (r *userRepository) DeleteMany(ctx context.Context, ids []string) (int, error) {
	return r.entity.DeleteMany(ctx, ids)
}

// List 分页列表
func (r *userRepository) List(ctx context.Context, cursor string, limit int) (*Page[model.User], error) {
	return r.entity.List(ctx, cursor, limit)
}

// All 全部用户
func (r *userRepository) All(ctx context.Context) ([]model.User, error) {
	return r.entity.All(ctx)
}

// EnsureSeed 写入种子用户
func (r *userRepository) EnsureSeed(ctx context.Context) (int, error) {
	return r.entity.EnsureSeed(ctx)
}
