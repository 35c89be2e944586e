package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"batikin/internal/model"
)

func TestUserRepo_CreateAndFindByEmail(t *testing.T) {
	store := setupStoreTestDB(t)
	repo := NewUserRepository(store)
	ctx := context.Background()

	_, err := repo.Create(ctx, &model.User{ID: "u1", Name: "Sari", Email: "Sari@Example.com", Role: model.UserRoleArtisan, Status: model.UserStatusPending})
	require.NoError(t, err)

	found, err := repo.FindByEmail(ctx, "  sari@example.COM ")
	require.NoError(t, err)
	assert.Equal(t, "u1", found.ID)
	assert.Equal(t, "Sari@Example.com", found.Email)

	ok, err := repo.ExistsByEmail(ctx, "SARI@example.com")
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = repo.FindByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserRepo_DuplicateEmailIsAtomic(t *testing.T) {
	store := setupStoreTestDB(t)
	repo := NewUserRepository(store)
	ctx := context.Background()

	_, err := repo.Create(ctx, &model.User{ID: "u1", Name: "A", Email: "same@example.com", Role: model.UserRoleArtisan})
	require.NoError(t, err)

	_, err = repo.Create(ctx, &model.User{ID: "u2", Name: "B", Email: "SAME@example.com", Role: model.UserRoleArtisan})
	assert.ErrorIs(t, err, ErrConflict)

	// 失败的创建不能留下记录或列表条目
	_, err = repo.FindByID(ctx, "u2")
	assert.ErrorIs(t, err, ErrNotFound)
	all, err := repo.All(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestUserRepo_EmptyEmailRejected(t *testing.T) {
	store := setupStoreTestDB(t)
	repo := NewUserRepository(store)

	_, err := repo.Create(context.Background(), &model.User{ID: "u1", Name: "A"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUserRepo_DeleteDropsEmailIndex(t *testing.T) {
	store := setupStoreTestDB(t)
	repo := NewUserRepository(store)
	ctx := context.Background()

	_, err := repo.Create(ctx, &model.User{ID: "u1", Name: "A", Email: "a@example.com"})
	require.NoError(t, err)

	ok, err := repo.Delete(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = repo.FindByEmail(ctx, "a@example.com")
	assert.ErrorIs(t, err, ErrNotFound)

	// 邮箱可被重新注册
	_, err = repo.Create(ctx, &model.User{ID: "u9", Name: "A again", Email: "a@example.com"})
	require.NoError(t, err)
}

func TestUserRepo_DeleteMany(t *testing.T) {
	store := setupStoreTestDB(t)
	repo := NewUserRepository(store)
	ctx := context.Background()

	for _, id := range []string{"u1", "u2", "u3"} {
		_, err := repo.Create(ctx, &model.User{ID: id, Name: id, Email: id + "@example.com"})
		require.NoError(t, err)
	}

	n, err := repo.DeleteMany(ctx, []string{"u1", "u3", "ghost"})
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	page, err := repo.List(ctx, "", 10)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "u2", page.Items[0].ID)

	_, err = repo.FindByEmail(ctx, "u3@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserRepo_Patch(t *testing.T) {
	store := setupStoreTestDB(t)
	repo := NewUserRepository(store)
	ctx := context.Background()

	_, err := repo.Create(ctx, &model.User{ID: "u1", Name: "A", Email: "a@example.com", Role: model.UserRoleArtisan, Status: model.UserStatusPending})
	require.NoError(t, err)

	updated, err := repo.Patch(ctx, "u1", map[string]interface{}{"status": model.UserStatusVerified})
	require.NoError(t, err)
	assert.Equal(t, model.UserStatusVerified, updated.Status)
	assert.Equal(t, "A", updated.Name)

	_, err = repo.Patch(ctx, "u1", map[string]interface{}{"email": "b@example.com"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUserRepo_InitialStateDefaults(t *testing.T) {
	store := setupStoreTestDB(t)
	ctx := context.Background()

	require.NoError(t, store.conn(ctx).Create(&model.EntityRecord{
		Namespace: "user", RecordKey: "old", Value: []byte(`{"id":"old","name":"Old","email":"old@example.com"}`),
	}).Error)

	u, err := NewUserRepository(store).FindByID(ctx, "old")
	require.NoError(t, err)
	assert.Equal(t, model.UserRoleArtisan, u.Role)
	assert.Equal(t, model.UserStatusPending, u.Status)
}

func TestUserRepo_EnsureSeed(t *testing.T) {
	store := setupStoreTestDB(t)
	repo := NewUserRepository(store)
	ctx := context.Background()

	n, err := repo.EnsureSeed(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(SeedUsers()), n)

	admin, err := repo.FindByEmail(ctx, "ADMIN@warisan.digital")
	require.NoError(t, err)
	assert.True(t, admin.IsAdmin())

	n, err = repo.EnsureSeed(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestUserRepo_WithStoreJoinsTransaction(t *testing.T) {
	store := setupStoreTestDB(t)
	repo := NewUserRepository(store)
	ctx := context.Background()

	err := store.Transaction(ctx, func(tx *Store) error {
		if _, err := repo.WithStore(tx).Create(ctx, &model.User{ID: "u1", Name: "A", Email: "a@example.com"}); err != nil {
			return err
		}
		// 第二个创建失败，整个事务回滚
		_, err := repo.WithStore(tx).Create(ctx, &model.User{ID: "u1", Name: "B", Email: "b@example.com"})
		return err
	})
	assert.ErrorIs(t, err, ErrConflict)

	ok, err := repo.ExistsByEmail(ctx, "a@example.com")
	require.NoError(t, err)
	assert.False(t, ok)
}
