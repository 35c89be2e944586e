package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"batikin/internal/api/dto"
	"batikin/internal/model"
	"batikin/internal/repository"
)

func newAuthService(env *testEnv, pub EventPublisher) *AuthService {
	return NewAuthService(env.store, env.users, env.pengrajin, pub, nopLog)
}

func watiRegistration() *dto.RegisterRequest {
	return &dto.RegisterRequest{
		Name:        "Ibu Wati",
		Email:       "wati@batik.com",
		StoreName:   "Batik Wati Solo",
		Address:     "Jl. Slamet Riyadi 1, Solo",
		PhoneNumber: "081234567890",
	}
}

func TestAuthService_Register(t *testing.T) {
	env := setupServiceTestDB(t)
	pub := new(mockPublisher)
	pub.On("Publish", mock.Anything, eventOfType(EventArtisanRegistered)).Return(nil).Once()
	svc := newAuthService(env, pub)
	ctx := context.Background()

	user, err := svc.Register(ctx, watiRegistration())
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, model.UserRoleArtisan, user.Role)
	assert.Equal(t, model.UserStatusPending, user.Status)

	details, err := env.pengrajin.FindByUserID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, details.ID)
	assert.Equal(t, "Batik Wati Solo", details.StoreName)

	pub.AssertExpectations(t)
}

func TestAuthService_RegisterDuplicateEmail(t *testing.T) {
	env := setupServiceTestDB(t)
	svc := newAuthService(env, nil)
	ctx := context.Background()

	_, err := svc.Register(ctx, watiRegistration())
	require.NoError(t, err)

	again := watiRegistration()
	again.Email = "  WATI@Batik.com "
	_, err = svc.Register(ctx, again)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadRequest)
	assert.Equal(t, "email already in use", err.Error())

	all, err := env.users.All(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
	details, err := env.pengrajin.All(ctx)
	require.NoError(t, err)
	assert.Len(t, details, 1)
}

func TestAuthService_RegisterMissingFields(t *testing.T) {
	env := setupServiceTestDB(t)
	svc := newAuthService(env, nil)

	req := watiRegistration()
	req.StoreName = "   "
	req.PhoneNumber = ""
	_, err := svc.Register(context.Background(), req)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadRequest)
	assert.Equal(t, "missing required fields: phoneNumber, storeName", err.Error())

	all, err := env.users.All(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}

// failingPengrajinRepo 资料写入总是失败
type failingPengrajinRepo struct {
	repository.PengrajinRepository
}

func (r failingPengrajinRepo) WithStore(tx *repository.Store) repository.PengrajinRepository {
	return failingPengrajinRepo{r.PengrajinRepository.WithStore(tx)}
}

func (r failingPengrajinRepo) Create(context.Context, *model.PengrajinDetails) (*model.PengrajinDetails, error) {
	return nil, errors.New("disk full")
}

func TestAuthService_RegisterIsAtomic(t *testing.T) {
	env := setupServiceTestDB(t)
	ctx := context.Background()
	svc := NewAuthService(env.store, env.users, failingPengrajinRepo{env.pengrajin}, nil, nopLog)

	_, err := svc.Register(ctx, watiRegistration())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternal)

	ok, err := env.users.ExistsByEmail(ctx, "wati@batik.com")
	require.NoError(t, err)
	assert.False(t, ok, "user must not survive a failed registration")
}

func TestAuthService_Login(t *testing.T) {
	env := setupServiceTestDB(t)
	env.seed(t)
	svc := newAuthService(env, nil)
	ctx := context.Background()

	user, err := svc.Login(ctx, &dto.LoginRequest{Email: "Wati@Warisan.Digital"})
	require.NoError(t, err)
	assert.Equal(t, "a1", user.ID)

	_, err = svc.Login(ctx, &dto.LoginRequest{Email: "ghost@warisan.digital"})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Login(ctx, &dto.LoginRequest{Email: ""})
	assert.ErrorIs(t, err, ErrBadRequest)
}
