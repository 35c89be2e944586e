package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"batikin/internal/model"
	"batikin/internal/repository"
)

// ==================== 测试辅助 ====================

type testEnv struct {
	db        *gorm.DB
	store     *repository.Store
	users     repository.UserRepository
	pengrajin repository.PengrajinRepository
	batiks    repository.BatikRepository
	logs      repository.ClassificationLogRepository
	identity  *IdentityService
}

func setupServiceTestDB(t *testing.T) *testEnv {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("连接测试数据库失败: %v", err)
	}
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(append(repository.Models(), &model.ClassificationLog{})...); err != nil {
		t.Fatalf("数据库迁移失败: %v", err)
	}

	store := repository.NewStore(db)
	users := repository.NewUserRepository(store)
	return &testEnv{
		db:        db,
		store:     store,
		users:     users,
		pengrajin: repository.NewPengrajinRepository(store),
		batiks:    repository.NewBatikRepository(store),
		logs:      repository.NewClassificationLogRepository(db),
		identity:  NewIdentityService(users),
	}
}

// seed 写入种子用户、资料与作品
func (e *testEnv) seed(t *testing.T) {
	t.Helper()
	ctx := context.Background()
	_, err := e.users.EnsureSeed(ctx)
	require.NoError(t, err)
	_, err = e.pengrajin.EnsureSeed(ctx)
	require.NoError(t, err)
	_, err = e.batiks.EnsureSeed(ctx)
	require.NoError(t, err)
}

// mockPublisher 事件发布 mock
type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) Publish(ctx context.Context, evt Event) error {
	args := m.Called(ctx, evt)
	return args.Error(0)
}

func (m *mockPublisher) Close() error {
	return m.Called().Error(0)
}

// eventOfType 匹配指定类型的事件
func eventOfType(eventType string) interface{} {
	return mock.MatchedBy(func(evt Event) bool { return evt.Type == eventType })
}

// fakePNG 以 PNG 文件头开头、总长 n 字节
func fakePNG(n int) []byte {
	header := []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}
	if n < len(header) {
		n = len(header)
	}
	data := make([]byte, n)
	copy(data, header)
	return data
}

var nopLog = zap.NewNop()
