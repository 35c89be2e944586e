package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"batikin/internal/model"
)

// 测试用实体
type widget struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Size  int    `json:"size"`
}

func setupStoreTestDB(t *testing.T) *Store {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("连接测试数据库失败: %v", err)
	}
	// :memory: 每个连接是独立的库
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(append(Models(), &model.ClassificationLog{})...); err != nil {
		t.Fatalf("数据库迁移失败: %v", err)
	}
	return NewStore(db)
}

func newWidgetEntity(store *Store, seed ...widget) *Entity[widget] {
	return NewEntity(store, Descriptor[widget]{
		EntityName:   "widget",
		InitialState: widget{Color: "plain"},
		Seed:         seed,
	})
}

func TestEntity_CreateAndGet(t *testing.T) {
	store := setupStoreTestDB(t)
	ctx := context.Background()
	widgets := newWidgetEntity(store)

	created, err := widgets.Create(ctx, widget{ID: "w1", Name: "Kawung", Color: "brown", Size: 2})
	require.NoError(t, err)
	assert.Equal(t, "w1", created.ID)

	got, err := widgets.Get(ctx, "w1")
	require.NoError(t, err)
	assert.Equal(t, created, got)

	ok, err := widgets.Exists(ctx, "w1")
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = widgets.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEntity_CreateIsStrict(t *testing.T) {
	store := setupStoreTestDB(t)
	ctx := context.Background()
	widgets := newWidgetEntity(store)

	_, err := widgets.Create(ctx, widget{ID: "w1", Name: "first"})
	require.NoError(t, err)

	_, err = widgets.Create(ctx, widget{ID: "w1", Name: "second"})
	assert.ErrorIs(t, err, ErrConflict)

	got, err := widgets.Get(ctx, "w1")
	require.NoError(t, err)
	assert.Equal(t, "first", got.Name)

	count, err := widgets.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestEntity_CreateEmptyKey(t *testing.T) {
	store := setupStoreTestDB(t)
	widgets := newWidgetEntity(store)

	_, err := widgets.Create(context.Background(), widget{Name: "no id"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestEntity_Patch(t *testing.T) {
	store := setupStoreTestDB(t)
	ctx := context.Background()
	widgets := newWidgetEntity(store)

	_, err := widgets.Create(ctx, widget{ID: "w1", Name: "Parang", Color: "blue", Size: 1})
	require.NoError(t, err)

	patched, err := widgets.Patch(ctx, "w1", map[string]any{"size": 5})
	require.NoError(t, err)
	assert.Equal(t, widget{ID: "w1", Name: "Parang", Color: "blue", Size: 5}, patched)

	// 顺序 patch 累积生效
	patched, err = widgets.Patch(ctx, "w1", map[string]any{"name": "Parang Rusak"})
	require.NoError(t, err)
	assert.Equal(t, 5, patched.Size)
	assert.Equal(t, "Parang Rusak", patched.Name)

	got, err := widgets.Get(ctx, "w1")
	require.NoError(t, err)
	assert.Equal(t, patched, got)

	_, err = widgets.Patch(ctx, "w1", map[string]any{"id": "w2"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = widgets.Patch(ctx, "missing", map[string]any{"size": 1})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEntity_PatchFillsInitialState(t *testing.T) {
	store := setupStoreTestDB(t)
	ctx := context.Background()
	widgets := newWidgetEntity(store)

	// 直接写入缺少 color 的旧记录
	require.NoError(t, store.conn(ctx).Create(&model.EntityRecord{
		Namespace: "widget", RecordKey: "legacy", Value: []byte(`{"id":"legacy","name":"old"}`),
	}).Error)

	got, err := widgets.Get(ctx, "legacy")
	require.NoError(t, err)
	assert.Equal(t, "plain", got.Color)
}

func TestEntity_Save(t *testing.T) {
	store := setupStoreTestDB(t)
	ctx := context.Background()
	widgets := newWidgetEntity(store)

	_, err := widgets.Save(ctx, widget{ID: "w1"})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = widgets.Create(ctx, widget{ID: "w1", Name: "a", Size: 3})
	require.NoError(t, err)
	_, err = widgets.Save(ctx, widget{ID: "w1", Name: "b"})
	require.NoError(t, err)

	got, err := widgets.Get(ctx, "w1")
	require.NoError(t, err)
	assert.Equal(t, widget{ID: "w1", Name: "b"}, got)
}

func TestEntity_Delete(t *testing.T) {
	store := setupStoreTestDB(t)
	ctx := context.Background()
	widgets := newWidgetEntity(store)

	for i := 1; i <= 4; i++ {
		_, err := widgets.Create(ctx, widget{ID: fmt.Sprintf("w%d", i)})
		require.NoError(t, err)
	}

	ok, err := widgets.Delete(ctx, "w1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = widgets.Delete(ctx, "w1")
	require.NoError(t, err)
	assert.False(t, ok)

	n, err := widgets.DeleteMany(ctx, []string{"w2", "w3", "nope"})
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	page, err := widgets.List(ctx, "", 0)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "w4", page.Items[0].ID)
}

func TestEntity_ListPagination(t *testing.T) {
	store := setupStoreTestDB(t)
	ctx := context.Background()
	widgets := newWidgetEntity(store)

	var want []string
	for i := 0; i < 7; i++ {
		id := fmt.Sprintf("w%02d", 7-i) // 插入顺序与字典序相反
		want = append(want, id)
		_, err := widgets.Create(ctx, widget{ID: id})
		require.NoError(t, err)
	}

	for _, limit := range []int{1, 2, 3, 7, 10} {
		var (
			got    []string
			cursor string
			pages  int
		)
		for {
			page, err := widgets.List(ctx, cursor, limit)
			require.NoError(t, err)
			assert.LessOrEqual(t, len(page.Items), limit)
			for _, w := range page.Items {
				got = append(got, w.ID)
			}
			pages++
			if page.Next == nil {
				break
			}
			cursor = *page.Next
		}
		assert.Equal(t, want, got, "limit=%d", limit)
		assert.Equal(t, (7+limit-1)/limit, pages, "limit=%d", limit)
	}

	all, err := widgets.List(ctx, "", 0)
	require.NoError(t, err)
	assert.Len(t, all.Items, 7)
	assert.Nil(t, all.Next)
}

func TestEntity_ListBadCursor(t *testing.T) {
	store := setupStoreTestDB(t)
	widgets := newWidgetEntity(store)

	_, err := widgets.List(context.Background(), "not-a-cursor", 5)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestEntity_ListEmpty(t *testing.T) {
	store := setupStoreTestDB(t)
	widgets := newWidgetEntity(store)

	page, err := widgets.List(context.Background(), "", 5)
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Nil(t, page.Next)
}

func TestEntity_EnsureSeed(t *testing.T) {
	store := setupStoreTestDB(t)
	ctx := context.Background()
	widgets := newWidgetEntity(store, widget{ID: "s1"}, widget{ID: "s2"})

	n, err := widgets.EnsureSeed(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = widgets.EnsureSeed(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	all, err := widgets.All(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestEntity_EnsureSeedSkipsNonEmpty(t *testing.T) {
	store := setupStoreTestDB(t)
	ctx := context.Background()
	widgets := newWidgetEntity(store, widget{ID: "s1"})

	_, err := widgets.Create(ctx, widget{ID: "user-made"})
	require.NoError(t, err)

	n, err := widgets.EnsureSeed(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	ok, err := widgets.Exists(ctx, "s1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStore_TransactionRollback(t *testing.T) {
	store := setupStoreTestDB(t)
	ctx := context.Background()
	widgets := newWidgetEntity(store)
	boom := errors.New("boom")

	err := store.Transaction(ctx, func(tx *Store) error {
		if _, err := widgets.WithStore(tx).Create(ctx, widget{ID: "w1"}); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	ok, err := widgets.Exists(ctx, "w1")
	require.NoError(t, err)
	assert.False(t, ok)

	count, err := widgets.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestEntity_AfterCreateFailureRollsBack(t *testing.T) {
	store := setupStoreTestDB(t)
	ctx := context.Background()
	hookErr := errors.New("hook failed")
	widgets := NewEntity(store, Descriptor[widget]{
		EntityName: "widget",
		AfterCreate: func(ctx context.Context, tx *Store, w widget) error {
			return hookErr
		},
	})

	_, err := widgets.Create(ctx, widget{ID: "w1"})
	assert.ErrorIs(t, err, hookErr)

	ok, err := widgets.Exists(ctx, "w1")
	require.NoError(t, err)
	assert.False(t, ok)
}
