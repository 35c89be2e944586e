package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"batikin/internal/model"
)

// ==================== 错误定义 ====================

var (
	ErrNotFound   = errors.New("record not found")
	ErrConflict   = errors.New("record already exists")
	ErrValidation = errors.New("invalid record")
)

// translateError 把 gorm 错误转成仓储层错误，避免泄漏存储细节
func translateError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrConflict), errors.Is(err, ErrValidation):
		return err
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrConflict
	default:
		return fmt.Errorf("storage: %w", err)
	}
}

// ==================== Store 实体存储 ====================

// Store 通用 KV 实体存储，所有实体共用 entity_records / index_entries 两张表
type Store struct {
	db *gorm.DB
}

// NewStore 创建实体存储
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Models 需要迁移的底层表
func Models() []interface{} {
	return []interface{}{&model.EntityRecord{}, &model.IndexEntry{}}
}

// Migrate 建表
func (s *Store) Migrate(ctx context.Context) error {
	return s.db.WithContext(ctx).AutoMigrate(Models()...)
}

// Transaction 在事务中执行 fn，fn 内只能使用 tx
// 已在事务中时 gorm 会使用 savepoint 嵌套
func (s *Store) Transaction(ctx context.Context, fn func(tx *Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(txDB *gorm.DB) error {
		return fn(&Store{db: txDB})
	})
}

func (s *Store) conn(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx)
}

// lockClause 仅 postgres 支持行锁，sqlite 本身按库串行写
func (s *Store) lockClause() []clause.Expression {
	if s.db.Dialector != nil && s.db.Dialector.Name() == "postgres" {
		return []clause.Expression{clause.Locking{Strength: "UPDATE"}}
	}
	return nil
}

func (s *Store) getRecord(ctx context.Context, namespace, key string, forUpdate bool) (*model.EntityRecord, error) {
	var rec model.EntityRecord
	q := s.conn(ctx).Where("namespace = ? AND record_key = ?", namespace, key)
	if forUpdate {
		q = q.Clauses(s.lockClause()...)
	}
	if err := q.Take(&rec).Error; err != nil {
		return nil, translateError(err)
	}
	return &rec, nil
}

func (s *Store) recordExists(ctx context.Context, namespace, key string) (bool, error) {
	var count int64
	err := s.conn(ctx).Model(&model.EntityRecord{}).
		Where("namespace = ? AND record_key = ?", namespace, key).
		Count(&count).Error
	return count > 0, translateError(err)
}

// ==================== 描述符 ====================

// Descriptor 描述一种实体：命名空间、列表索引、初始状态、主键推导与种子数据
type Descriptor[T any] struct {
	EntityName   string
	IndexName    string
	InitialState T
	// KeyOf 主键推导，为空时取记录的 id 字段
	KeyOf func(T) string
	Seed  []T

	// 钩子与主写入处于同一事务
	AfterCreate func(ctx context.Context, tx *Store, state T) error
	AfterDelete func(ctx context.Context, tx *Store, state T) error
}

// Page 分页结果，Next 为空表示已遍历完
type Page[T any] struct {
	Items []T     `json:"items"`
	Next  *string `json:"next"`
}

// ==================== Entity 泛型实体 ====================

// Entity 某一类实体的增删改查
type Entity[T any] struct {
	store *Store
	desc  Descriptor[T]
}

// NewEntity 创建实体访问器
func NewEntity[T any](store *Store, desc Descriptor[T]) *Entity[T] {
	if desc.IndexName == "" {
		desc.IndexName = desc.EntityName + "s"
	}
	return &Entity[T]{store: store, desc: desc}
}

// WithStore 绑定到另一个 Store（通常是事务）
func (e *Entity[T]) WithStore(tx *Store) *Entity[T] {
	return &Entity[T]{store: tx, desc: e.desc}
}

// Name 实体命名空间
func (e *Entity[T]) Name() string {
	return e.desc.EntityName
}

// KeyOf 计算记录主键
func (e *Entity[T]) KeyOf(state T) string {
	if e.desc.KeyOf != nil {
		return e.desc.KeyOf(state)
	}
	return idField(state)
}

// idField 默认主键：记录序列化后的 id 字段
func idField(state any) string {
	raw, err := json.Marshal(state)
	if err != nil {
		return ""
	}
	var probe struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return ""
	}
	return probe.ID
}

func (e *Entity[T]) decode(raw []byte) (T, error) {
	state := e.desc.InitialState
	if err := json.Unmarshal(raw, &state); err != nil {
		var zero T
		return zero, fmt.Errorf("storage: decode %s: %w", e.desc.EntityName, err)
	}
	return state, nil
}

// Create 新建记录；主键已存在时返回 ErrConflict（不做 upsert）
func (e *Entity[T]) Create(ctx context.Context, state T) (T, error) {
	var zero T
	key := e.KeyOf(state)
	if key == "" {
		return zero, fmt.Errorf("%w: %s key is empty", ErrValidation, e.desc.EntityName)
	}
	raw, err := json.Marshal(state)
	if err != nil {
		return zero, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	err = e.store.Transaction(ctx, func(tx *Store) error {
		exists, err := tx.recordExists(ctx, e.desc.EntityName, key)
		if err != nil {
			return err
		}
		if exists {
			return fmt.Errorf("%w: %s %q", ErrConflict, e.desc.EntityName, key)
		}

		rec := model.EntityRecord{
			Namespace: e.desc.EntityName,
			RecordKey: key,
			Value:     datatypes.JSON(raw),
		}
		if err := tx.conn(ctx).Create(&rec).Error; err != nil {
			return translateError(err)
		}
		if err := tx.appendIndex(ctx, e.desc.IndexName, key); err != nil {
			return err
		}
		if e.desc.AfterCreate != nil {
			return e.desc.AfterCreate(ctx, tx, state)
		}
		return nil
	})
	if err != nil {
		return zero, err
	}
	return state, nil
}

// Get 按主键读取
func (e *Entity[T]) Get(ctx context.Context, key string) (T, error) {
	var zero T
	if key == "" {
		return zero, ErrNotFound
	}
	rec, err := e.store.getRecord(ctx, e.desc.EntityName, key, false)
	if err != nil {
		return zero, err
	}
	return e.decode(rec.Value)
}

// Exists 主键是否存在
func (e *Entity[T]) Exists(ctx context.Context, key string) (bool, error) {
	if key == "" {
		return false, nil
	}
	return e.store.recordExists(ctx, e.desc.EntityName, key)
}

// Patch 浅合并顶层字段；不允许通过 patch 改变主键
func (e *Entity[T]) Patch(ctx context.Context, key string, partial map[string]any) (T, error) {
	var out T
	err := e.store.Transaction(ctx, func(tx *Store) error {
		rec, err := tx.getRecord(ctx, e.desc.EntityName, key, true)
		if err != nil {
			return err
		}

		merged := map[string]json.RawMessage{}
		if err := json.Unmarshal(rec.Value, &merged); err != nil {
			return fmt.Errorf("storage: decode %s: %w", e.desc.EntityName, err)
		}
		for field, value := range partial {
			b, err := json.Marshal(value)
			if err != nil {
				return fmt.Errorf("%w: field %s: %v", ErrValidation, field, err)
			}
			merged[field] = b
		}

		raw, err := json.Marshal(merged)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrValidation, err)
		}
		state, err := e.decode(raw)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrValidation, err)
		}
		if e.KeyOf(state) != key {
			return fmt.Errorf("%w: patch would change %s key", ErrValidation, e.desc.EntityName)
		}

		if err := tx.writeValue(ctx, e.desc.EntityName, key, state); err != nil {
			return err
		}
		out = state
		return nil
	})
	return out, err
}

// Save 整体替换已存在的记录
func (e *Entity[T]) Save(ctx context.Context, state T) (T, error) {
	key := e.KeyOf(state)
	err := e.store.Transaction(ctx, func(tx *Store) error {
		if _, err := tx.getRecord(ctx, e.desc.EntityName, key, true); err != nil {
			return err
		}
		return tx.writeValue(ctx, e.desc.EntityName, key, state)
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return state, nil
}

func (s *Store) writeValue(ctx context.Context, namespace, key string, state any) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	err = s.conn(ctx).Model(&model.EntityRecord{}).
		Where("namespace = ? AND record_key = ?", namespace, key).
		Updates(map[string]interface{}{
			"value":      datatypes.JSON(raw),
			"updated_at": time.Now(),
		}).Error
	return translateError(err)
}

// Delete 删除记录及其列表索引，返回是否真的删除了
func (e *Entity[T]) Delete(ctx context.Context, key string) (bool, error) {
	deleted := false
	err := e.store.Transaction(ctx, func(tx *Store) error {
		rec, err := tx.getRecord(ctx, e.desc.EntityName, key, true)
		if errors.Is(err, ErrNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		state, err := e.decode(rec.Value)
		if err != nil {
			return err
		}

		if err := tx.conn(ctx).
			Where("namespace = ? AND record_key = ?", e.desc.EntityName, key).
			Delete(&model.EntityRecord{}).Error; err != nil {
			return translateError(err)
		}
		if _, err := tx.removeIndex(ctx, e.desc.IndexName, key); err != nil {
			return err
		}
		if e.desc.AfterDelete != nil {
			if err := e.desc.AfterDelete(ctx, tx, state); err != nil {
				return err
			}
		}
		deleted = true
		return nil
	})
	return deleted, err
}

// DeleteMany 批量删除，返回实际删除数量
func (e *Entity[T]) DeleteMany(ctx context.Context, keys []string) (int, error) {
	count := 0
	err := e.store.Transaction(ctx, func(tx *Store) error {
		bound := e.WithStore(tx)
		for _, key := range keys {
			ok, err := bound.Delete(ctx, key)
			if err != nil {
				return err
			}
			if ok {
				count++
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

// List 按插入顺序分页
// cursor 为上一页返回的 Next；limit <= 0 时返回游标之后的全部记录
func (e *Entity[T]) List(ctx context.Context, cursor string, limit int) (*Page[T], error) {
	var after int64
	if cursor != "" {
		v, err := strconv.ParseInt(cursor, 10, 64)
		if err != nil || v < 0 {
			return nil, fmt.Errorf("%w: bad cursor %q", ErrValidation, cursor)
		}
		after = v
	}

	fetch := 0
	if limit > 0 {
		fetch = limit + 1
	}
	entries, err := e.store.pageIndex(ctx, e.desc.IndexName, after, "", fetch)
	if err != nil {
		return nil, err
	}
	hasMore := limit > 0 && len(entries) > limit
	if hasMore {
		entries = entries[:limit]
	}

	page := &Page[T]{Items: make([]T, 0, len(entries))}
	if len(entries) == 0 {
		return page, nil
	}

	keys := make([]string, len(entries))
	for i, entry := range entries {
		keys[i] = entry.EntryKey
	}
	var recs []model.EntityRecord
	if err := e.store.conn(ctx).
		Where("namespace = ? AND record_key IN ?", e.desc.EntityName, keys).
		Find(&recs).Error; err != nil {
		return nil, translateError(err)
	}
	byKey := make(map[string][]byte, len(recs))
	for _, rec := range recs {
		byKey[rec.RecordKey] = rec.Value
	}

	for _, key := range keys {
		raw, ok := byKey[key]
		if !ok {
			// 索引残留，跳过
			continue
		}
		state, err := e.decode(raw)
		if err != nil {
			return nil, err
		}
		page.Items = append(page.Items, state)
	}

	if hasMore {
		next := strconv.FormatInt(entries[len(entries)-1].ID, 10)
		page.Next = &next
	}
	return page, nil
}

// All 翻页直到索引耗尽
func (e *Entity[T]) All(ctx context.Context) ([]T, error) {
	const batch = 200
	var (
		items  []T
		cursor string
	)
	for {
		page, err := e.List(ctx, cursor, batch)
		if err != nil {
			return nil, err
		}
		items = append(items, page.Items...)
		if page.Next == nil {
			return items, nil
		}
		cursor = *page.Next
	}
}

// Count 列表索引中的条目数
func (e *Entity[T]) Count(ctx context.Context) (int64, error) {
	return e.store.countIndex(ctx, e.desc.IndexName)
}

// EnsureSeed 索引为空时写入种子数据，非空时不做任何事
func (e *Entity[T]) EnsureSeed(ctx context.Context) (int, error) {
	if len(e.desc.Seed) == 0 {
		return 0, nil
	}
	seeded := 0
	err := e.store.Transaction(ctx, func(tx *Store) error {
		count, err := tx.countIndex(ctx, e.desc.IndexName)
		if err != nil {
			return err
		}
		if count > 0 {
			return nil
		}
		bound := e.WithStore(tx)
		for _, item := range e.desc.Seed {
			if _, err := bound.Create(ctx, item); err != nil {
				return fmt.Errorf("seed %s: %w", e.desc.EntityName, err)
			}
			seeded++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return seeded, nil
}
