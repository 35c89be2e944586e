package repository

import (
	"context"
	"fmt"
	"strings"

	"batikin/internal/model"
)

// ==================== 索引底层操作 ====================

func (s *Store) appendIndex(ctx context.Context, bucket, entryKey string) error {
	return s.insertIndex(ctx, model.IndexEntry{Bucket: bucket, EntryKey: entryKey})
}

// insertIndex 先查重给出明确错误；并发写入由唯一约束拦截
func (s *Store) insertIndex(ctx context.Context, entry model.IndexEntry) error {
	q := s.conn(ctx).Model(&model.IndexEntry{}).Where("bucket = ?", entry.Bucket)
	if entry.UniqueKey != nil {
		q = q.Where("entry_key = ? OR unique_key = ?", entry.EntryKey, *entry.UniqueKey)
	} else {
		q = q.Where("entry_key = ?", entry.EntryKey)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return translateError(err)
	}
	if count > 0 {
		return fmt.Errorf("%w: index %s entry %q", ErrConflict, entry.Bucket, entry.EntryKey)
	}
	return translateError(s.conn(ctx).Create(&entry).Error)
}

func (s *Store) removeIndex(ctx context.Context, bucket string, entryKeys ...string) (int64, error) {
	if len(entryKeys) == 0 {
		return 0, nil
	}
	res := s.conn(ctx).
		Where("bucket = ? AND entry_key IN ?", bucket, entryKeys).
		Delete(&model.IndexEntry{})
	return res.RowsAffected, translateError(res.Error)
}

// pageIndex 按 ID 升序读取 bucket 内 afterID 之后的条目
func (s *Store) pageIndex(ctx context.Context, bucket string, afterID int64, prefix string, limit int) ([]model.IndexEntry, error) {
	q := s.conn(ctx).Where("bucket = ?", bucket)
	if afterID > 0 {
		q = q.Where("id > ?", afterID)
	}
	if prefix != "" {
		q = q.Where("entry_key LIKE ? ESCAPE '\\'", escapeLike(prefix)+"%")
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	var entries []model.IndexEntry
	if err := q.Order("id ASC").Find(&entries).Error; err != nil {
		return nil, translateError(err)
	}
	return entries, nil
}

func (s *Store) countIndex(ctx context.Context, bucket string) (int64, error) {
	var count int64
	err := s.conn(ctx).Model(&model.IndexEntry{}).Where("bucket = ?", bucket).Count(&count).Error
	return count, translateError(err)
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// ==================== Index 二级索引 ====================

const indexSeparator = ":"

// IndexPair 二级索引条目
type IndexPair struct {
	LookupKey string `json:"lookupKey"`
	TargetKey string `json:"targetKey"`
}

// Index 以 "lookupKey:targetKey" 形式把非主键属性映射回主键
// 只追加；调用方需在实体 Create 的同一事务内调用 Add
type Index struct {
	store  *Store
	bucket string
	unique bool
}

// NewIndex 创建二级索引，同一 lookupKey 可对应多个主键
func NewIndex(store *Store, bucket string) *Index {
	return &Index{store: store, bucket: bucket}
}

// NewUniqueIndex 每个 lookupKey 只能对应一个主键
// 第二个写入者（包括并发事务）得到 ErrConflict
func NewUniqueIndex(store *Store, bucket string) *Index {
	return &Index{store: store, bucket: bucket, unique: true}
}

// WithStore 绑定到事务
func (i *Index) WithStore(tx *Store) *Index {
	return &Index{store: tx, bucket: i.bucket, unique: i.unique}
}

// Bucket 索引桶名
func (i *Index) Bucket() string {
	return i.bucket
}

// Add 追加一条映射，同一对重复写入返回 ErrConflict
// 唯一索引下 lookupKey 已存在也返回 ErrConflict
func (i *Index) Add(ctx context.Context, lookupKey, targetKey string) error {
	if lookupKey == "" || targetKey == "" {
		return fmt.Errorf("%w: index %s needs both keys", ErrValidation, i.bucket)
	}
	if strings.Contains(targetKey, indexSeparator) {
		return fmt.Errorf("%w: index target %q contains %q", ErrValidation, targetKey, indexSeparator)
	}
	entry := model.IndexEntry{Bucket: i.bucket, EntryKey: lookupKey + indexSeparator + targetKey}
	if i.unique {
		entry.UniqueKey = &lookupKey
	}
	return i.store.insertIndex(ctx, entry)
}

// Page 前缀查询，按写入顺序返回
func (i *Index) Page(ctx context.Context, lookupKeyPrefix string, limit int) ([]IndexPair, error) {
	entries, err := i.store.pageIndex(ctx, i.bucket, 0, lookupKeyPrefix, limit)
	if err != nil {
		return nil, err
	}
	pairs := make([]IndexPair, 0, len(entries))
	for _, entry := range entries {
		pos := strings.LastIndex(entry.EntryKey, indexSeparator)
		if pos < 0 {
			continue
		}
		pairs = append(pairs, IndexPair{
			LookupKey: entry.EntryKey[:pos],
			TargetKey: entry.EntryKey[pos+1:],
		})
	}
	return pairs, nil
}

// Resolve 精确查找 lookupKey 对应的第一个主键
func (i *Index) Resolve(ctx context.Context, lookupKey string) (string, bool, error) {
	if lookupKey == "" {
		return "", false, nil
	}
	pairs, err := i.Page(ctx, lookupKey+indexSeparator, 0)
	if err != nil {
		return "", false, err
	}
	for _, p := range pairs {
		if p.LookupKey == lookupKey {
			return p.TargetKey, true, nil
		}
	}
	return "", false, nil
}

// Remove 删除一条映射
func (i *Index) Remove(ctx context.Context, lookupKey, targetKey string) (bool, error) {
	n, err := i.store.removeIndex(ctx, i.bucket, lookupKey+indexSeparator+targetKey)
	return n > 0, err
}
