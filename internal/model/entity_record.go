package model

import (
	"time"

	"gorm.io/datatypes"
)

// ==================== 实体存储底层表 ====================

// EntityRecord 通用实体记录
// 每种实体一个 namespace，record_key 由实体自己的 KeyOf 推导
type EntityRecord struct {
	Namespace string         `gorm:"primaryKey;size:64"`
	RecordKey string         `gorm:"primaryKey;size:191"`
	Value     datatypes.JSON `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (EntityRecord) TableName() string {
	return "entity_records"
}

// IndexEntry 索引条目
// 列表索引: entry_key = 主键
// 二级索引: entry_key = "lookupKey:targetKey"
// 唯一索引额外写 unique_key = lookupKey，同一 bucket 内由数据库约束唯一
// ID 自增，兼作分页游标，保证按插入顺序遍历
type IndexEntry struct {
	ID        int64   `gorm:"primaryKey;autoIncrement"`
	Bucket    string  `gorm:"size:64;not null;uniqueIndex:idx_bucket_entry;uniqueIndex:idx_bucket_unique"`
	EntryKey  string  `gorm:"size:400;not null;uniqueIndex:idx_bucket_entry"`
	UniqueKey *string `gorm:"size:320;uniqueIndex:idx_bucket_unique"`
	CreatedAt time.Time
}

func (IndexEntry) TableName() string {
	return "index_entries"
}
