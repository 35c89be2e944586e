package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"batikin/internal/model"
)

// ==================== 仓储接口 ====================

// ClassificationLogRepository 纹样识别日志仓储接口
type ClassificationLogRepository interface {
	Create(ctx context.Context, log *model.ClassificationLog) error
	GetByID(ctx context.Context, id int64) (*model.ClassificationLog, error)

	// 统计查询
	GetUsage(ctx context.Context, startTime, endTime time.Time) (*ClassificationStats, error)
	GetDailyUsage(ctx context.Context, startDate, endDate time.Time) ([]DailyClassificationStats, error)
	GetTopMotifs(ctx context.Context, limit int) ([]MotifCount, error)
}

// ==================== 统计结构 ====================

// ClassificationStats 识别调用统计
type ClassificationStats struct {
	TotalCalls      int64   `json:"total_calls"`
	RemoteCalls     int64   `json:"remote_calls"`
	SimulationCalls int64   `json:"simulation_calls"`
	AvgConfidence   float64 `json:"avg_confidence"`
	AvgDurationMs   float64 `json:"avg_duration_ms"`
	SuccessCount    int64   `json:"success_count"`
	FailedCount     int64   `json:"failed_count"`
}

// DailyClassificationStats 每日统计
type DailyClassificationStats struct {
	Date            string `json:"date"`
	TotalCalls      int64  `json:"total_calls"`
	RemoteCalls     int64  `json:"remote_calls"`
	SimulationCalls int64  `json:"simulation_calls"`
}

// MotifCount 纹样命中次数
type MotifCount struct {
	TopMotif string `json:"motif"`
	Count    int64  `json:"count"`
}

// ==================== 仓储实现 ====================

type classificationLogRepo struct {
	db *gorm.DB
}

// NewClassificationLogRepository 创建识别日志仓储
func NewClassificationLogRepository(db *gorm.DB) ClassificationLogRepository {
	return &classificationLogRepo{db: db}
}

func (r *classificationLogRepo) Create(ctx context.Context, log *model.ClassificationLog) error {
	return translateError(r.db.WithContext(ctx).Create(log).Error)
}

func (r *classificationLogRepo) GetByID(ctx context.Context, id int64) (*model.ClassificationLog, error) {
	var log model.ClassificationLog
	if err := r.db.WithContext(ctx).First(&log, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &log, nil
}

func (r *classificationLogRepo) GetUsage(ctx context.Context, startTime, endTime time.Time) (*ClassificationStats, error) {
	var stats ClassificationStats

	query := r.db.WithContext(ctx).Model(&model.ClassificationLog{})
	if !startTime.IsZero() {
		query = query.Where("created_at >= ?", startTime)
	}
	if !endTime.IsZero() {
		query = query.Where("created_at <= ?", endTime)
	}

	err := query.Select(`
		COUNT(*) as total_calls,
		COALESCE(SUM(CASE WHEN source = 'ml-service' THEN 1 ELSE 0 END), 0) as remote_calls,
		COALESCE(SUM(CASE WHEN source = 'simulation' THEN 1 ELSE 0 END), 0) as simulation_calls,
		COALESCE(AVG(confidence), 0) as avg_confidence,
		COALESCE(AVG(duration_ms), 0) as avg_duration_ms,
		COALESCE(SUM(CASE WHEN status = 'success' THEN 1 ELSE 0 END), 0) as success_count,
		COALESCE(SUM(CASE WHEN status = 'failed' THEN 1 ELSE 0 END), 0) as failed_count
	`).Scan(&stats).Error

	return &stats, translateError(err)
}

func (r *classificationLogRepo) GetDailyUsage(ctx context.Context, startDate, endDate time.Time) ([]DailyClassificationStats, error) {
	var stats []DailyClassificationStats

	day := dayExpr(r.db)
	err := r.db.WithContext(ctx).Model(&model.ClassificationLog{}).
		Where("created_at >= ? AND created_at <= ?", startDate, endDate).
		Select(day + ` as date,
			COUNT(*) as total_calls,
			COALESCE(SUM(CASE WHEN source = 'ml-service' THEN 1 ELSE 0 END), 0) as remote_calls,
			COALESCE(SUM(CASE WHEN source = 'simulation' THEN 1 ELSE 0 END), 0) as simulation_calls
		`).
		Group(day).
		Order("date ASC").
		Scan(&stats).Error

	return stats, translateError(err)
}

// dayExpr 按天分组的表达式，各驱动都返回 YYYY-MM-DD 文本
// postgres 的 DATE() 会被 pgx 扫描成 time.Time
func dayExpr(db *gorm.DB) string {
	if db.Dialector.Name() == "postgres" {
		return "to_char(created_at, 'YYYY-MM-DD')"
	}
	return "DATE(created_at)"
}

// GetTopMotifs 成功识别中出现最多的纹样
func (r *classificationLogRepo) GetTopMotifs(ctx context.Context, limit int) ([]MotifCount, error) {
	if limit <= 0 {
		limit = 5
	}
	var out []MotifCount
	err := r.db.WithContext(ctx).Model(&model.ClassificationLog{}).
		Where("status = ? AND top_motif <> ''", model.ClassificationStatusSuccess).
		Select("top_motif, COUNT(*) as count").
		Group("top_motif").
		Order("count DESC, top_motif ASC").
		Limit(limit).
		Scan(&out).Error
	return out, translateError(err)
}
