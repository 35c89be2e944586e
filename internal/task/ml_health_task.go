package task

import (
	"context"

	"go.uber.org/zap"

	"batikin/internal/service"
)

// HealthChecker 远端服务探活
type HealthChecker interface {
	Health(ctx context.Context) error
}

// MLHealthTask 探测 ML 服务 /health 并更新可用性标记
// 标记为不可用时识别请求直接走模拟结果，不再等待超时
type MLHealthTask struct {
	checker HealthChecker
	health  *service.MLHealth
	log     *zap.Logger
}

// NewMLHealthTask 创建探活任务
func NewMLHealthTask(checker HealthChecker, health *service.MLHealth, log *zap.Logger) *MLHealthTask {
	return &MLHealthTask{checker: checker, health: health, log: log}
}

func (t *MLHealthTask) Name() string {
	return "ml-health"
}

// Execute 执行一次探测，只在状态变化时打日志
func (t *MLHealthTask) Execute(ctx context.Context) {
	err := t.checker.Health(ctx)
	if changed := t.health.Set(err == nil); !changed {
		return
	}
	if err != nil {
		t.log.Warn("ML 服务不可用，识别将使用模拟结果", zap.Error(err))
		return
	}
	t.log.Info("ML 服务恢复可用")
}
