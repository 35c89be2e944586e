package task

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// ==================== Manager 定时任务管理器 ====================

// Job 可被定时调度的任务
type Job interface {
	Name() string
	Execute(ctx context.Context)
}

// Manager 统一管理定时任务，秒级 cron 表达式
type Manager struct {
	cron    *cron.Cron
	timeout time.Duration
	log     *zap.Logger
	jobs    []string
}

// NewManager timeout 为单次执行的上下文超时
func NewManager(timeout time.Duration, log *zap.Logger) *Manager {
	if timeout <= 0 {
		timeout = time.Minute
	}
	return &Manager{
		cron:    cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		timeout: timeout,
		log:     log,
	}
}

// Register 注册任务；runNow 为 true 时启动后立即执行一次
func (m *Manager) Register(spec string, job Job, runNow bool) error {
	_, err := m.cron.AddFunc(spec, func() { m.run(job) })
	if err != nil {
		return fmt.Errorf("register task %s (%s): %w", job.Name(), spec, err)
	}
	m.jobs = append(m.jobs, job.Name())
	if runNow {
		go m.run(job)
	}
	return nil
}

func (m *Manager) run(job Job) {
	ctx, cancel := context.WithTimeout(context.Background(), m.timeout)
	defer cancel()
	defer func() {
		if r := recover(); r != nil {
			m.log.Error("定时任务 panic", zap.String("task", job.Name()), zap.Any("panic", r))
		}
	}()
	job.Execute(ctx)
}

// Start 启动调度
func (m *Manager) Start() {
	m.cron.Start()
	m.log.Info("定时任务已启动", zap.Strings("tasks", m.jobs))
}

// Stop 停止调度并等待执行中的任务结束
func (m *Manager) Stop(ctx context.Context) error {
	done := m.cron.Stop()
	select {
	case <-done.Done():
		m.log.Info("定时任务已停止")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
