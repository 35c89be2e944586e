package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"batikin/internal/controller"
	"batikin/internal/middleware"
	"batikin/internal/model"
	"batikin/internal/repository"
	"batikin/internal/router"
	"batikin/internal/service"
	"batikin/internal/task"
	"batikin/pkg/config"
	"batikin/pkg/database"
	"batikin/pkg/logger"
)

// @title Warisan Digital API
// @version 1.0
// @description BatikIn 工匠、作品与纹样识别接口
// @BasePath /
func main() {
	// 1. 配置与日志
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "加载配置失败: %v\n", err)
		os.Exit(1)
	}
	log, err := logger.Init(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "初始化日志失败: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// 2. 初始化数据库
	db, err := initDatabase(cfg, log)
	if err != nil {
		log.Fatal("初始化数据库失败", zap.Error(err))
	}

	// 3. 初始化依赖
	deps, err := initDependencies(cfg, db, log)
	if err != nil {
		log.Fatal("初始化依赖失败", zap.Error(err))
	}

	// 4. 种子数据
	if cfg.Seed.Enabled {
		if err := seedData(context.Background(), deps.Repos, log); err != nil {
			log.Fatal("写入种子数据失败", zap.Error(err))
		}
	}

	// 5. 启动定时任务
	tasks, err := initTasks(cfg, deps, log)
	if err != nil {
		log.Fatal("初始化定时任务失败", zap.Error(err))
	}
	tasks.Start()

	// 6. 初始化路由
	gin.SetMode(cfg.Server.Mode)
	r := router.NewEngine(deps.Controllers, router.Options{
		Identity:          deps.Services.Identity,
		Limiter:           deps.Limiter,
		ClassifyPerMinute: cfg.RateLimit.ClassifyPerMinute,
		CORSOrigins:       cfg.Server.CORSOrigins,
		UploadsDir:        localUploadsDir(cfg),
		MaxMultipartBytes: cfg.Upload.MaxBytes,
		Logger:            log,
	})

	// 7. 启动服务
	startServer(cfg, r, log, func(ctx context.Context) {
		if err := tasks.Stop(ctx); err != nil {
			log.Warn("停止定时任务超时", zap.Error(err))
		}
		if err := deps.Events.Close(); err != nil {
			log.Warn("关闭事件发布失败", zap.Error(err))
		}
	})
}

// ==================== 依赖容器 ====================

// Dependencies 依赖容器
type Dependencies struct {
	DB          *gorm.DB
	Repos       *Repositories
	Services    *Services
	Controllers *router.Controllers
	Events      service.EventPublisher
	Remote      *service.RemoteMLClassifier
	Health      *service.MLHealth
	Limiter     *middleware.RateLimiter
}

// Repositories 仓库集合
type Repositories struct {
	Store     *repository.Store
	User      repository.UserRepository
	Pengrajin repository.PengrajinRepository
	Batik     repository.BatikRepository
	ClassLog  repository.ClassificationLogRepository
}

// Services 服务集合
type Services struct {
	Identity *service.IdentityService
	Auth     *service.AuthService
	Artisan  *service.ArtisanService
	Batik    *service.BatikService
	User     *service.UserService
	Classify *service.ClassificationService
	Storage  *service.StorageService
	QR       *service.QRService
}

// ==================== 初始化函数 ====================

// initDatabase 初始化数据库
func initDatabase(cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
	models := append(repository.Models(), &model.ClassificationLog{})
	return database.InitDB(database.Options{
		Driver:   cfg.Database.Driver,
		DSN:      cfg.Database.DSN,
		LogLevel: cfg.Log.Level,
	}, log, models...)
}

// initDependencies 初始化所有依赖
func initDependencies(cfg *config.Config, db *gorm.DB, log *zap.Logger) (*Dependencies, error) {
	// -------- Repo 层 --------
	repos := initRepositories(db)

	// -------- 基础设施 --------
	events, err := initEventPublisher(cfg, log)
	if err != nil {
		return nil, err
	}
	storageSvc, err := initStorageService(cfg, log)
	if err != nil {
		return nil, err
	}

	dataset := service.MotifDataset()
	health := service.NewMLHealth()
	var remote *service.RemoteMLClassifier
	if cfg.MLEnabled() {
		remote = service.NewRemoteMLClassifier(cfg.ML.ServiceURL, cfg.ML.Timeout, dataset)
		log.Info("ML 服务已配置", zap.String("url", cfg.ML.ServiceURL), zap.Duration("timeout", cfg.ML.Timeout))
	} else {
		log.Info("未配置 ML 服务，识别使用模拟结果")
	}

	// -------- 业务服务 --------
	identity := service.NewIdentityService(repos.User)
	batikSvc := service.NewBatikService(repos.Batik, identity, events, log)
	services := &Services{
		Identity: identity,
		Auth:     service.NewAuthService(repos.Store, repos.User, repos.Pengrajin, events, log),
		Artisan:  service.NewArtisanService(repos.User, repos.Pengrajin, events, log),
		Batik:    batikSvc,
		User:     service.NewUserService(repos.User, identity),
		Classify: service.NewClassificationService(service.ClassificationOptions{
			Remote:   remote,
			Health:   health,
			Logs:     repos.ClassLog,
			Events:   events,
			Dataset:  dataset,
			MaxBytes: cfg.Upload.MaxBytes,
			Logger:   log,
		}),
		Storage: storageSvc,
		QR:      service.NewQRService(batikSvc, cfg.Server.PublicOrigin),
	}

	return &Dependencies{
		DB:          db,
		Repos:       repos,
		Services:    services,
		Controllers: initControllers(cfg, services),
		Events:      events,
		Remote:      remote,
		Health:      health,
		Limiter:     middleware.NewRateLimiter(),
	}, nil
}

// initRepositories 初始化所有仓库
func initRepositories(db *gorm.DB) *Repositories {
	store := repository.NewStore(db)
	return &Repositories{
		Store:     store,
		User:      repository.NewUserRepository(store),
		Pengrajin: repository.NewPengrajinRepository(store),
		Batik:     repository.NewBatikRepository(store),
		ClassLog:  repository.NewClassificationLogRepository(db),
	}
}

// initEventPublisher Kafka 未启用时写日志
func initEventPublisher(cfg *config.Config, log *zap.Logger) (service.EventPublisher, error) {
	if !cfg.Kafka.Enabled {
		return service.NewLogPublisher(log), nil
	}
	return service.NewKafkaPublisher(service.KafkaOptions{
		Brokers:  cfg.Kafka.Brokers,
		Topic:    cfg.Kafka.Topic,
		ClientID: cfg.Kafka.ClientID,
	}, log)
}

// initStorageService 初始化存储服务
func initStorageService(cfg *config.Config, log *zap.Logger) (*service.StorageService, error) {
	provider, err := service.NewStorageProvider(&service.StorageConfig{
		Provider:  cfg.Storage.Provider,
		Bucket:    cfg.Storage.Bucket,
		Region:    cfg.Storage.Region,
		AccessKey: cfg.Storage.AccessKey,
		SecretKey: cfg.Storage.SecretKey,
		Endpoint:  cfg.Storage.Endpoint,
		CDNDomain: cfg.Storage.CDNDomain,
		BasePath:  cfg.Storage.BasePath,
		BaseURL:   cfg.Storage.BaseURL,
	})
	if err != nil {
		return nil, fmt.Errorf("init storage: %w", err)
	}
	return service.NewStorageService(provider, cfg.Upload.MaxBytes, log), nil
}

// initControllers 初始化所有控制器
func initControllers(cfg *config.Config, svc *Services) *router.Controllers {
	return &router.Controllers{
		Auth:     controller.NewAuthController(svc.Auth),
		Artisan:  controller.NewArtisanController(svc.Artisan),
		Batik:    controller.NewBatikController(svc.Batik, svc.QR),
		Classify: controller.NewClassifyController(svc.Classify, cfg.Upload.MaxBytes),
		User:     controller.NewUserController(svc.User),
		System:   controller.NewSystemController(svc.Classify, svc.Storage, cfg.Upload.MaxBytes),
	}
}

// seedData 已存在的记录不会被覆盖
func seedData(ctx context.Context, repos *Repositories, log *zap.Logger) error {
	steps := []struct {
		name string
		fn   func(context.Context) (int, error)
	}{
		{"user", repos.User.EnsureSeed},
		{"pengrajin-details", repos.Pengrajin.EnsureSeed},
		{"batik", repos.Batik.EnsureSeed},
	}
	for _, step := range steps {
		n, err := step.fn(ctx)
		if err != nil {
			return fmt.Errorf("seed %s: %w", step.name, err)
		}
		if n > 0 {
			log.Info("写入种子数据", zap.String("entity", step.name), zap.Int("count", n))
		}
	}
	return nil
}

func localUploadsDir(cfg *config.Config) string {
	if cfg.Storage.Provider == "" || cfg.Storage.Provider == "local" {
		return cfg.Storage.BasePath
	}
	return ""
}

// ==================== 定时任务 ====================

// initTasks 初始化定时任务
func initTasks(cfg *config.Config, deps *Dependencies, log *zap.Logger) (*task.Manager, error) {
	manager := task.NewManager(cfg.ML.Timeout+5*time.Second, log)

	if deps.Remote != nil {
		healthTask := task.NewMLHealthTask(deps.Remote, deps.Health, log)
		if err := manager.Register(cfg.ML.HealthInterval, healthTask, true); err != nil {
			return nil, err
		}
	}

	sweep := task.NewSweepTask(deps.Limiter, 10*time.Minute, log, deps.Services.QR)
	if err := manager.Register("0 */5 * * * *", sweep, false); err != nil {
		return nil, err
	}
	return manager, nil
}

// ==================== 服务启动 ====================

// startServer 启动服务，收到退出信号后依次关闭 HTTP 与后台资源
func startServer(cfg *config.Config, r *gin.Engine, log *zap.Logger, cleanup func(ctx context.Context)) {
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// 异步启动服务
	go func() {
		log.Info("服务启动", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("服务启动失败", zap.Error(err))
		}
	}()

	// 等待退出信号
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("正在关闭服务...")

	wait := cfg.Server.ShutdownWait
	if wait <= 0 {
		wait = 5 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), wait)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("服务强制关闭", zap.Error(err))
	}
	cleanup(ctx)

	log.Info("服务已退出")
}
