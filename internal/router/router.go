package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"batikin/internal/controller"
	"batikin/internal/middleware"
	"batikin/internal/service"

	_ "batikin/docs"
)

// Controllers 所有控制器
type Controllers struct {
	Auth     *controller.AuthController
	Artisan  *controller.ArtisanController
	Batik    *controller.BatikController
	Classify *controller.ClassifyController
	User     *controller.UserController
	System   *controller.SystemController
}

// Options 路由依赖
type Options struct {
	Identity          *service.IdentityService
	Limiter           *middleware.RateLimiter
	ClassifyPerMinute int
	CORSOrigins       []string
	// UploadsDir 非空时以 /uploads 提供本地上传文件
	UploadsDir        string
	MaxMultipartBytes int64
	Logger            *zap.Logger
}

// NewEngine 创建 gin 引擎并注册全局中间件与路由
func NewEngine(ctls *Controllers, opts Options) *gin.Engine {
	r := gin.New()
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Limiter == nil {
		opts.Limiter = middleware.NewRateLimiter()
	}
	if opts.MaxMultipartBytes > 0 {
		r.MaxMultipartMemory = opts.MaxMultipartBytes
	}
	r.Use(
		middleware.RequestLogger(opts.Logger),
		middleware.Recovery(opts.Logger),
		middleware.CORS(opts.CORSOrigins),
		middleware.Identity(),
	)
	InitRoutes(r, ctls, opts)
	return r
}

// InitRoutes 注册所有路由
func InitRoutes(r *gin.Engine, ctls *Controllers, opts Options) {
	// 1. Swagger 文档路由
	// 访问 http://localhost:8080/swagger/index.html 即可查看
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if opts.UploadsDir != "" {
		r.Static("/uploads", opts.UploadsDir)
	}

	classifyLimit := middleware.ClientRateLimit(opts.Limiter, "classify", opts.ClassifyPerMinute)

	// 2. API 路由组
	api := r.Group("/api")
	{
		api.GET("/test", ctls.System.Info)
		api.GET("/health", ctls.System.Health)
		api.POST("/uploads", ctls.System.Upload)
		api.GET("/motifs", ctls.Classify.Motifs)

		// auth 登录注册
		auth := api.Group("/auth")
		{
			auth.POST("/login", ctls.Auth.Login)
			auth.POST("/register", ctls.Auth.Register)
		}

		// artisans 工匠
		artisans := api.Group("/artisans")
		{
			artisans.GET("", ctls.Artisan.List)
			artisans.GET("/:id", ctls.Artisan.Get)
			artisans.PUT("/:id/status", ctls.Artisan.UpdateStatus)
		}

		// batiks 作品
		batiks := api.Group("/batiks")
		{
			batiks.GET("", ctls.Batik.List)
			batiks.POST("", ctls.Batik.Create)
			batiks.GET("/artisan/:artisanId", ctls.Batik.ListByArtisan)
			batiks.GET("/:id", ctls.Batik.Get)
			batiks.GET("/:id/qr", ctls.Batik.QRCode)
			batiks.PUT("/:id", ctls.Batik.Update)
			batiks.DELETE("/:id", ctls.Batik.Delete)
		}

		// 识别类接口限流
		api.POST("/classify-batik", classifyLimit, ctls.Classify.Classify)
		batik := api.Group("/batik", classifyLimit)
		{
			batik.POST("/similarity", ctls.Classify.Similarity)
			batik.POST("/explain", ctls.Classify.Explain)
		}

		// users 通用用户接口
		users := api.Group("/users")
		{
			users.GET("", ctls.User.List)
			users.POST("", ctls.User.Create)
			users.POST("/deleteMany", ctls.User.DeleteMany)
			users.DELETE("/:id", ctls.User.Delete)
		}

		// admin 管理后台
		admin := api.Group("/admin", middleware.RequireAdmin(opts.Identity))
		{
			admin.GET("/classifications/stats", ctls.Classify.Stats)
		}
	}
}
