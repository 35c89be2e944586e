package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"batikin/internal/middleware"
	"batikin/internal/model"
	"batikin/internal/repository"
	"batikin/internal/service"
)

// ==================== 测试辅助 ====================

const testMaxBytes = 5 * 1024 * 1024

type ctlTestEnv struct {
	router   *gin.Engine
	users    repository.UserRepository
	batiks   repository.BatikRepository
	classify *service.ClassificationService
}

func init() {
	gin.SetMode(gin.TestMode)
}

func setupCtlTestDB(t *testing.T) *gorm.DB {
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
	return db
}

// setupCtlRouter 用真实 service 与内存数据库搭建路由，remote 可为 nil
func setupCtlRouter(t *testing.T, remote *service.RemoteMLClassifier) *ctlTestEnv {
	t.Helper()
	db := setupCtlTestDB(t)
	log := zap.NewNop()
	ctx := context.Background()

	store := repository.NewStore(db)
	users := repository.NewUserRepository(store)
	pengrajin := repository.NewPengrajinRepository(store)
	batiks := repository.NewBatikRepository(store)
	for _, seed := range []func(context.Context) (int, error){users.EnsureSeed, pengrajin.EnsureSeed, batiks.EnsureSeed} {
		_, err := seed(ctx)
		require.NoError(t, err)
	}

	identity := service.NewIdentityService(users)
	batikSvc := service.NewBatikService(batiks, identity, nil, log)
	classifySvc := service.NewClassificationService(service.ClassificationOptions{
		Remote:   remote,
		Logs:     repository.NewClassificationLogRepository(db),
		MaxBytes: testMaxBytes,
		Logger:   log,
	})
	provider, err := service.NewStorageProvider(&service.StorageConfig{
		Provider: "local",
		BasePath: t.TempDir(),
		BaseURL:  "http://localhost:8080/uploads",
	})
	require.NoError(t, err)

	authCtl := NewAuthController(service.NewAuthService(store, users, pengrajin, nil, log))
	artisanCtl := NewArtisanController(service.NewArtisanService(users, pengrajin, nil, log))
	batikCtl := NewBatikController(batikSvc, service.NewQRService(batikSvc, "https://warisan.digital"))
	classifyCtl := NewClassifyController(classifySvc, testMaxBytes)
	userCtl := NewUserController(service.NewUserService(users, identity))
	systemCtl := NewSystemController(classifySvc, service.NewStorageService(provider, testMaxBytes, log), testMaxBytes)

	r := gin.New()
	r.Use(gin.Recovery(), middleware.Identity())
	api := r.Group("/api")
	{
		api.GET("/test", systemCtl.Info)
		api.GET("/health", systemCtl.Health)
		api.POST("/uploads", systemCtl.Upload)
		api.GET("/motifs", classifyCtl.Motifs)

		api.POST("/auth/login", authCtl.Login)
		api.POST("/auth/register", authCtl.Register)

		api.GET("/artisans", artisanCtl.List)
		api.GET("/artisans/:id", artisanCtl.Get)
		api.PUT("/artisans/:id/status", artisanCtl.UpdateStatus)

		api.GET("/batiks", batikCtl.List)
		api.POST("/batiks", batikCtl.Create)
		api.GET("/batiks/artisan/:artisanId", batikCtl.ListByArtisan)
		api.GET("/batiks/:id", batikCtl.Get)
		api.GET("/batiks/:id/qr", batikCtl.QRCode)
		api.PUT("/batiks/:id", batikCtl.Update)
		api.DELETE("/batiks/:id", batikCtl.Delete)

		api.POST("/classify-batik", classifyCtl.Classify)
		api.POST("/batik/similarity", classifyCtl.Similarity)
		api.POST("/batik/explain", classifyCtl.Explain)
		api.GET("/admin/classifications/stats", middleware.RequireAdmin(identity), classifyCtl.Stats)

		api.GET("/users", userCtl.List)
		api.POST("/users", userCtl.Create)
		api.POST("/users/deleteMany", userCtl.DeleteMany)
		api.DELETE("/users/:id", userCtl.Delete)
	}

	return &ctlTestEnv{router: r, users: users, batiks: batiks, classify: classifySvc}
}

// apiResponse 统一响应结构
type apiResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func (e *ctlTestEnv) do(t *testing.T, method, path, callerEmail string, body interface{}) (*httptest.ResponseRecorder, apiResponse) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, ok := body.(string)
		if !ok {
			b, err := json.Marshal(body)
			require.NoError(t, err)
			raw = string(b)
		}
		reader = bytes.NewBufferString(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if callerEmail != "" {
		req.Header.Set(middleware.HeaderUserEmail, callerEmail)
	}
	return e.serve(t, req)
}

func (e *ctlTestEnv) upload(t *testing.T, path string, files map[string][]byte, filename string, fields map[string]string) (*httptest.ResponseRecorder, apiResponse) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for field, data := range files {
		fw, err := mw.CreateFormFile(field, filename)
		require.NoError(t, err)
		_, err = fw.Write(data)
		require.NoError(t, err)
	}
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return e.serve(t, req)
}

func (e *ctlTestEnv) serve(t *testing.T, req *http.Request) (*httptest.ResponseRecorder, apiResponse) {
	t.Helper()
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)

	var resp apiResponse
	if w.Header().Get("Content-Type") != "image/png" {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	}
	return w, resp
}

func decodeData(t *testing.T, resp apiResponse, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(resp.Data, out))
}

// fakePNG 以 PNG 文件头开头、总长 n 字节
func fakePNG(n int) []byte {
	data := make([]byte, n)
	copy(data, []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'})
	return data
}
