package service

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"batikin/internal/api/dto"
	"batikin/pkg/utils"
)

// ==================== 接口定义 ====================

// StorageProvider 存储提供者接口
type StorageProvider interface {
	// Upload 上传文件，返回公开访问URL
	Upload(ctx context.Context, data []byte, filename string, contentType string) (url string, err error)

	// Delete 删除文件
	Delete(ctx context.Context, url string) error
}

// ==================== 配置 ====================

type StorageConfig struct {
	Provider  string // "s3" | "local"
	Bucket    string
	Region    string
	AccessKey string
	SecretKey string
	Endpoint  string // 自定义端点（MinIO、COS 等 S3 兼容服务）
	CDNDomain string // CDN域名 (可选)
	BasePath  string // s3: key 前缀；local: 本地目录
	BaseURL   string // local: 对外访问前缀
}

// NewStorageProvider 工厂方法
func NewStorageProvider(cfg *StorageConfig) (StorageProvider, error) {
	switch cfg.Provider {
	case "s3":
		return NewS3Storage(cfg)
	case "local", "":
		return NewLocalStorage(cfg)
	default:
		return nil, fmt.Errorf("不支持的存储提供者: %s", cfg.Provider)
	}
}

// ==================== StorageService 上传服务 ====================

// 上传类别
const (
	UploadKindImage    = "image"
	UploadKindDocument = "document"
)

// StorageService 校验上传内容后交给 StorageProvider
type StorageService struct {
	provider StorageProvider
	maxBytes int64
	log      *zap.Logger
}

// NewStorageService 创建存储服务
func NewStorageService(provider StorageProvider, maxBytes int64, log *zap.Logger) *StorageService {
	return &StorageService{provider: provider, maxBytes: maxBytes, log: log}
}

// UploadFile 作品图片只允许 png/jpeg/webp，资质文件额外允许 pdf
// 类型以文件头为准
func (s *StorageService) UploadFile(ctx context.Context, kind, filename string, data []byte) (*dto.UploadResponse, error) {
	if kind == "" {
		kind = UploadKindImage
	}
	if kind != UploadKindImage && kind != UploadKindDocument {
		return nil, newError(KindBadRequest, "kind must be one of: image document")
	}
	if len(data) == 0 {
		return nil, newError(KindBadRequest, "file is required")
	}
	if s.maxBytes > 0 && int64(len(data)) > s.maxBytes {
		return nil, newError(KindBadRequest, "file exceeds %d MB limit", s.maxBytes/(1024*1024))
	}

	contentType, isImage := utils.IsAllowedImage(data)
	allowed := isImage || (kind == UploadKindDocument && contentType == "application/pdf")
	if !allowed {
		return nil, newError(KindBadRequest, "unsupported file type %s", contentType)
	}

	// 扩展名以实际类型为准
	name := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename)) + utils.ExtensionFor(contentType)
	url, err := s.provider.Upload(ctx, data, name, contentType)
	if err != nil {
		return nil, wrapError(KindInternal, err, "upload failed")
	}

	s.log.Info("文件已上传", zap.String("kind", kind), zap.String("url", url), zap.Int("size", len(data)))
	return &dto.UploadResponse{URL: url, ContentType: contentType, Size: int64(len(data))}, nil
}

// Delete 删除文件
func (s *StorageService) Delete(ctx context.Context, url string) error {
	return s.provider.Delete(ctx, url)
}

// ==================== S3 实现 ====================

type S3Storage struct {
	client    *s3.Client
	bucket    string
	region    string
	endpoint  string
	cdnDomain string
	basePath  string
}

func NewS3Storage(cfg *StorageConfig) (*S3Storage, error) {
	awsCfg, err := config.LoadDefaultConfig(context.Background(),
		config.WithRegion(cfg.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKey,
			cfg.SecretKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("加载AWS配置失败: %v", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &S3Storage{
		client:    client,
		bucket:    cfg.Bucket,
		region:    cfg.Region,
		endpoint:  strings.TrimRight(cfg.Endpoint, "/"),
		cdnDomain: cfg.CDNDomain,
		basePath:  cfg.BasePath,
	}, nil
}

func (s *S3Storage) Upload(ctx context.Context, data []byte, filename string, contentType string) (string, error) {
	key := generateKey(s.basePath, filename)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("上传S3失败: %v", err)
	}

	return s.publicURL(key), nil
}

func (s *S3Storage) Delete(ctx context.Context, url string) error {
	key := s.extractKey(url)
	if key == "" || key == url {
		return fmt.Errorf("无法解析文件路径")
	}

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	return err
}

func (s *S3Storage) urlPrefix() string {
	switch {
	case s.cdnDomain != "":
		return fmt.Sprintf("https://%s/", s.cdnDomain)
	case s.endpoint != "":
		return fmt.Sprintf("%s/%s/", s.endpoint, s.bucket)
	default:
		return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/", s.bucket, s.region)
	}
}

func (s *S3Storage) publicURL(key string) string {
	return s.urlPrefix() + key
}

func (s *S3Storage) extractKey(url string) string {
	return strings.TrimPrefix(url, s.urlPrefix())
}

// ==================== 本地存储 (开发测试用) ====================

type LocalStorage struct {
	basePath string
	baseURL  string
}

func NewLocalStorage(cfg *StorageConfig) (*LocalStorage, error) {
	basePath := cfg.BasePath
	if basePath == "" {
		basePath = "./uploads"
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = "http://localhost:8080/uploads"
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("创建上传目录失败: %w", err)
	}

	return &LocalStorage{
		basePath: basePath,
		baseURL:  strings.TrimRight(baseURL, "/"),
	}, nil
}

func (s *LocalStorage) Upload(ctx context.Context, data []byte, filename string, contentType string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	key := generateKey("", filename)
	full := filepath.Join(s.basePath, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", fmt.Errorf("创建目录失败: %w", err)
	}
	if err := os.WriteFile(full, data, 0o644); err != nil {
		return "", fmt.Errorf("写入文件失败: %w", err)
	}
	return s.baseURL + "/" + key, nil
}

func (s *LocalStorage) Delete(ctx context.Context, url string) error {
	key := strings.TrimPrefix(url, s.baseURL+"/")
	if key == url || key == "" || strings.Contains(key, "..") {
		return fmt.Errorf("无法解析文件路径")
	}
	err := os.Remove(filepath.Join(s.basePath, filepath.FromSlash(key)))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// ==================== 工具函数 ====================

// generateKey prefix/yyyy/mm/dd/uuid.ext
func generateKey(prefix, filename string) string {
	ext := filepath.Ext(filename)
	if ext == "" {
		ext = ".jpg"
	}
	newFilename := uuid.New().String() + strings.ToLower(ext)

	datePath := time.Now().Format("2006/01/02")
	if prefix != "" {
		return path.Join(prefix, datePath, newFilename)
	}
	return path.Join(datePath, newFilename)
}
