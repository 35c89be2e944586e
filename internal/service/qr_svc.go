package service

import (
	"context"
	"fmt"
	"time"

	"github.com/skip2/go-qrcode"

	"batikin/pkg/utils"
)

// ==================== QRService 真伪二维码 ====================

const (
	qrSize     = 512
	qrCacheTTL = 10 * time.Minute
)

// QRService 生成 {origin}/batik/{id} 的二维码
// 扫码打开作品页即为验证方式，二维码本身不带签名
type QRService struct {
	batiks *BatikService
	origin string
	cache  *utils.TTLCache[[]byte]
}

// NewQRService 创建二维码服务
func NewQRService(batiks *BatikService, publicOrigin string) *QRService {
	return &QRService{
		batiks: batiks,
		origin: publicOrigin,
		cache:  utils.NewTTLCache[[]byte](qrCacheTTL),
	}
}

// PayloadURL 二维码内容
func (s *QRService) PayloadURL(batikID string) string {
	return fmt.Sprintf("%s/batik/%s", s.origin, batikID)
}

// URL 校验作品存在后返回二维码内容
func (s *QRService) URL(ctx context.Context, batikID string) (string, error) {
	if _, err := s.batiks.Get(ctx, batikID); err != nil {
		return "", err
	}
	return s.PayloadURL(batikID), nil
}

// PNG 二维码图片，每次都校验作品存在，只缓存渲染结果
func (s *QRService) PNG(ctx context.Context, batikID string) ([]byte, error) {
	payload, err := s.URL(ctx, batikID)
	if err != nil {
		return nil, err
	}
	if png, ok := s.cache.Get(payload); ok {
		return png, nil
	}
	png, err := qrcode.Encode(payload, qrcode.Medium, qrSize)
	if err != nil {
		return nil, wrapError(KindInternal, err, "failed to render qr code")
	}
	s.cache.Set(payload, png)
	return png, nil
}

// SweepCache 清理过期的二维码缓存
func (s *QRService) SweepCache() int {
	return s.cache.Sweep()
}
