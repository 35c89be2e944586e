package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// ClientOptions resty 客户端选项
type ClientOptions struct {
	BaseURL string
	Timeout time.Duration
	Debug   bool
}

// NewHTTPClient 创建配置好基础地址、超时和 UA 的 Resty 客户端
// 它是全系统统一的外部请求入口
func NewHTTPClient(opts ClientOptions) *resty.Client {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 20 * time.Second
	}

	client := resty.New().
		SetDebug(opts.Debug).
		SetTimeout(timeout).
		SetHeader("User-Agent", "Warisan-Digital/1.0")

	if opts.BaseURL != "" {
		client.SetBaseURL(opts.BaseURL)
	}
	return client
}
