package utils

import (
	"net/http"
	"strings"
)

// 允许上传的图片类型
var allowedImageTypes = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/webp": ".webp",
}

// SniffContentType 根据文件头判断类型，忽略客户端声明
func SniffContentType(data []byte) string {
	ct := http.DetectContentType(data)
	if i := strings.Index(ct, ";"); i >= 0 {
		ct = ct[:i]
	}
	return strings.TrimSpace(ct)
}

// IsAllowedImage 是否为 png/jpeg/webp
func IsAllowedImage(data []byte) (string, bool) {
	ct := SniffContentType(data)
	_, ok := allowedImageTypes[ct]
	return ct, ok
}

// ExtensionFor 类型对应的扩展名
func ExtensionFor(contentType string) string {
	if ext, ok := allowedImageTypes[contentType]; ok {
		return ext
	}
	if contentType == "application/pdf" {
		return ".pdf"
	}
	return ".bin"
}
