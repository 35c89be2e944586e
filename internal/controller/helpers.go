package controller

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"batikin/internal/api/response"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// parsePaging 解析 cursor/limit，limit 缺省 20，上限 100
func parsePaging(c *gin.Context) (string, int, bool) {
	limit := defaultPageSize
	if raw := c.Query("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v <= 0 {
			response.BadRequest(c, "limit must be a positive integer")
			return "", 0, false
		}
		limit = v
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	return c.Query("cursor"), limit, true
}

// bindJSON 只处理 JSON 语法错误，字段校验在 service 层
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		response.BadRequest(c, "invalid JSON body: "+err.Error())
		return false
	}
	return true
}

// readFormFile 读取 multipart 文件，最多读 limit+1 字节，超限交给 service 判断
// 字段缺失或请求不是 multipart 时返回空数据
func readFormFile(c *gin.Context, field string, limit int64) (string, string, []byte, error) {
	fh, err := c.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return "", "", nil, nil
	}
	if err != nil {
		return "", "", nil, fmt.Errorf("read multipart field %s: %w", field, err)
	}

	f, err := fh.Open()
	if err != nil {
		return "", "", nil, err
	}
	defer f.Close()

	var r io.Reader = f
	if limit > 0 {
		r = io.LimitReader(f, limit+1)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", "", nil, err
	}
	return fh.Filename, fh.Header.Get("Content-Type"), data, nil
}
