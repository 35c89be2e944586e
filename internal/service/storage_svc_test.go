package service

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupLocalStorage(t *testing.T) (*StorageService, string) {
	t.Helper()
	dir := t.TempDir()
	provider, err := NewStorageProvider(&StorageConfig{
		Provider: "local",
		BasePath: dir,
		BaseURL:  "http://localhost:8080/uploads/",
	})
	require.NoError(t, err)
	return NewStorageService(provider, 1024, nopLog), dir
}

func TestStorageService_UploadImage(t *testing.T) {
	svc, dir := setupLocalStorage(t)
	ctx := context.Background()

	resp, err := svc.UploadFile(ctx, "", "motif.JPG", fakePNG(200))
	require.NoError(t, err)
	assert.Equal(t, "image/png", resp.ContentType)
	assert.Equal(t, int64(200), resp.Size)
	assert.True(t, strings.HasPrefix(resp.URL, "http://localhost:8080/uploads/"))
	assert.True(t, strings.HasSuffix(resp.URL, ".png"))

	key := strings.TrimPrefix(resp.URL, "http://localhost:8080/uploads/")
	data, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(key)))
	require.NoError(t, err)
	assert.Len(t, data, 200)

	require.NoError(t, svc.Delete(ctx, resp.URL))
	_, err = os.Stat(filepath.Join(dir, filepath.FromSlash(key)))
	assert.True(t, os.IsNotExist(err))
	// 重复删除不报错
	assert.NoError(t, svc.Delete(ctx, resp.URL))
}

func TestStorageService_UploadDocument(t *testing.T) {
	svc, _ := setupLocalStorage(t)
	ctx := context.Background()
	pdf := []byte("%PDF-1.4\n1 0 obj\n<<>>\nendobj\n")

	resp, err := svc.UploadFile(ctx, UploadKindDocument, "sertifikat.pdf", pdf)
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", resp.ContentType)
	assert.True(t, strings.HasSuffix(resp.URL, ".pdf"))

	_, err = svc.UploadFile(ctx, UploadKindImage, "sertifikat.pdf", pdf)
	assert.ErrorIs(t, err, ErrBadRequest)
}

func TestStorageService_Rejects(t *testing.T) {
	svc, _ := setupLocalStorage(t)
	ctx := context.Background()

	_, err := svc.UploadFile(ctx, "video", "a.png", fakePNG(10))
	assert.ErrorIs(t, err, ErrBadRequest)

	_, err = svc.UploadFile(ctx, UploadKindImage, "a.png", nil)
	assert.ErrorIs(t, err, ErrBadRequest)

	_, err = svc.UploadFile(ctx, UploadKindImage, "a.png", fakePNG(2048))
	assert.ErrorIs(t, err, ErrBadRequest)

	_, err = svc.UploadFile(ctx, UploadKindImage, "a.png", []byte("<html><body>x</body></html>"))
	assert.ErrorIs(t, err, ErrBadRequest)
}

func TestLocalStorage_DeleteOutsideBase(t *testing.T) {
	svc, _ := setupLocalStorage(t)
	ctx := context.Background()

	assert.Error(t, svc.Delete(ctx, "https://cdn.example.com/x.png"))
	assert.Error(t, svc.Delete(ctx, "http://localhost:8080/uploads/../secret"))
}

func TestNewStorageProvider_Unknown(t *testing.T) {
	_, err := NewStorageProvider(&StorageConfig{Provider: "ftp"})
	assert.Error(t, err)
}

func TestGenerateKey(t *testing.T) {
	key := generateKey("documents", "Surat.PDF")
	assert.True(t, strings.HasPrefix(key, "documents/"))
	assert.True(t, strings.HasSuffix(key, ".pdf"))
	assert.Len(t, strings.Split(key, "/"), 5)

	assert.True(t, strings.HasSuffix(generateKey("", "noext"), ".jpg"))
}
