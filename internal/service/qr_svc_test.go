package service

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQRService(t *testing.T) {
	env := setupServiceTestDB(t)
	env.seed(t)
	batiks := newBatikService(env, nil)
	svc := NewQRService(batiks, "https://warisan.digital")
	ctx := context.Background()

	url, err := svc.URL(ctx, "b1")
	require.NoError(t, err)
	assert.Equal(t, "https://warisan.digital/batik/b1", url)

	png, err := svc.PNG(ctx, "b1")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG\r\n\x1a\n")))

	again, err := svc.PNG(ctx, "b1")
	require.NoError(t, err)
	assert.Equal(t, png, again)
	// 未过期的缓存不会被清理
	assert.Equal(t, 0, svc.SweepCache())

	_, err = svc.URL(ctx, "b404")
	assert.ErrorIs(t, err, ErrNotFound)

	// 删除后不再返回缓存的图片
	require.NoError(t, batiks.Delete(ctx, "admin@warisan.digital", "b1"))
	_, err = svc.PNG(ctx, "b1")
	assert.ErrorIs(t, err, ErrNotFound)
}
