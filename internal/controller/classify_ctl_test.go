package controller

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"batikin/internal/service"
)

func TestClassifyController_Classify(t *testing.T) {
	env := setupCtlRouter(t, nil)

	w, resp := env.upload(t, "/api/classify-batik", map[string][]byte{"image": fakePNG(100)}, "a.png", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var res service.ClassificationResult
	decodeData(t, resp, &res)
	assert.Equal(t, "simulation", res.Source)
	assert.True(t, res.Simulated)
	assert.Equal(t, "Batik Sekar Jagad", res.TopPrediction.Motif)
	assert.Len(t, res.OtherPredictions, 2)

	// 相同输入结果相同
	_, again := env.upload(t, "/api/classify-batik", map[string][]byte{"image": fakePNG(100)}, "a.png", nil)
	var res2 service.ClassificationResult
	decodeData(t, again, &res2)
	assert.Equal(t, res.TopPrediction, res2.TopPrediction)
}

func TestClassifyController_ClassifyRejectsBadInput(t *testing.T) {
	env := setupCtlRouter(t, nil)

	w, resp := env.upload(t, "/api/classify-batik", nil, "", map[string]string{"note": "x"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "image file is required", resp.Error)

	w, resp = env.do(t, http.MethodPost, "/api/classify-batik", "", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "image file is required", resp.Error)

	w, resp = env.upload(t, "/api/classify-batik", map[string][]byte{"image": []byte("plain text, not an image")}, "a.txt", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, resp.Error, "unsupported image type")

	w, resp = env.upload(t, "/api/classify-batik", map[string][]byte{"image": fakePNG(testMaxBytes + 10)}, "big.png", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "image exceeds 5 MB limit", resp.Error)
}

func TestClassifyController_RemoteOnlyEndpoints(t *testing.T) {
	env := setupCtlRouter(t, nil)
	img := map[string][]byte{"image": fakePNG(64)}

	w, resp := env.upload(t, "/api/batik/similarity", img, "a.png", map[string]string{"top_k": "3"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "ML service is not configured", resp.Error)

	w, resp = env.upload(t, "/api/batik/similarity", img, "a.png", map[string]string{"top_k": "-1"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "top_k must be a positive integer", resp.Error)

	w, resp = env.upload(t, "/api/batik/explain", img, "a.png", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "ML service is not configured", resp.Error)
}

func TestClassifyController_Motifs(t *testing.T) {
	env := setupCtlRouter(t, nil)

	w, resp := env.do(t, http.MethodGet, "/api/motifs", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var motifs []service.MotifInfo
	decodeData(t, resp, &motifs)
	assert.NotEmpty(t, motifs)
}

func TestClassifyController_StatsRequiresAdmin(t *testing.T) {
	env := setupCtlRouter(t, nil)
	env.upload(t, "/api/classify-batik", map[string][]byte{"image": fakePNG(100)}, "a.png", nil)

	w, _ := env.do(t, http.MethodGet, "/api/admin/classifications/stats", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, _ = env.do(t, http.MethodGet, "/api/admin/classifications/stats", "wati@warisan.digital", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, _ = env.do(t, http.MethodGet, "/api/admin/classifications/stats?days=0", "admin@warisan.digital", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, resp := env.do(t, http.MethodGet, "/api/admin/classifications/stats?days=7", "admin@warisan.digital", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var stats service.ClassificationStatsResponse
	decodeData(t, resp, &stats)
	require.NotNil(t, stats.Usage)
	assert.Equal(t, int64(1), stats.Usage.TotalCalls)
	assert.Equal(t, int64(1), stats.Usage.SimulationCalls)
	assert.Equal(t, false, stats.ML["configured"])
}
