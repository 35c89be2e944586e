package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"batikin/pkg/utils"
)

// ==================== 远端模型识别 ====================

// mlClassifyResponse 远端 /api/classify 响应
type mlClassifyResponse struct {
	PredictedClass  string  `json:"predicted_class"`
	Confidence      float64 `json:"confidence"`
	TopKPredictions []struct {
		Class       string  `json:"class"`
		Probability float64 `json:"probability"`
	} `json:"top_k_predictions"`
}

const maxOtherPredictions = 4

// RemoteMLClassifier 调用外部 ML 服务（multipart 字段 file）
type RemoteMLClassifier struct {
	client  *resty.Client
	dataset []MotifInfo
}

// NewRemoteMLClassifier 创建远端识别器，timeout 同时作用于单次请求
func NewRemoteMLClassifier(baseURL string, timeout time.Duration, dataset []MotifInfo) *RemoteMLClassifier {
	return &RemoteMLClassifier{
		client:  utils.NewHTTPClient(utils.ClientOptions{BaseURL: baseURL, Timeout: timeout}),
		dataset: dataset,
	}
}

func (c *RemoteMLClassifier) Name() string {
	return "ml-service"
}

// Classify 任何传输、状态码或解析错误都原样返回，由调用方决定是否回退
func (c *RemoteMLClassifier) Classify(ctx context.Context, img ImageInput) (*ClassificationResult, error) {
	body, err := c.postImage(ctx, "/api/classify", img, nil)
	if err != nil {
		return nil, err
	}

	var out mlClassifyResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("decode ml response: %w", err)
	}
	if strings.TrimSpace(out.PredictedClass) == "" {
		return nil, errors.New("ml response has no predicted_class")
	}

	top := enrich(c.dataset, Prediction{Motif: out.PredictedClass, Confidence: out.Confidence})
	others := make([]Prediction, 0, maxOtherPredictions)
	for _, p := range out.TopKPredictions {
		if p.Class == out.PredictedClass {
			continue
		}
		others = append(others, enrich(c.dataset, Prediction{Motif: p.Class, Confidence: p.Probability}))
		if len(others) == maxOtherPredictions {
			break
		}
	}

	return &ClassificationResult{
		TopPrediction:    top,
		OtherPredictions: others,
		PatternType:      PatternTypeOf(top.Motif),
		Authenticity:     AssessAuthenticity(top.Confidence),
		Source:           c.Name(),
	}, nil
}

// Similarity 透传 /api/similarity?top_k=N
func (c *RemoteMLClassifier) Similarity(ctx context.Context, img ImageInput, topK int) (json.RawMessage, error) {
	body, err := c.postImage(ctx, "/api/similarity", img, map[string]string{"top_k": strconv.Itoa(topK)})
	if err != nil {
		return nil, err
	}
	return asJSON(body)
}

// Explain 透传 /api/explain
func (c *RemoteMLClassifier) Explain(ctx context.Context, img ImageInput) (json.RawMessage, error) {
	body, err := c.postImage(ctx, "/api/explain", img, nil)
	if err != nil {
		return nil, err
	}
	return asJSON(body)
}

// Health GET /health，非 2xx 视为不可用
func (c *RemoteMLClassifier) Health(ctx context.Context) error {
	resp, err := c.client.R().SetContext(ctx).Get("/health")
	if err != nil {
		return fmt.Errorf("ml health: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("ml health: HTTP %d", resp.StatusCode())
	}
	return nil
}

func (c *RemoteMLClassifier) postImage(ctx context.Context, path string, img ImageInput, query map[string]string) ([]byte, error) {
	filename := img.Filename
	if filename == "" {
		filename = "upload"
	}

	req := c.client.R().
		SetContext(ctx).
		SetFileReader("file", filename, bytes.NewReader(img.Data))
	if len(query) > 0 {
		req.SetQueryParams(query)
	}

	resp, err := req.Post(path)
	if err != nil {
		return nil, fmt.Errorf("ml request %s: %w", path, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("ml request %s: HTTP %d", path, resp.StatusCode())
	}
	return resp.Body(), nil
}

func asJSON(body []byte) (json.RawMessage, error) {
	if !json.Valid(body) {
		return nil, errors.New("ml response is not valid JSON")
	}
	return json.RawMessage(body), nil
}
