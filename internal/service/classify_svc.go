package service

import (
	"context"
	"encoding/json"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"batikin/internal/model"
	"batikin/internal/repository"
	"batikin/pkg/utils"
)

// ==================== ClassificationService 纹样识别 ====================

const defaultSimilarityTopK = 5

// ClassificationService 先尝试远端模型，失败时回退到确定性模拟
type ClassificationService struct {
	remote   *RemoteMLClassifier // 未配置时为 nil
	fallback Classifier
	health   *MLHealth
	logs     repository.ClassificationLogRepository
	events   EventPublisher
	dataset  []MotifInfo
	maxBytes int64
	log      *zap.Logger
}

// ClassificationOptions 依赖集合
type ClassificationOptions struct {
	Remote   *RemoteMLClassifier
	Fallback Classifier
	Health   *MLHealth
	Logs     repository.ClassificationLogRepository
	Events   EventPublisher
	Dataset  []MotifInfo
	MaxBytes int64
	Logger   *zap.Logger
}

// NewClassificationService 创建识别服务
func NewClassificationService(opts ClassificationOptions) *ClassificationService {
	if opts.Dataset == nil {
		opts.Dataset = MotifDataset()
	}
	if opts.Fallback == nil {
		opts.Fallback = NewDeterministicMockClassifier(opts.Dataset)
	}
	if opts.Health == nil {
		opts.Health = NewMLHealth()
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return &ClassificationService{
		remote:   opts.Remote,
		fallback: opts.Fallback,
		health:   opts.Health,
		logs:     opts.Logs,
		events:   opts.Events,
		dataset:  opts.Dataset,
		maxBytes: opts.MaxBytes,
		log:      opts.Logger,
	}
}

// Classify 识别上传图片
func (s *ClassificationService) Classify(ctx context.Context, img ImageInput) (*ClassificationResult, error) {
	if err := s.validateImage(img); err != nil {
		return nil, err
	}

	start := time.Now()
	var remoteErr error
	if s.RemoteUsable() {
		res, err := s.remote.Classify(ctx, img)
		if err == nil {
			res.ProcessingTimeMs = time.Since(start).Milliseconds()
			s.record(ctx, img, res, nil)
			return res, nil
		}
		remoteErr = err
		s.log.Warn("ML 服务识别失败，使用模拟结果", zap.String("filename", img.Filename), zap.Error(err))
	}

	res, err := s.fallback.Classify(ctx, img)
	if err != nil {
		s.recordFailure(ctx, img, time.Since(start), err)
		return nil, wrapError(KindInternal, err, "classification failed")
	}
	res.ProcessingTimeMs = time.Since(start).Milliseconds()
	s.record(ctx, img, res, remoteErr)
	return res, nil
}

// Similarity 相似作品检索，纯透传
func (s *ClassificationService) Similarity(ctx context.Context, img ImageInput, topK int) (json.RawMessage, error) {
	if err := s.validateImage(img); err != nil {
		return nil, err
	}
	if s.remote == nil {
		return nil, newError(KindUpstream, "ML service is not configured")
	}
	if topK <= 0 {
		topK = defaultSimilarityTopK
	}
	out, err := s.remote.Similarity(ctx, img, topK)
	if err != nil {
		s.log.Warn("相似检索失败", zap.Error(err))
		return nil, wrapError(KindUpstream, err, "failed to find similar batik")
	}
	return out, nil
}

// Explain 可解释性分析，纯透传
func (s *ClassificationService) Explain(ctx context.Context, img ImageInput) (json.RawMessage, error) {
	if err := s.validateImage(img); err != nil {
		return nil, err
	}
	if s.remote == nil {
		return nil, newError(KindUpstream, "ML service is not configured")
	}
	out, err := s.remote.Explain(ctx, img)
	if err != nil {
		s.log.Warn("可解释性分析失败", zap.Error(err))
		return nil, wrapError(KindUpstream, err, "failed to explain classification")
	}
	return out, nil
}

// RemoteConfigured 是否配置了远端服务
func (s *ClassificationService) RemoteConfigured() bool {
	return s.remote != nil
}

// RemoteUsable 已配置且最近一次探测可用
func (s *ClassificationService) RemoteUsable() bool {
	return s.remote != nil && s.health.Available()
}

// Motifs 纹样数据集
func (s *ClassificationService) Motifs() []MotifInfo {
	return s.dataset
}

// validateImage 服务端重新校验大小与类型
func (s *ClassificationService) validateImage(img ImageInput) error {
	if len(img.Data) == 0 {
		return newError(KindBadRequest, "image file is required")
	}
	if s.maxBytes > 0 && img.Size() > s.maxBytes {
		return newError(KindBadRequest, "image exceeds %d MB limit", s.maxBytes/(1024*1024))
	}
	if ct, ok := utils.IsAllowedImage(img.Data); !ok {
		return newError(KindBadRequest, "unsupported image type %s (png, jpeg or webp only)", ct)
	}
	return nil
}

func (s *ClassificationService) record(ctx context.Context, img ImageInput, res *ClassificationResult, remoteErr error) {
	entry := &model.ClassificationLog{
		Source:     res.Source,
		Filename:   img.Filename,
		SizeBytes:  img.Size(),
		TopMotif:   res.TopPrediction.Motif,
		Confidence: res.TopPrediction.Confidence,
		DurationMs: res.ProcessingTimeMs,
		Status:     model.ClassificationStatusSuccess,
	}
	if remoteErr != nil {
		entry.ErrorMsg = truncate(remoteErr.Error(), 1024)
	}
	s.saveLog(ctx, entry)

	publishQuietly(ctx, s.events, s.log, NewEvent(EventBatikClassified, res.TopPrediction.Motif, map[string]interface{}{
		"filename":   img.Filename,
		"source":     res.Source,
		"motif":      res.TopPrediction.Motif,
		"confidence": res.TopPrediction.Confidence,
	}))
}

func (s *ClassificationService) recordFailure(ctx context.Context, img ImageInput, elapsed time.Duration, err error) {
	s.saveLog(ctx, &model.ClassificationLog{
		Source:     s.fallback.Name(),
		Filename:   img.Filename,
		SizeBytes:  img.Size(),
		DurationMs: elapsed.Milliseconds(),
		Status:     model.ClassificationStatusFailed,
		ErrorMsg:   truncate(err.Error(), 1024),
	})
}

// saveLog 日志写入失败不影响识别结果
func (s *ClassificationService) saveLog(ctx context.Context, entry *model.ClassificationLog) {
	if s.logs == nil {
		return
	}
	if err := s.logs.Create(ctx, entry); err != nil {
		s.log.Warn("保存识别日志失败", zap.Error(err))
	}
}

// ==================== 统计 ====================

// ClassificationStatsResponse 管理后台统计
type ClassificationStatsResponse struct {
	Usage     *repository.ClassificationStats       `json:"usage"`
	Daily     []repository.DailyClassificationStats `json:"daily"`
	TopMotifs []repository.MotifCount               `json:"top_motifs"`
	ML        map[string]interface{}                `json:"ml"`
}

// Stats 最近 days 天的识别统计
func (s *ClassificationService) Stats(ctx context.Context, days int) (*ClassificationStatsResponse, error) {
	if s.logs == nil {
		return nil, newError(KindInternal, "classification log is not enabled")
	}
	if days <= 0 {
		days = 7
	}
	end := time.Now()
	start := end.AddDate(0, 0, -days)

	usage, err := s.logs.GetUsage(ctx, start, end)
	if err != nil {
		return nil, fromRepo(err, "")
	}
	daily, err := s.logs.GetDailyUsage(ctx, start, end)
	if err != nil {
		return nil, fromRepo(err, "")
	}
	top, err := s.logs.GetTopMotifs(ctx, 5)
	if err != nil {
		return nil, fromRepo(err, "")
	}
	if daily == nil {
		daily = []repository.DailyClassificationStats{}
	}
	if top == nil {
		top = []repository.MotifCount{}
	}

	ml := map[string]interface{}{
		"configured": s.RemoteConfigured(),
		"available":  s.RemoteUsable(),
	}
	if t := s.health.LastChecked(); !t.IsZero() {
		ml["last_checked"] = t
	}
	return &ClassificationStatsResponse{Usage: usage, Daily: daily, TopMotifs: top, ML: ml}, nil
}

// truncate 截断到 n 字节以内，不拆开多字节字符
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	cut := n - 3
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
