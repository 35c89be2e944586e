package service

import (
	"context"
	"math"
	"unicode/utf16"
)

// ==================== 确定性模拟识别 ====================

// popularMotifs 模拟结果的候选池
var popularMotifs = [...]string{
	"Batik Parang",
	"Batik Kawung",
	"Batik Mega Mendung",
	"Batik Sidomukti",
	"Batik Sekar Jagad",
	"Batik Tujuh Rupa",
}

const (
	mockBaseConfidence = 0.68
	mockPerMB          = 0.15
	mockMaxConfidence  = 0.88
	mockSecondFactor   = 0.72
	mockThirdFactor    = 0.48
)

// DeterministicMockClassifier 不做推理，根据文件名与大小生成稳定结果
// 相同文件名 + 相同字节数总是得到相同输出
type DeterministicMockClassifier struct {
	dataset []MotifInfo
}

// NewDeterministicMockClassifier 创建模拟识别器
func NewDeterministicMockClassifier(dataset []MotifInfo) *DeterministicMockClassifier {
	return &DeterministicMockClassifier{dataset: dataset}
}

func (c *DeterministicMockClassifier) Name() string {
	return "simulation"
}

// Classify 不读取图片内容
func (c *DeterministicMockClassifier) Classify(ctx context.Context, img ImageInput) (*ClassificationResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	seed := mockSeed(img.Filename, img.Size())
	n := uint64(len(popularMotifs))
	base := MockConfidence(img.Size())

	top := enrich(c.dataset, Prediction{Motif: popularMotifs[seed%n], Confidence: base})
	others := []Prediction{
		enrich(c.dataset, Prediction{Motif: popularMotifs[(seed+1)%n], Confidence: base * mockSecondFactor}),
		enrich(c.dataset, Prediction{Motif: popularMotifs[(seed+2)%n], Confidence: base * mockThirdFactor}),
	}

	return &ClassificationResult{
		TopPrediction:    top,
		OtherPredictions: others,
		PatternType:      PatternTypeOf(top.Motif),
		Authenticity:     AssessAuthenticity(top.Confidence),
		Source:           c.Name(),
		Simulated:        true,
	}, nil
}

// mockSeed 文件名 UTF-16 码元之和 + 字节数
func mockSeed(filename string, size int64) uint64 {
	var sum uint64
	for _, unit := range utf16.Encode([]rune(filename)) {
		sum += uint64(unit)
	}
	if size > 0 {
		sum += uint64(size)
	}
	return sum
}

// MockConfidence min(0.68 + sizeMB*0.15, 0.88)
func MockConfidence(size int64) float64 {
	sizeMB := float64(size) / (1024 * 1024)
	return math.Min(mockBaseConfidence+sizeMB*mockPerMB, mockMaxConfidence)
}
