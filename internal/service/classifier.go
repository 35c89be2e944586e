package service

import (
	"context"
	"regexp"
)

// ==================== 识别接口 ====================

// ImageInput 待识别图片
type ImageInput struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Size 字节数
func (in ImageInput) Size() int64 {
	return int64(len(in.Data))
}

// Prediction 单个候选纹样
type Prediction struct {
	Motif      string  `json:"motif"`
	Confidence float64 `json:"confidence"`
	Origin     string  `json:"origin,omitempty"`
	Philosophy string  `json:"philosophy,omitempty"`
}

// Authenticity 真伪判断
type Authenticity struct {
	Score float64 `json:"score"`
	Label string  `json:"label"`
}

// ClassificationResult 识别结果
type ClassificationResult struct {
	TopPrediction    Prediction   `json:"top_prediction"`
	OtherPredictions []Prediction `json:"other_predictions"`
	PatternType      string       `json:"pattern_type"`
	Authenticity     Authenticity `json:"authenticity"`
	Source           string       `json:"source"`
	Simulated        bool         `json:"simulated"`
	ProcessingTimeMs int64        `json:"processing_time_ms"`
}

// Classifier 纹样识别能力：远端模型或本地模拟
type Classifier interface {
	Name() string
	Classify(ctx context.Context, img ImageInput) (*ClassificationResult, error)
}

// ==================== 纹样类型 ====================

// 纹样类型
const (
	PatternGeometric    = "Geometric"
	PatternOrganic      = "Organic"
	PatternFloral       = "Floral"
	PatternNonGeometric = "Non-Geometric"
)

// 按优先级匹配，第一个命中的组生效
var patternGroups = []struct {
	name string
	re   *regexp.Regexp
}{
	{PatternGeometric, regexp.MustCompile(`(?i)parang|kawung|ceplok|nitik|lereng|truntum|tambal|geblek|jlamprang`)},
	{PatternOrganic, regexp.MustCompile(`(?i)mega\s*mendung|mendung|awan|tujuh\s*rupa|lasem|ulamsari|pring|simbut`)},
	{PatternFloral, regexp.MustCompile(`(?i)sekar|jagad|semen|buketan|bunga|priyangan|garutan|gentongan`)},
	{PatternNonGeometric, regexp.MustCompile(`(?i)sido|sogan|tulis|celup|jagatan|pisang`)},
}

// PatternTypeOf 根据纹样名称判断类型，未命中归为 Non-Geometric
func PatternTypeOf(motif string) string {
	for _, g := range patternGroups {
		if g.re.MatchString(motif) {
			return g.name
		}
	}
	return PatternNonGeometric
}

// ==================== 真伪判断 ====================

// 真伪标签
const (
	AuthenticityLikely   = "Likely Authentic"
	AuthenticityPossibly = "Possibly Authentic"
	AuthenticityVerify   = "Needs Expert Verification"
)

// AssessAuthenticity score = min(confidence*1.02, 0.98)
func AssessAuthenticity(confidence float64) Authenticity {
	score := confidence * 1.02
	if score > 0.98 {
		score = 0.98
	}
	label := AuthenticityVerify
	switch {
	case score >= 0.75:
		label = AuthenticityLikely
	case score >= 0.60:
		label = AuthenticityPossibly
	}
	return Authenticity{Score: score, Label: label}
}

// enrich 从数据集补充产地与寓意
func enrich(dataset []MotifInfo, p Prediction) Prediction {
	if info, ok := LookupMotif(dataset, p.Motif); ok {
		p.Origin = info.Origin
		p.Philosophy = info.Philosophy
		return p
	}
	p.Philosophy = genericPhilosophy
	return p
}
