package risk

import (
	"math"
	"time"

	db "github.com/maizecandy/seller-help/db/sqlc"
)

// 行为类别
const (
	RiskTypeRefund     = "refund"      // 普通退款纠纷
	RiskTypeOnlyRefund = "only_refund" // 仅退款不退货
	RiskTypeReturnScam = "return_scam" // 退货调包
	RiskTypeBlackmail  = "blackmail"   // 敲诈勒索
	RiskTypeFakeReview = "fake_review" // 虚假评价
	RiskTypeUnknown    = "unknown"
)

// 证据形式
const (
	EvidenceKindText    = "text"
	EvidenceKindImage   = "image"
	EvidenceKindVideo   = "video"
	EvidenceKindUnknown = "unknown"
)

// Level 风险等级
type Level string

const (
	LevelLow      Level = "low"
	LevelMedium   Level = "medium"
	LevelHigh     Level = "high"
	LevelCritical Level = "critical"
)

// behaviorWeights 行为权重表，未知类别按 1.0 计
var behaviorWeights = map[string]float64{
	RiskTypeRefund:     0.5,
	RiskTypeOnlyRefund: 2.0,
	RiskTypeReturnScam: 5.0,
	RiskTypeBlackmail:  4.0,
	RiskTypeFakeReview: 3.0,
	RiskTypeUnknown:    1.0,
}

// evidenceWeights 证据形式权重表，视频证据权重最高
var evidenceWeights = map[string]float64{
	EvidenceKindText:    0.5,
	EvidenceKindImage:   1.0,
	EvidenceKindVideo:   2.0,
	EvidenceKindUnknown: 0.5,
}

const (
	decayFreeDays = 30  // 30天内不衰减
	decayCutDays  = 180 // 超过180天证据贡献归零
	decayRate     = 0.01
)

// Score 根据全量证据计算风险分和等级。
// 纯函数：相同证据与时间必然得到相同结果，与插入顺序无关。
// 单条贡献 = 行为权重 × 证据权重 × 时间衰减，总分截断到 [0,100] 后四舍五入。
func Score(evidence []db.Evidence, now time.Time) (int32, Level) {
	var total float64
	for _, ev := range evidence {
		total += behaviorWeight(ev.RiskType) * evidenceWeight(ev.EvidenceKind) * decayFactor(now.Sub(ev.CreatedAt))
	}
	score := int32(math.Round(math.Min(100, total)))
	return score, levelFor(score)
}

// decayFactor 时间衰减：30天内为1，30到180天指数衰减，更旧归零
func decayFactor(age time.Duration) float64 {
	days := age.Hours() / 24
	switch {
	case days <= decayFreeDays:
		return 1.0
	case days <= decayCutDays:
		return math.Exp(-decayRate * (days - decayFreeDays))
	default:
		return 0
	}
}

func levelFor(score int32) Level {
	switch {
	case score > 80:
		return LevelCritical
	case score > 60:
		return LevelHigh
	case score > 30:
		return LevelMedium
	default:
		return LevelLow
	}
}

func behaviorWeight(riskType string) float64 {
	if w, ok := behaviorWeights[riskType]; ok {
		return w
	}
	return behaviorWeights[RiskTypeUnknown]
}

func evidenceWeight(kind string) float64 {
	if w, ok := evidenceWeights[kind]; ok {
		return w
	}
	return evidenceWeights[EvidenceKindUnknown]
}

// ValidRiskType 校验行为类别取值
func ValidRiskType(riskType string) bool {
	_, ok := behaviorWeights[riskType]
	return ok
}

// ValidEvidenceKind 校验证据形式取值
func ValidEvidenceKind(kind string) bool {
	_, ok := evidenceWeights[kind]
	return ok
}
