package normalize

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"
)

// Source 字段来源策略，用于审计
type Source string

const (
	SourcePattern Source = "pattern"
	SourceAI      Source = "ai"
	SourceManual  Source = "manual"
)

// RawFields 外部提供的原始结构化字段（AI抽取结果或插件抓取的DOM字段）
type RawFields struct {
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	PhoneExt      string `json:"phoneExt"`
	Province      string `json:"province"`
	City          string `json:"city"`
	District      string `json:"district"`
	Address       string `json:"address"`
	LogisticsCode string `json:"logisticsCode"`
	Platform      string `json:"platform"`
}

// NormalizedRecord 归一化后的买家信息记录，空字符串表示字段缺失。
// 只在单次请求内存活，不落库。
type NormalizedRecord struct {
	Name          string
	Phone         string
	PhoneExt      string
	Province      string
	City          string
	District      string
	Address       string
	LogisticsCode string
	Platform      string
	Source        Source
}

// Extractor 可选的外部文本抽取服务
type Extractor interface {
	ParseText(ctx context.Context, text string) (*RawFields, error)
}

// Normalizer 文本归一化器。任意输入都返回记录，从不报错：
// 外部抽取失败时静默回退到本地正则规则。
type Normalizer struct {
	extractor Extractor
}

// NewNormalizer 创建归一化器，extractor 可为 nil（纯正则模式）
func NewNormalizer(extractor Extractor) *Normalizer {
	return &Normalizer{extractor: extractor}
}

// Normalize 从自由文本抽取买家信息
func (n *Normalizer) Normalize(ctx context.Context, text string) NormalizedRecord {
	text = strings.TrimSpace(text)
	if text == "" {
		return NormalizedRecord{Source: SourcePattern}
	}

	if n.extractor != nil {
		fields, err := n.extractor.ParseText(ctx, text)
		if err == nil && fields != nil {
			rec := fromRawFields(*fields, SourceAI)
			mergePatterns(&rec, text)
			return rec
		}
		if err != nil {
			log.Warn().Err(err).Msg("ai extraction failed, falling back to pattern rules")
		}
	}

	rec := NormalizedRecord{Source: SourcePattern}
	mergePatterns(&rec, text)
	return rec
}

// NormalizeFields 归一化插件直接提交的结构化字段
func (n *Normalizer) NormalizeFields(fields RawFields) NormalizedRecord {
	return fromRawFields(fields, SourceManual)
}

// fromRawFields 对外部字段做统一脱敏
func fromRawFields(f RawFields, source Source) NormalizedRecord {
	rec := NormalizedRecord{
		Name:          strings.TrimSpace(f.Name),
		PhoneExt:      strings.TrimSpace(f.PhoneExt),
		Province:      strings.TrimSpace(f.Province),
		City:          strings.TrimSpace(f.City),
		District:      strings.TrimSpace(f.District),
		Address:       strings.TrimSpace(f.Address),
		LogisticsCode: strings.TrimSpace(f.LogisticsCode),
		Platform:      strings.TrimSpace(f.Platform),
		Source:        source,
	}
	if rec.Name != "" {
		rec.Name = maskName(rec.Name)
	}
	if phone := strings.TrimSpace(f.Phone); phone != "" {
		rec.Phone = extractPhone(phone)
	}
	return rec
}

// mergePatterns 用正则规则填充仍然缺失的字段
func mergePatterns(rec *NormalizedRecord, text string) {
	if rec.Phone == "" {
		rec.Phone = extractPhone(text)
	}
	if rec.PhoneExt == "" {
		rec.PhoneExt = extractPhoneExt(text)
	}
	if rec.Name == "" {
		rec.Name = extractName(text)
	}
	if rec.Province == "" || rec.City == "" || rec.District == "" {
		province, city, district := extractRegion(text)
		if rec.Province == "" {
			rec.Province = province
		}
		if rec.City == "" {
			rec.City = city
		}
		if rec.District == "" {
			rec.District = district
		}
	}
	if rec.LogisticsCode == "" {
		rec.LogisticsCode = extractLogisticsCode(text)
	}
	if rec.Platform == "" {
		rec.Platform = extractPlatform(text)
	}
}
