package risk

import (
	"context"
	"errors"
	"fmt"
	"time"

	db "github.com/maizecandy/seller-help/db/sqlc"
	"github.com/maizecandy/seller-help/fingerprint"
	"github.com/maizecandy/seller-help/normalize"
	"github.com/maizecandy/seller-help/util"
)

// 搜索结果上限
const maxSearchResults = 50

// ErrEmptyCriteria 搜索条件至少要有一个非空字段
var ErrEmptyCriteria = errors.New("at least one search field is required")

// Aggregator 风险记录聚合器，RiskRecord 的唯一写方。
// 所有写入都经过存储层的按指纹串行化事务，评分在锁内重算。
type Aggregator struct {
	store db.Store
}

// NewAggregator 创建聚合器
func NewAggregator(store db.Store) *Aggregator {
	return &Aggregator{store: store}
}

// AddEvidenceParams 一次举报的全部输入
type AddEvidenceParams struct {
	Record       normalize.NormalizedRecord
	MerchantID   int64
	RiskType     string
	EvidenceKind string
	Description  string
	EvidenceRefs []string
}

// AddEvidence 追加证据并重算风险分。
// 记录不存在时创建；同一指纹的并发举报串行执行，逐条落库。
func (agg *Aggregator) AddEvidence(ctx context.Context, fp fingerprint.Fingerprint, arg AddEvidenceParams) (db.AddEvidenceTxResult, error) {
	riskType := arg.RiskType
	if !ValidRiskType(riskType) {
		riskType = RiskTypeUnknown
	}
	kind := arg.EvidenceKind
	if !ValidEvidenceKind(kind) {
		kind = EvidenceKindUnknown
	}
	source := string(arg.Record.Source)
	if source == "" {
		source = string(normalize.SourceManual)
	}

	result, err := agg.store.AddEvidenceTx(ctx, db.AddEvidenceTxParams{
		Fingerprint:  string(fp),
		BuyerName:    arg.Record.Name,
		Phone:        arg.Record.Phone,
		PhoneExt:     arg.Record.PhoneExt,
		Province:     arg.Record.Province,
		City:         arg.Record.City,
		District:     arg.Record.District,
		Platform:     arg.Record.Platform,
		MerchantID:   arg.MerchantID,
		RiskType:     riskType,
		EvidenceKind: kind,
		Description:  arg.Description,
		EvidenceRefs: arg.EvidenceRefs,
		Source:       source,
		Now:          time.Now(),
		Rescore:      rescore,
	})
	if err != nil {
		return db.AddEvidenceTxResult{}, fmt.Errorf("add evidence: %w", err)
	}
	return result, nil
}

// Lookup 按指纹精确查询。未命中返回 found=false，不作为错误处理。
func (agg *Aggregator) Lookup(ctx context.Context, fp fingerprint.Fingerprint) (db.RiskRecord, bool, error) {
	record, err := agg.store.GetRiskRecordByFingerprint(ctx, string(fp))
	if errors.Is(err, db.ErrRecordNotFound) {
		return db.RiskRecord{}, false, nil
	}
	if err != nil {
		return db.RiskRecord{}, false, err
	}
	return record, true, nil
}

// SearchCriteria 搜索条件，任意非空子集
type SearchCriteria struct {
	Phone    string
	PhoneExt string
	Province string
	City     string
}

// Search 按条件搜索风险记录，风险分降序，最多返回50条。
// 无匹配返回空集而不是错误。
// 库里只存脱敏手机号，完整号码在这里统一脱敏后再匹配。
func (agg *Aggregator) Search(ctx context.Context, criteria SearchCriteria) ([]db.RiskRecord, error) {
	if criteria.Phone == "" && criteria.PhoneExt == "" && criteria.Province == "" && criteria.City == "" {
		return nil, ErrEmptyCriteria
	}
	return agg.store.SearchRiskRecords(ctx, db.SearchRiskRecordsParams{
		Phone:    util.MaskPhone(criteria.Phone),
		PhoneExt: criteria.PhoneExt,
		Province: criteria.Province,
		City:     criteria.City,
		Limit:    maxSearchResults,
	})
}

// RescoreStale 重算久未评分的记录，让衰减后的分值及时反映在查询结果里
func (agg *Aggregator) RescoreStale(ctx context.Context, scoredBefore time.Time, batchSize int32) (int, error) {
	records, err := agg.store.ListStaleRiskRecords(ctx, db.ListStaleRiskRecordsParams{
		LastScoredAt: scoredBefore,
		Limit:        batchSize,
	})
	if err != nil {
		return 0, fmt.Errorf("list stale risk records: %w", err)
	}

	for i, record := range records {
		_, err := agg.store.RescoreRiskRecordTx(ctx, db.RescoreRiskRecordTxParams{
			RiskRecordID: record.ID,
			Now:          time.Now(),
			Rescore:      rescore,
		})
		if err != nil {
			return i, fmt.Errorf("rescore risk record %d: %w", record.ID, err)
		}
	}
	return len(records), nil
}

// rescore 存储层锁内使用的纯计算回调
func rescore(evidence []db.Evidence, now time.Time) (int32, string) {
	score, level := Score(evidence, now)
	return score, string(level)
}
