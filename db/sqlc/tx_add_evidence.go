package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

// AddEvidenceTxParams 追加举报证据事务参数。
// Rescore 回调在行锁内对全量证据重算分值，必须是纯计算，不做网络调用。
type AddEvidenceTxParams struct {
	Fingerprint  string
	BuyerName    string // 已脱敏
	Phone        string // 已脱敏
	PhoneExt     string
	Province     string
	City         string
	District     string
	Platform     string
	MerchantID   int64
	RiskType     string
	EvidenceKind string
	Description  string
	EvidenceRefs []string
	Source       string
	Now          time.Time
	Rescore      func(evidence []Evidence, now time.Time) (int32, string)
}

// AddEvidenceTxResult 追加举报证据事务结果
type AddEvidenceTxResult struct {
	RiskRecord    RiskRecord
	Evidence      Evidence
	RecordCreated bool
}

// AddEvidenceTx 风险记录的唯一写入口。
// 按指纹行锁串行化：同一买家的并发举报逐条追加，不丢更新。
func (store *SQLStore) AddEvidenceTx(ctx context.Context, arg AddEvidenceTxParams) (AddEvidenceTxResult, error) {
	var result AddEvidenceTxResult

	err := store.execTx(ctx, func(q *Queries) error {
		var err error
		result, err = addEvidence(ctx, q, arg)
		return err
	})

	return result, err
}

// addEvidence 事务体。记录不存在时用 ON CONFLICT DO NOTHING 创建：
// 并发创建输掉的一方不会触发唯一键异常（异常会让整个事务进入中止态，
// 后续语句全部失败），而是拿到空结果，等赢家提交后回头锁定已有行。
func addEvidence(ctx context.Context, q *Queries, arg AddEvidenceTxParams) (AddEvidenceTxResult, error) {
	var result AddEvidenceTxResult

	record, err := q.GetRiskRecordByFingerprintForUpdate(ctx, arg.Fingerprint)
	if errors.Is(err, ErrRecordNotFound) {
		record, err = q.CreateRiskRecord(ctx, CreateRiskRecordParams{
			Fingerprint: arg.Fingerprint,
			BuyerName:   textOrNull(arg.BuyerName),
			Phone:       textOrNull(arg.Phone),
			PhoneExt:    textOrNull(arg.PhoneExt),
			Province:    textOrNull(arg.Province),
			City:        textOrNull(arg.City),
			District:    textOrNull(arg.District),
			Platform:    textOrNull(arg.Platform),
			FirstSeenAt: arg.Now,
		})
		switch {
		case err == nil:
			result.RecordCreated = true
		case errors.Is(err, ErrRecordNotFound):
			// DO NOTHING 没有返回行，说明并发创建竞争失败，锁定赢家插入的行
			record, err = q.GetRiskRecordByFingerprintForUpdate(ctx, arg.Fingerprint)
			if err != nil {
				return result, fmt.Errorf("lock risk record after conflict: %w", err)
			}
		default:
			return result, fmt.Errorf("create risk record: %w", err)
		}
	} else if err != nil {
		return result, fmt.Errorf("lock risk record: %w", err)
	}

	result.Evidence, err = q.CreateEvidence(ctx, CreateEvidenceParams{
		RiskRecordID: record.ID,
		MerchantID:   arg.MerchantID,
		RiskType:     arg.RiskType,
		EvidenceKind: arg.EvidenceKind,
		Description:  textOrNull(arg.Description),
		EvidenceRefs: arg.EvidenceRefs,
		Source:       arg.Source,
	})
	if err != nil {
		return result, fmt.Errorf("create evidence: %w", err)
	}

	evidence, err := q.ListEvidenceByRiskRecord(ctx, record.ID)
	if err != nil {
		return result, fmt.Errorf("list evidence: %w", err)
	}

	score, level := arg.Rescore(evidence, arg.Now)

	result.RiskRecord, err = q.UpdateRiskRecordScore(ctx, UpdateRiskRecordScoreParams{
		ReportCount:  int32(len(evidence)),
		RiskScore:    score,
		RiskLevel:    level,
		LastSeenAt:   arg.Now,
		LastScoredAt: arg.Now,
		ID:           record.ID,
	})
	if err != nil {
		return result, fmt.Errorf("update risk record score: %w", err)
	}

	return result, nil
}

func textOrNull(s string) pgtype.Text {
	if s == "" {
		return pgtype.Text{}
	}
	return pgtype.Text{String: s, Valid: true}
}
