package db

import (
	"context"
	"fmt"
	"time"
)

// RescoreRiskRecordTxParams 定期衰减重算事务参数
type RescoreRiskRecordTxParams struct {
	RiskRecordID int64
	Now          time.Time
	Rescore      func(evidence []Evidence, now time.Time) (int32, string)
}

// RescoreRiskRecordTx 在行锁内按当前时间重算单条风险记录的分值。
// 证据不变，只有衰减因子随时间变化；last_seen_at 保持不动。
func (store *SQLStore) RescoreRiskRecordTx(ctx context.Context, arg RescoreRiskRecordTxParams) (RiskRecord, error) {
	var result RiskRecord

	err := store.execTx(ctx, func(q *Queries) error {
		record, err := q.GetRiskRecordForUpdate(ctx, arg.RiskRecordID)
		if err != nil {
			return fmt.Errorf("lock risk record: %w", err)
		}

		evidence, err := q.ListEvidenceByRiskRecord(ctx, record.ID)
		if err != nil {
			return fmt.Errorf("list evidence: %w", err)
		}

		score, level := arg.Rescore(evidence, arg.Now)

		result, err = q.UpdateRiskRecordScore(ctx, UpdateRiskRecordScoreParams{
			ReportCount:  record.ReportCount,
			RiskScore:    score,
			RiskLevel:    level,
			LastSeenAt:   record.LastSeenAt,
			LastScoredAt: arg.Now,
			ID:           record.ID,
		})
		if err != nil {
			return fmt.Errorf("update risk record score: %w", err)
		}

		return nil
	})

	return result, err
}
