package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"
)

const (
	TaskRescoreRiskRecords = "risk_record:rescore"

	// 单次任务最多重算多少条过期记录
	defaultRescoreBatchSize = 500
)

// PayloadRescoreRiskRecords 风险分衰减重算任务载荷
type PayloadRescoreRiskRecords struct {
	// ScoredBefore 之前打过分的记录视为过期
	ScoredBefore time.Time `json:"scored_before"`
	BatchSize    int32     `json:"batch_size"`
}

// DistributeTaskRescoreRiskRecords 分发风险分衰减重算任务
func (d *RedisTaskDistributor) DistributeTaskRescoreRiskRecords(
	ctx context.Context,
	payload *PayloadRescoreRiskRecords,
	opts ...asynq.Option,
) error {
	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	task := asynq.NewTask(TaskRescoreRiskRecords, jsonPayload, opts...)
	info, err := d.client.EnqueueContext(ctx, task)
	if err != nil {
		return fmt.Errorf("enqueue task: %w", err)
	}

	log.Info().
		Str("type", task.Type()).
		Str("queue", info.Queue).
		Int("max_retry", info.MaxRetry).
		Time("scored_before", payload.ScoredBefore).
		Msg("enqueued risk rescore task")

	return nil
}

// ProcessTaskRescoreRiskRecords 处理风险分衰减重算任务。
// 评分只依赖证据集和当前时间，重复执行是安全的。
func (p *RedisTaskProcessor) ProcessTaskRescoreRiskRecords(ctx context.Context, task *asynq.Task) error {
	var payload PayloadRescoreRiskRecords
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return fmt.Errorf("unmarshal payload: %w", asynq.SkipRetry)
	}

	batchSize := payload.BatchSize
	if batchSize <= 0 {
		batchSize = defaultRescoreBatchSize
	}

	rescored, err := p.aggregator.RescoreStale(ctx, payload.ScoredBefore, batchSize)
	if err != nil {
		return fmt.Errorf("rescore stale risk records: %w", err)
	}

	log.Info().
		Str("type", task.Type()).
		Time("scored_before", payload.ScoredBefore).
		Int("rescored", rescored).
		Msg("processed risk rescore task")

	return nil
}
