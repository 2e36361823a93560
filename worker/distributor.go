package worker

import (
	"context"

	"github.com/hibiken/asynq"
)

// TaskDistributor 任务分发接口
type TaskDistributor interface {
	// DistributeTaskRescoreRiskRecords 分发风险分衰减重算任务
	DistributeTaskRescoreRiskRecords(
		ctx context.Context,
		payload *PayloadRescoreRiskRecords,
		opts ...asynq.Option,
	) error
}

type RedisTaskDistributor struct {
	client *asynq.Client
}

func NewRedisTaskDistributor(redisOpt asynq.RedisClientOpt) TaskDistributor {
	client := asynq.NewClient(redisOpt)
	return &RedisTaskDistributor{
		client: client,
	}
}

// Close 关闭底层 asynq 客户端连接
func (d *RedisTaskDistributor) Close() error {
	return d.client.Close()
}
