package worker

import (
	"context"
	"time"

	"github.com/hibiken/asynq"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

// 打分超过一天的记录进入重算窗口
const rescoreStaleAfter = 24 * time.Hour

// Scheduler 定时把衰减重算任务丢进队列
type Scheduler struct {
	cron        *cron.Cron
	distributor TaskDistributor
	spec        string
}

// NewScheduler 创建调度器，spec 为空时默认每天凌晨三点
func NewScheduler(distributor TaskDistributor, spec string) *Scheduler {
	if spec == "" {
		spec = "0 3 * * *"
	}
	return &Scheduler{
		cron:        cron.New(),
		distributor: distributor,
		spec:        spec,
	}
}

// Start 启动调度器
func (s *Scheduler) Start() error {
	_, err := s.cron.AddFunc(s.spec, func() {
		s.enqueueRescore()
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	log.Info().Str("spec", s.spec).Msg("risk rescore scheduler started")

	// 启动时立即补一轮，覆盖停机期间错过的窗口
	go s.enqueueRescore()

	return nil
}

// Stop 停止调度器
func (s *Scheduler) Stop() {
	s.cron.Stop()
	log.Info().Msg("risk rescore scheduler stopped")
}

func (s *Scheduler) enqueueRescore() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	err := s.distributor.DistributeTaskRescoreRiskRecords(ctx, &PayloadRescoreRiskRecords{
		ScoredBefore: time.Now().Add(-rescoreStaleAfter),
	}, asynq.MaxRetry(3), asynq.Queue(QueueDefault))
	if err != nil {
		log.Error().Err(err).Msg("failed to enqueue risk rescore task")
	}
}
