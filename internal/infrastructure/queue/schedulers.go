package queue

import (
	"time"

	"github.com/hibiken/asynq"

	"courseplatform-backend/internal/shared"
	"courseplatform-backend/pkg/logger"
)

type Scheduler struct {
	scheduler *asynq.Scheduler
}

func NewScheduler(redisAddress string) *Scheduler {
	scheduler := asynq.NewScheduler(
		asynq.RedisClientOpt{Addr: redisAddress},
		&asynq.SchedulerOpts{
			Location: time.UTC,
			LogLevel: asynq.InfoLevel,
		},
	)
	return &Scheduler{scheduler: scheduler}
}

func (s *Scheduler) RegisterVideoJobs() error {
	return s.registerVideoReconcileJob()
}

// Reconciliation runs every 10 minutes. Webhook delivery is at-least-once
// but not guaranteed, so courses stuck in PROCESSING are polled directly
// against the provider.
func (s *Scheduler) registerVideoReconcileJob() error {
	task := asynq.NewTask(shared.TypeVideoReconcile, nil)

	_, err := s.scheduler.Register(
		"*/10 * * * *",
		task,
		asynq.Queue(shared.QueueDefault),
		asynq.MaxRetry(1),
		asynq.Timeout(5*time.Minute),
	)
	if err != nil {
		logger.Error("Failed to register VideoReconcile job", err)
		return err
	}

	logger.Info("✓ Registered VideoReconcile: every 10 minutes", map[string]interface{}{})
	return nil
}

func (s *Scheduler) Start() error {
	return s.scheduler.Run()
}

func (s *Scheduler) Shutdown() {
	s.scheduler.Shutdown()
}
