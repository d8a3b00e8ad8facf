package worker

import (
	"context"
	"encoding/json"

	"github.com/animall-next/internal/logger"
	"github.com/animall-next/internal/provider"
	"github.com/animall-next/internal/queue"

	"github.com/hibiken/asynq"
)

// Consumer 异步任务消费者
type Consumer struct {
	*provider.Container
}

// NewConsumer 创建消费者
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{
		Container: c,
	}
}

// Register 注册消费者
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskPosterSynthesize, c.handlePosterSynthesize)
	mux.HandleFunc(queue.TaskSessionExpire, c.handleSessionExpire)
}

func (c *Consumer) handlePosterSynthesize(ctx context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_poster_synthesize_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.PosterSynthesizePayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_poster_synthesize_unmarshal_failed", "error", err)
		return err
	}
	if payload.GenerationID == 0 {
		logger.Debugw("worker_poster_synthesize_skip_invalid_payload", "generation_id", payload.GenerationID)
		return nil
	}
	if c.GenerationService == nil {
		logger.Warnw("worker_poster_synthesize_skip_service_nil", "generation_id", payload.GenerationID)
		return nil
	}
	return c.GenerationService.Execute(ctx, payload.GenerationID)
}

func (c *Consumer) handleSessionExpire(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_session_expire_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.SessionExpirePayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_session_expire_unmarshal_failed", "error", err)
		return err
	}
	if payload.SessionID == "" {
		logger.Debugw("worker_session_expire_skip_invalid_payload")
		return nil
	}
	if c.SessionService == nil {
		logger.Warnw("worker_session_expire_skip_service_nil", "session_id", payload.SessionID)
		return nil
	}
	return c.SessionService.Purge(payload.SessionID)
}
