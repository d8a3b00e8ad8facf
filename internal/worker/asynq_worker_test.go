package worker

import (
	"context"
	"testing"

	"github.com/animall-next/internal/provider"
	"github.com/animall-next/internal/queue"

	"github.com/hibiken/asynq"
)

func TestHandlePosterSynthesizeSkipsInvalidPayload(t *testing.T) {
	consumer := NewConsumer(&provider.Container{})

	task, err := queue.NewPosterSynthesizeTask(queue.PosterSynthesizePayload{GenerationID: 0})
	if err != nil {
		t.Fatalf("new task failed: %v", err)
	}
	if err := consumer.handlePosterSynthesize(context.Background(), task); err != nil {
		t.Fatalf("zero generation id should be skipped: %v", err)
	}
}

func TestHandlePosterSynthesizeRejectsBadJSON(t *testing.T) {
	consumer := NewConsumer(&provider.Container{})

	task := asynq.NewTask(queue.TaskPosterSynthesize, []byte("{not json"))
	if err := consumer.handlePosterSynthesize(context.Background(), task); err == nil {
		t.Fatalf("malformed payload should error")
	}
}

func TestHandleSessionExpireSkipsEmptySession(t *testing.T) {
	consumer := NewConsumer(&provider.Container{})

	task, err := queue.NewSessionExpireTask(queue.SessionExpirePayload{SessionID: ""})
	if err != nil {
		t.Fatalf("new task failed: %v", err)
	}
	if err := consumer.handleSessionExpire(context.Background(), task); err != nil {
		t.Fatalf("empty session id should be skipped: %v", err)
	}
}

func TestRegisterNilSafe(t *testing.T) {
	var consumer *Consumer
	consumer.Register(nil)
	NewConsumer(nil).Register(nil)
}
