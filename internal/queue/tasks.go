package queue

import (
	"encoding/json"

	"github.com/animall-next/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// TaskPosterSynthesize 海报合成任务
	TaskPosterSynthesize = constants.TaskPosterSynthesize
	// TaskSessionExpire 会话过期清理任务
	TaskSessionExpire = constants.TaskSessionExpire
)

// PosterSynthesizePayload 海报合成任务载荷
type PosterSynthesizePayload struct {
	GenerationID uint `json:"generation_id"`
}

// SessionExpirePayload 会话过期清理任务载荷
type SessionExpirePayload struct {
	SessionID string `json:"session_id"`
}

// NewPosterSynthesizeTask 创建海报合成任务
func NewPosterSynthesizeTask(payload PosterSynthesizePayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskPosterSynthesize, body), nil
}

// NewSessionExpireTask 创建会话过期清理任务
func NewSessionExpireTask(payload SessionExpirePayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskSessionExpire, body), nil
}
