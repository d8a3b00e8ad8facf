package service

import (
	"time"

	"github.com/animall-next/internal/constants"
	"github.com/animall-next/internal/logger"
	"github.com/animall-next/internal/models"
	"github.com/animall-next/internal/queue"
	"github.com/animall-next/internal/repository"
)

// SessionService 访客会话生命周期服务
// 会话在首次请求时建立，到期后整体回收：购物车、聊天记录、生成记录
// 与落盘的生成图一并清理，跨会话不保留任何状态。
type SessionService struct {
	sessionRepo    repository.SessionRepository
	cartRepo       repository.CartRepository
	chatRepo       repository.ChatMessageRepository
	generationRepo repository.GenerationRepository
	artwork        *ArtworkService
	assistant      *AssistantService
	queueClient    *queue.Client
	expireMinutes  int
}

// NewSessionService 创建会话服务
func NewSessionService(sessionRepo repository.SessionRepository, cartRepo repository.CartRepository, chatRepo repository.ChatMessageRepository, generationRepo repository.GenerationRepository, artwork *ArtworkService, assistant *AssistantService, queueClient *queue.Client, expireMinutes int) *SessionService {
	if expireMinutes <= 0 {
		expireMinutes = 720
	}
	return &SessionService{
		sessionRepo:    sessionRepo,
		cartRepo:       cartRepo,
		chatRepo:       chatRepo,
		generationRepo: generationRepo,
		artwork:        artwork,
		assistant:      assistant,
		queueClient:    queueClient,
		expireMinutes:  expireMinutes,
	}
}

// Ensure 获取会话；不存在时创建并登记过期清理任务
func (s *SessionService) Ensure(sessionID string) (*models.Session, error) {
	session, err := s.sessionRepo.GetByID(sessionID)
	if err != nil {
		return nil, err
	}
	if session != nil {
		return session, nil
	}

	session = &models.Session{
		ID:   sessionID,
		View: constants.ViewHome,
	}
	if err := s.sessionRepo.Create(session); err != nil {
		return nil, err
	}
	delay := time.Duration(s.expireMinutes) * time.Minute
	if err := s.queueClient.EnqueueSessionExpire(queue.SessionExpirePayload{SessionID: sessionID}, delay); err != nil {
		logger.Warnw("session_expire_enqueue_failed", "session_id", sessionID, "error", err)
	}
	logger.Infow("session_created", "session_id", sessionID)
	return session, nil
}

// Purge 整体回收一个会话的全部数据
func (s *SessionService) Purge(sessionID string) error {
	if sessionID == "" {
		return nil
	}

	generations, err := s.generationRepo.ListBySession(sessionID)
	if err != nil {
		return err
	}
	for _, generation := range generations {
		if generation.ImagePath == "" {
			continue
		}
		if err := s.artwork.Remove(generation.ImagePath); err != nil {
			logger.Warnw("session_purge_artwork_failed", "session_id", sessionID, "generation_id", generation.ID, "error", err)
		}
	}

	if err := s.cartRepo.ClearBySession(sessionID); err != nil {
		return err
	}
	if err := s.chatRepo.DeleteBySession(sessionID); err != nil {
		return err
	}
	if err := s.generationRepo.DeleteBySession(sessionID); err != nil {
		return err
	}
	if err := s.sessionRepo.Delete(sessionID); err != nil {
		return err
	}
	if s.assistant != nil {
		s.assistant.DropSession(sessionID)
	}
	logger.Infow("session_purged", "session_id", sessionID)
	return nil
}
