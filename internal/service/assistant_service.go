package service

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/animall-next/internal/constants"
	"github.com/animall-next/internal/gemini"
	"github.com/animall-next/internal/logger"
	"github.com/animall-next/internal/models"
	"github.com/animall-next/internal/repository"
)

// AssistantService 导购助手服务
// 每个会话持有一个远端托管上下文的聊天句柄；同一会话内的发言串行化，
// 远程失败时落一条兜底回复，绝不让用户消息悬空。
type AssistantService struct {
	chatRepo repository.ChatMessageRepository
	aiClient gemini.Client
	enabled  bool

	mu       sync.Mutex
	sessions map[string]*assistantSession
}

// assistantSession 单会话聊天状态
type assistantSession struct {
	mu   sync.Mutex
	chat gemini.Chat
}

// NewAssistantService 创建助手服务
func NewAssistantService(chatRepo repository.ChatMessageRepository, aiClient gemini.Client, enabled bool) *AssistantService {
	return &AssistantService{
		chatRepo: chatRepo,
		aiClient: aiClient,
		enabled:  enabled,
		sessions: make(map[string]*assistantSession),
	}
}

// Enabled 助手是否启用
func (s *AssistantService) Enabled() bool {
	return s != nil && s.enabled
}

// SendMessage 发送一条用户消息并返回助手回复
func (s *AssistantService) SendMessage(ctx context.Context, sessionID, text string) (*models.ChatMessage, error) {
	if !s.Enabled() {
		return nil, ErrAssistantDisabled
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrMessageRequired
	}

	sess := s.session(sessionID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if err := s.ensureGreeting(sessionID); err != nil {
		return nil, err
	}
	userMessage := &models.ChatMessage{
		SessionID: sessionID,
		Role:      constants.ChatRoleUser,
		Text:      text,
	}
	if err := s.chatRepo.Append(userMessage); err != nil {
		return nil, err
	}

	reply := s.converse(ctx, sess, sessionID, text)
	assistantMessage := &models.ChatMessage{
		SessionID: sessionID,
		Role:      constants.ChatRoleAssistant,
		Text:      reply,
	}
	if err := s.chatRepo.Append(assistantMessage); err != nil {
		return nil, err
	}
	return assistantMessage, nil
}

// Transcript 会话完整消息记录；空会话先落一条问候语
func (s *AssistantService) Transcript(sessionID string) ([]models.ChatMessage, error) {
	if !s.Enabled() {
		return nil, ErrAssistantDisabled
	}
	sess := s.session(sessionID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if err := s.ensureGreeting(sessionID); err != nil {
		return nil, err
	}
	return s.chatRepo.ListBySession(sessionID)
}

// DropSession 丢弃会话聊天句柄（会话过期清理时调用）
func (s *AssistantService) DropSession(sessionID string) {
	if s == nil {
		return
	}
	s.mu.Lock()
	delete(s.sessions, sessionID)
	s.mu.Unlock()
}

// converse 请求远端回复；任何失败都降级为兜底文案
func (s *AssistantService) converse(ctx context.Context, sess *assistantSession, sessionID, text string) string {
	if s.aiClient == nil {
		return constants.AssistantFallbackReply
	}
	if sess.chat == nil {
		chat, err := s.aiClient.NewChat(ctx, constants.AssistantSystemInstruction)
		if err != nil {
			logger.Warnw("assistant_chat_create_failed", "session_id", sessionID, "error", err)
			return constants.AssistantFallbackReply
		}
		sess.chat = chat
	}
	reply, err := sess.chat.Send(ctx, text)
	if err != nil {
		logger.Warnw("assistant_reply_failed", "session_id", sessionID, "error", err)
		if errors.Is(err, gemini.ErrEmptyResponse) {
			return constants.AssistantEmptyReply
		}
		return constants.AssistantFallbackReply
	}
	return reply
}

// ensureGreeting 确保会话首条消息是助手问候语
func (s *AssistantService) ensureGreeting(sessionID string) error {
	messages, err := s.chatRepo.ListBySession(sessionID)
	if err != nil {
		return err
	}
	if len(messages) > 0 {
		return nil
	}
	return s.chatRepo.Append(&models.ChatMessage{
		SessionID: sessionID,
		Role:      constants.ChatRoleAssistant,
		Text:      constants.AssistantGreeting,
	})
}

// session 获取或创建会话聊天状态
func (s *AssistantService) session(sessionID string) *assistantSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[sessionID]
	if !ok {
		sess = &assistantSession{}
		s.sessions[sessionID] = sess
	}
	return sess
}
