package repository

import (
	"github.com/animall-next/internal/models"

	"gorm.io/gorm"
)

// ChatMessageRepository 助手消息数据访问接口
type ChatMessageRepository interface {
	Append(message *models.ChatMessage) error
	ListBySession(sessionID string) ([]models.ChatMessage, error)
	DeleteBySession(sessionID string) error
}

// GormChatMessageRepository GORM 实现
type GormChatMessageRepository struct {
	db *gorm.DB
}

// NewChatMessageRepository 创建助手消息仓库
func NewChatMessageRepository(db *gorm.DB) *GormChatMessageRepository {
	return &GormChatMessageRepository{db: db}
}

// Append 追加一条消息
func (r *GormChatMessageRepository) Append(message *models.ChatMessage) error {
	return r.db.Create(message).Error
}

// ListBySession 获取会话全部消息（按时间正序）
func (r *GormChatMessageRepository) ListBySession(sessionID string) ([]models.ChatMessage, error) {
	var messages []models.ChatMessage
	if err := r.db.Where("session_id = ?", sessionID).Order("created_at ASC, id ASC").Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

// DeleteBySession 清理会话全部消息
func (r *GormChatMessageRepository) DeleteBySession(sessionID string) error {
	return r.db.Where("session_id = ?", sessionID).Delete(&models.ChatMessage{}).Error
}
