package models

import "time"

// ChatMessage 助手会话消息表
// 只追加：消息一旦写入不会被修改或删除（会话过期整体清理除外）。
type ChatMessage struct {
	ID        uint      `gorm:"primarykey" json:"id"`                          // 主键
	SessionID string    `gorm:"type:varchar(64);not null;index" json:"session_id"` // 会话ID
	Role      string    `gorm:"type:varchar(20);not null" json:"role"`         // 角色（user/assistant）
	Text      string    `gorm:"type:text;not null" json:"text"`                // 消息内容
	CreatedAt time.Time `gorm:"index" json:"created_at"`                       // 创建时间
}

// TableName 指定表名
func (ChatMessage) TableName() string {
	return "chat_messages"
}
