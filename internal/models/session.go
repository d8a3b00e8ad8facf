package models

import "time"

// Session 访客会话表
// 持有视图状态与购物车面板开关；购物车、聊天记录与生成记录都挂在会话下，
// 会话过期时整体回收（跨会话不保留）。
type Session struct {
	ID        string    `gorm:"type:varchar(64);primarykey" json:"id"` // 会话ID（UUID）
	View      string    `gorm:"type:varchar(20);not null" json:"view"` // 当前视图（home/shop/generate）
	CartOpen  bool      `gorm:"default:false" json:"cart_open"`        // 购物车面板是否展开
	CreatedAt time.Time `gorm:"index" json:"created_at"`               // 创建时间
	UpdatedAt time.Time `json:"updated_at"`                            // 更新时间
}

// TableName 指定表名
func (Session) TableName() string {
	return "sessions"
}
