package models

import "time"

// Generation 海报生成请求表
// 每次生成创建一条新记录；会话内最新一条即当前可观测状态（last-request-wins）。
type Generation struct {
	ID           uint      `gorm:"primarykey" json:"id"`                              // 主键
	SessionID    string    `gorm:"type:varchar(64);not null;index" json:"session_id"` // 会话ID
	Prompt       string    `gorm:"type:text;not null" json:"prompt"`                  // 用户描述
	Style        string    `gorm:"type:varchar(100)" json:"style"`                    // 风格标签
	Quality      string    `gorm:"type:varchar(20);not null" json:"quality"`          // 画质档位（standard/hd）
	Status       string    `gorm:"type:varchar(20);not null;index" json:"status"`     // 状态（requesting/ready/failed）
	ImagePath    string    `gorm:"type:varchar(500)" json:"image_path"`               // 生成图路径（ready 时有值）
	ErrorMessage string    `gorm:"type:varchar(255)" json:"error_message"`            // 失败文案（failed 时有值）
	Committed    bool      `gorm:"default:false" json:"committed"`                    // 是否已转化为购物车商品
	CreatedAt    time.Time `gorm:"index" json:"created_at"`                           // 创建时间
	UpdatedAt    time.Time `json:"updated_at"`                                        // 更新时间
}

// TableName 指定表名
func (Generation) TableName() string {
	return "generations"
}
