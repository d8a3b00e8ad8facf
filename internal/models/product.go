package models

import (
	"time"

	"gorm.io/gorm"
)

// Product 海报商品表
// 既包含种子目录里的固定海报，也包含生成流程产出的定制海报。
// 定制海报 is_custom=true 且 is_active=false，只通过购物车可见。
type Product struct {
	ID          uint           `gorm:"primarykey" json:"id"`                              // 主键
	CategoryID  uint           `gorm:"not null;index" json:"category_id"`                 // 分类ID
	Slug        string         `gorm:"uniqueIndex;not null" json:"slug"`                  // 唯一标识（定制海报使用 custom-<纳秒> 方案，与种子不冲突）
	Title       string         `gorm:"not null" json:"title"`                             // 标题
	Description string         `gorm:"type:text" json:"description"`                      // 描述
	PriceAmount Money          `gorm:"type:decimal(20,2);not null;default:0" json:"price_amount"` // 价格金额
	Image       string         `gorm:"type:varchar(500)" json:"image"`                    // 图片引用（URL 或 artwork 路径）
	IsCustom    bool           `gorm:"default:false;index" json:"is_custom"`              // 是否 AI 生成的定制海报
	IsActive    bool           `gorm:"default:true;index" json:"is_active"`               // 是否进入公开目录
	SortOrder   int            `gorm:"default:0;index" json:"sort_order"`                 // 排序权重
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`                           // 创建时间
	UpdatedAt   time.Time      `json:"updated_at"`                                        // 更新时间
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`                                    // 软删除时间

	// 关联
	Category Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"` // 分类信息
}

// TableName 指定表名
func (Product) TableName() string {
	return "products"
}
