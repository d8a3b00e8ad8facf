package models

import "time"

// CartItem 购物车项
// 唯一索引保证同一会话内每个商品最多一条记录；重复加购只递增数量。
// 会话数据随会话回收，不做软删除（移除后重加不会撞唯一索引）。
type CartItem struct {
	ID        uint      `gorm:"primarykey" json:"id"`                                                             // 主键
	SessionID string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_cart_session_product" json:"session_id"` // 会话ID
	ProductID uint      `gorm:"not null;uniqueIndex:idx_cart_session_product" json:"product_id"`                  // 商品ID
	Quantity  int       `gorm:"not null" json:"quantity"`                                                         // 数量（恒 >= 1）
	CreatedAt time.Time `gorm:"index" json:"created_at"`                                                          // 创建时间
	UpdatedAt time.Time `gorm:"index" json:"updated_at"`                                                          // 更新时间

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"` // 关联商品
}

// TableName 指定表名
func (CartItem) TableName() string {
	return "cart_items"
}
