package repository

import (
	"errors"

	"github.com/animall-next/internal/models"

	"gorm.io/gorm"
)

// CartRepository 购物车数据访问接口
type CartRepository interface {
	ListBySession(sessionID string) ([]models.CartItem, error)
	GetBySessionAndProduct(sessionID string, productID uint) (*models.CartItem, error)
	Create(item *models.CartItem) error
	UpdateQuantity(item *models.CartItem, quantity int) error
	DeleteBySessionAndProduct(sessionID string, productID uint) error
	ClearBySession(sessionID string) error
	WithTx(tx *gorm.DB) CartRepository
}

// GormCartRepository GORM 实现
type GormCartRepository struct {
	db *gorm.DB
}

// NewCartRepository 创建购物车仓库
func NewCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// WithTx 绑定事务
func (r *GormCartRepository) WithTx(tx *gorm.DB) CartRepository {
	if tx == nil {
		return r
	}
	return &GormCartRepository{db: tx}
}

// ListBySession 获取会话购物车项（按加入顺序）
func (r *GormCartRepository) ListBySession(sessionID string) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := r.db.Preload("Product").Where("session_id = ?", sessionID).Order("created_at ASC, id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// GetBySessionAndProduct 获取指定商品的购物车项
func (r *GormCartRepository) GetBySessionAndProduct(sessionID string, productID uint) (*models.CartItem, error) {
	var item models.CartItem
	err := r.db.Where("session_id = ? AND product_id = ?", sessionID, productID).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Create 新增购物车项
func (r *GormCartRepository) Create(item *models.CartItem) error {
	return r.db.Create(item).Error
}

// UpdateQuantity 更新购物车项数量
func (r *GormCartRepository) UpdateQuantity(item *models.CartItem, quantity int) error {
	return r.db.Model(item).Update("quantity", quantity).Error
}

// DeleteBySessionAndProduct 删除购物车项
func (r *GormCartRepository) DeleteBySessionAndProduct(sessionID string, productID uint) error {
	return r.db.Where("session_id = ? AND product_id = ?", sessionID, productID).Delete(&models.CartItem{}).Error
}

// ClearBySession 清空会话购物车
func (r *GormCartRepository) ClearBySession(sessionID string) error {
	return r.db.Where("session_id = ?", sessionID).Delete(&models.CartItem{}).Error
}
