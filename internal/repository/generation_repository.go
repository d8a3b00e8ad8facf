package repository

import (
	"errors"

	"github.com/animall-next/internal/models"

	"gorm.io/gorm"
)

// GenerationRepository 生成记录数据访问接口
type GenerationRepository interface {
	Create(generation *models.Generation) error
	GetByID(id uint) (*models.Generation, error)
	LatestBySession(sessionID string) (*models.Generation, error)
	ListBySession(sessionID string) ([]models.Generation, error)
	Update(generation *models.Generation) error
	DeleteBySession(sessionID string) error
}

// GormGenerationRepository GORM 实现
type GormGenerationRepository struct {
	db *gorm.DB
}

// NewGenerationRepository 创建生成记录仓库
func NewGenerationRepository(db *gorm.DB) *GormGenerationRepository {
	return &GormGenerationRepository{db: db}
}

// Create 创建生成记录
func (r *GormGenerationRepository) Create(generation *models.Generation) error {
	return r.db.Create(generation).Error
}

// GetByID 根据 ID 获取生成记录
func (r *GormGenerationRepository) GetByID(id uint) (*models.Generation, error) {
	var generation models.Generation
	if err := r.db.First(&generation, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &generation, nil
}

// LatestBySession 获取会话最新一条生成记录
func (r *GormGenerationRepository) LatestBySession(sessionID string) (*models.Generation, error) {
	var generation models.Generation
	err := r.db.Where("session_id = ?", sessionID).Order("id DESC").First(&generation).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &generation, nil
}

// ListBySession 获取会话全部生成记录（按创建顺序）
func (r *GormGenerationRepository) ListBySession(sessionID string) ([]models.Generation, error) {
	var generations []models.Generation
	if err := r.db.Where("session_id = ?", sessionID).Order("id ASC").Find(&generations).Error; err != nil {
		return nil, err
	}
	return generations, nil
}

// Update 保存生成记录
func (r *GormGenerationRepository) Update(generation *models.Generation) error {
	return r.db.Save(generation).Error
}

// DeleteBySession 清理会话全部生成记录
func (r *GormGenerationRepository) DeleteBySession(sessionID string) error {
	return r.db.Where("session_id = ?", sessionID).Delete(&models.Generation{}).Error
}
