package repository

import (
	"errors"

	"github.com/animall-next/internal/models"

	"gorm.io/gorm"
)

// SessionRepository 会话数据访问接口
type SessionRepository interface {
	GetByID(id string) (*models.Session, error)
	Create(session *models.Session) error
	Update(session *models.Session) error
	Delete(id string) error
}

// GormSessionRepository GORM 实现
type GormSessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository 创建会话仓库
func NewSessionRepository(db *gorm.DB) *GormSessionRepository {
	return &GormSessionRepository{db: db}
}

// GetByID 根据 ID 获取会话
func (r *GormSessionRepository) GetByID(id string) (*models.Session, error) {
	var session models.Session
	if err := r.db.Where("id = ?", id).First(&session).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &session, nil
}

// Create 创建会话
func (r *GormSessionRepository) Create(session *models.Session) error {
	return r.db.Create(session).Error
}

// Update 保存会话
func (r *GormSessionRepository) Update(session *models.Session) error {
	return r.db.Save(session).Error
}

// Delete 删除会话
func (r *GormSessionRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&models.Session{}).Error
}
