package service

import (
	"github.com/animall-next/internal/constants"
	"github.com/animall-next/internal/models"
	"github.com/animall-next/internal/repository"
)

// ViewService 视图与购物车面板状态服务
type ViewService struct {
	sessionRepo repository.SessionRepository
}

// NewViewService 创建视图服务
func NewViewService(sessionRepo repository.SessionRepository) *ViewService {
	return &ViewService{sessionRepo: sessionRepo}
}

// validViews 合法视图集合
var validViews = map[string]bool{
	constants.ViewHome:     true,
	constants.ViewShop:     true,
	constants.ViewGenerate: true,
}

// Get 获取会话视图状态
func (s *ViewService) Get(sessionID string) (*models.Session, error) {
	session, err := s.sessionRepo.GetByID(sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

// SetView 切换视图；任意合法视图间可直接切换
func (s *ViewService) SetView(sessionID, view string) (*models.Session, error) {
	if !validViews[view] {
		return nil, ErrInvalidView
	}
	session, err := s.Get(sessionID)
	if err != nil {
		return nil, err
	}
	if session.View == view {
		return session, nil
	}
	session.View = view
	if err := s.sessionRepo.Update(session); err != nil {
		return nil, err
	}
	return session, nil
}

// OpenCart 展开购物车面板
func (s *ViewService) OpenCart(sessionID string) (*models.Session, error) {
	return s.setCartOpen(sessionID, true)
}

// CloseCart 收起购物车面板
func (s *ViewService) CloseCart(sessionID string) (*models.Session, error) {
	return s.setCartOpen(sessionID, false)
}

func (s *ViewService) setCartOpen(sessionID string, open bool) (*models.Session, error) {
	session, err := s.Get(sessionID)
	if err != nil {
		return nil, err
	}
	if session.CartOpen == open {
		return session, nil
	}
	session.CartOpen = open
	if err := s.sessionRepo.Update(session); err != nil {
		return nil, err
	}
	return session, nil
}
