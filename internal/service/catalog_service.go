package service

import (
	"strings"

	"github.com/animall-next/internal/constants"
	"github.com/animall-next/internal/models"
	"github.com/animall-next/internal/repository"
)

// CatalogService 海报目录服务
type CatalogService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

// NewCatalogService 创建目录服务
func NewCatalogService(productRepo repository.ProductRepository, categoryRepo repository.CategoryRepository) *CatalogService {
	return &CatalogService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
	}
}

// ListCategories 分类列表
func (s *CatalogService) ListCategories() ([]models.Category, error) {
	return s.categoryRepo.List()
}

// ListProducts 在售海报列表；categorySlug 为空或 all 时返回全部
func (s *CatalogService) ListProducts(categorySlug string) ([]models.Product, error) {
	filter := repository.ProductListFilter{
		OnlyActive:   true,
		WithCategory: true,
	}
	slug := strings.TrimSpace(strings.ToLower(categorySlug))
	if slug != "" && slug != constants.CategoryAll {
		filter.CategorySlug = slug
	}
	return s.productRepo.List(filter)
}

// GetProductBySlug 获取单个在售海报
func (s *CatalogService) GetProductBySlug(slug string) (*models.Product, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, ErrNotFound
	}
	product, err := s.productRepo.GetBySlug(slug, true)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrNotFound
	}
	return product, nil
}
