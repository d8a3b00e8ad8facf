package repository

import (
	"fmt"
	"testing"
	"time"

	"github.com/animall-next/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupProductRepositoryTest(t *testing.T) (*GormProductRepository, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:product_repository_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Category{}, &models.Product{}); err != nil {
		t.Fatalf("migrate category/product failed: %v", err)
	}
	return NewProductRepository(db), db
}

func createPoster(t *testing.T, repo *GormProductRepository, categoryID uint, slug string, active bool, sortOrder int) *models.Product {
	t.Helper()
	product := &models.Product{
		CategoryID:  categoryID,
		Slug:        slug,
		Title:       slug,
		PriceAmount: models.NewMoneyFromDecimal(decimal.NewFromFloat(24.99)),
		IsActive:    active,
		SortOrder:   sortOrder,
	}
	if err := repo.Create(product); err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	return product
}

func TestProductListFilters(t *testing.T) {
	repo, db := setupProductRepositoryTest(t)
	shonen := &models.Category{Slug: "shonen", Name: "Shonen", SortOrder: 1}
	mecha := &models.Category{Slug: "mecha", Name: "Mecha", SortOrder: 2}
	for _, c := range []*models.Category{shonen, mecha} {
		if err := db.Create(c).Error; err != nil {
			t.Fatalf("create category failed: %v", err)
		}
	}
	createPoster(t, repo, shonen.ID, "poster-b", true, 2)
	createPoster(t, repo, shonen.ID, "poster-a", true, 1)
	createPoster(t, repo, mecha.ID, "poster-c", true, 3)
	createPoster(t, repo, mecha.ID, "poster-hidden", false, 4)

	all, err := repo.List(ProductListFilter{OnlyActive: true})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("active products want 3 got %d", len(all))
	}
	if all[0].Slug != "poster-a" || all[1].Slug != "poster-b" {
		t.Fatalf("products out of sort order: %q, %q", all[0].Slug, all[1].Slug)
	}

	byCategory, err := repo.List(ProductListFilter{CategorySlug: "mecha", OnlyActive: true})
	if err != nil {
		t.Fatalf("list by category failed: %v", err)
	}
	if len(byCategory) != 1 || byCategory[0].Slug != "poster-c" {
		t.Fatalf("unexpected category listing: %+v", byCategory)
	}

	withHidden, err := repo.List(ProductListFilter{CategorySlug: "mecha"})
	if err != nil {
		t.Fatalf("list with hidden failed: %v", err)
	}
	if len(withHidden) != 2 {
		t.Fatalf("unfiltered category want 2 got %d", len(withHidden))
	}
}

func TestProductGetBySlugActiveFilter(t *testing.T) {
	repo, db := setupProductRepositoryTest(t)
	category := &models.Category{Slug: "seinen", Name: "Seinen"}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	createPoster(t, repo, category.ID, "night-market", false, 1)

	hidden, err := repo.GetBySlug("night-market", true)
	if err != nil {
		t.Fatalf("get by slug failed: %v", err)
	}
	if hidden != nil {
		t.Fatalf("inactive product should be invisible with onlyActive")
	}

	visible, err := repo.GetBySlug("night-market", false)
	if err != nil {
		t.Fatalf("get by slug failed: %v", err)
	}
	if visible == nil {
		t.Fatalf("product should be visible without onlyActive")
	}
}

func TestProductGetByIDMissingReturnsNil(t *testing.T) {
	repo, _ := setupProductRepositoryTest(t)

	product, err := repo.GetByID(999)
	if err != nil {
		t.Fatalf("get by id failed: %v", err)
	}
	if product != nil {
		t.Fatalf("missing product should return nil, got %+v", product)
	}
}

func TestProductCountBySlug(t *testing.T) {
	repo, db := setupProductRepositoryTest(t)
	category := &models.Category{Slug: "fantasy", Name: "Fantasy"}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	createPoster(t, repo, category.ID, "dragon-keep", true, 1)

	count, err := repo.CountBySlug("dragon-keep")
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("count want 1 got %d", count)
	}
	count, err = repo.CountBySlug("no-such")
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("count want 0 got %d", count)
	}
}
