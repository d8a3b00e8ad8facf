package models

import (
	"fmt"
	"testing"
	"time"

	"github.com/animall-next/internal/constants"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupSeedTest(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:seed_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&Category{}, &Product{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	DB = db
	return db
}

func TestSeedCatalog(t *testing.T) {
	db := setupSeedTest(t)

	if err := SeedCatalog(); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	var categoryCount, productCount int64
	if err := db.Model(&Category{}).Count(&categoryCount).Error; err != nil {
		t.Fatalf("count categories failed: %v", err)
	}
	if err := db.Model(&Product{}).Count(&productCount).Error; err != nil {
		t.Fatalf("count products failed: %v", err)
	}
	if categoryCount != 6 {
		t.Fatalf("categories want 6 got %d", categoryCount)
	}
	if productCount != 6 {
		t.Fatalf("products want 6 got %d", productCount)
	}

	// custom 分类必须存在且不挂种子海报
	var custom Category
	if err := db.First(&custom, "slug = ?", constants.CategoryCustom).Error; err != nil {
		t.Fatalf("custom category missing: %v", err)
	}
	var customProducts int64
	if err := db.Model(&Product{}).Where("category_id = ?", custom.ID).Count(&customProducts).Error; err != nil {
		t.Fatalf("count custom products failed: %v", err)
	}
	if customProducts != 0 {
		t.Fatalf("custom category should start empty, got %d", customProducts)
	}
}

func TestSeedCatalogIdempotent(t *testing.T) {
	db := setupSeedTest(t)

	if err := SeedCatalog(); err != nil {
		t.Fatalf("first seed failed: %v", err)
	}
	if err := SeedCatalog(); err != nil {
		t.Fatalf("second seed failed: %v", err)
	}

	var categoryCount, productCount int64
	if err := db.Model(&Category{}).Count(&categoryCount).Error; err != nil {
		t.Fatalf("count categories failed: %v", err)
	}
	if err := db.Model(&Product{}).Count(&productCount).Error; err != nil {
		t.Fatalf("count products failed: %v", err)
	}
	if categoryCount != 6 || productCount != 6 {
		t.Fatalf("re-seed must not duplicate rows: categories=%d products=%d", categoryCount, productCount)
	}
}
