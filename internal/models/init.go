package models

import (
	"github.com/animall-next/internal/constants"
	"github.com/animall-next/internal/logger"

	"github.com/shopspring/decimal"
)

// seedCategories 固定分类（custom 留给生成流程产出的定制海报）
var seedCategories = []Category{
	{Slug: constants.CategoryShonen, Name: "Shonen", SortOrder: 1},
	{Slug: constants.CategoryShojo, Name: "Shojo", SortOrder: 2},
	{Slug: constants.CategorySeinen, Name: "Seinen", SortOrder: 3},
	{Slug: constants.CategoryMecha, Name: "Mecha", SortOrder: 4},
	{Slug: constants.CategoryFantasy, Name: "Fantasy", SortOrder: 5},
	{Slug: constants.CategoryCustom, Name: "Custom", SortOrder: 6},
}

type seedProduct struct {
	Slug        string
	Title       string
	Description string
	Price       string
	Image       string
	Category    string
}

// seedProducts 种子海报目录
var seedProducts = []seedProduct{
	{
		Slug:        "neon-samurai-2099",
		Title:       "Neon Samurai 2099",
		Description: "A cyberpunk warrior standing amidst the rain-slicked neon streets of Neo-Tokyo.",
		Price:       "24.99",
		Image:       "https://picsum.photos/seed/samurai/600/800",
		Category:    constants.CategorySeinen,
	},
	{
		Slug:        "cherry-blossom-academy",
		Title:       "Cherry Blossom Academy",
		Description: "Nostalgic slice-of-life scene with petals falling in the school courtyard.",
		Price:       "19.99",
		Image:       "https://picsum.photos/seed/school/600/800",
		Category:    constants.CategoryShojo,
	},
	{
		Slug:        "galactic-mecha-strike",
		Title:       "Galactic Mecha Strike",
		Description: "Giant robot defending the lunar colony from alien invaders. High contrast.",
		Price:       "29.99",
		Image:       "https://picsum.photos/seed/mecha/600/800",
		Category:    constants.CategoryMecha,
	},
	{
		Slug:        "spirit-forest-guardian",
		Title:       "Spirit Forest Guardian",
		Description: "Mystical creatures gathering around an ancient shrine in a glowing forest.",
		Price:       "22.50",
		Image:       "https://picsum.photos/seed/forest/600/800",
		Category:    constants.CategoryFantasy,
	},
	{
		Slug:        "tournament-arc-finals",
		Title:       "Tournament Arc Finals",
		Description: "Intense action shot of two rivals clashing energy beams in a stadium.",
		Price:       "24.99",
		Image:       "https://picsum.photos/seed/fight/600/800",
		Category:    constants.CategoryShonen,
	},
	{
		Slug:        "cyber-detective",
		Title:       "Cyber Detective",
		Description: "Noir style detective smoking a holographic cigarette in a rainy alley.",
		Price:       "21.00",
		Image:       "https://picsum.photos/seed/cyber/600/800",
		Category:    constants.CategorySeinen,
	},
}

// SeedCatalog 初始化种子分类与海报目录（幂等：已存在的 slug 跳过）
func SeedCatalog() error {
	categoryIDs := make(map[string]uint, len(seedCategories))
	for _, cat := range seedCategories {
		var existing Category
		err := DB.Where("slug = ?", cat.Slug).First(&existing).Error
		if err == nil {
			categoryIDs[existing.Slug] = existing.ID
			continue
		}
		record := cat
		if err := DB.Create(&record).Error; err != nil {
			return err
		}
		categoryIDs[record.Slug] = record.ID
		logger.Infow("seed_category_created", "slug", record.Slug)
	}

	for i, item := range seedProducts {
		var count int64
		if err := DB.Model(&Product{}).Where("slug = ?", item.Slug).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		price, err := decimal.NewFromString(item.Price)
		if err != nil {
			return err
		}
		product := Product{
			CategoryID:  categoryIDs[item.Category],
			Slug:        item.Slug,
			Title:       item.Title,
			Description: item.Description,
			PriceAmount: NewMoneyFromDecimal(price),
			Image:       item.Image,
			IsCustom:    false,
			IsActive:    true,
			SortOrder:   i + 1,
		}
		if err := DB.Create(&product).Error; err != nil {
			return err
		}
		logger.Infow("seed_product_created", "slug", product.Slug)
	}
	return nil
}
