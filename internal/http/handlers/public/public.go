package public

import (
	"time"

	"github.com/animall-next/internal/cache"
	"github.com/animall-next/internal/constants"
	"github.com/animall-next/internal/http/response"
	"github.com/animall-next/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	publicConfigCacheKey     = "public:config"
	publicConfigCacheTTL     = 5 * time.Minute
	publicCategoriesCacheKey = "public:categories"
	publicCategoriesCacheTTL = 60 * time.Second
)

// GetConfig 获取全局配置
func (h *Handler) GetConfig(c *gin.Context) {
	var cached map[string]interface{}
	if hit, err := cache.GetJSON(c.Request.Context(), publicConfigCacheKey, &cached); err == nil && hit {
		response.Success(c, cached)
		return
	}

	data := map[string]interface{}{
		"site_name": constants.SiteName,
		"currency":  constants.SiteCurrency,
		"views":     []string{constants.ViewHome, constants.ViewShop, constants.ViewGenerate},
		"assistant": map[string]interface{}{
			"enabled": h.AssistantService.Enabled(),
		},
		"generation": map[string]interface{}{
			"default_style":  h.Config.Generation.DefaultStyle,
			"price_standard": h.Config.Generation.PriceStandard,
			"price_hd":       h.Config.Generation.PriceHD,
			"qualities":      []string{constants.QualityStandard, constants.QualityHD},
		},
	}

	_ = cache.SetJSON(c.Request.Context(), publicConfigCacheKey, data, publicConfigCacheTTL)
	response.Success(c, data)
}

// GetCategories 获取分类列表
func (h *Handler) GetCategories(c *gin.Context) {
	var cached []map[string]interface{}
	if hit, err := cache.GetJSON(c.Request.Context(), publicCategoriesCacheKey, &cached); err == nil && hit {
		response.Success(c, gin.H{"categories": cached})
		return
	}

	categories, err := h.CatalogService.ListCategories()
	if err != nil {
		respondError(c, response.CodeInternal, "Failed to load categories.", err)
		return
	}
	items := make([]map[string]interface{}, 0, len(categories))
	for _, category := range categories {
		items = append(items, map[string]interface{}{
			"slug": category.Slug,
			"name": category.Name,
		})
	}

	_ = cache.SetJSON(c.Request.Context(), publicCategoriesCacheKey, items, publicCategoriesCacheTTL)
	response.Success(c, gin.H{"categories": items})
}

// GetProducts 获取在售海报列表；?category= 筛选分类，缺省返回全部
func (h *Handler) GetProducts(c *gin.Context) {
	products, err := h.CatalogService.ListProducts(c.Query("category"))
	if err != nil {
		respondError(c, response.CodeInternal, "Failed to load posters.", err)
		return
	}
	response.Success(c, gin.H{"products": products})
}

// GetProductBySlug 获取单个在售海报
func (h *Handler) GetProductBySlug(c *gin.Context) {
	product, err := h.CatalogService.GetProductBySlug(c.Param("slug"))
	if err != nil {
		respondWithMappedError(c, err, []mappedHandlerError{
			{target: service.ErrNotFound, code: response.CodeNotFound, msg: "Poster not found."},
		}, response.CodeInternal, "Failed to load poster.")
		return
	}
	response.Success(c, product)
}

// Health 健康检查
func (h *Handler) Health(c *gin.Context) {
	response.Success(c, gin.H{"status": "ok"})
}
