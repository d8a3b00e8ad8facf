package provider

import (
	"context"
	"time"

	"github.com/animall-next/internal/cache"
	"github.com/animall-next/internal/config"
	"github.com/animall-next/internal/gemini"
	"github.com/animall-next/internal/logger"
	"github.com/animall-next/internal/models"
	"github.com/animall-next/internal/queue"
	"github.com/animall-next/internal/repository"
	"github.com/animall-next/internal/service"
)

// Container 依赖注入容器
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client
	AIClient    gemini.Client

	// Repositories
	CategoryRepo    repository.CategoryRepository
	ProductRepo     repository.ProductRepository
	CartRepo        repository.CartRepository
	ChatMessageRepo repository.ChatMessageRepository
	GenerationRepo  repository.GenerationRepository
	SessionRepo     repository.SessionRepository

	// Services
	CatalogService    *service.CatalogService
	CartService       *service.CartService
	ViewService       *service.ViewService
	ArtworkService    *service.ArtworkService
	GenerationService *service.GenerationService
	AssistantService  *service.AssistantService
	SessionService    *service.SessionService
}

// NewContainer 初始化容器
func NewContainer(cfg *config.Config) *Container {
	// 初始化缓存
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	// 初始化队列客户端
	var queueClient *queue.Client
	if cfg.Queue.Enabled {
		qc, err := queue.NewClient(&cfg.Queue)
		if err != nil {
			logger.Errorw("provider_init_queue_client_failed", "error", err)
		} else {
			queueClient = qc
		}
	}

	// 初始化 Gemini 客户端；缺少凭据时生成与助手走兜底路径
	var aiClient gemini.Client
	client, err := gemini.NewClient(context.Background(), gemini.Options{
		APIKey:       cfg.Gemini.APIKey,
		ChatModel:    cfg.Gemini.ChatModel,
		TextModel:    cfg.Gemini.TextModel,
		ImageModel:   cfg.Gemini.ImageModel,
		ImageModelHD: cfg.Gemini.ImageModelHD,
		Temperature:  cfg.Gemini.Temperature,
		HDImageSize:  cfg.Gemini.HDImageSize,
		AspectRatio:  cfg.Gemini.AspectRatio,
		Timeout:      time.Duration(cfg.Gemini.TimeoutSecond) * time.Second,
	})
	if err != nil {
		logger.Warnw("provider_init_gemini_failed", "error", err)
	} else {
		aiClient = client
	}

	c := &Container{
		Config:      cfg,
		QueueClient: queueClient,
		AIClient:    aiClient,
	}

	// 1. 初始化 Repositories
	c.initRepositories()

	// 2. 初始化 Services
	c.initServices()

	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.CategoryRepo = repository.NewCategoryRepository(db)
	c.ProductRepo = repository.NewProductRepository(db)
	c.CartRepo = repository.NewCartRepository(db)
	c.ChatMessageRepo = repository.NewChatMessageRepository(db)
	c.GenerationRepo = repository.NewGenerationRepository(db)
	c.SessionRepo = repository.NewSessionRepository(db)
}

func (c *Container) initServices() {
	cfg := c.Config

	c.CatalogService = service.NewCatalogService(c.ProductRepo, c.CategoryRepo)
	c.CartService = service.NewCartService(c.CartRepo, c.ProductRepo, c.SessionRepo)
	c.ViewService = service.NewViewService(c.SessionRepo)
	c.ArtworkService = service.NewArtworkService(cfg.Generation.ArtworkDir)
	c.GenerationService = service.NewGenerationService(
		c.GenerationRepo,
		c.ProductRepo,
		c.CategoryRepo,
		c.CartService,
		c.ArtworkService,
		c.AIClient,
		c.QueueClient,
		cfg.Generation,
	)
	c.AssistantService = service.NewAssistantService(c.ChatMessageRepo, c.AIClient, cfg.Assistant.Enabled)
	c.SessionService = service.NewSessionService(
		c.SessionRepo,
		c.CartRepo,
		c.ChatMessageRepo,
		c.GenerationRepo,
		c.ArtworkService,
		c.AssistantService,
		c.QueueClient,
		cfg.Session.ExpireMinutes,
	)
}
