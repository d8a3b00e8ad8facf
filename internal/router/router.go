package router

import (
	"fmt"
	"strings"

	"github.com/animall-next/internal/cache"
	"github.com/animall-next/internal/config"
	publichandlers "github.com/animall-next/internal/http/handlers/public"
	"github.com/animall-next/internal/logger"
	"github.com/animall-next/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	publicHandler := publichandlers.New(c)
	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = "animall"
	}
	redisClient := cache.Client()
	// 生成与助手接口共用一条限流规则（远程调用昂贵）
	aiRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:ai", redisPrefix),
		WindowSeconds: cfg.Security.AIRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.AIRateLimit.MaxRequests,
	}

	// 中间件
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	// 静态文件服务（生成的海报图）
	r.Static("/artwork", cfg.Generation.ArtworkDir)

	r.GET("/health", publicHandler.Health)

	// API 路由组
	apiV1 := r.Group("/api/v1")
	{
		// 公开目录接口（无会话也可访问）
		public := apiV1.Group("/public")
		{
			public.GET("/config", publicHandler.GetConfig)
			public.GET("/categories", publicHandler.GetCategories)
			public.GET("/products", publicHandler.GetProducts)
			public.GET("/products/:slug", publicHandler.GetProductBySlug)
		}

		// 会话接口（自动签发会话）
		session := apiV1.Group("")
		session.Use(SessionMiddleware(c.SessionService))
		{
			session.GET("/view", publicHandler.GetView)
			session.PUT("/view", publicHandler.SetView)

			session.GET("/cart", publicHandler.GetCart)
			session.POST("/cart/items", publicHandler.AddCartItem)
			session.PATCH("/cart/items/:product_id", publicHandler.AdjustCartItem)
			session.DELETE("/cart/items/:product_id", publicHandler.DeleteCartItem)
			session.DELETE("/cart", publicHandler.ClearCart)
			session.POST("/cart/open", publicHandler.OpenCartPanel)
			session.POST("/cart/close", publicHandler.CloseCartPanel)

			session.POST("/generations", RateLimitMiddleware(redisClient, aiRule, KeyBySession), publicHandler.StartGeneration)
			session.GET("/generations/latest", publicHandler.GetLatestGeneration)
			session.POST("/generations/commit", publicHandler.CommitGeneration)

			session.POST("/assistant/messages", RateLimitMiddleware(redisClient, aiRule, KeyBySession), publicHandler.SendAssistantMessage)
			session.GET("/assistant/messages", publicHandler.GetAssistantTranscript)
		}
	}

	return r
}
