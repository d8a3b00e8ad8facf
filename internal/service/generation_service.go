package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/animall-next/internal/config"
	"github.com/animall-next/internal/constants"
	"github.com/animall-next/internal/gemini"
	"github.com/animall-next/internal/logger"
	"github.com/animall-next/internal/models"
	"github.com/animall-next/internal/queue"
	"github.com/animall-next/internal/repository"

	"github.com/shopspring/decimal"
)

// GenerationService 海报生成服务
// 每次请求落一条新记录，会话内以最新记录为准；合成过程走异步队列，
// 队列关闭时退化为进程内协程执行。
type GenerationService struct {
	generationRepo repository.GenerationRepository
	productRepo    repository.ProductRepository
	categoryRepo   repository.CategoryRepository
	cartService    *CartService
	artwork        *ArtworkService
	aiClient       gemini.Client
	queueClient    *queue.Client
	cfg            config.GenerationConfig
}

// NewGenerationService 创建生成服务
func NewGenerationService(generationRepo repository.GenerationRepository, productRepo repository.ProductRepository, categoryRepo repository.CategoryRepository, cartService *CartService, artwork *ArtworkService, aiClient gemini.Client, queueClient *queue.Client, cfg config.GenerationConfig) *GenerationService {
	return &GenerationService{
		generationRepo: generationRepo,
		productRepo:    productRepo,
		categoryRepo:   categoryRepo,
		cartService:    cartService,
		artwork:        artwork,
		aiClient:       aiClient,
		queueClient:    queueClient,
		cfg:            cfg,
	}
}

// StartGenerationInput 发起生成输入
type StartGenerationInput struct {
	SessionID string
	Prompt    string
	Style     string
	Quality   string
}

// Start 发起一次生成请求
func (s *GenerationService) Start(ctx context.Context, input StartGenerationInput) (*models.Generation, error) {
	prompt := strings.TrimSpace(input.Prompt)
	if prompt == "" {
		return nil, ErrPromptRequired
	}
	style := strings.TrimSpace(input.Style)
	if style == "" {
		style = s.cfg.DefaultStyle
	}
	quality := strings.TrimSpace(strings.ToLower(input.Quality))
	if quality != constants.QualityHD {
		quality = constants.QualityStandard
	}

	generation := &models.Generation{
		SessionID: input.SessionID,
		Prompt:    prompt,
		Style:     style,
		Quality:   quality,
		Status:    constants.GenerationStatusRequesting,
	}
	if err := s.generationRepo.Create(generation); err != nil {
		return nil, err
	}
	logger.Infow("generation_started",
		"generation_id", generation.ID,
		"session_id", generation.SessionID,
		"quality", generation.Quality,
	)

	if s.queueClient.Enabled() {
		if err := s.queueClient.EnqueuePosterSynthesize(queue.PosterSynthesizePayload{GenerationID: generation.ID}); err != nil {
			logger.Errorw("generation_enqueue_failed", "generation_id", generation.ID, "error", err)
			return nil, err
		}
	} else {
		go func(id uint) {
			if err := s.Execute(context.Background(), id); err != nil {
				logger.Warnw("generation_inline_execute_failed", "generation_id", id, "error", err)
			}
		}(generation.ID)
	}
	return generation, nil
}

// Execute 执行一次合成；由 worker 或进程内协程调用
func (s *GenerationService) Execute(ctx context.Context, generationID uint) error {
	generation, err := s.generationRepo.GetByID(generationID)
	if err != nil {
		return err
	}
	if generation == nil {
		logger.Debugw("generation_execute_skip_not_found", "generation_id", generationID)
		return nil
	}
	if generation.Status != constants.GenerationStatusRequesting {
		logger.Debugw("generation_execute_skip_status", "generation_id", generationID, "status", generation.Status)
		return nil
	}

	if s.aiClient == nil {
		logger.Warnw("generation_execute_no_client", "generation_id", generation.ID)
		return s.markFailed(generation)
	}

	fullPrompt := fmt.Sprintf(
		"A high quality, detailed anime poster of %s. Style: %s. Vibrant colors, highly detailed masterpiece.",
		generation.Prompt, generation.Style,
	)
	started := time.Now()
	result, err := s.aiClient.SynthesizeImage(ctx, fullPrompt, generation.Quality)
	if err != nil {
		logger.Warnw("generation_synthesize_failed",
			"generation_id", generation.ID,
			"quality", generation.Quality,
			"error", err,
		)
		return s.markFailed(generation)
	}

	imagePath, err := s.artwork.Save(result.Data, result.MIMEType)
	if err != nil {
		logger.Errorw("generation_artwork_save_failed", "generation_id", generation.ID, "error", err)
		return s.markFailed(generation)
	}

	generation.Status = constants.GenerationStatusReady
	generation.ImagePath = imagePath
	generation.ErrorMessage = ""
	if err := s.generationRepo.Update(generation); err != nil {
		return err
	}
	logger.Infow("generation_ready",
		"generation_id", generation.ID,
		"session_id", generation.SessionID,
		"elapsed_ms", time.Since(started).Milliseconds(),
	)
	return nil
}

// Latest 会话最新生成记录
func (s *GenerationService) Latest(sessionID string) (*models.Generation, error) {
	generation, err := s.generationRepo.LatestBySession(sessionID)
	if err != nil {
		return nil, err
	}
	if generation == nil {
		return nil, ErrNotFound
	}
	return generation, nil
}

// CommitToCart 将最新的就绪生成结果转化为定制商品并加入购物车
// 商品描述由文案模型补全，远程失败时使用兜底文案，不会导致提交失败。
func (s *GenerationService) CommitToCart(ctx context.Context, sessionID string) (*models.Product, error) {
	generation, err := s.generationRepo.LatestBySession(sessionID)
	if err != nil {
		return nil, err
	}
	if generation == nil || generation.Status != constants.GenerationStatusReady {
		return nil, ErrGenerationNotReady
	}

	product := &models.Product{
		CategoryID:  s.customCategoryID(),
		Slug:        fmt.Sprintf("custom-%d", time.Now().UnixNano()),
		Title:       customTitle(generation.Prompt),
		Description: s.describeCustomPoster(ctx, generation.Prompt, generation.Style),
		PriceAmount: s.priceForQuality(generation.Quality),
		Image:       generation.ImagePath,
		IsCustom:    true,
		IsActive:    false,
	}
	if err := s.productRepo.Create(product); err != nil {
		return nil, err
	}
	if err := s.cartService.AddItem(sessionID, product.ID, 1); err != nil {
		return nil, err
	}

	generation.Committed = true
	if err := s.generationRepo.Update(generation); err != nil {
		return nil, err
	}
	logger.Infow("generation_committed",
		"generation_id", generation.ID,
		"session_id", sessionID,
		"product_id", product.ID,
	)
	return product, nil
}

// markFailed 标记失败并写入面向用户的失败文案
func (s *GenerationService) markFailed(generation *models.Generation) error {
	generation.Status = constants.GenerationStatusFailed
	generation.ErrorMessage = constants.GenerationFailedMessage
	return s.generationRepo.Update(generation)
}

// describeCustomPoster 生成定制商品描述；任何失败都回退到兜底文案
func (s *GenerationService) describeCustomPoster(ctx context.Context, prompt, style string) string {
	descPrompt := fmt.Sprintf(
		`Write a short, exciting, marketing-style description (max 40 words) for an anime poster titled %q in the genre/style of %q. Focus on visual impact.`,
		prompt, style,
	)
	if s.aiClient == nil {
		return constants.CustomDescriptionFallback
	}
	text, err := s.aiClient.SynthesizeText(ctx, descPrompt)
	if err != nil {
		logger.Debugw("generation_describe_fallback", "error", err)
		return constants.CustomDescriptionFallback
	}
	if strings.TrimSpace(text) == "" {
		return constants.CustomDescriptionEmptyFallback
	}
	return text
}

// priceForQuality 按画质档位取定价
func (s *GenerationService) priceForQuality(quality string) models.Money {
	raw := s.cfg.PriceStandard
	if quality == constants.QualityHD {
		raw = s.cfg.PriceHD
	}
	price, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		logger.Warnw("generation_price_parse_failed", "raw", raw, "error", err)
		price = decimal.NewFromFloat(29.99)
	}
	return models.NewMoneyFromDecimal(price)
}

// customCategoryID 定制分类 ID；分类缺失时归入未分类（0）
func (s *GenerationService) customCategoryID() uint {
	category, err := s.categoryRepo.GetBySlug(constants.CategoryCustom)
	if err != nil || category == nil {
		return 0
	}
	return category.ID
}

// customTitle 从描述截取定制商品标题
func customTitle(prompt string) string {
	runes := []rune(prompt)
	if len(runes) <= 20 {
		return "Custom: " + prompt
	}
	return "Custom: " + string(runes[:20]) + "..."
}
