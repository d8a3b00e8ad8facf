package public

import (
	"github.com/animall-next/internal/http/response"
	"github.com/animall-next/internal/service"

	"github.com/gin-gonic/gin"
)

// StartGenerationRequest 发起生成请求
type StartGenerationRequest struct {
	Prompt  string `json:"prompt" binding:"required"`
	Style   string `json:"style"`
	Quality string `json:"quality"`
}

// StartGeneration 发起一次海报生成
func (h *Handler) StartGeneration(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	var req StartGenerationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "Describe what should be on the poster.", err)
		return
	}
	generation, err := h.GenerationService.Start(c.Request.Context(), service.StartGenerationInput{
		SessionID: sessionID,
		Prompt:    req.Prompt,
		Style:     req.Style,
		Quality:   req.Quality,
	})
	if err != nil {
		respondWithMappedError(c, err, generationErrorRules, response.CodeInternal, "Failed to start generation.")
		return
	}
	response.Success(c, generation)
}

// GetLatestGeneration 获取会话最新一次生成的当前状态
func (h *Handler) GetLatestGeneration(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	generation, err := h.GenerationService.Latest(sessionID)
	if err != nil {
		respondWithMappedError(c, err, generationErrorRules, response.CodeInternal, "Failed to load generation.")
		return
	}
	response.Success(c, generation)
}

// CommitGeneration 将最新就绪的生成结果转化为定制商品并加入购物车
func (h *Handler) CommitGeneration(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	product, err := h.GenerationService.CommitToCart(c.Request.Context(), sessionID)
	if err != nil {
		respondWithMappedError(c, err, generationErrorRules, response.CodeInternal, "Failed to add poster to cart.")
		return
	}
	summary, err := h.CartService.Summary(sessionID)
	if err != nil {
		respondWithMappedError(c, err, cartErrorRules, response.CodeInternal, "Failed to load cart.")
		return
	}
	response.Success(c, gin.H{
		"product": product,
		"cart":    summary,
	})
}
