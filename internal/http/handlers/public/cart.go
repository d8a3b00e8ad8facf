package public

import (
	"strconv"

	"github.com/animall-next/internal/http/response"

	"github.com/gin-gonic/gin"
)

// AddCartItemRequest 加购请求
type AddCartItemRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity"`
}

// AdjustCartItemRequest 数量调整请求
type AdjustCartItemRequest struct {
	Delta int `json:"delta" binding:"required"`
}

// GetCart 获取购物车汇总
func (h *Handler) GetCart(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	summary, err := h.CartService.Summary(sessionID)
	if err != nil {
		respondWithMappedError(c, err, cartErrorRules, response.CodeInternal, "Failed to load cart.")
		return
	}
	response.Success(c, summary)
}

// AddCartItem 加购；重复加购只递增数量，并展开购物车面板
func (h *Handler) AddCartItem(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	var req AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "Invalid request body.", err)
		return
	}
	if err := h.CartService.AddItem(sessionID, req.ProductID, req.Quantity); err != nil {
		respondWithMappedError(c, err, cartErrorRules, response.CodeInternal, "Failed to update cart.")
		return
	}
	summary, err := h.CartService.Summary(sessionID)
	if err != nil {
		respondWithMappedError(c, err, cartErrorRules, response.CodeInternal, "Failed to load cart.")
		return
	}
	response.Success(c, summary)
}

// AdjustCartItem 调整购物车项数量；结果恒不低于 1
func (h *Handler) AdjustCartItem(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	productID, ok := parseProductID(c)
	if !ok {
		return
	}
	var req AdjustCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "Invalid request body.", err)
		return
	}
	if err := h.CartService.AdjustQuantity(sessionID, productID, req.Delta); err != nil {
		respondWithMappedError(c, err, cartErrorRules, response.CodeInternal, "Failed to update cart.")
		return
	}
	summary, err := h.CartService.Summary(sessionID)
	if err != nil {
		respondWithMappedError(c, err, cartErrorRules, response.CodeInternal, "Failed to load cart.")
		return
	}
	response.Success(c, summary)
}

// DeleteCartItem 删除购物车项；条目不存在时同样返回成功
func (h *Handler) DeleteCartItem(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	productID, ok := parseProductID(c)
	if !ok {
		return
	}
	if err := h.CartService.RemoveItem(sessionID, productID); err != nil {
		respondWithMappedError(c, err, cartErrorRules, response.CodeInternal, "Failed to update cart.")
		return
	}
	response.Success(c, gin.H{"deleted": true})
}

// ClearCart 清空购物车
func (h *Handler) ClearCart(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	if err := h.CartService.Clear(sessionID); err != nil {
		respondWithMappedError(c, err, cartErrorRules, response.CodeInternal, "Failed to update cart.")
		return
	}
	response.Success(c, gin.H{"cleared": true})
}

func parseProductID(c *gin.Context) (uint, bool) {
	raw := c.Param("product_id")
	productID, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || productID == 0 {
		respondError(c, response.CodeBadRequest, "Invalid cart item.", nil)
		return 0, false
	}
	return uint(productID), true
}
