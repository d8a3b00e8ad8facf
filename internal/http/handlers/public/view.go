package public

import (
	"errors"

	"github.com/animall-next/internal/http/response"
	"github.com/animall-next/internal/service"

	"github.com/gin-gonic/gin"
)

// SetViewRequest 视图切换请求
type SetViewRequest struct {
	View string `json:"view" binding:"required"`
}

// GetView 获取会话当前视图与购物车面板状态
func (h *Handler) GetView(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	session, err := h.ViewService.Get(sessionID)
	if err != nil {
		respondError(c, response.CodeInternal, "Failed to load view state.", err)
		return
	}
	response.Success(c, session)
}

// SetView 切换当前视图
func (h *Handler) SetView(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	var req SetViewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "Invalid request body.", err)
		return
	}
	session, err := h.ViewService.SetView(sessionID, req.View)
	if err != nil {
		if errors.Is(err, service.ErrInvalidView) {
			respondError(c, response.CodeBadRequest, "Unknown view.", nil)
			return
		}
		respondError(c, response.CodeInternal, "Failed to switch view.", err)
		return
	}
	response.Success(c, session)
}

// OpenCartPanel 展开购物车面板
func (h *Handler) OpenCartPanel(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	session, err := h.ViewService.OpenCart(sessionID)
	if err != nil {
		respondError(c, response.CodeInternal, "Failed to update cart panel.", err)
		return
	}
	response.Success(c, session)
}

// CloseCartPanel 收起购物车面板
func (h *Handler) CloseCartPanel(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	session, err := h.ViewService.CloseCart(sessionID)
	if err != nil {
		respondError(c, response.CodeInternal, "Failed to update cart panel.", err)
		return
	}
	response.Success(c, session)
}
