package public

import (
	"github.com/animall-next/internal/http/response"

	"github.com/gin-gonic/gin"
)

// AssistantMessageRequest 发送助手消息请求
type AssistantMessageRequest struct {
	Text string `json:"text" binding:"required"`
}

// SendAssistantMessage 发送一条用户消息并返回助手回复
func (h *Handler) SendAssistantMessage(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	var req AssistantMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "Message text is required.", err)
		return
	}
	reply, err := h.AssistantService.SendMessage(c.Request.Context(), sessionID, req.Text)
	if err != nil {
		respondWithMappedError(c, err, assistantErrorRules, response.CodeInternal, "Failed to send message.")
		return
	}
	response.Success(c, reply)
}

// GetAssistantTranscript 获取会话完整聊天记录
func (h *Handler) GetAssistantTranscript(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	messages, err := h.AssistantService.Transcript(sessionID)
	if err != nil {
		respondWithMappedError(c, err, assistantErrorRules, response.CodeInternal, "Failed to load messages.")
		return
	}
	response.Success(c, gin.H{"messages": messages})
}
