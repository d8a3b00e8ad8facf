package shared

import (
	"github.com/animall-next/internal/constants"
	"github.com/animall-next/internal/http/response"

	"github.com/gin-gonic/gin"
)

// SessionContextKey 会话 ID 在请求上下文中的键
const SessionContextKey = "session_id"

// GetSessionID 从上下文读取会话 ID 并统一处理错误响应。
func GetSessionID(c *gin.Context) (string, bool) {
	value, exists := c.Get(SessionContextKey)
	if !exists {
		RespondError(c, response.CodeInternal, "Session was not established.", nil)
		return "", false
	}
	id, ok := value.(string)
	if !ok || id == "" {
		RespondError(c, response.CodeInternal, "Session was not established.", nil)
		return "", false
	}
	return id, true
}

// SessionHeader 会话 ID 的请求头名称
func SessionHeader() string {
	return constants.SessionIDHeader
}
