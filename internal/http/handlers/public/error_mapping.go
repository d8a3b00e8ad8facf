package public

import (
	"errors"

	"github.com/animall-next/internal/http/response"
	"github.com/animall-next/internal/service"

	"github.com/gin-gonic/gin"
)

// mappedHandlerError 定义业务错误到接口错误响应的映射关系。
type mappedHandlerError struct {
	target error
	code   int
	msg    string
}

func respondWithMappedError(c *gin.Context, err error, rules []mappedHandlerError, fallbackCode int, fallbackMsg string) {
	for _, rule := range rules {
		if errors.Is(err, rule.target) {
			respondError(c, rule.code, rule.msg, nil)
			return
		}
	}
	respondError(c, fallbackCode, fallbackMsg, err)
}

var cartErrorRules = []mappedHandlerError{
	{target: service.ErrInvalidCartItem, code: response.CodeBadRequest, msg: "Invalid cart item."},
	{target: service.ErrProductNotAvailable, code: response.CodeBadRequest, msg: "This poster is not available."},
	{target: service.ErrSessionNotFound, code: response.CodeBadRequest, msg: "Session was not established."},
}

var generationErrorRules = []mappedHandlerError{
	{target: service.ErrPromptRequired, code: response.CodeBadRequest, msg: "Describe what should be on the poster."},
	{target: service.ErrGenerationNotReady, code: response.CodeBadRequest, msg: "No finished poster to add yet."},
	{target: service.ErrNotFound, code: response.CodeNotFound, msg: "No generation found for this session."},
}

var assistantErrorRules = []mappedHandlerError{
	{target: service.ErrMessageRequired, code: response.CodeBadRequest, msg: "Message text is required."},
	{target: service.ErrAssistantDisabled, code: response.CodeServiceUnavailable, msg: "The assistant is currently unavailable."},
}
