package service

import "errors"

// 服务层错误哨兵；handlers 通过 errors.Is 映射为响应码
var (
	ErrNotFound            = errors.New("resource not found")
	ErrSessionNotFound     = errors.New("session not found")
	ErrInvalidCartItem     = errors.New("invalid cart item")
	ErrProductNotAvailable = errors.New("product not available")
	ErrInvalidView         = errors.New("invalid view")
	ErrPromptRequired      = errors.New("prompt is required")
	ErrMessageRequired     = errors.New("message is required")
	ErrGenerationNotReady  = errors.New("generation not ready")
	ErrAssistantDisabled   = errors.New("assistant disabled")
)
