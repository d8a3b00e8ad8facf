package public

import "github.com/animall-next/internal/provider"

// Handler 前台公开接口处理器入口
// 说明：全部接口面向匿名访客，以会话头区分访客身份。
type Handler struct {
	*provider.Container
}

// New 创建前台处理器
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
