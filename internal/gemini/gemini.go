package gemini

import (
	"context"
	"errors"
)

// ErrEmptyResponse 远程返回无可用内容
var ErrEmptyResponse = errors.New("gemini: empty response")

// ImageResult 图像合成结果
type ImageResult struct {
	Data     []byte // 图像字节
	MIMEType string // 如 image/png
}

// Client 生成式 AI 客户端接口
// 图像合成、文案合成与多轮聊天共用一个凭据；handlers/worker 只依赖本接口，
// 便于测试时注入桩实现。
type Client interface {
	// SynthesizeImage 按画质档位合成一张海报图
	SynthesizeImage(ctx context.Context, prompt string, quality string) (*ImageResult, error)
	// SynthesizeText 单轮文案合成（商品描述等）
	SynthesizeText(ctx context.Context, prompt string) (string, error)
	// NewChat 创建带系统指令的多轮聊天句柄
	NewChat(ctx context.Context, systemInstruction string) (Chat, error)
}

// Chat 多轮聊天句柄；上下文由远端托管，调用方只需逐条发送
type Chat interface {
	Send(ctx context.Context, text string) (string, error)
}
