package gemini

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/animall-next/internal/constants"

	genai "google.golang.org/genai"
)

// Options 客户端配置
type Options struct {
	APIKey       string
	ChatModel    string
	TextModel    string
	ImageModel   string  // 标准档图像模型
	ImageModelHD string  // 高清档图像模型
	Temperature  float64 // 聊天温度
	HDImageSize  string  // 高清档输出分辨率
	AspectRatio  string  // 海报宽高比
	Timeout      time.Duration
}

// GoogleClient 官方 genai SDK 实现
type GoogleClient struct {
	cli  *genai.Client
	opts Options
}

// NewClient 创建 Gemini 客户端
func NewClient(ctx context.Context, opts Options) (*GoogleClient, error) {
	if strings.TrimSpace(opts.APIKey) == "" {
		return nil, errors.New("gemini: api key is required")
	}
	cli, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  opts.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 60 * time.Second
	}
	return &GoogleClient{cli: cli, opts: opts}, nil
}

// SynthesizeImage 合成海报图
// 标准档走轻量模型；高清档切换 pro 模型并附带分辨率参数。
func (c *GoogleClient) SynthesizeImage(ctx context.Context, prompt string, quality string) (*ImageResult, error) {
	model := c.opts.ImageModel
	imageCfg := &genai.ImageConfig{AspectRatio: c.opts.AspectRatio}
	if quality == constants.QualityHD {
		model = c.opts.ImageModelHD
		imageCfg.ImageSize = c.opts.HDImageSize
	}

	ctx, cancel := context.WithTimeout(ctx, c.opts.Timeout)
	defer cancel()

	resp, err := c.cli.Models.GenerateContent(ctx, model,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			ResponseModalities: []string{"IMAGE", "TEXT"},
			ImageConfig:        imageCfg,
		},
	)
	if err != nil {
		return nil, err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, ErrEmptyResponse
	}
	for _, part := range resp.Candidates[0].Content.Parts {
		if part.InlineData != nil && len(part.InlineData.Data) > 0 {
			return &ImageResult{Data: part.InlineData.Data, MIMEType: part.InlineData.MIMEType}, nil
		}
	}
	return nil, ErrEmptyResponse
}

// SynthesizeText 单轮文案合成
func (c *GoogleClient) SynthesizeText(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.opts.Timeout)
	defer cancel()

	resp, err := c.cli.Models.GenerateContent(ctx, c.opts.TextModel, genai.Text(prompt), nil)
	if err != nil {
		return "", err
	}
	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

// NewChat 创建多轮聊天句柄
func (c *GoogleClient) NewChat(ctx context.Context, systemInstruction string) (Chat, error) {
	cfg := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(float32(c.opts.Temperature)),
	}
	if systemInstruction != "" {
		cfg.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: systemInstruction}},
		}
	}
	chat, err := c.cli.Chats.Create(ctx, c.opts.ChatModel, cfg, nil)
	if err != nil {
		return nil, err
	}
	return &googleChat{chat: chat, timeout: c.opts.Timeout}, nil
}

// googleChat genai Chat 包装；远端托管历史
type googleChat struct {
	chat    *genai.Chat
	timeout time.Duration
}

// Send 发送一条消息并返回回复文本
func (s *googleChat) Send(ctx context.Context, text string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	resp, err := s.chat.SendMessage(ctx, genai.Part{Text: text})
	if err != nil {
		return "", err
	}
	reply := strings.TrimSpace(resp.Text())
	if reply == "" {
		return "", ErrEmptyResponse
	}
	return reply, nil
}
