package summarizer

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/viann980/Jadwal-Integrasi-ai/config"
	pkgerrors "github.com/viann980/Jadwal-Integrasi-ai/pkg/errors"
)

const defaultModel = "gemini-2.0-flash"

// GenAI 基于 Google Gemini 的摘要生成器
type GenAI struct {
	client *genai.Client
	model  string
	logger *zap.Logger
}

// NewGenAI 创建 Gemini 客户端
func NewGenAI(ctx context.Context, cfg *config.AIConfig, logger *zap.Logger) (*GenAI, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("GenAI API key 不能为空")
	}
	model := cfg.Model
	if model == "" {
		model = defaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("创建 GenAI 客户端失败: %w", err)
	}

	return &GenAI{client: client, model: model, logger: logger}, nil
}

// Summarize 调用 GenerateContent 生成摘要
func (g *GenAI) Summarize(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		g.logger.Warn("GenAI 摘要生成失败", zap.String("model", g.model), zap.Error(err))
		return "", fmt.Errorf("%w: %v", pkgerrors.ErrDependencyUnavailable, err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", fmt.Errorf("%w: 返回内容为空", pkgerrors.ErrDependencyUnavailable)
	}
	return text, nil
}
