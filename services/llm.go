package services

import (
	"context"
	"fmt"

	"MedzenGo/models"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
	"github.com/tmc/langchaingo/schema"
)

const healthAssistantPrompt = `You are a helpful AI health assistant. You provide general health information and resources, never medical diagnoses. Always remind users to consult a qualified healthcare professional for personalized medical advice. Keep answers concise and plain text.`

// LLMResponder 接入OpenAI兼容端点的真实模型回复，仅在配置了API key时启用，
// 默认仍走CannedResponder
type LLMResponder struct {
	model llms.Model
}

func NewLLMResponder(apiKey, apiEndpoint, modelName string) (*LLMResponder, error) {
	model, err := openai.New(
		openai.WithToken(apiKey),
		openai.WithBaseURL(apiEndpoint),
		openai.WithModel(modelName),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}
	return &LLMResponder{model: model}, nil
}

func (l *LLMResponder) Reply(ctx context.Context, messages []models.Message) (string, error) {
	content := []llms.MessageContent{
		{
			Role:  schema.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{llms.TextPart(healthAssistantPrompt)},
		},
	}
	for _, msg := range messages {
		role := schema.ChatMessageTypeHuman
		switch msg.Role {
		case models.RoleAssistant:
			role = schema.ChatMessageTypeAI
		case models.RoleSystem:
			role = schema.ChatMessageTypeSystem
		}
		content = append(content, llms.MessageContent{
			Role:  role,
			Parts: []llms.ContentPart{llms.TextPart(msg.Content)},
		})
	}

	response, err := l.model.GenerateContent(ctx, content, llms.WithTemperature(0.7))
	if err != nil {
		return "", fmt.Errorf("生成回复失败: %v", err)
	}
	if len(response.Choices) == 0 {
		return "", fmt.Errorf("未生成有效内容")
	}
	return response.Choices[0].Content, nil
}
