package scorer

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// Groq is the Groq completion backend, spoken over the OpenAI-compatible API.
type Groq struct {
	client *openai.Client
	model  string
}

func NewGroq(apiKey, baseURL, model string) (*Groq, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("groq: API key not configured")
	}
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &Groq{client: openai.NewClientWithConfig(cfg), model: model}, nil
}

func (g *Groq) Name() string { return "groq" }

func (g *Groq) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Temperature: 0.1,
	})
	if err != nil {
		return "", fmt.Errorf("groq: chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("groq: empty completion")
	}
	return resp.Choices[0].Message.Content, nil
}
