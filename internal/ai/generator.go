package ai

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"frontgen_server/internal/types"
)

const systemPrompt = "You are a helpful AI assistant that generates front-end code based on user prompts and specific formatting instructions."

// Generator calls an OpenAI-compatible chat completion endpoint. A custom
// base URL allows pointing it at Groq-style providers.
type Generator struct {
	client    *openai.Client
	modelID   string
	maxTokens int
	timeout   time.Duration
}

func NewGenerator(apiKey, baseURL, modelID string, maxTokens int, timeout time.Duration) *Generator {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &Generator{
		client:    openai.NewClientWithConfig(cfg),
		modelID:   modelID,
		maxTokens: maxTokens,
		timeout:   timeout,
	}
}

// Generate sends the prompt and returns the completion text. Every call
// runs under the configured timeout so an unresponsive upstream cannot
// hang the calling flow. Failures, non-2xx responses and empty
// completions all surface as *types.UpstreamError.
func (g *Generator) Generate(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	resp, err := g.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: g.modelID,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
				{Role: openai.ChatMessageRoleUser, Content: prompt},
			},
			MaxTokens:   g.maxTokens,
			Temperature: 0.3, // lower temperature for more predictable code output
		},
	)
	if err != nil {
		return "", &types.UpstreamError{Cause: err}
	}

	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		log.Printf("Model usage for empty completion: %+v", resp.Usage)
		return "", &types.UpstreamError{Cause: errors.New("model returned an empty completion")}
	}

	return resp.Choices[0].Message.Content, nil
}
