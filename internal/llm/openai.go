package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/rmoran/weathervane/internal/config"
)

// ErrMissingAPIKey reports an unresolvable credential. Callers treat it like
// any other remote failure.
var ErrMissingAPIKey = errors.New("openai: api key not configured")

// OpenAI client implementation
type OpenAI struct {
	client openai.Client
	cfg    *config.OpenAIConfig
}

func NewOpenAI(cfg *config.OpenAIConfig) *OpenAI {
	client := openai.NewClient(
		option.WithAPIKey(cfg.APIKey),
		option.WithBaseURL(cfg.Endpoint),
	)

	return &OpenAI{
		client: client,
		cfg:    cfg,
	}
}

func (o *OpenAI) Complete(ctx context.Context, systemPrompt, userPrompt string, opts ...Option) (*Response, error) {
	if o.cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	// Apply options
	options := &Options{
		Model:       o.cfg.Model,
		MaxTokens:   300,
		Temperature: 0.7,
	}
	for _, opt := range opts {
		opt(options)
	}

	resp, err := o.client.Chat.Completions.New(
		ctx,
		openai.ChatCompletionNewParams{
			Model: options.Model,
			Messages: []openai.ChatCompletionMessageParamUnion{
				openai.SystemMessage(systemPrompt),
				openai.UserMessage(userPrompt),
			},
			Temperature: openai.Float(options.Temperature),
			MaxTokens:   openai.Int(options.MaxTokens),
		},
	)
	if err != nil {
		return nil, fmt.Errorf("chat completion: %w", err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return nil, errors.New("chat completion returned no content")
	}

	return &Response{
		Content: resp.Choices[0].Message.Content,
		Model:   options.Model,
		Usage: Usage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		},
	}, nil
}
