package llm

import "context"

// Provider is the narrow contract the analyzer holds on the remote model:
// one chat-completion attempt, with any problem reported as an error.
type Provider interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string, opts ...Option) (*Response, error)
}

type Usage struct {
	PromptTokens     int64
	CompletionTokens int64
	TotalTokens      int64
}

type Option func(*Options)

type Options struct {
	Model       string
	MaxTokens   int64
	Temperature float64
}

// Response is the model's free-text reply plus accounting metadata.
type Response struct {
	Content string
	Model   string
	Usage   Usage
}
