package llm

import (
	"context"
)

// Generator produces free text from a prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Options are the sampling parameters sent with every request.
type Options struct {
	Temperature float32
	TopK        int
	TopP        float32
	MaxTokens   int
}

func DefaultOptions() Options {
	return Options{
		Temperature: 0.4,
		TopK:        32,
		TopP:        0.95,
		MaxTokens:   1024,
	}
}
