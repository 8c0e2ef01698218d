package llm

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/CHETHANCHARMANNAPK/drug-repurposing/internal/config"
)

// NewGenerator builds the configured provider. It returns a nil Generator and
// no error when a keyed provider has no API key; callers then use the
// templated explanation.
func NewGenerator(ctx context.Context, cfg config.LLMConfig, logger *zap.Logger) (Generator, error) {
	provider := strings.ToLower(cfg.Provider)
	opts := DefaultOptions()

	if cfg.APIKey == "" && provider != "ollama" && provider != "" {
		logger.Warn("no LLM API key configured, explanations use templates", zap.String("provider", provider))
		return nil, nil
	}

	switch provider {
	case "":
		return nil, nil

	case "openai":
		return NewOpenAIClient(cfg.APIKey, cfg.Model, cfg.BaseURL, opts), nil

	case "gemini":
		c, err := NewGeminiClient(ctx, cfg.APIKey, cfg.Model, opts)
		if err != nil {
			return nil, err
		}
		return c, nil

	case "claude":
		return NewClaudeClient(cfg.APIKey, cfg.Model, cfg.BaseURL, opts), nil

	case "ollama":
		// Ollama serves an OpenAI-compatible API under /v1
		baseURL := cfg.BaseURL
		if baseURL == "" {
			baseURL = "http://localhost:11434"
		}
		if !strings.HasSuffix(baseURL, "/v1") {
			baseURL = fmt.Sprintf("%s/v1", strings.TrimRight(baseURL, "/"))
		}
		logger.Info("using ollama via OpenAI-compatible API", zap.String("base_url", baseURL))

		apiKey := cfg.APIKey
		if apiKey == "" {
			apiKey = "ollama" // ignored by ollama, required by the client
		}
		return NewOpenAIClient(apiKey, cfg.Model, baseURL, opts), nil

	default:
		return nil, fmt.Errorf("unsupported llm provider: %s", provider)
	}
}
