package llm

import (
	"context"
	"fmt"
)

// NewProvider builds a Provider from configuration, wrapped with retry
// and (when a recorder is given) request logging middleware.
func NewProvider(ctx context.Context, cfg Config, recorder RequestRecorder) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	// Middleware order: caller → retry → logging → base, so each
	// attempt gets its own event.
	wrapped := base
	if recorder != nil {
		wrapped = WithLogging(wrapped, recorder)
	}
	return WithRetry(wrapped, cfg.Retry), nil
}

// NewProviderFromEnv builds a Provider from NEETSHEET_* environment
// variables, falling back to bare API key discovery when no explicit
// key is configured. Returns an error when no usable key exists; the
// caller decides whether AI features are optional.
func NewProviderFromEnv(ctx context.Context, recorder RequestRecorder) (Provider, error) {
	cfg := ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		discovered, ok := DiscoverConfig()
		if !ok {
			return nil, err
		}
		cfg = discovered
	}
	return NewProvider(ctx, cfg, recorder)
}
