package scorer

import (
	"context"
	"fmt"

	"github.com/pulsefeed/pulsefeed/internal/config"
)

// NewCompleter builds the configured LLM backend. A nil completer (with an
// error) means the service runs with degraded scoring only.
func NewCompleter(ctx context.Context, cfg *config.Config) (Completer, error) {
	switch cfg.LLMProvider {
	case "gemini":
		return NewGemini(ctx, cfg.GeminiAPIKey, cfg.GeminiChatModel)
	case "groq":
		return NewGroq(cfg.GroqAPIKey, cfg.GroqBaseURL, cfg.GroqModel)
	default:
		return nil, fmt.Errorf("unknown LLM provider %q", cfg.LLMProvider)
	}
}
