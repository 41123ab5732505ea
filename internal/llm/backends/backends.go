// Package backends selects the configured AI provider.
package backends

import (
	"fmt"
	"log/slog"

	"github.com/okafor-dev/pdfproc/internal/common"
	"github.com/okafor-dev/pdfproc/internal/llm"
	"github.com/okafor-dev/pdfproc/internal/llm/anthropic"
	"github.com/okafor-dev/pdfproc/internal/llm/openai"
)

// New returns the llm.Backend for the configured provider.
func New(cfg common.LLMConfig, logger *slog.Logger) (llm.Backend, error) {
	switch cfg.Provider {
	case "openai":
		return openai.NewClient(openai.Config{
			APIKey:      cfg.APIKey,
			BaseURL:     cfg.BaseURL,
			TextModel:   cfg.TextModel,
			VisionModel: cfg.VisionModel,
			Temperature: cfg.Temperature,
			Timeout:     cfg.Timeout,
		}, logger), nil
	case "anthropic":
		return anthropic.NewClient(anthropic.Config{
			APIKey:      cfg.APIKey,
			BaseURL:     cfg.BaseURL,
			TextModel:   cfg.TextModel,
			VisionModel: cfg.VisionModel,
			Temperature: cfg.Temperature,
		}, logger), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %q", cfg.Provider)
	}
}
