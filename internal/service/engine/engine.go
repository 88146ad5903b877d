package engine

import (
	"context"
	"errors"
)

// Engine is a machine-translation backend.
type Engine interface {
	// Name returns the provider name.
	Name() string
	// Prepare makes the model for the language pair available. It is
	// idempotent; callers may invoke it before every Translate.
	Prepare(ctx context.Context, sourceTag, targetTag string) error
	// Translate converts text from the source language to the target
	// language. Both arguments are BCP-47 tags.
	Translate(ctx context.Context, sourceTag, targetTag, text string) (string, error)
}

// Config holds the configuration for a translation engine.
type Config struct {
	Provider string // openai, anthropic, static
	APIKey   string
	BaseURL  string // optional for openai/anthropic
	Model    string
}

// Provider constants
const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
	ProviderStatic    = "static"
)

var (
	ErrInvalidProvider = errors.New("invalid provider")
	ErrMissingAPIKey   = errors.New("API key is required")
	ErrMissingModel    = errors.New("model is required")
)

// New creates a translation engine based on the config.
func New(cfg Config) (Engine, error) {
	switch cfg.Provider {
	case ProviderStatic:
		return NewStaticEngine(nil), nil
	case ProviderOpenAI, ProviderAnthropic:
		if cfg.APIKey == "" {
			return nil, ErrMissingAPIKey
		}
		if cfg.Model == "" {
			return nil, ErrMissingModel
		}
		if cfg.Provider == ProviderOpenAI {
			return NewOpenAIEngine(cfg.APIKey, cfg.BaseURL, cfg.Model)
		}
		return NewAnthropicEngine(cfg.APIKey, cfg.BaseURL, cfg.Model)
	default:
		return nil, ErrInvalidProvider
	}
}
