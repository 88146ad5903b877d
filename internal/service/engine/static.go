package engine

import (
	"context"
	"fmt"
	"time"
)

// StaticEngineConfig configures the static (offline) engine behavior.
type StaticEngineConfig struct {
	// PrepareDelay simulates a one-time model download per language pair.
	PrepareDelay time.Duration
	// Phrasebook maps "source:target" pair keys to source-text lookups.
	// Misses fall back to a deterministic "[target] text" form.
	Phrasebook map[string]map[string]string
	// FailPairs lists pair keys whose Prepare always fails, for exercising
	// engine-failure paths.
	FailPairs map[string]bool
}

// DefaultStaticEngineConfig returns a phrasebook covering the common demo
// exchanges.
func DefaultStaticEngineConfig() *StaticEngineConfig {
	return &StaticEngineConfig{
		Phrasebook: map[string]map[string]string{
			"en:es": {
				"Hello":             "Hola",
				"How are you?":      "Como estas?",
				"I'm fine, thanks!": "Estoy bien, gracias!",
				"Thank you!":        "Gracias!",
			},
			"es:en": {
				"Hola":                 "Hello",
				"Como estas?":          "How are you?",
				"Estoy bien, gracias!": "I'm fine, thanks!",
			},
			"en:fr": {
				"Hello":      "Bonjour",
				"Thank you!": "Merci !",
				"Where is the best croissant?": "Où est le meilleur croissant ?",
			},
			"fr:en": {
				"Bonjour": "Hello",
			},
		},
	}
}

// StaticEngine is an offline engine backed by a fixed phrasebook. It serves
// development and tests without network access.
type StaticEngine struct {
	config *StaticEngineConfig
}

// NewStaticEngine creates a static engine, using defaults when config is nil.
func NewStaticEngine(config *StaticEngineConfig) *StaticEngine {
	if config == nil {
		config = DefaultStaticEngineConfig()
	}
	return &StaticEngine{config: config}
}

// Name returns the provider name.
func (e *StaticEngine) Name() string {
	return ProviderStatic
}

// Prepare simulates the one-time model download for a language pair.
func (e *StaticEngine) Prepare(ctx context.Context, sourceTag, targetTag string) error {
	key := pairKey(sourceTag, targetTag)
	if e.config.FailPairs[key] {
		return fmt.Errorf("model download failed for %s", key)
	}
	if e.config.PrepareDelay > 0 {
		select {
		case <-time.After(e.config.PrepareDelay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}

// Translate looks the text up in the phrasebook, falling back to a
// deterministic tagged form on a miss.
func (e *StaticEngine) Translate(ctx context.Context, sourceTag, targetTag, text string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	key := pairKey(sourceTag, targetTag)
	if e.config.FailPairs[key] {
		return "", fmt.Errorf("inference failed for %s", key)
	}
	if phrases, ok := e.config.Phrasebook[key]; ok {
		if translated, ok := phrases[text]; ok {
			return translated, nil
		}
	}
	return "[" + targetTag + "] " + text, nil
}

func pairKey(sourceTag, targetTag string) string {
	return sourceTag + ":" + targetTag
}
