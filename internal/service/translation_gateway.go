package service

import (
	"context"

	"parley/backend/internal/language"
	"parley/backend/internal/logger"
	"parley/backend/internal/service/engine"
)

// Failure sentinels displayed verbatim in place of a translation. Callers
// must not re-parse them as real translations.
const (
	SentinelUnsupported = "Translation failed (not supported)!"
	SentinelFailed      = "Failed to translate!"
)

// IsSentinel reports whether a gateway result is a failure sentinel rather
// than a translation.
func IsSentinel(s string) bool {
	return s == SentinelUnsupported || s == SentinelFailed
}

// TranslationGateway is the single entry point to the translation engine.
// It never fails with an error: unsupported languages and engine failures
// are normalized into the displayable sentinels above.
type TranslationGateway interface {
	Translate(ctx context.Context, sourceTag, targetTag, text string) string
}

type translationGateway struct {
	registry *language.Registry
	engine   engine.Engine
	models   *engine.ModelCache
	limiter  *engine.RateLimiter
}

// NewTranslationGateway creates a gateway over the given engine. Model
// preparation per language pair is awaited transparently and performed at
// most once.
func NewTranslationGateway(registry *language.Registry, eng engine.Engine, limiter *engine.RateLimiter) TranslationGateway {
	return &translationGateway{
		registry: registry,
		engine:   eng,
		models:   engine.NewModelCache(eng),
		limiter:  limiter,
	}
}

func (g *translationGateway) Translate(ctx context.Context, sourceTag, targetTag, text string) string {
	if text == "" {
		return ""
	}
	if !g.registry.Supported(sourceTag) || !g.registry.Supported(targetTag) {
		logger.Warn("translate rejected", "module", "service", "action", "translate", "resource", "engine", "result", "unsupported", "source", sourceTag, "target", targetTag)
		return SentinelUnsupported
	}

	source := language.Normalize(sourceTag)
	target := language.Normalize(targetTag)

	if err := g.limiter.Wait(ctx); err != nil {
		logger.Warn("translate rate limit wait failed", "module", "service", "action", "translate", "resource", "engine", "result", "failed", "error", err)
		return SentinelFailed
	}

	if err := g.models.Ensure(ctx, source, target); err != nil {
		return SentinelFailed
	}

	translated, err := g.engine.Translate(ctx, source, target, text)
	if err != nil {
		logger.Warn("translate failed", "module", "service", "action", "translate", "resource", "engine", "result", "failed", "source", source, "target", target, "error", err)
		return SentinelFailed
	}
	return translated
}
