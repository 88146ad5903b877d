package engine

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"

	"parley/backend/internal/logger"
)

// ModelCache guarantees the one-time, idempotent model preparation per
// language pair. Concurrent callers for the same pair share a single
// Prepare call; once a pair succeeds, later calls return immediately.
type ModelCache struct {
	engine Engine
	group  singleflight.Group

	mu    sync.Mutex
	ready map[string]bool
}

// NewModelCache wraps an engine's Prepare with per-pair caching.
func NewModelCache(engine Engine) *ModelCache {
	return &ModelCache{
		engine: engine,
		ready:  make(map[string]bool),
	}
}

// Ensure makes the model for the pair available, downloading it at most
// once. Failures are not cached; the next caller retries.
func (c *ModelCache) Ensure(ctx context.Context, sourceTag, targetTag string) error {
	key := pairKey(sourceTag, targetTag)

	c.mu.Lock()
	done := c.ready[key]
	c.mu.Unlock()
	if done {
		return nil
	}

	_, err, _ := c.group.Do(key, func() (interface{}, error) {
		// Re-check under the flight: a caller that raced a completed
		// download must not download again.
		c.mu.Lock()
		done := c.ready[key]
		c.mu.Unlock()
		if done {
			return nil, nil
		}
		if err := c.engine.Prepare(ctx, sourceTag, targetTag); err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.ready[key] = true
		c.mu.Unlock()
		logger.Info("model ready", "module", "engine", "action", "prepare", "resource", "model", "result", "ok", "pair", key)
		return nil, nil
	})
	if err != nil {
		logger.Warn("model prepare failed", "module", "engine", "action", "prepare", "resource", "model", "result", "failed", "pair", key, "error", err)
	}
	return err
}

// Ready reports whether the pair's model has been prepared.
func (c *ModelCache) Ready(sourceTag, targetTag string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ready[pairKey(sourceTag, targetTag)]
}
