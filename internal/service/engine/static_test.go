package engine_test

import (
	"context"
	"testing"
	"time"

	"parley/backend/internal/service/engine"

	"github.com/stretchr/testify/require"
)

func TestStaticEngine_Translate_Phrasebook(t *testing.T) {
	e := engine.NewStaticEngine(nil)

	out, err := e.Translate(context.Background(), "en", "es", "Hello")
	require.NoError(t, err)
	require.Equal(t, "Hola", out)

	out, err = e.Translate(context.Background(), "es", "en", "Hola")
	require.NoError(t, err)
	require.Equal(t, "Hello", out)
}

func TestStaticEngine_Translate_FallbackOnMiss(t *testing.T) {
	e := engine.NewStaticEngine(nil)

	out, err := e.Translate(context.Background(), "en", "de", "Good morning")
	require.NoError(t, err)
	require.Equal(t, "[de] Good morning", out)
}

func TestStaticEngine_FailPairs(t *testing.T) {
	e := engine.NewStaticEngine(&engine.StaticEngineConfig{
		FailPairs: map[string]bool{"en:ja": true},
	})

	require.Error(t, e.Prepare(context.Background(), "en", "ja"))
	_, err := e.Translate(context.Background(), "en", "ja", "Hello")
	require.Error(t, err)

	// Other pairs are unaffected.
	require.NoError(t, e.Prepare(context.Background(), "en", "es"))
}

func TestStaticEngine_Prepare_RespectsContext(t *testing.T) {
	e := engine.NewStaticEngine(&engine.StaticEngineConfig{
		PrepareDelay: time.Minute,
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := e.Prepare(ctx, "en", "es")
	require.ErrorIs(t, err, context.Canceled)
}

func TestStaticEngine_Translate_CancelledContext(t *testing.T) {
	e := engine.NewStaticEngine(nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := e.Translate(ctx, "en", "es", "Hello")
	require.ErrorIs(t, err, context.Canceled)
}
