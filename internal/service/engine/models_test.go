package engine_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"parley/backend/internal/service/engine"
	"parley/backend/internal/service/engine/mock"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestModelCache_Ensure_PreparesOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	eng := mock.NewMockEngine(ctrl)
	eng.EXPECT().Prepare(gomock.Any(), "en", "es").Return(nil).Times(1)

	cache := engine.NewModelCache(eng)
	require.False(t, cache.Ready("en", "es"))

	require.NoError(t, cache.Ensure(context.Background(), "en", "es"))
	require.True(t, cache.Ready("en", "es"))

	// Second call is served from the cache.
	require.NoError(t, cache.Ensure(context.Background(), "en", "es"))
}

func TestModelCache_Ensure_DistinctPairs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	eng := mock.NewMockEngine(ctrl)
	eng.EXPECT().Prepare(gomock.Any(), "en", "es").Return(nil).Times(1)
	eng.EXPECT().Prepare(gomock.Any(), "es", "en").Return(nil).Times(1)

	cache := engine.NewModelCache(eng)
	require.NoError(t, cache.Ensure(context.Background(), "en", "es"))
	// The reverse direction is a separate model.
	require.NoError(t, cache.Ensure(context.Background(), "es", "en"))
	require.True(t, cache.Ready("en", "es"))
	require.True(t, cache.Ready("es", "en"))
}

func TestModelCache_Ensure_FailureNotCached(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	eng := mock.NewMockEngine(ctrl)
	gomock.InOrder(
		eng.EXPECT().Prepare(gomock.Any(), "en", "ja").Return(errors.New("download failed")),
		eng.EXPECT().Prepare(gomock.Any(), "en", "ja").Return(nil),
	)

	cache := engine.NewModelCache(eng)
	require.Error(t, cache.Ensure(context.Background(), "en", "ja"))
	require.False(t, cache.Ready("en", "ja"))

	// The next caller retries and succeeds.
	require.NoError(t, cache.Ensure(context.Background(), "en", "ja"))
	require.True(t, cache.Ready("en", "ja"))
}

func TestModelCache_Ensure_ConcurrentCallersShareOneDownload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	release := make(chan struct{})
	eng := mock.NewMockEngine(ctrl)
	eng.EXPECT().Prepare(gomock.Any(), "en", "es").DoAndReturn(
		func(context.Context, string, string) error {
			<-release
			return nil
		},
	).Times(1)

	cache := engine.NewModelCache(eng)

	var wg sync.WaitGroup
	errs := make([]error, 8)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = cache.Ensure(context.Background(), "en", "es")
		}(i)
	}
	close(release)
	wg.Wait()

	for _, err := range errs {
		require.NoError(t, err)
	}
	require.True(t, cache.Ready("en", "es"))
}
