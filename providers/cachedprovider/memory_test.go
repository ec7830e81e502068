package cachedprovider_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/pdark/i18n"
	"github.com/pdark/i18n/providers/cachedprovider"
)

// countingProvider tracks how many lookups reach the source.
type countingProvider struct {
	inner i18n.Provider
	calls atomic.Int64
}

func (c *countingProvider) Lookup(ctx context.Context, id string, locale i18n.Locale) (string, bool, error) {
	c.calls.Add(1)
	return c.inner.Lookup(ctx, id, locale)
}

func TestMemory_Lookup(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("second lookup is served from cache", func(t *testing.T) {
		t.Parallel()
		source := &countingProvider{inner: i18n.NewStatic().Add("msg", "en", "text")}
		p := cachedprovider.NewMemory(source)

		for i := 0; i < 3; i++ {
			pattern, ok, err := p.Lookup(ctx, "msg", "en")
			require.NoError(t, err)
			require.True(t, ok)
			require.Equal(t, "text", pattern)
		}
		require.Equal(t, int64(1), source.calls.Load())
	})

	t.Run("misses are cached too", func(t *testing.T) {
		t.Parallel()
		source := &countingProvider{inner: i18n.NewStatic()}
		p := cachedprovider.NewMemory(source)

		for i := 0; i < 3; i++ {
			_, ok, err := p.Lookup(ctx, "absent", "en")
			require.NoError(t, err)
			require.False(t, ok)
		}
		require.Equal(t, int64(1), source.calls.Load())
	})

	t.Run("locales are cached independently", func(t *testing.T) {
		t.Parallel()
		source := &countingProvider{inner: i18n.NewStatic().
			Add("msg", "en", "text").
			Add("msg", "de", "Text")}
		p := cachedprovider.NewMemory(source)

		pattern, _, err := p.Lookup(ctx, "msg", "en")
		require.NoError(t, err)
		require.Equal(t, "text", pattern)

		pattern, _, err = p.Lookup(ctx, "msg", "de")
		require.NoError(t, err)
		require.Equal(t, "Text", pattern)

		require.Equal(t, int64(2), source.calls.Load())
		require.Equal(t, 2, p.Len())
	})

	t.Run("expired entries are refetched", func(t *testing.T) {
		t.Parallel()
		source := &countingProvider{inner: i18n.NewStatic().Add("msg", "en", "text")}
		p := cachedprovider.NewMemory(source, cachedprovider.WithTTL(30*time.Millisecond))

		_, _, err := p.Lookup(ctx, "msg", "en")
		require.NoError(t, err)

		time.Sleep(60 * time.Millisecond)

		_, _, err = p.Lookup(ctx, "msg", "en")
		require.NoError(t, err)
		require.Equal(t, int64(2), source.calls.Load())
	})

	t.Run("negative TTL expires misses sooner", func(t *testing.T) {
		t.Parallel()
		static := i18n.NewStatic()
		source := &countingProvider{inner: static}
		p := cachedprovider.NewMemory(source,
			cachedprovider.WithTTL(time.Hour),
			cachedprovider.WithNegativeTTL(30*time.Millisecond))

		_, ok, err := p.Lookup(ctx, "msg", "en")
		require.NoError(t, err)
		require.False(t, ok)

		static.Add("msg", "en", "now present")
		time.Sleep(60 * time.Millisecond)

		pattern, ok, err := p.Lookup(ctx, "msg", "en")
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, "now present", pattern)
	})

	t.Run("source errors are not cached", func(t *testing.T) {
		t.Parallel()
		boom := errors.New("connection lost")
		var fail atomic.Bool
		fail.Store(true)
		flaky := i18n.ProviderFunc(func(ctx context.Context, id string, locale i18n.Locale) (string, bool, error) {
			if fail.Load() {
				return "", false, boom
			}
			return "recovered", true, nil
		})
		p := cachedprovider.NewMemory(flaky)

		_, _, err := p.Lookup(ctx, "msg", "en")
		require.ErrorIs(t, err, boom)

		fail.Store(false)
		pattern, ok, err := p.Lookup(ctx, "msg", "en")
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, "recovered", pattern)
	})

	t.Run("invalidate forces a refetch", func(t *testing.T) {
		t.Parallel()
		static := i18n.NewStatic().Add("msg", "en", "old")
		p := cachedprovider.NewMemory(static)

		pattern, _, err := p.Lookup(ctx, "msg", "en")
		require.NoError(t, err)
		require.Equal(t, "old", pattern)

		static.Add("msg", "en", "new")
		p.Invalidate("msg", "en")

		pattern, _, err = p.Lookup(ctx, "msg", "en")
		require.NoError(t, err)
		require.Equal(t, "new", pattern)
	})

	t.Run("flush empties the cache", func(t *testing.T) {
		t.Parallel()
		source := &countingProvider{inner: i18n.NewStatic().Add("msg", "en", "text")}
		p := cachedprovider.NewMemory(source)

		_, _, err := p.Lookup(ctx, "msg", "en")
		require.NoError(t, err)
		require.Equal(t, 1, p.Len())

		p.Flush()
		require.Equal(t, 0, p.Len())

		_, _, err = p.Lookup(ctx, "msg", "en")
		require.NoError(t, err)
		require.Equal(t, int64(2), source.calls.Load())
	})

	t.Run("concurrent cold lookups collapse into one source call", func(t *testing.T) {
		t.Parallel()
		slow := i18n.ProviderFunc(func(ctx context.Context, id string, locale i18n.Locale) (string, bool, error) {
			time.Sleep(20 * time.Millisecond)
			return "text", true, nil
		})
		source := &countingProvider{inner: slow}
		p := cachedprovider.NewMemory(source)

		var wg sync.WaitGroup
		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				pattern, ok, err := p.Lookup(ctx, "msg", "en")
				if err != nil || !ok || pattern != "text" {
					t.Error("unexpected lookup result")
				}
			}()
		}
		wg.Wait()

		require.Equal(t, int64(1), source.calls.Load())
	})
}
