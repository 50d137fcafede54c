package imageload

import (
	"context"
	"errors"
	"image"
	"net/url"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type gatedSource struct {
	release chan struct{}
	calls   atomic.Int32
	mu      sync.Mutex
	fail    map[string]bool
}

func newGatedSource() *gatedSource {
	return &gatedSource{release: make(chan struct{}), fail: map[string]bool{}}
}

func (g *gatedSource) Load(ctx context.Context, u *url.URL) (image.Image, error) {
	g.calls.Add(1)
	select {
	case <-g.release:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	g.mu.Lock()
	fail := g.fail[u.String()]
	g.mu.Unlock()
	if fail {
		return nil, errors.New("boom")
	}
	return image.NewRGBA(image.Rect(0, 0, 4, 4)), nil
}

func waitUpdate(t *testing.T, f *AsyncFetcher) string {
	t.Helper()
	select {
	case key := <-f.Updates():
		return key
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for image update")
		return ""
	}
}

func TestAsyncFetcherReportsEmptyUntilLoaded(t *testing.T) {
	t.Parallel()

	src := newGatedSource()
	f := NewAsyncFetcher(src, nil)
	t.Cleanup(f.Close)

	u := mustURL(t, "https://example.com/a.png")
	require.Equal(t, PhaseEmpty, f.Phase(u).Kind)
	require.Equal(t, PhaseEmpty, f.Phase(u).Kind)
	require.Equal(t, 1, f.Pending())

	close(src.release)
	require.Equal(t, u.String(), waitUpdate(t, f))

	phase := f.Phase(u)
	require.Equal(t, PhaseSuccess, phase.Kind)
	require.NotNil(t, phase.Image)
	require.Equal(t, int32(1), src.calls.Load(), "one load per URL")
	require.Equal(t, 0, f.Pending())
}

func TestAsyncFetcherRecordsFailure(t *testing.T) {
	t.Parallel()

	src := newGatedSource()
	src.fail["https://example.com/broken.png"] = true
	f := NewAsyncFetcher(src, nil)
	t.Cleanup(f.Close)

	u := mustURL(t, "https://example.com/broken.png")
	f.Prefetch(u)
	close(src.release)
	waitUpdate(t, f)

	phase := f.Phase(u)
	require.Equal(t, PhaseFailure, phase.Kind)
	require.Error(t, phase.Err)
	require.Nil(t, phase.Image)
}

func TestAsyncFetcherLoadsURLsIndependently(t *testing.T) {
	t.Parallel()

	src := newGatedSource()
	src.fail["https://example.com/b.png"] = true
	f := NewAsyncFetcher(src, nil)
	t.Cleanup(f.Close)

	a := mustURL(t, "https://example.com/a.png")
	b := mustURL(t, "https://example.com/b.png")
	f.Prefetch(a, b, a)
	close(src.release)

	seen := map[string]bool{}
	seen[waitUpdate(t, f)] = true
	seen[waitUpdate(t, f)] = true
	require.True(t, seen[a.String()])
	require.True(t, seen[b.String()])

	require.Equal(t, PhaseSuccess, f.Phase(a).Kind)
	require.Equal(t, PhaseFailure, f.Phase(b).Kind)
	require.Equal(t, int32(2), src.calls.Load())
}

func TestAsyncFetcherCloseCancelsAndClosesUpdates(t *testing.T) {
	t.Parallel()

	src := newGatedSource()
	f := NewAsyncFetcher(src, nil)

	f.Prefetch(mustURL(t, "https://example.com/slow.png"))
	f.Close()
	f.Close()

	for range f.Updates() {
	}
	_, open := <-f.Updates()
	require.False(t, open)

	require.Equal(t, PhaseEmpty, f.Phase(mustURL(t, "https://example.com/new.png")).Kind)
	require.Equal(t, int32(1), src.calls.Load(), "closed fetcher starts no loads")
}
