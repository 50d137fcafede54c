package imageload

import (
	"context"
	"errors"
	"image"
	"net/url"
	"sync"

	"github.com/alexisbeaulieu97/mdblocks/internal/logger"
)

// PhaseKind is the state of an asynchronous load.
type PhaseKind int

const (
	// PhaseEmpty means the load has not finished yet.
	PhaseEmpty PhaseKind = iota
	// PhaseSuccess means Image holds the decoded image.
	PhaseSuccess
	// PhaseFailure means the load failed; Err holds the reason.
	PhaseFailure
)

func (k PhaseKind) String() string {
	switch k {
	case PhaseSuccess:
		return "success"
	case PhaseFailure:
		return "failure"
	default:
		return "empty"
	}
}

// Phase is a snapshot of one URL's load.
type Phase struct {
	Kind  PhaseKind
	Image image.Image
	Err   error
}

// ImageSource performs a blocking fetch-and-decode. *Loader implements it.
type ImageSource interface {
	Load(ctx context.Context, u *url.URL) (image.Image, error)
}

const updateBuffer = 64

var errNoImage = errors.New("loader returned no image")

// AsyncFetcher loads images in the background, one load per distinct URL.
// Phase never blocks; finished loads are announced on Updates so the host can
// re-render. Loads are independent of each other and complete in any order.
type AsyncFetcher struct {
	source ImageSource
	log    *logger.Logger

	ctx    context.Context
	cancel context.CancelFunc

	mu      sync.Mutex
	phases  map[string]Phase
	started map[string]struct{}
	closed  bool

	updates chan string
	wg      sync.WaitGroup
}

// NewAsyncFetcher creates a fetcher that loads through source.
func NewAsyncFetcher(source ImageSource, log *logger.Logger) *AsyncFetcher {
	ctx, cancel := context.WithCancel(context.Background())
	return &AsyncFetcher{
		source:  source,
		log:     log,
		ctx:     ctx,
		cancel:  cancel,
		phases:  make(map[string]Phase),
		started: make(map[string]struct{}),
		updates: make(chan string, updateBuffer),
	}
}

// Phase reports the current phase for u, starting a load the first time u is seen.
func (f *AsyncFetcher) Phase(u *url.URL) Phase {
	if u == nil {
		return Phase{Kind: PhaseFailure}
	}
	key := u.String()

	f.mu.Lock()
	defer f.mu.Unlock()
	if phase, ok := f.phases[key]; ok {
		return phase
	}
	f.startLocked(key, u)
	return Phase{Kind: PhaseEmpty}
}

// Prefetch starts loads for every URL that has not been requested yet.
func (f *AsyncFetcher) Prefetch(urls ...*url.URL) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range urls {
		if u == nil {
			continue
		}
		f.startLocked(u.String(), u)
	}
}

// Updates delivers the URL of every load that finished. It is closed by Close.
func (f *AsyncFetcher) Updates() <-chan string {
	return f.updates
}

// Pending returns the number of loads still in flight.
func (f *AsyncFetcher) Pending() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.started) - len(f.phases)
}

// Close cancels in-flight loads, waits for their goroutines and closes Updates.
// It is safe to call more than once.
func (f *AsyncFetcher) Close() {
	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return
	}
	f.closed = true
	f.mu.Unlock()

	f.cancel()
	f.wg.Wait()
	close(f.updates)
}

func (f *AsyncFetcher) startLocked(key string, u *url.URL) {
	if f.closed {
		return
	}
	if _, ok := f.started[key]; ok {
		return
	}
	f.started[key] = struct{}{}

	f.wg.Add(1)
	go f.run(key, u)
}

func (f *AsyncFetcher) run(key string, u *url.URL) {
	defer f.wg.Done()

	img, err := f.source.Load(f.ctx, u)
	if err == nil && img == nil {
		err = errNoImage
	}
	phase := Phase{Kind: PhaseSuccess, Image: img}
	if err != nil {
		phase = Phase{Kind: PhaseFailure, Err: err}
		f.log.With("url", key).DebugErr(err, "async image load failed")
	}

	f.mu.Lock()
	f.phases[key] = phase
	f.mu.Unlock()

	select {
	case f.updates <- key:
	case <-f.ctx.Done():
	}
}
