package preview

import (
	"image"
	"image/color"
	"net/url"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/mdblocks/internal/document"
	"github.com/alexisbeaulieu97/mdblocks/internal/imageload"
	"github.com/alexisbeaulieu97/mdblocks/internal/ui/components"
)

const catURL = "https://example.com/cat.png"

type fakeFetcher struct {
	mu         sync.Mutex
	phases     map[string]imageload.Phase
	prefetched []string
	updates    chan string
}

func newFakeFetcher() *fakeFetcher {
	return &fakeFetcher{phases: map[string]imageload.Phase{}, updates: make(chan string, 4)}
}

func (f *fakeFetcher) Phase(u *url.URL) imageload.Phase {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.phases[u.String()]
}

func (f *fakeFetcher) Prefetch(urls ...*url.URL) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range urls {
		f.prefetched = append(f.prefetched, u.String())
	}
}

func (f *fakeFetcher) Updates() <-chan string {
	return f.updates
}

func (f *fakeFetcher) complete(raw string, img image.Image) {
	f.mu.Lock()
	f.phases[raw] = imageload.Phase{Kind: imageload.PhaseSuccess, Image: img}
	f.mu.Unlock()
}

func testDocument() document.Document {
	return document.Document{Blocks: []document.Block{
		document.ImageBlock{Source: document.Ptr(catURL), Title: document.Ptr("cat")},
		document.ListBlock{List: document.List{Elements: []document.ListElement{
			document.UnorderedItem{Text: "whiskers"},
		}}},
	}}
}

func redSquare() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.Set(x, y, color.RGBA{R: 0xff, A: 0xff})
		}
	}
	return img
}

func sized(t *testing.T, m Model) Model {
	t.Helper()
	next, _ := m.Update(tea.WindowSizeMsg{Width: 40, Height: 20})
	model, ok := next.(Model)
	require.True(t, ok)
	return model
}

func TestNewModelPrefetchesImages(t *testing.T) {
	t.Parallel()

	fetcher := newFakeFetcher()
	m := NewModel(Options{Document: testDocument(), Context: components.DefaultContext(), Fetcher: fetcher})

	assert.Equal(t, []string{catURL}, fetcher.prefetched)
	assert.True(t, m.Loading())
	assert.NotNil(t, m.Init())
}

func TestWindowSizeRendersDocument(t *testing.T) {
	t.Parallel()

	m := NewModel(Options{Title: "cats.md", Document: testDocument(), Context: components.DefaultContext(), Fetcher: newFakeFetcher()})
	assert.Equal(t, "loading…", m.View())

	m = sized(t, m)

	assert.Equal(t, 1, m.Renders())
	assert.Equal(t, 40, m.viewport.Width)
	assert.Equal(t, 18, m.viewport.Height)
	view := m.View()
	assert.Contains(t, view, "cats.md")
	assert.Contains(t, view, "whiskers")
	assert.NotContains(t, view, "▀")
}

func TestImageLoadedMsgReRendersAndKeepsListening(t *testing.T) {
	t.Parallel()

	fetcher := newFakeFetcher()
	m := sized(t, NewModel(Options{Document: testDocument(), Context: components.DefaultContext(), Fetcher: fetcher}))

	fetcher.complete(catURL, redSquare())
	next, cmd := m.Update(ImageLoadedMsg{URL: catURL})
	m = next.(Model)

	assert.Equal(t, 2, m.Renders())
	assert.False(t, m.Loading())
	assert.Contains(t, m.viewport.View(), "▀")
	require.NotNil(t, cmd)

	fetcher.updates <- "https://example.com/other.png"
	assert.Equal(t, ImageLoadedMsg{URL: "https://example.com/other.png"}, cmd())
}

func TestListenCmdReportsClosedChannel(t *testing.T) {
	t.Parallel()

	ch := make(chan string)
	close(ch)
	assert.Equal(t, imagesClosedMsg{}, listenCmd(ch)())
	assert.Nil(t, listenCmd(nil))
}

func TestQuitKeys(t *testing.T) {
	t.Parallel()

	m := sized(t, NewModel(Options{Document: testDocument(), Context: components.DefaultContext()}))

	for _, key := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune("q")},
		{Type: tea.KeyCtrlC},
		{Type: tea.KeyEsc},
	} {
		_, cmd := m.Update(key)
		require.NotNil(t, cmd, key.String())
		assert.IsType(t, tea.QuitMsg{}, cmd())
	}
}

func TestRenderContextHonoursConfiguredWidth(t *testing.T) {
	t.Parallel()

	base := components.DefaultContext().WithConstraints(components.WithMaxWidth(30))
	m := sized(t, NewModel(Options{Document: testDocument(), Context: base}))

	assert.Equal(t, 30, m.renderContext().Constraints.MaxWidth)

	wide := sized(t, NewModel(Options{Document: testDocument(), Context: components.DefaultContext()}))
	assert.Equal(t, 40, wide.renderContext().Constraints.MaxWidth)
}
