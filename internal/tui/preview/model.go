// Package preview is an interactive viewer that renders a document while its
// images load in the background.
package preview

import (
	"net/url"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/mdblocks/internal/document"
	"github.com/alexisbeaulieu97/mdblocks/internal/logger"
	"github.com/alexisbeaulieu97/mdblocks/internal/ui/components"
	"github.com/alexisbeaulieu97/mdblocks/internal/ui/markdown"
)

// Fetcher loads images in the background and reports completions.
type Fetcher interface {
	markdown.AsyncImageSource
	Prefetch(urls ...*url.URL)
	Updates() <-chan string
}

// Options configures a preview model.
type Options struct {
	Title    string
	Document document.Document
	// Context carries theme, width limit and environment from configuration.
	Context components.RenderContext
	Fetcher Fetcher
	Logger  *logger.Logger
}

// Model contains the Bubbletea state for the document preview.
type Model struct {
	title    string
	view     *markdown.DocumentView
	base     components.RenderContext
	fetcher  Fetcher
	log      *logger.Logger
	urls     []*url.URL
	settled  map[string]bool
	viewport viewport.Model
	spinner  spinner.Model
	progress imageProgress
	ready    bool
	listen   bool
	width    int
	height   int
	renders  int
}

// NewModel creates a preview of opts.Document and starts loading its images.
func NewModel(opts Options) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	view := markdown.NewDocumentView(opts.Document)
	urls := view.ImageURLs()

	m := Model{
		title:    opts.Title,
		view:     view,
		base:     opts.Context,
		fetcher:  opts.Fetcher,
		log:      opts.Logger,
		urls:     urls,
		settled:  make(map[string]bool, len(urls)),
		spinner:  s,
		progress: newImageProgress(len(urls)),
		listen:   opts.Fetcher != nil,
		width:    80,
		height:   24,
	}
	if m.fetcher != nil && len(urls) > 0 {
		m.fetcher.Prefetch(urls...)
	}
	return m
}

// Init starts the spinner and the image listener.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spinner.Tick}
	if m.listen {
		cmds = append(cmds, listenCmd(m.fetcher.Updates()))
	}
	return tea.Batch(cmds...)
}

// Loading reports whether any image is still in flight.
func (m Model) Loading() bool {
	return m.fetcher != nil && len(m.settled) < len(m.urls)
}

// Renders returns how many times the document was rendered.
func (m Model) Renders() int {
	return m.renders
}

// renderContext derives the context for one render pass. Images are drawn
// from the background fetcher and the width follows the window.
func (m Model) renderContext() components.RenderContext {
	ctx := m.base
	width := m.viewport.Width
	if limit := ctx.Constraints.MaxWidth; limit > 0 && limit < width {
		width = limit
	}
	constraints := ctx.Constraints
	constraints.MaxWidth = width
	ctx = ctx.WithConstraints(constraints)
	if m.fetcher != nil {
		ctx = markdown.AsyncImagesKey.In(ctx, true)
		ctx = markdown.AsyncImageSourceKey.In(ctx, m.fetcher)
	}
	if m.log != nil {
		ctx = markdown.LoggerKey.In(ctx, m.log)
	}
	return ctx
}

func (m *Model) refresh() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.view.ViewWithContext(m.renderContext()))
	m.renders++
}
