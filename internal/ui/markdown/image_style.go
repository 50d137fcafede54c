package markdown

import (
	"net/url"

	"github.com/alexisbeaulieu97/mdblocks/internal/imageload"
	"github.com/alexisbeaulieu97/mdblocks/internal/ui"
	"github.com/alexisbeaulieu97/mdblocks/internal/ui/components"
)

// ImageStyle produces the body for a markdown image.
type ImageStyle interface {
	MakeBody(configuration ImageConfiguration) ui.Renderable
}

// ImageStyleFunc adapts a function to ImageStyle.
type ImageStyleFunc func(configuration ImageConfiguration) ui.Renderable

// MakeBody implements ImageStyle.
func (f ImageStyleFunc) MakeBody(configuration ImageConfiguration) ui.Renderable {
	return f(configuration)
}

// ImageConfiguration describes one image to render.
type ImageConfiguration struct {
	// Source is a URL with a scheme, or a symbol name.
	Source *string
	// Title is the accessibility label.
	Title *string
}

// Label returns the built-in rendering of the image. Custom styles may embed
// it, decorate it or ignore it.
func (c ImageConfiguration) Label() ui.Renderable {
	return imageLabel{source: c.Source, title: c.Title}
}

// AutomaticImageStyle renders the configuration's default label.
type AutomaticImageStyle struct{}

// MakeBody implements ImageStyle.
func (AutomaticImageStyle) MakeBody(configuration ImageConfiguration) ui.Renderable {
	return configuration.Label()
}

// ImageStyleKey holds the active image style.
var ImageStyleKey = components.NewEnvironmentKey[ImageStyle]("markdown.image-style", AutomaticImageStyle{})

// WithImageStyle applies style to every image rendered inside child.
func WithImageStyle(child ui.Renderable, style ImageStyle) ui.Renderable {
	return components.WithEnvironmentValue(child, ImageStyleKey, style)
}

type imageLabel struct {
	source *string
	title  *string
}

func (l imageLabel) View() string {
	return l.ViewWithContext(components.DefaultContext())
}

func (l imageLabel) ViewWithContext(ctx components.RenderContext) string {
	if l.source == nil {
		return ""
	}
	u, err := url.Parse(*l.source)
	if err != nil || u.Scheme == "" {
		return symbolImage{name: *l.source}.ViewWithContext(ctx)
	}
	title := ""
	if l.title != nil {
		title = *l.title
	}
	if AsyncImagesKey.From(ctx) {
		return components.AccessibilityLabel(asyncImage{url: u}, title).ViewWithContext(ctx)
	}
	// A plain-text sink gets the label without the blocking fetch.
	if components.AccessibilityModeKey.From(ctx) {
		return title
	}
	return components.AccessibilityLabel(syncImage{url: u}, title).ViewWithContext(ctx)
}

// asyncImage shows whatever the background loader has for url right now.
type asyncImage struct {
	url *url.URL
}

func (a asyncImage) View() string {
	return a.ViewWithContext(components.DefaultContext())
}

func (a asyncImage) ViewWithContext(ctx components.RenderContext) string {
	source := AsyncImageSourceKey.From(ctx)
	if source == nil {
		LoggerKey.From(ctx).With("url", a.url.String()).Debug("async images enabled without a source")
		return ""
	}
	phase := source.Phase(a.url)
	if phase.Kind != imageload.PhaseSuccess {
		return ""
	}
	return components.NewRaster(phase.Image).WithMaxRows(ImageMaxRowsKey.From(ctx)).ViewWithContext(ctx)
}

// syncImage loads url during the render pass. Failures render nothing.
type syncImage struct {
	url *url.URL
}

func (s syncImage) View() string {
	return s.ViewWithContext(components.DefaultContext())
}

func (s syncImage) ViewWithContext(ctx components.RenderContext) string {
	loader := ImageLoaderKey.From(ctx)
	if loader == nil {
		return ""
	}
	img, err := loader.Load(LoadContextKey.From(ctx), s.url)
	if err != nil || img == nil {
		LoggerKey.From(ctx).With("url", s.url.String()).DebugErr(err, "image not rendered")
		return ""
	}
	return components.NewRaster(img).WithMaxRows(ImageMaxRowsKey.From(ctx)).ViewWithContext(ctx)
}

// symbolImage draws a named glyph. Unknown names render nothing.
type symbolImage struct {
	name string
}

func (s symbolImage) View() string {
	return s.ViewWithContext(components.DefaultContext())
}

func (s symbolImage) ViewWithContext(ctx components.RenderContext) string {
	glyph, ok := SymbolsKey.From(ctx).Lookup(s.name)
	if !ok {
		LoggerKey.From(ctx).With("symbol", s.name).Debug("unknown symbol")
		return ""
	}
	return ctx.Theme.Markdown.Symbol.Render(glyph)
}
