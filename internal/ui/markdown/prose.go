package markdown

import (
	"fmt"
	"strings"
	"sync"

	"github.com/alexisbeaulieu97/mdblocks/internal/ui/components"
	"github.com/charmbracelet/glamour"
)

// DefaultProseWidth is the wrap width used when the context has no width.
const DefaultProseWidth = 80

// TextRenderer turns a markdown fragment into terminal text.
type TextRenderer interface {
	RenderMarkdown(markdown, style string, width int) (string, error)
}

// TextRendererKey holds the renderer used for text blocks.
var TextRendererKey = components.NewEnvironmentKey[TextRenderer]("markdown.text-renderer", NewGlamourRenderer())

// GlamourRenderer renders prose with glamour. Term renderers are cached per
// style and width.
type GlamourRenderer struct {
	mu        sync.Mutex
	renderers map[glamourKey]*glamour.TermRenderer
}

type glamourKey struct {
	style string
	width int
}

// NewGlamourRenderer creates an empty renderer cache.
func NewGlamourRenderer() *GlamourRenderer {
	return &GlamourRenderer{renderers: make(map[glamourKey]*glamour.TermRenderer)}
}

// RenderMarkdown implements TextRenderer. Leading and trailing blank lines
// added by glamour are removed.
func (g *GlamourRenderer) RenderMarkdown(markdown, style string, width int) (string, error) {
	if width <= 0 {
		width = DefaultProseWidth
	}
	if style == "" {
		style = "auto"
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	key := glamourKey{style: style, width: width}
	r, ok := g.renderers[key]
	if !ok {
		var err error
		r, err = glamour.NewTermRenderer(
			glamour.WithStandardStyle(style),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return "", fmt.Errorf("create %s renderer: %w", style, err)
		}
		g.renderers[key] = r
	}

	out, err := r.Render(markdown)
	if err != nil {
		return "", err
	}
	return strings.Trim(out, "\n"), nil
}

// prose renders a text block. On failure the raw markdown is shown.
type prose struct {
	markdown string
}

func (p prose) View() string {
	return p.ViewWithContext(components.DefaultContext())
}

func (p prose) ViewWithContext(ctx components.RenderContext) string {
	source := strings.TrimSpace(p.markdown)
	if source == "" {
		return ""
	}
	renderer := TextRendererKey.From(ctx)
	if renderer == nil {
		return source
	}
	style := ctx.Theme.Markdown.TextStyle
	if components.AccessibilityModeKey.From(ctx) {
		style = "ascii"
	}
	out, err := renderer.RenderMarkdown(source, style, ctx.AvailableWidth(DefaultProseWidth))
	if err != nil {
		LoggerKey.From(ctx).DebugErr(err, "prose rendering failed")
		return source
	}
	return out
}
