package markdown

import (
	"strconv"
	"strings"

	"github.com/alexisbeaulieu97/mdblocks/internal/document"
	"github.com/alexisbeaulieu97/mdblocks/internal/ui"
	"github.com/alexisbeaulieu97/mdblocks/internal/ui/components"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
)

// OrderedItemConfiguration describes a numbered list item.
type OrderedItemConfiguration struct {
	document.OrderedItem
}

// Label renders "N." followed by the item text.
func (c OrderedItemConfiguration) Label() ui.Renderable {
	return resolved(func(ctx components.RenderContext) ui.Renderable {
		md := ctx.Theme.Markdown
		return itemLabel{
			level:       c.Level,
			marker:      strconv.Itoa(c.Number) + ".",
			markerStyle: md.OrderedMarker,
			text:        c.Text,
			textStyle:   md.ItemText,
		}
	})
}

// UnorderedItemConfiguration describes a bulleted list item.
type UnorderedItemConfiguration struct {
	document.UnorderedItem
}

// Label renders the level's bullet glyph followed by the item text.
func (c UnorderedItemConfiguration) Label() ui.Renderable {
	return resolved(func(ctx components.RenderContext) ui.Renderable {
		md := ctx.Theme.Markdown
		return itemLabel{
			level:       c.Level,
			marker:      bulletFor(BulletGlyphsKey.From(ctx), c.Level),
			markerStyle: md.UnorderedMarker,
			text:        c.Text,
			textStyle:   md.ItemText,
		}
	})
}

// ChecklistItemConfiguration describes a task list item.
type ChecklistItemConfiguration struct {
	document.ChecklistItem
}

// Label renders the checked or unchecked glyph followed by the item text.
func (c ChecklistItemConfiguration) Label() ui.Renderable {
	return resolved(func(ctx components.RenderContext) ui.Renderable {
		md := ctx.Theme.Markdown
		glyphs := ChecklistGlyphsKey.From(ctx)
		label := itemLabel{
			level:       c.Level,
			marker:      glyphs.Unchecked,
			markerStyle: md.UncheckedMarker,
			text:        c.Text,
			textStyle:   md.ItemText,
		}
		if c.Checked {
			label.marker = glyphs.Checked
			label.markerStyle = md.CheckedMarker
			label.textStyle = md.CheckedText
		}
		return label
	})
}

// OrderedItemStyle produces the body for a numbered item.
type OrderedItemStyle interface {
	MakeBody(configuration OrderedItemConfiguration) ui.Renderable
}

// OrderedItemStyleFunc adapts a function to OrderedItemStyle.
type OrderedItemStyleFunc func(configuration OrderedItemConfiguration) ui.Renderable

// MakeBody implements OrderedItemStyle.
func (f OrderedItemStyleFunc) MakeBody(configuration OrderedItemConfiguration) ui.Renderable {
	return f(configuration)
}

// DefaultOrderedItemStyle renders the configuration's label.
type DefaultOrderedItemStyle struct{}

// MakeBody implements OrderedItemStyle.
func (DefaultOrderedItemStyle) MakeBody(configuration OrderedItemConfiguration) ui.Renderable {
	return configuration.Label()
}

// UnorderedItemStyle produces the body for a bulleted item.
type UnorderedItemStyle interface {
	MakeBody(configuration UnorderedItemConfiguration) ui.Renderable
}

// UnorderedItemStyleFunc adapts a function to UnorderedItemStyle.
type UnorderedItemStyleFunc func(configuration UnorderedItemConfiguration) ui.Renderable

// MakeBody implements UnorderedItemStyle.
func (f UnorderedItemStyleFunc) MakeBody(configuration UnorderedItemConfiguration) ui.Renderable {
	return f(configuration)
}

// DefaultUnorderedItemStyle renders the configuration's label.
type DefaultUnorderedItemStyle struct{}

// MakeBody implements UnorderedItemStyle.
func (DefaultUnorderedItemStyle) MakeBody(configuration UnorderedItemConfiguration) ui.Renderable {
	return configuration.Label()
}

// ChecklistItemStyle produces the body for a task item.
type ChecklistItemStyle interface {
	MakeBody(configuration ChecklistItemConfiguration) ui.Renderable
}

// ChecklistItemStyleFunc adapts a function to ChecklistItemStyle.
type ChecklistItemStyleFunc func(configuration ChecklistItemConfiguration) ui.Renderable

// MakeBody implements ChecklistItemStyle.
func (f ChecklistItemStyleFunc) MakeBody(configuration ChecklistItemConfiguration) ui.Renderable {
	return f(configuration)
}

// DefaultChecklistItemStyle renders the configuration's label.
type DefaultChecklistItemStyle struct{}

// MakeBody implements ChecklistItemStyle.
func (DefaultChecklistItemStyle) MakeBody(configuration ChecklistItemConfiguration) ui.Renderable {
	return configuration.Label()
}

var (
	// OrderedItemStyleKey holds the active style for numbered items.
	OrderedItemStyleKey = components.NewEnvironmentKey[OrderedItemStyle]("markdown.ordered-item-style", DefaultOrderedItemStyle{})
	// UnorderedItemStyleKey holds the active style for bulleted items.
	UnorderedItemStyleKey = components.NewEnvironmentKey[UnorderedItemStyle]("markdown.unordered-item-style", DefaultUnorderedItemStyle{})
	// ChecklistItemStyleKey holds the active style for task items.
	ChecklistItemStyleKey = components.NewEnvironmentKey[ChecklistItemStyle]("markdown.checklist-item-style", DefaultChecklistItemStyle{})
)

// WithOrderedItemStyle applies style to numbered items inside child.
func WithOrderedItemStyle(child ui.Renderable, style OrderedItemStyle) ui.Renderable {
	return components.WithEnvironmentValue(child, OrderedItemStyleKey, style)
}

// WithUnorderedItemStyle applies style to bulleted items inside child.
func WithUnorderedItemStyle(child ui.Renderable, style UnorderedItemStyle) ui.Renderable {
	return components.WithEnvironmentValue(child, UnorderedItemStyleKey, style)
}

// WithChecklistItemStyle applies style to task items inside child.
func WithChecklistItemStyle(child ui.Renderable, style ChecklistItemStyle) ui.Renderable {
	return components.WithEnvironmentValue(child, ChecklistItemStyleKey, style)
}

func bulletFor(glyphs []string, level int) string {
	if len(glyphs) == 0 {
		return "•"
	}
	if level < 0 {
		level = 0
	}
	return glyphs[level%len(glyphs)]
}

// itemLabel lays out marker and text with the text wrapped under itself.
type itemLabel struct {
	level       int
	marker      string
	markerStyle lipgloss.Style
	text        string
	textStyle   lipgloss.Style
}

func (l itemLabel) View() string {
	return l.ViewWithContext(components.DefaultContext())
}

func (l itemLabel) ViewWithContext(ctx components.RenderContext) string {
	level := l.level
	if level < 0 {
		level = 0
	}
	lead := level * ListIndentKey.From(ctx)
	hang := ansi.PrintableRuneWidth(l.marker) + 1

	text := l.text
	if ctx.Constraints.HasWidth() {
		if width := ctx.Constraints.MaxWidth - lead - hang; width > 0 {
			text = wordwrap.String(text, width)
		}
	}

	lines := strings.Split(text, "\n")
	var b strings.Builder
	b.WriteString(l.markerStyle.Render(l.marker))
	b.WriteByte(' ')
	for i, line := range lines {
		if i > 0 {
			b.WriteByte('\n')
			b.WriteString(strings.Repeat(" ", hang))
		}
		b.WriteString(l.textStyle.Render(line))
	}
	return indent.String(b.String(), uint(lead))
}
