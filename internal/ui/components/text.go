package components

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

// Text is a primitive component for rendering styled text content.
type Text struct {
	BaseComponent
	content string
	wrap    bool
}

// NewText creates a new text component with the given content.
func NewText(content string) *Text {
	return &Text{
		BaseComponent: NewBaseComponent(),
		content:       content,
	}
}

// View renders the text with its styling.
func (t *Text) View() string {
	return t.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the text with the given theme context. Wrapping text
// is broken at word boundaries to the context's maximum width.
func (t *Text) ViewWithContext(ctx RenderContext) string {
	content := t.content
	if t.wrap && ctx.Constraints.MaxWidth > 0 {
		content = wordwrap.String(content, ctx.Constraints.MaxWidth)
	}
	return t.ComputeStyle(ctx.Theme).Render(content)
}

// Wrapped enables word wrapping against the render constraints.
func (t *Text) Wrapped() *Text {
	t.wrap = true
	return t
}

// WithStyle sets the lipgloss style directly.
func (t *Text) WithStyle(style lipgloss.Style) *Text {
	t.SetStyle(style)
	return t
}

// WithAppliers applies theme-based style modifiers.
func (t *Text) WithAppliers(appliers ...StyleFunc) *Text {
	t.SetAppliers(appliers...)
	return t
}

// EmphasisText creates emphasized text using theme typography.
func EmphasisText(content string) *Text {
	return NewText(content).WithAppliers(Typography(TypographyVariantEmphasis))
}

// MutedText creates de-emphasized text using theme typography.
func MutedText(content string) *Text {
	return NewText(content).WithAppliers(Typography(TypographyVariantMuted))
}
