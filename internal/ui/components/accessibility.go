package components

import "github.com/alexisbeaulieu97/mdblocks/internal/ui"

// Accessible pairs a visual child with the text a screen reader should get.
type Accessible struct {
	child ui.Renderable
	label string
}

// AccessibilityLabel wraps child with label.
func AccessibilityLabel(child ui.Renderable, label string) *Accessible {
	return &Accessible{child: child, label: label}
}

// View renders the child with the default context.
func (a *Accessible) View() string {
	return a.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the label in accessibility mode and the child otherwise.
// The label is only emitted when the child itself would render something.
func (a *Accessible) ViewWithContext(ctx RenderContext) string {
	visual := RenderWithContext(a.child, ctx)
	if !AccessibilityModeKey.From(ctx) || visual == "" {
		return visual
	}
	return a.label
}

// Label returns the accessibility text.
func (a *Accessible) Label() string {
	return a.label
}
