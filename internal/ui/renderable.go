// Package ui defines the minimal contract shared by every terminal view.
package ui

// Renderable is anything that can produce its terminal representation.
type Renderable interface {
	View() string
}

// RenderFunc adapts a plain function to Renderable.
type RenderFunc func() string

// View implements Renderable.
func (f RenderFunc) View() string {
	if f == nil {
		return ""
	}
	return f()
}
