package components

// Empty renders nothing. It stands in wherever a body is required but there is
// no content, so callers never need nil checks.
type Empty struct{}

// View implements ui.Renderable.
func (Empty) View() string { return "" }

// ViewWithContext implements ContextualRenderable.
func (Empty) ViewWithContext(RenderContext) string { return "" }
