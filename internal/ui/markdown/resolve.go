package markdown

import (
	"github.com/alexisbeaulieu97/mdblocks/internal/ui"
	"github.com/alexisbeaulieu97/mdblocks/internal/ui/components"
)

// resolved defers building a body until the render pass, so the builder sees
// the environment the body is rendered in rather than the one it was declared in.
type resolved func(ctx components.RenderContext) ui.Renderable

func (r resolved) View() string {
	return r.ViewWithContext(components.DefaultContext())
}

func (r resolved) ViewWithContext(ctx components.RenderContext) string {
	body := r(ctx)
	if body == nil {
		return ""
	}
	return components.RenderWithContext(body, ctx)
}
