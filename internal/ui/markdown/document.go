package markdown

import (
	"net/url"

	"github.com/alexisbeaulieu97/mdblocks/internal/document"
	"github.com/alexisbeaulieu97/mdblocks/internal/ui"
	"github.com/alexisbeaulieu97/mdblocks/internal/ui/components"
)

// DocumentView renders a parsed document block by block, separated by one
// blank line. Images and lists go through the styles installed in the
// environment; other blocks go through the TextRenderer.
type DocumentView struct {
	doc document.Document
}

// NewDocumentView creates a view of doc.
func NewDocumentView(doc document.Document) *DocumentView {
	return &DocumentView{doc: doc}
}

// View renders the document with the default context.
func (d *DocumentView) View() string {
	return d.ViewWithContext(components.DefaultContext())
}

// ViewWithContext renders the document. Blocks that render nothing leave no gap.
func (d *DocumentView) ViewWithContext(ctx components.RenderContext) string {
	stack := components.VStack().WithGap(1)
	for _, block := range d.doc.Blocks {
		if body := blockBody(block); body != nil {
			stack.Add(body)
		}
	}
	return stack.ViewWithContext(ctx)
}

func blockBody(block document.Block) ui.Renderable {
	switch b := block.(type) {
	case document.ImageBlock:
		configuration := ImageConfiguration{Source: b.Source, Title: b.Title}
		return resolved(func(ctx components.RenderContext) ui.Renderable {
			return ImageStyleKey.From(ctx).MakeBody(configuration)
		})
	case document.ListBlock:
		configuration := ListConfiguration{List: b.List}
		return resolved(func(ctx components.RenderContext) ui.Renderable {
			return ListStyleKey.From(ctx).MakeBody(configuration)
		})
	case document.TextBlock:
		return prose{markdown: b.Markdown}
	default:
		return nil
	}
}

// ImageURLs returns the parsed URLs of image blocks whose source has a
// scheme. Symbol names are skipped.
func (d *DocumentView) ImageURLs() []*url.URL {
	var out []*url.URL
	seen := make(map[string]bool)
	for _, source := range d.doc.ImageSources() {
		u, err := url.Parse(source)
		if err != nil || u.Scheme == "" || seen[u.String()] {
			continue
		}
		seen[u.String()] = true
		out = append(out, u)
	}
	return out
}
