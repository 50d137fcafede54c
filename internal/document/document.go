// Package document holds the block-level model produced by the parser and
// consumed by the markdown renderers. Every type here is a plain value; nothing
// is mutated after construction.
package document

// Document is an ordered sequence of top-level blocks.
type Document struct {
	Blocks []Block
}

// Block is one top-level renderable construct.
type Block interface {
	isBlock()
}

// ImageBlock is an image that stands alone in its paragraph.
type ImageBlock struct {
	// Source is a URL with a scheme or a symbol name. Nil renders nothing.
	Source *string
	// Title is the accessibility label.
	Title *string
}

// ListBlock is a top-level list.
type ListBlock struct {
	List List
}

// TextBlock is any other block, kept as its markdown source.
type TextBlock struct {
	Markdown string
}

func (ImageBlock) isBlock() {}
func (ListBlock) isBlock()  {}
func (TextBlock) isBlock()  {}

// Ptr returns a pointer to s. It is a convenience for building optional fields.
func Ptr(s string) *string {
	return &s
}

// ImageSources returns the non-nil sources of every image block in order.
func (d Document) ImageSources() []string {
	var out []string
	for _, block := range d.Blocks {
		if img, ok := block.(ImageBlock); ok && img.Source != nil {
			out = append(out, *img.Source)
		}
	}
	return out
}
