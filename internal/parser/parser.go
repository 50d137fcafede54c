// Package parser turns Markdown source into the block model rendered by the
// markdown package.
package parser

import (
	"bytes"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/alexisbeaulieu97/mdblocks/internal/document"
	"github.com/alexisbeaulieu97/mdblocks/internal/logger"
	apperrors "github.com/alexisbeaulieu97/mdblocks/pkg/errors"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

var (
	errInvalidUTF8 = errors.New("input is not valid UTF-8")
	errBinary      = errors.New("input looks like binary data")
)

// Parser converts Markdown into a document.Document.
type Parser struct {
	md  goldmark.Markdown
	log *logger.Logger
}

// New creates a parser with GitHub flavoured extensions enabled.
func New(log *logger.Logger) *Parser {
	return &Parser{
		md:  goldmark.New(goldmark.WithExtensions(extension.GFM)),
		log: log,
	}
}

// Parse converts src using a parser without logging.
func Parse(src []byte) (document.Document, error) {
	return New(nil).Parse("", src)
}

// Parse converts src. Image-only paragraphs become image blocks and lists
// become list blocks; every run of other blocks is kept as Markdown source.
// name is used in errors and logs.
func (p *Parser) Parse(name string, src []byte) (document.Document, error) {
	if bytes.IndexByte(src, 0) >= 0 {
		return document.Document{}, apperrors.NewParseError(name, 0, errBinary)
	}
	if !utf8.Valid(src) {
		return document.Document{}, apperrors.NewParseError(name, lineOfInvalidUTF8(src), errInvalidUTF8)
	}

	root := p.md.Parser().Parse(text.NewReader(src))

	var doc document.Document
	textStart := 0
	flush := func(end int) {
		if end > textStart {
			if chunk := strings.TrimSpace(string(src[textStart:end])); chunk != "" {
				doc.Blocks = append(doc.Blocks, document.TextBlock{Markdown: chunk})
			}
		}
	}

	for node := root.FirstChild(); node != nil; node = node.NextSibling() {
		var block document.Block
		switch n := node.(type) {
		case *ast.Paragraph:
			img := soleImage(n, src)
			if img == nil {
				continue
			}
			block = imageBlock(img, src)
		case *ast.List:
			block = document.ListBlock{List: convertList(n, 0, src)}
		default:
			continue
		}

		start, end, ok := span(node, src)
		if !ok {
			continue
		}
		flush(start)
		doc.Blocks = append(doc.Blocks, block)
		textStart = end
	}
	flush(len(src))

	p.log.WithFields(map[string]any{
		"source": name,
		"blocks": len(doc.Blocks),
		"images": len(doc.ImageSources()),
	}).Debug("parsed document")

	return doc, nil
}

// soleImage returns the image when it is the paragraph's only content.
func soleImage(p *ast.Paragraph, src []byte) *ast.Image {
	var img *ast.Image
	for c := p.FirstChild(); c != nil; c = c.NextSibling() {
		switch n := c.(type) {
		case *ast.Image:
			if img != nil {
				return nil
			}
			img = n
		case *ast.Text:
			if len(bytes.TrimSpace(n.Segment.Value(src))) > 0 {
				return nil
			}
		default:
			return nil
		}
	}
	return img
}

func imageBlock(img *ast.Image, src []byte) document.ImageBlock {
	block := document.ImageBlock{Source: document.Ptr(string(img.Destination))}
	title := strings.TrimSpace(inlineText(img, src))
	if title == "" {
		title = strings.TrimSpace(string(img.Title))
	}
	if title != "" {
		block.Title = document.Ptr(title)
	}
	return block
}

func convertList(list *ast.List, level int, src []byte) document.List {
	var out document.List
	number := list.Start
	for item := list.FirstChild(); item != nil; item = item.NextSibling() {
		var (
			parts   []string
			nested  []document.ListElement
			checked *bool
		)
		for c := item.FirstChild(); c != nil; c = c.NextSibling() {
			switch n := c.(type) {
			case *ast.List:
				nested = append(nested, document.NestedList{List: convertList(n, level+1, src)})
			case *ast.Paragraph, *ast.TextBlock:
				if box, ok := n.FirstChild().(*extast.TaskCheckBox); ok && checked == nil {
					state := box.IsChecked
					checked = &state
				}
				parts = append(parts, strings.TrimSpace(inlineText(n, src)))
			default:
				parts = append(parts, strings.TrimSpace(linesValue(n, src)))
			}
		}

		itemText := strings.Join(parts, "\n")
		switch {
		case checked != nil:
			out.Elements = append(out.Elements, document.ChecklistItem{Checked: *checked, Text: itemText, Level: level})
		case list.IsOrdered():
			out.Elements = append(out.Elements, document.OrderedItem{Number: number, Text: itemText, Level: level})
		default:
			out.Elements = append(out.Elements, document.UnorderedItem{Text: itemText, Level: level})
		}
		out.Elements = append(out.Elements, nested...)
		number++
	}
	return out
}

func linesValue(n ast.Node, src []byte) string {
	var b strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		b.Write(seg.Value(src))
	}
	return b.String()
}

// inlineText flattens the inline content of n to plain text.
func inlineText(n ast.Node, src []byte) string {
	var b strings.Builder
	_ = ast.Walk(n, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := node.(type) {
		case *ast.Text:
			b.Write(t.Segment.Value(src))
			switch {
			case t.HardLineBreak():
				b.WriteByte('\n')
			case t.SoftLineBreak():
				b.WriteByte(' ')
			}
		case *ast.String:
			b.Write(t.Value)
		case *ast.AutoLink:
			b.Write(t.URL(src))
			return ast.WalkSkipChildren, nil
		case *ast.RawHTML:
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	return b.String()
}

// span returns the byte range of the source lines n occupies.
func span(n ast.Node, src []byte) (int, int, bool) {
	start, stop := -1, -1
	_ = ast.Walk(n, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if node.Type() == ast.TypeBlock {
			lines := node.Lines()
			for i := 0; i < lines.Len(); i++ {
				seg := lines.At(i)
				start, stop = widen(start, stop, seg.Start, seg.Stop)
			}
		}
		if t, ok := node.(*ast.Text); ok {
			start, stop = widen(start, stop, t.Segment.Start, t.Segment.Stop)
		}
		return ast.WalkContinue, nil
	})
	if start < 0 {
		return 0, 0, false
	}
	return lineStart(src, start), lineEnd(src, stop), true
}

func widen(start, stop, segStart, segStop int) (int, int) {
	if start < 0 || segStart < start {
		start = segStart
	}
	if segStop > stop {
		stop = segStop
	}
	return start, stop
}

func lineStart(src []byte, pos int) int {
	if pos > len(src) {
		pos = len(src)
	}
	if i := bytes.LastIndexByte(src[:pos], '\n'); i >= 0 {
		return i + 1
	}
	return 0
}

func lineEnd(src []byte, pos int) int {
	if pos <= 0 {
		return 0
	}
	if pos > len(src) {
		return len(src)
	}
	if src[pos-1] == '\n' {
		return pos
	}
	if i := bytes.IndexByte(src[pos:], '\n'); i >= 0 {
		return pos + i + 1
	}
	return len(src)
}

func lineOfInvalidUTF8(src []byte) int {
	line := 1
	for len(src) > 0 {
		r, size := utf8.DecodeRune(src)
		if r == utf8.RuneError && size <= 1 {
			return line
		}
		if r == '\n' {
			line++
		}
		src = src[size:]
	}
	return line
}
