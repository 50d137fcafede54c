package markdown

import (
	"github.com/alexisbeaulieu97/mdblocks/internal/document"
	"github.com/alexisbeaulieu97/mdblocks/internal/ui"
	"github.com/alexisbeaulieu97/mdblocks/internal/ui/components"
)

// ListStyle produces the body for a list or sub-list.
type ListStyle interface {
	MakeBody(configuration ListConfiguration) ui.Renderable
}

// ListStyleFunc adapts a function to ListStyle.
type ListStyleFunc func(configuration ListConfiguration) ui.Renderable

// MakeBody implements ListStyle.
func (f ListStyleFunc) MakeBody(configuration ListConfiguration) ui.Renderable {
	return f(configuration)
}

// ListConfiguration describes one list at a nesting level. Top-level lists are
// level 0.
type ListConfiguration struct {
	List  document.List
	Level int
}

// Label returns the built-in rendering: the list's elements stacked
// vertically, each through the style installed for its kind.
func (c ListConfiguration) Label() ui.Renderable {
	stack := components.VStack().WithScaledGap(ListItemSpacing)
	for _, element := range c.List.Elements {
		if body := c.elementBody(element); body != nil {
			stack.Add(body)
		}
	}
	return stack
}

func (c ListConfiguration) elementBody(element document.ListElement) ui.Renderable {
	switch el := element.(type) {
	case document.OrderedItem:
		return resolved(func(ctx components.RenderContext) ui.Renderable {
			return OrderedItemStyleKey.From(ctx).MakeBody(OrderedItemConfiguration{OrderedItem: el})
		})
	case document.UnorderedItem:
		return resolved(func(ctx components.RenderContext) ui.Renderable {
			return UnorderedItemStyleKey.From(ctx).MakeBody(UnorderedItemConfiguration{UnorderedItem: el})
		})
	case document.ChecklistItem:
		return resolved(func(ctx components.RenderContext) ui.Renderable {
			return ChecklistItemStyleKey.From(ctx).MakeBody(ChecklistItemConfiguration{ChecklistItem: el})
		})
	case document.NestedList:
		nested := ListConfiguration{List: el.List, Level: c.Level + 1}
		return resolved(func(ctx components.RenderContext) ui.Renderable {
			return ListStyleKey.From(ctx).MakeBody(nested)
		})
	default:
		return nil
	}
}

// DefaultListStyle renders the configuration's label.
type DefaultListStyle struct{}

// MakeBody implements ListStyle.
func (DefaultListStyle) MakeBody(configuration ListConfiguration) ui.Renderable {
	return configuration.Label()
}

// ListStyleKey holds the active list style. Nested lists read it again at
// their own position, so one installation covers every level below it.
var ListStyleKey = components.NewEnvironmentKey[ListStyle]("markdown.list-style", DefaultListStyle{})

// WithListStyle applies style to every list rendered inside child.
func WithListStyle(child ui.Renderable, style ListStyle) ui.Renderable {
	return components.WithEnvironmentValue(child, ListStyleKey, style)
}
