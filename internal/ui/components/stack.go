package components

import (
	"strings"

	"github.com/alexisbeaulieu97/mdblocks/internal/ui"
	"github.com/charmbracelet/lipgloss"
)

// Direction specifies the layout direction for a Stack.
type Direction int

const (
	DirectionVertical Direction = iota
	DirectionHorizontal
)

// Stack is a layout component that arranges children in a single direction.
type Stack struct {
	BaseComponent
	children    []ui.Renderable
	direction   Direction
	gap         int
	gapMetric   *ScaledMetric
	constraints Constraints
}

// NewStack creates a new stack with default vertical layout.
func NewStack(children ...ui.Renderable) *Stack {
	return &Stack{
		BaseComponent: NewBaseComponent(),
		children:      children,
		direction:     DirectionVertical,
		constraints:   Unconstrained(),
	}
}

// VStack creates a vertical stack (convenience constructor).
func VStack(children ...ui.Renderable) *Stack {
	return NewStack(children...).WithDirection(DirectionVertical)
}

// HStack creates a horizontal stack (convenience constructor).
func HStack(children ...ui.Renderable) *Stack {
	return NewStack(children...).WithDirection(DirectionHorizontal)
}

// View renders the stack and its children.
func (s *Stack) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the stack with layout context.
func (s *Stack) ViewWithContext(ctx RenderContext) string {
	if len(s.children) == 0 {
		return s.ComputeStyle(ctx.Theme).Render("")
	}

	effectiveConstraints := s.mergeConstraints(ctx.Constraints)
	childCtx := ctx.WithConstraints(s.deriveChildConstraints(effectiveConstraints))

	childViews := make([]string, 0, len(s.children))
	for _, child := range s.children {
		if child == nil {
			continue
		}
		if view := RenderWithContext(child, childCtx); view != "" {
			childViews = append(childViews, view)
		}
	}

	if len(childViews) == 0 {
		return s.ComputeStyle(ctx.Theme).Render("")
	}

	gap := s.resolveGap(ctx)
	var content string
	if s.direction == DirectionHorizontal {
		content = s.joinHorizontal(childViews, gap)
	} else {
		content = s.joinVertical(childViews, gap)
	}

	// Unstyled stacks return the joined children as they are. Rendering them
	// through lipgloss would pad every line to the widest one.
	if !s.Styled() {
		return content
	}

	finalStyle := s.ComputeStyle(ctx.Theme)
	if effectiveConstraints.MaxWidth > 0 {
		finalStyle = finalStyle.MaxWidth(effectiveConstraints.MaxWidth)
	}
	if effectiveConstraints.MaxHeight > 0 {
		finalStyle = finalStyle.MaxHeight(effectiveConstraints.MaxHeight)
	}

	return finalStyle.Render(content)
}

func (s *Stack) resolveGap(ctx RenderContext) int {
	if s.gapMetric != nil {
		return s.gapMetric.Resolve(ctx)
	}
	return s.gap
}

// mergeConstraints combines stack-level constraints with parent context constraints.
func (s *Stack) mergeConstraints(parentConstraints Constraints) Constraints {
	result := parentConstraints

	if s.constraints.MaxWidth > 0 && (result.MaxWidth <= 0 || s.constraints.MaxWidth < result.MaxWidth) {
		result.MaxWidth = s.constraints.MaxWidth
	}
	if s.constraints.MaxHeight > 0 && (result.MaxHeight <= 0 || s.constraints.MaxHeight < result.MaxHeight) {
		result.MaxHeight = s.constraints.MaxHeight
	}
	if s.constraints.MinWidth > result.MinWidth {
		result.MinWidth = s.constraints.MinWidth
	}
	if s.constraints.MinHeight > result.MinHeight {
		result.MinHeight = s.constraints.MinHeight
	}

	return result
}

// deriveChildConstraints computes constraints for child components based on layout direction.
func (s *Stack) deriveChildConstraints(parentConstraints Constraints) Constraints {
	childConstraints := parentConstraints

	// For horizontal stacks, divide width among children
	if s.direction == DirectionHorizontal && parentConstraints.MaxWidth > 0 && len(s.children) > 0 {
		totalGap := s.gap * (len(s.children) - 1)
		availableWidth := parentConstraints.MaxWidth - totalGap
		if availableWidth > 0 {
			childConstraints.MaxWidth = availableWidth / len(s.children)
		}
	}

	return childConstraints
}

func (s *Stack) joinVertical(views []string, gap int) string {
	result := views
	if gap > 0 {
		// A spacer of n newlines adds n+1 rows when joined, so use gap-1 newlines.
		spacer := strings.Repeat("\n", gap-1)
		result = make([]string, 0, len(views)*2-1)
		for i, view := range views {
			if i > 0 {
				result = append(result, spacer)
			}
			result = append(result, view)
		}
	}

	// Joined without padding so text output carries no trailing blanks.
	return strings.Join(result, "\n")
}

func (s *Stack) joinHorizontal(views []string, gap int) string {
	if gap == 0 {
		return lipgloss.JoinHorizontal(lipgloss.Top, views...)
	}

	spacer := strings.Repeat(" ", gap)
	result := make([]string, 0, len(views)*2-1)
	for i, view := range views {
		if i > 0 {
			result = append(result, spacer)
		}
		result = append(result, view)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, result...)
}

// WithDirection sets the layout direction.
func (s *Stack) WithDirection(dir Direction) *Stack {
	s.direction = dir
	return s
}

// WithGap sets a fixed spacing between children.
func (s *Stack) WithGap(gap int) *Stack {
	s.gap = gap
	s.gapMetric = nil
	return s
}

// WithScaledGap sets a spacing that follows the content scale of the context
// the stack is rendered in.
func (s *Stack) WithScaledGap(metric ScaledMetric) *Stack {
	s.gapMetric = &metric
	return s
}

// WithStyle sets the container style.
func (s *Stack) WithStyle(style lipgloss.Style) *Stack {
	s.SetStyle(style)
	return s
}

// WithAppliers applies theme-based style modifiers.
func (s *Stack) WithAppliers(appliers ...StyleFunc) *Stack {
	s.SetAppliers(appliers...)
	return s
}

// WithConstraints sets sizing constraints.
func (s *Stack) WithConstraints(constraints Constraints) *Stack {
	s.constraints = constraints
	return s
}

// Add appends children to the stack.
func (s *Stack) Add(children ...ui.Renderable) *Stack {
	s.children = append(s.children, children...)
	return s
}
