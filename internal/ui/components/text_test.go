package components

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTextWrappedBreaksAtContextWidth(t *testing.T) {
	t.Parallel()

	ctx := DefaultContext().WithConstraints(WithMaxWidth(10))

	wrapped := NewText("one two three four").Wrapped().ViewWithContext(ctx)
	lines := strings.Split(wrapped, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	assert.Equal(t, []string{"one two", "three four"}, lines)

	unwrapped := NewText("one two three four").ViewWithContext(ctx)
	assert.Equal(t, "one two three four", unwrapped)
}

func TestTypographyTextStyles(t *testing.T) {
	t.Parallel()

	theme := DefaultTheme()

	emphasis := EmphasisText("x")
	assert.True(t, emphasis.Styled())
	assert.True(t, emphasis.ComputeStyle(theme).GetBold())

	muted := MutedText("x")
	assert.True(t, muted.ComputeStyle(theme).GetFaint())
	assert.Equal(t, theme.Palette.Neutral.Base, muted.ComputeStyle(theme).GetForeground())
}
