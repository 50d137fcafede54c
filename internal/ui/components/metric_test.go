package components

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScaledMetricFollowsContentScale(t *testing.T) {
	t.Parallel()

	metric := ScaledMetric{Base: 0.5}
	tests := []struct {
		scale float64
		want  int
	}{
		{scale: 1, want: 0},
		{scale: 2, want: 1},
		{scale: 3, want: 1},
		{scale: 4, want: 2},
		{scale: 0, want: 0},
		{scale: math.NaN(), want: 0},
	}

	for _, tt := range tests {
		ctx := ContentScaleKey.In(DefaultContext(), tt.scale)
		assert.Equal(t, tt.want, metric.Resolve(ctx), "scale %v", tt.scale)
	}
	assert.Equal(t, 3, ScaledMetric{Base: 3}.Resolve(DefaultContext()))
}

func TestStackScaledGap(t *testing.T) {
	t.Parallel()

	stack := VStack(NewText("a"), NewText("b")).WithScaledGap(ScaledMetric{Base: 1})

	assert.Equal(t, "a\n\nb", stack.View())
	assert.Equal(t, "a\n\n\nb", stack.ViewWithContext(ContentScaleKey.In(DefaultContext(), 2)))
}

func TestStackSkipsEmptyChildren(t *testing.T) {
	t.Parallel()

	stack := VStack(NewText("a"), Empty{}, nil, NewText("b")).WithGap(1)
	assert.Equal(t, "a\n\nb", stack.View())
	assert.Empty(t, VStack().View())
	assert.Empty(t, VStack(Empty{}).View())
}
