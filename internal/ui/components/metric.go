package components

import "math"

// ContentScaleKey holds the host's content scale factor. Metrics declared with
// ScaledMetric grow and shrink with it. 1.0 is the default size.
var ContentScaleKey = NewEnvironmentKey("content-scale", 1.0)

// AccessibilityModeKey is set when output is consumed by a screen reader or a
// plain-text sink. Components that draw pixels render their labels instead.
var AccessibilityModeKey = NewEnvironmentKey("accessibility-mode", false)

// ScaledMetric is a size in terminal cells that follows the content scale.
type ScaledMetric struct {
	Base float64
}

// Resolve returns the metric for ctx, rounded down to whole cells.
func (m ScaledMetric) Resolve(ctx RenderContext) int {
	scale := ContentScaleKey.From(ctx)
	if scale <= 0 || math.IsNaN(scale) || math.IsInf(scale, 0) {
		scale = 1
	}
	v := int(math.Floor(m.Base * scale))
	if v < 0 {
		return 0
	}
	return v
}
