package components

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	xdraw "golang.org/x/image/draw"
)

// DefaultRasterWidth is used when neither the raster nor the context limits width.
const DefaultRasterWidth = 40

const (
	upperHalf = "▀"
	lowerHalf = "▄"
)

// Raster draws a decoded image with half-block characters, two pixel rows per
// terminal row. The image is scaled to fit the available width and the
// optional row limit while keeping its aspect ratio.
type Raster struct {
	img     image.Image
	maxRows int
}

// NewRaster creates a raster for img.
func NewRaster(img image.Image) *Raster {
	return &Raster{img: img}
}

// WithMaxRows limits the number of terminal rows. Zero means no limit.
func (r *Raster) WithMaxRows(rows int) *Raster {
	r.maxRows = rows
	return r
}

// View renders the raster with the default context.
func (r *Raster) View() string {
	return r.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the raster scaled to fit the context.
func (r *Raster) ViewWithContext(ctx RenderContext) string {
	if r.img == nil {
		return ""
	}
	bounds := r.img.Bounds()
	if bounds.Empty() {
		return ""
	}

	rows := r.maxRows
	if ctx.Constraints.MaxHeight > 0 && (rows <= 0 || ctx.Constraints.MaxHeight < rows) {
		rows = ctx.Constraints.MaxHeight
	}
	w, h := FitSize(bounds.Dx(), bounds.Dy(), ctx.AvailableWidth(DefaultRasterWidth), rows*2)

	scaled := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(scaled, scaled.Bounds(), r.img, bounds, xdraw.Over, nil)

	var b strings.Builder
	for y := 0; y < h; y += 2 {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < w; x++ {
			top := scaled.RGBAAt(x, y)
			var bottom color.RGBA
			if y+1 < h {
				bottom = scaled.RGBAAt(x, y+1)
			}
			b.WriteString(halfBlock(top, bottom))
		}
	}
	return b.String()
}

// FitSize scales w×h to fit inside maxW×maxH preserving aspect ratio. A
// non-positive maxH leaves height unbounded. The result is never smaller than 1×1.
func FitSize(w, h, maxW, maxH int) (int, int) {
	if w <= 0 || h <= 0 {
		return 0, 0
	}
	scale := math.Inf(1)
	if maxW > 0 {
		scale = float64(maxW) / float64(w)
	}
	if maxH > 0 {
		scale = math.Min(scale, float64(maxH)/float64(h))
	}
	if math.IsInf(scale, 1) {
		return w, h
	}
	fw := int(math.Floor(float64(w) * scale))
	fh := int(math.Floor(float64(h) * scale))
	if fw < 1 {
		fw = 1
	}
	if fh < 1 {
		fh = 1
	}
	return fw, fh
}

func halfBlock(top, bottom color.RGBA) string {
	topVisible := top.A >= 0x80
	bottomVisible := bottom.A >= 0x80
	switch {
	case topVisible && bottomVisible:
		return lipgloss.NewStyle().
			Foreground(hexColor(top)).
			Background(hexColor(bottom)).
			Render(upperHalf)
	case topVisible:
		return lipgloss.NewStyle().Foreground(hexColor(top)).Render(upperHalf)
	case bottomVisible:
		return lipgloss.NewStyle().Foreground(hexColor(bottom)).Render(lowerHalf)
	default:
		return " "
	}
}

func hexColor(c color.RGBA) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
}
