package markdown

import (
	"context"
	"image"
	"image/color"
	"net/url"
	"regexp"
	"strings"
	"sync"

	"github.com/alexisbeaulieu97/mdblocks/internal/imageload"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[A-Za-z]`)

// plain strips escape codes and the padding lipgloss adds to short lines.
func plain(s string) string {
	s = ansiPattern.ReplaceAllString(s, "")
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	return strings.Join(lines, "\n")
}

type loaderFunc func(ctx context.Context, u *url.URL) (image.Image, error)

func (f loaderFunc) Load(ctx context.Context, u *url.URL) (image.Image, error) {
	return f(ctx, u)
}

type phaseSource map[string]imageload.Phase

func (p phaseSource) Phase(u *url.URL) imageload.Phase {
	return p[u.String()]
}

func solidImage(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: 0xff, A: 0xff})
		}
	}
	return img
}

type recorder struct {
	mu    sync.Mutex
	calls []string
}

func (r *recorder) add(call string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, call)
}

func (r *recorder) snapshot() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.calls...)
}
