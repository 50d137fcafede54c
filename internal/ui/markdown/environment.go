package markdown

import (
	"context"
	"image"
	"net/url"

	"github.com/alexisbeaulieu97/mdblocks/internal/imageload"
	"github.com/alexisbeaulieu97/mdblocks/internal/logger"
	"github.com/alexisbeaulieu97/mdblocks/internal/ui/components"
)

// ImageLoader performs a blocking fetch-and-decode.
type ImageLoader interface {
	Load(ctx context.Context, u *url.URL) (image.Image, error)
}

// AsyncImageSource reports the progress of background loads without blocking.
type AsyncImageSource interface {
	Phase(u *url.URL) imageload.Phase
}

// ChecklistGlyphs are the markers drawn for task list items.
type ChecklistGlyphs struct {
	Checked   string
	Unchecked string
}

// Environment slots read by the built-in renderers. Each has a usable default,
// so a zero RenderContext renders correctly.
var (
	// AsyncImagesKey reports whether the host re-renders when background loads
	// finish. When false, images load synchronously during the render pass.
	AsyncImagesKey = components.NewEnvironmentKey("markdown.async-images", false)

	// ImageLoaderKey holds the loader used on the synchronous path.
	ImageLoaderKey = components.NewEnvironmentKey[ImageLoader]("markdown.image-loader", imageload.NewLoader(imageload.Options{}))

	// AsyncImageSourceKey holds the background loader used on the async path.
	AsyncImageSourceKey = components.NewEnvironmentKey[AsyncImageSource]("markdown.async-image-source", nil)

	// LoadContextKey bounds synchronous loads.
	LoadContextKey = components.NewEnvironmentKey("markdown.load-context", context.Background())

	// ImageMaxRowsKey caps the height of rendered images in terminal rows.
	ImageMaxRowsKey = components.NewEnvironmentKey("markdown.image-max-rows", 24)

	// SymbolsKey resolves scheme-less image sources.
	SymbolsKey = components.NewEnvironmentKey("markdown.symbols", DefaultSymbols())

	// BulletGlyphsKey lists unordered markers by nesting level, cycling when
	// lists nest deeper than the list is long.
	BulletGlyphsKey = components.NewEnvironmentKey("markdown.bullets", []string{"•", "◦", "▪"})

	// ChecklistGlyphsKey holds the task list markers.
	ChecklistGlyphsKey = components.NewEnvironmentKey("markdown.checklist", ChecklistGlyphs{Checked: "[x]", Unchecked: "[ ]"})

	// ListIndentKey is the indentation per nesting level, in cells.
	ListIndentKey = components.NewEnvironmentKey("markdown.list-indent", 2)

	// LoggerKey receives diagnostics for failures that are not surfaced.
	LoggerKey = components.NewEnvironmentKey[*logger.Logger]("markdown.logger", nil)
)

// ListItemSpacing is the gap between list items. It is zero rows at the default
// content scale and grows to one row at scale 2.
var ListItemSpacing = components.ScaledMetric{Base: 0.5}
