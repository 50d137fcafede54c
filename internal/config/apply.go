package config

import (
	"github.com/alexisbeaulieu97/mdblocks/internal/ui/components"
	"github.com/alexisbeaulieu97/mdblocks/internal/ui/markdown"
)

// Apply installs the configured theme, width and environment values into ctx.
// Image loading keys are left to the host, which knows whether it can
// re-render when a background load finishes.
func (c *Config) Apply(ctx components.RenderContext) components.RenderContext {
	if theme, ok := components.ThemeByName(c.Theme); ok {
		ctx = ctx.WithTheme(theme)
	}
	if c.Width > 0 {
		ctx = ctx.WithConstraints(components.WithMaxWidth(c.Width))
	}
	if c.ContentScale > 0 {
		ctx = components.ContentScaleKey.In(ctx, c.ContentScale)
	}
	ctx = components.AccessibilityModeKey.In(ctx, c.Images.Plain)
	if c.Images.MaxHeight > 0 {
		ctx = markdown.ImageMaxRowsKey.In(ctx, c.Images.MaxHeight)
	}
	if len(c.Lists.Bullets) > 0 {
		ctx = markdown.BulletGlyphsKey.In(ctx, append([]string(nil), c.Lists.Bullets...))
	}
	if c.Lists.Checklist.Checked != "" && c.Lists.Checklist.Unchecked != "" {
		ctx = markdown.ChecklistGlyphsKey.In(ctx, markdown.ChecklistGlyphs{
			Checked:   c.Lists.Checklist.Checked,
			Unchecked: c.Lists.Checklist.Unchecked,
		})
	}
	ctx = markdown.ListIndentKey.In(ctx, c.Lists.Indent)
	if len(c.Symbols) > 0 {
		ctx = markdown.SymbolsKey.In(ctx, markdown.DefaultSymbols().Merge(c.Symbols))
	}
	return ctx
}
