package components

import (
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// TypographyVariant represents a strongly-typed typography token.
type TypographyVariant int

const (
	TypographyVariantBase TypographyVariant = iota
	TypographyVariantTitle
	TypographyVariantBody
	TypographyVariantCode
	TypographyVariantEmphasis
	TypographyVariantMuted
)

// Palette describes semantic colour slots used by components.
type Palette struct {
	Primary   ColourSet
	Secondary ColourSet
	Surface   ColourSet
	Success   ColourSet
	Neutral   ColourSet
}

// ColourSet represents a semantic color set with base, on-base and muted colors.
// All colors are adaptive, providing both light and dark mode variants.
type ColourSet struct {
	Base   lipgloss.AdaptiveColor
	OnBase lipgloss.AdaptiveColor
	Muted  lipgloss.AdaptiveColor
}

// TypographyScale contains semantic typography presets.
type TypographyScale struct {
	Base     lipgloss.Style
	Title    lipgloss.Style
	Body     lipgloss.Style
	Code     lipgloss.Style
	Emphasis lipgloss.Style
	Muted    lipgloss.Style
}

// MarkdownStyles holds the styles used by the built-in markdown block renderers.
type MarkdownStyles struct {
	OrderedMarker   lipgloss.Style
	UnorderedMarker lipgloss.Style
	CheckedMarker   lipgloss.Style
	UncheckedMarker lipgloss.Style
	ItemText        lipgloss.Style
	CheckedText     lipgloss.Style
	Symbol          lipgloss.Style
	// TextStyle names the glamour standard style used for prose blocks.
	TextStyle string
}

// Theme represents an immutable styling theme for components.
// All modification operations return new theme instances rather than mutating
// the original.
type Theme struct {
	Name       string
	Palette    Palette
	Typography TypographyScale
	Markdown   MarkdownStyles
}

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

// DefaultTheme returns the default adaptive theme.
func DefaultTheme() Theme {
	palette := Palette{
		Primary: ColourSet{
			Base:   ac("#3b82f6", "#60a5fa"),
			OnBase: ac("#f8fafc", "#0b1120"),
			Muted:  ac("#2563eb", "#1d4ed8"),
		},
		Secondary: ColourSet{
			Base:   ac("#a855f7", "#c084fc"),
			OnBase: ac("#f8fafc", "#1f2937"),
			Muted:  ac("#7c3aed", "#6b21a8"),
		},
		Surface: ColourSet{
			Base:   ac("#f9fafb", "#111827"),
			OnBase: ac("#111827", "#f9fafb"),
			Muted:  ac("#e2e8f0", "#1f2937"),
		},
		Success: ColourSet{
			Base:   ac("#22c55e", "#4ade80"),
			OnBase: ac("#052e16", "#022c22"),
			Muted:  ac("#16a34a", "#15803d"),
		},
		Neutral: ColourSet{
			Base:   ac("#64748b", "#94a3b8"),
			OnBase: ac("#f1f5f9", "#0f172a"),
			Muted:  ac("#475569", "#334155"),
		},
	}
	return newTheme("default", palette, "auto")
}

// DarkTheme returns a dark theme variant.
func DarkTheme() Theme {
	theme := DefaultTheme()
	theme.Palette.Surface = ColourSet{
		Base:   ac("#111827", "#0b1120"),
		OnBase: ac("#f9fafb", "#e5e7eb"),
		Muted:  ac("#1f2937", "#111827"),
	}
	theme.Palette.Neutral = ColourSet{
		Base:   ac("#475569", "#334155"),
		OnBase: ac("#e5e7eb", "#cbd5f5"),
		Muted:  ac("#374151", "#1f2937"),
	}
	return newTheme("dark", theme.Palette, "dark")
}

// LightTheme returns a light theme variant.
func LightTheme() Theme {
	theme := DefaultTheme()
	return newTheme("light", theme.Palette, "light")
}

func newTheme(name string, palette Palette, textStyle string) Theme {
	theme := Theme{
		Name:       name,
		Palette:    palette,
		Typography: defaultTypography(palette),
	}
	theme.Markdown = defaultMarkdownStyles(theme, textStyle)
	return theme
}

func defaultTypography(p Palette) TypographyScale {
	base := lipgloss.NewStyle().Foreground(p.Surface.OnBase)

	return TypographyScale{
		Base: base,
		Title: base.
			Bold(true).
			Foreground(p.Primary.Base),
		Body: base,
		Code: base.
			Foreground(p.Secondary.Base).
			Background(p.Surface.Muted),
		Emphasis: base.Bold(true),
		Muted:    base.Foreground(p.Neutral.Base).Faint(true),
	}
}

func defaultMarkdownStyles(theme Theme, textStyle string) MarkdownStyles {
	plain := lipgloss.NewStyle()
	bold := plain.Bold(true)
	return MarkdownStyles{
		OrderedMarker:   Foreground(PalettePrimary)(bold, theme),
		UnorderedMarker: Foreground(PalettePrimary)(plain, theme),
		CheckedMarker:   Foreground(PaletteSuccess)(bold, theme),
		UncheckedMarker: Foreground(PaletteNeutral)(plain, theme),
		ItemText:        TypographyStyle(theme, TypographyVariantBody),
		CheckedText:     Typography(TypographyVariantMuted)(plain.Strikethrough(true), theme),
		Symbol:          Foreground(PaletteSecondary)(plain, theme),
		TextStyle:       textStyle,
	}
}

var builtinThemes = map[string]func() Theme{
	"default": DefaultTheme,
	"dark":    DarkTheme,
	"light":   LightTheme,
}

// AvailableThemes returns the names of built-in themes.
func AvailableThemes() []string {
	names := make([]string, 0, len(builtinThemes))
	for name := range builtinThemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ThemeByName returns a built-in theme by name. An empty name selects the
// default theme.
func ThemeByName(name string) (Theme, bool) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	if normalized == "" {
		return DefaultTheme(), true
	}
	build, ok := builtinThemes[normalized]
	if !ok {
		return Theme{}, false
	}
	return build(), true
}

// TypographyStyle returns the specified typography style from the given theme.
func TypographyStyle(theme Theme, variant TypographyVariant) lipgloss.Style {
	typo := theme.Typography
	switch variant {
	case TypographyVariantTitle:
		return typo.Title
	case TypographyVariantBody:
		return typo.Body
	case TypographyVariantCode:
		return typo.Code
	case TypographyVariantEmphasis:
		return typo.Emphasis
	case TypographyVariantMuted:
		return typo.Muted
	default:
		return typo.Base
	}
}

// PaletteSlot provides access to a semantic colour slot from a Palette.
type PaletteSlot func(Palette) ColourSet

// Predefined semantic palette slots for type-safe theme access.
var (
	PalettePrimary   PaletteSlot = func(p Palette) ColourSet { return p.Primary }
	PaletteSecondary PaletteSlot = func(p Palette) ColourSet { return p.Secondary }
	PaletteSuccess   PaletteSlot = func(p Palette) ColourSet { return p.Success }
	PaletteNeutral   PaletteSlot = func(p Palette) ColourSet { return p.Neutral }
)

// Foreground applies a semantic foreground colour without changing the background.
//
// Example:
//
//	text := NewText("done").WithAppliers(Foreground(PaletteSuccess))
func Foreground(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		cs := slot(theme.Palette)
		return base.Foreground(cs.Base)
	}
}

// Typography applies typography styling.
func Typography(variant TypographyVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Inherit(TypographyStyle(theme, variant))
	}
}
