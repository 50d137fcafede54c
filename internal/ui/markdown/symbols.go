package markdown

import "strings"

// SymbolSet maps symbol names, as used in scheme-less image sources, to the
// glyphs drawn for them.
type SymbolSet map[string]string

var defaultSymbols = SymbolSet{
	"star":                     "☆",
	"star.fill":                "★",
	"heart":                    "♡",
	"heart.fill":               "♥",
	"checkmark":                "✓",
	"checkmark.circle":         "✓",
	"checkmark.circle.fill":    "✔",
	"xmark":                    "✗",
	"xmark.circle.fill":        "✖",
	"circle":                   "○",
	"circle.fill":              "●",
	"square":                   "□",
	"square.fill":              "■",
	"triangle":                 "△",
	"triangle.fill":            "▲",
	"diamond":                  "◇",
	"diamond.fill":             "◆",
	"arrow.right":              "→",
	"arrow.left":               "←",
	"arrow.up":                 "↑",
	"arrow.down":               "↓",
	"chevron.right":            "›",
	"chevron.left":             "‹",
	"exclamationmark.triangle": "⚠",
	"info.circle":              "ℹ",
	"bolt.fill":                "⚡",
	"sun.max":                  "☀",
	"moon":                     "☾",
	"cloud":                    "☁",
	"flag.fill":                "⚑",
	"music.note":               "♪",
	"envelope":                 "✉",
	"pencil":                   "✎",
	"scissors":                 "✂",
	"gearshape":                "⚙",
}

// DefaultSymbols returns a copy of the built-in symbol table.
func DefaultSymbols() SymbolSet {
	return defaultSymbols.Merge(nil)
}

// Lookup returns the glyph for name. Names are matched case-insensitively.
func (s SymbolSet) Lookup(name string) (string, bool) {
	if glyph, ok := s[name]; ok {
		return glyph, true
	}
	glyph, ok := s[strings.ToLower(strings.TrimSpace(name))]
	return glyph, ok
}

// Merge returns a new set holding s overlaid with extra.
func (s SymbolSet) Merge(extra map[string]string) SymbolSet {
	out := make(SymbolSet, len(s)+len(extra))
	for k, v := range s {
		out[k] = v
	}
	for k, v := range extra {
		out[strings.ToLower(strings.TrimSpace(k))] = v
	}
	return out
}
