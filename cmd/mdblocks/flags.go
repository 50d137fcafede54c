package main

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/mdblocks/internal/config"
	"github.com/alexisbeaulieu97/mdblocks/internal/ui/components"
)

type displayOptions struct {
	width    int
	revision string
	theme    string
	plain    bool
}

// applyDisplayOptions layers command-line overrides over the loaded configuration.
func applyDisplayOptions(cfg *config.Config, opts displayOptions) error {
	if opts.width < 0 {
		return fmt.Errorf("width must not be negative")
	}
	if opts.width > 0 {
		cfg.Width = opts.width
	}
	if theme := strings.TrimSpace(opts.theme); theme != "" {
		if _, ok := components.ThemeByName(theme); !ok {
			return fmt.Errorf("unknown theme %q (available: %s)", theme, strings.Join(components.AvailableThemes(), ", "))
		}
		cfg.Theme = theme
	}
	if opts.plain {
		cfg.Images.Plain = true
	}
	return nil
}
