package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/mdblocks/internal/ui/components"
	"github.com/alexisbeaulieu97/mdblocks/internal/ui/markdown"
	apperrors "github.com/alexisbeaulieu97/mdblocks/pkg/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	require.NoError(t, Validate(cfg))
}

func TestLoadMergesFileOverDefaults(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `version: "1"
theme: dark
width: 100
content_scale: 1.5
images:
  async: false
  timeout: 5
lists:
  bullets: ["-", "+"]
  checklist:
    checked: "☑"
symbols:
  logo: "◎"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "dark", cfg.Theme)
	assert.Equal(t, 100, cfg.Width)
	assert.InDelta(t, 1.5, cfg.ContentScale, 1e-9)
	assert.False(t, cfg.Images.Async)
	assert.Equal(t, 5, cfg.Images.Timeout)
	assert.Equal(t, Default().Images.MaxBytes, cfg.Images.MaxBytes)
	assert.Equal(t, 24, cfg.Images.MaxHeight)
	assert.Equal(t, []string{"-", "+"}, cfg.Lists.Bullets)
	assert.Equal(t, ChecklistSettings{Checked: "☑", Unchecked: "[ ]"}, cfg.Lists.Checklist)
	assert.Equal(t, map[string]string{"logo": "◎"}, cfg.Symbols)
	assert.Equal(t, 5*time.Second, cfg.LoaderOptions().Timeout)
}

func TestLoadReportsParseErrors(t *testing.T) {
	t.Parallel()

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		var parseErr *apperrors.ParseError
		require.True(t, errors.As(err, &parseErr))
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := writeConfig(t, "version: \"1\"\nwidth: [1, 2]\n")
		_, err := Load(path)
		var parseErr *apperrors.ParseError
		require.True(t, errors.As(err, &parseErr))
		assert.Equal(t, 2, parseErr.Line)
	})
}

func TestLoadReportsValidationErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		yaml  string
		field string
	}{
		{name: "version", yaml: "version: \"2\"\n", field: "version"},
		{name: "theme", yaml: "version: \"1\"\ntheme: neon\n", field: "theme"},
		{name: "scale", yaml: "version: \"1\"\ncontent_scale: 9\n", field: "content_scale"},
		{name: "timeout", yaml: "version: \"1\"\nimages:\n  timeout: 0\n", field: "images.timeout"},
		{name: "bullet", yaml: "version: \"1\"\nlists:\n  bullets: [\"\"]\n", field: "lists.bullets[0]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.yaml))
			var validationErr *apperrors.ValidationError
			require.True(t, errors.As(err, &validationErr), "got %v", err)
			assert.Equal(t, tt.field, validationErr.Field)
		})
	}
}

func TestApplyInstallsEnvironment(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.Theme = "light"
	cfg.Width = 60
	cfg.ContentScale = 2
	cfg.Images.Plain = true
	cfg.Images.MaxHeight = 10
	cfg.Lists.Bullets = []string{"*"}
	cfg.Lists.Indent = 4
	cfg.Symbols = map[string]string{"logo": "◎"}

	ctx := cfg.Apply(components.DefaultContext())

	assert.Equal(t, "light", ctx.Theme.Name)
	assert.Equal(t, 60, ctx.Constraints.MaxWidth)
	assert.InDelta(t, 2.0, components.ContentScaleKey.From(ctx), 1e-9)
	assert.True(t, components.AccessibilityModeKey.From(ctx))
	assert.Equal(t, 10, markdown.ImageMaxRowsKey.From(ctx))
	assert.Equal(t, []string{"*"}, markdown.BulletGlyphsKey.From(ctx))
	assert.Equal(t, 4, markdown.ListIndentKey.From(ctx))

	glyph, ok := markdown.SymbolsKey.From(ctx).Lookup("logo")
	require.True(t, ok)
	assert.Equal(t, "◎", glyph)
	_, ok = markdown.SymbolsKey.From(ctx).Lookup("star.fill")
	assert.True(t, ok, "built-in symbols are kept")
}
