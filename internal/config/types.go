package config

import (
	"time"

	"github.com/alexisbeaulieu97/mdblocks/internal/imageload"
)

// CurrentVersion is the configuration format understood by this build.
const CurrentVersion = "1"

// Config represents the mdblocks configuration document.
type Config struct {
	Version      string            `yaml:"version" validate:"required,oneof=1"`
	Theme        string            `yaml:"theme,omitempty" validate:"theme"`
	Width        int               `yaml:"width,omitempty" validate:"min=0,max=1000"`
	ContentScale float64           `yaml:"content_scale,omitempty" validate:"min=0.5,max=4"`
	Images       ImageSettings     `yaml:"images,omitempty"`
	Lists        ListSettings      `yaml:"lists,omitempty"`
	Symbols      map[string]string `yaml:"symbols,omitempty" validate:"omitempty,dive,keys,required,endkeys,required"`
}

// ImageSettings controls image loading and drawing.
type ImageSettings struct {
	// Async enables background loading in hosts that re-render on completion.
	Async      bool  `yaml:"async"`
	Timeout    int   `yaml:"timeout,omitempty" validate:"min=1,max=300"`
	MaxBytes   int64 `yaml:"max_bytes,omitempty" validate:"min=1024"`
	MaxHeight  int   `yaml:"max_height,omitempty" validate:"min=1,max=200"`
	AllowFiles bool  `yaml:"allow_files,omitempty"`
	// Plain renders accessibility labels instead of pixels.
	Plain bool `yaml:"plain,omitempty"`
}

// ListSettings controls list markers and indentation.
type ListSettings struct {
	Bullets   []string          `yaml:"bullets,omitempty" validate:"omitempty,dive,required"`
	Checklist ChecklistSettings `yaml:"checklist,omitempty"`
	Indent    int               `yaml:"indent,omitempty" validate:"min=0,max=8"`
}

// ChecklistSettings holds the task list glyphs.
type ChecklistSettings struct {
	Checked   string `yaml:"checked,omitempty" validate:"required"`
	Unchecked string `yaml:"unchecked,omitempty" validate:"required"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Version:      CurrentVersion,
		Theme:        "default",
		ContentScale: 1,
		Images: ImageSettings{
			Async:     true,
			Timeout:   int(imageload.DefaultTimeout / time.Second),
			MaxBytes:  imageload.DefaultMaxBytes,
			MaxHeight: 24,
		},
		Lists: ListSettings{
			Bullets:   []string{"•", "◦", "▪"},
			Checklist: ChecklistSettings{Checked: "[x]", Unchecked: "[ ]"},
			Indent:    2,
		},
	}
}

// LoaderOptions returns the image loader settings.
func (c *Config) LoaderOptions() imageload.Options {
	return imageload.Options{
		Timeout:    time.Duration(c.Images.Timeout) * time.Second,
		MaxBytes:   c.Images.MaxBytes,
		AllowFiles: c.Images.AllowFiles,
	}
}
