package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/mdblocks/internal/config"
	"github.com/alexisbeaulieu97/mdblocks/internal/document"
	"github.com/alexisbeaulieu97/mdblocks/internal/logger"
	"github.com/alexisbeaulieu97/mdblocks/internal/parser"
	"github.com/alexisbeaulieu97/mdblocks/internal/source"
	"github.com/alexisbeaulieu97/mdblocks/internal/ui/components"
	"github.com/alexisbeaulieu97/mdblocks/internal/ui/markdown"
)

// appContext bundles what every document command needs.
type appContext struct {
	cfg *config.Config
	log *logger.Logger
}

func newAppContext(cmd *cobra.Command, flags *rootFlags) (*appContext, error) {
	level := flags.logLevel
	if flags.verbose {
		level = "debug"
	}
	log, err := logger.New(logger.Options{Level: level, HumanReadable: true, Writer: cmd.ErrOrStderr()})
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}

	path := flags.configPath
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if path != "" {
		log.With("path", path).Debug("configuration loaded")
	}

	return &appContext{cfg: cfg, log: log}, nil
}

// loadDocument opens and parses the document named by args, reading standard
// input when no argument is given.
func (a *appContext) loadDocument(ctx context.Context, args []string, revision string, stdin io.Reader) (source.Document, document.Document, error) {
	ref := source.Stdin
	if len(args) > 0 {
		ref = args[0]
	}

	src, err := source.Open(ctx, ref, source.Options{
		Revision: revision,
		Stdin:    stdin,
		Logger:   a.log,
	})
	if err != nil {
		return source.Document{}, document.Document{}, err
	}

	a.log.WithFields(map[string]any{"source": src.Name, "bytes": len(src.Content)}).Info("document opened")

	doc, err := parser.New(a.log).Parse(src.Name, src.Content)
	if err != nil {
		return source.Document{}, document.Document{}, err
	}
	if a.log.Enabled("debug") {
		a.log.WithFields(documentSummary(doc)).Debug("document parsed")
	}
	return src, doc, nil
}

func documentSummary(doc document.Document) map[string]any {
	var images, lists, text, depth int
	for _, block := range doc.Blocks {
		switch b := block.(type) {
		case document.ImageBlock:
			images++
		case document.ListBlock:
			lists++
			if d := document.Depth(b.List); d > depth {
				depth = d
			}
		case document.TextBlock:
			text++
		}
	}
	return map[string]any{
		"images":     images,
		"lists":      lists,
		"text":       text,
		"list_depth": depth,
	}
}

// renderContext builds the base render context from configuration.
func (a *appContext) renderContext() components.RenderContext {
	ctx := a.cfg.Apply(components.DefaultContext())
	return markdown.LoggerKey.In(ctx, a.log)
}
