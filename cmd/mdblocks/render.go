package main

import (
	"context"
	"fmt"
	"image"
	"net/url"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/mdblocks/internal/imageload"
	"github.com/alexisbeaulieu97/mdblocks/internal/logger"
	"github.com/alexisbeaulieu97/mdblocks/internal/ui/components"
	"github.com/alexisbeaulieu97/mdblocks/internal/ui/markdown"
)

func newRenderCmd(root *rootFlags) *cobra.Command {
	opts := displayOptions{}

	cmd := &cobra.Command{
		Use:   "render [file|url]",
		Short: "Render a Markdown document once to standard output",
		Long: `Render a Markdown document once to standard output.

Images are fetched before output is written. Without an argument the document
is read from standard input.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(cmd, root)
			if err != nil {
				return err
			}
			if err := applyDisplayOptions(app.cfg, opts); err != nil {
				return err
			}
			return runRender(cmd, app, args, opts.revision)
		},
	}

	cmd.Flags().IntVarP(&opts.width, "width", "w", 0, "Output width in cells (0 detects the terminal width)")
	cmd.Flags().StringVar(&opts.revision, "rev", "", "Read the file as committed at this git revision")
	cmd.Flags().StringVar(&opts.theme, "theme", "", "Colour theme (default, dark, light)")
	cmd.Flags().BoolVar(&opts.plain, "plain", false, "Print image descriptions instead of pixels")

	return cmd
}

// runRender draws the document in a single pass. There is no event loop to
// deliver background loads, so images are loaded synchronously.
func runRender(cmd *cobra.Command, app *appContext, args []string, revision string) error {
	ctx := cmd.Context()
	_, doc, err := app.loadDocument(ctx, args, revision, cmd.InOrStdin())
	if err != nil {
		return err
	}

	renderCtx := app.renderContext()
	if !renderCtx.Constraints.HasWidth() {
		renderCtx = renderCtx.WithConstraints(components.WithMaxWidth(terminalWidth(cmd.OutOrStdout())))
	}
	loaderOpts := app.cfg.LoaderOptions()
	loaderOpts.Logger = app.log
	renderCtx = markdown.AsyncImagesKey.In(renderCtx, false)
	renderCtx = markdown.ImageLoaderKey.In(renderCtx, warningLoader{next: imageload.NewLoader(loaderOpts), log: app.log})
	if ctx != nil {
		renderCtx = markdown.LoadContextKey.In(renderCtx, ctx)
	}

	out := markdown.NewDocumentView(doc).ViewWithContext(renderCtx)
	if out == "" {
		return nil
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
	return err
}

// warningLoader reports failed images at warn level. The renderer only logs
// them at debug, which a one-shot render would otherwise hide.
type warningLoader struct {
	next markdown.ImageLoader
	log  *logger.Logger
}

func (w warningLoader) Load(ctx context.Context, u *url.URL) (image.Image, error) {
	img, err := w.next.Load(ctx, u)
	if err != nil {
		w.log.WithFields(map[string]any{"url": u.String(), "error": err.Error()}).Warn("image not rendered")
	}
	return img, err
}
