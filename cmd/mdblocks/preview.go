package main

import (
	"fmt"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/mdblocks/internal/imageload"
	"github.com/alexisbeaulieu97/mdblocks/internal/tui/preview"
	"github.com/alexisbeaulieu97/mdblocks/internal/ui/markdown"
)

func newPreviewCmd(root *rootFlags) *cobra.Command {
	opts := displayOptions{}

	cmd := &cobra.Command{
		Use:   "preview [file|url]",
		Short: "Open a scrolling preview that fills in images as they load",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(cmd, root)
			if err != nil {
				return err
			}
			if err := applyDisplayOptions(app.cfg, opts); err != nil {
				return err
			}
			return runPreview(cmd, app, args, opts.revision)
		},
	}

	cmd.Flags().IntVarP(&opts.width, "width", "w", 0, "Maximum content width in cells (0 follows the window)")
	cmd.Flags().StringVar(&opts.revision, "rev", "", "Read the file as committed at this git revision")
	cmd.Flags().StringVar(&opts.theme, "theme", "", "Colour theme (default, dark, light)")
	cmd.Flags().BoolVar(&opts.plain, "plain", false, "Show image descriptions instead of pixels")

	return cmd
}

func runPreview(cmd *cobra.Command, app *appContext, args []string, revision string) error {
	ctx := cmd.Context()
	src, doc, err := app.loadDocument(ctx, args, revision, cmd.InOrStdin())
	if err != nil {
		return err
	}

	loaderOpts := app.cfg.LoaderOptions()
	loaderOpts.Logger = app.log
	loader := imageload.NewLoader(loaderOpts)

	opts := preview.Options{
		Title:    filepath.Base(src.Name),
		Document: doc,
		Context:  markdown.ImageLoaderKey.In(app.renderContext(), loader),
		Logger:   app.log,
	}
	if app.cfg.Images.Async {
		fetcher := imageload.NewAsyncFetcher(loader, app.log)
		defer fetcher.Close()
		opts.Fetcher = fetcher
	}

	programOpts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithMouseCellMotion()}
	if ctx != nil {
		programOpts = append(programOpts, tea.WithContext(ctx))
	}
	app.log.WithFields(map[string]any{"source": src.Name, "async": opts.Fetcher != nil}).Info("preview started")
	if _, err := tea.NewProgram(preview.NewModel(opts), programOpts...).Run(); err != nil {
		app.log.Error(err, "preview failed")
		return fmt.Errorf("preview: %w", err)
	}
	return nil
}
