package app

import (
	"context"
	"fmt"
	"image/png"
	"io"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/rook-computer/artwork/internal/feature"
	"github.com/rook-computer/artwork/internal/page"
	"github.com/rook-computer/artwork/internal/preview"
	"github.com/rook-computer/artwork/internal/render"
)

// App renders a feature list into PNG files, one feature at a time.
type App struct {
	Config   Config
	Composer *page.Composer
	Preview  preview.Previewer
	Logger   Logger
	// Out receives one "Wrote <path>" line per file.
	Out io.Writer
}

func New(cfg Config, logger Logger, out io.Writer) *App {
	if logger == nil {
		logger = NoopLogger{}
	}
	fonts := render.NewFontLoader(cfg.FontCandidates())
	fonts.Logger = logger
	composer := page.NewComposer(cfg.Width, cfg.Height, fonts)
	composer.Logger = logger
	return &App{
		Config:   cfg,
		Composer: composer,
		Preview:  preview.NoopPreviewer{},
		Logger:   logger,
		Out:      out,
	}
}

// Run renders specs in order. The first failure stops the run; files already written
// stay on disk and no later spec is attempted.
func (app *App) Run(ctx context.Context, specs []feature.Spec) error {
	if err := app.Config.Validate(); err != nil {
		return err
	}
	for i, spec := range specs {
		if err := ctx.Err(); err != nil {
			return err
		}
		app.Logger.Infof("app", "rendering %d/%d: %s", i+1, len(specs), spec.OutputName)
		if _, err := app.RenderOne(ctx, spec); err != nil {
			app.Logger.Errorf("app", "%s: %v", spec.OutputName, err)
			return err
		}
	}
	return nil
}

// RenderOne renders a single spec and returns the written path.
func (app *App) RenderOne(ctx context.Context, spec feature.Spec) (string, error) {
	sourcePath := filepath.Join(app.Config.AssetsDir, spec.SourceName)
	shot, err := imaging.Open(sourcePath, imaging.AutoOrientation(true))
	if err != nil {
		return "", fmt.Errorf("open screenshot %s: %w", sourcePath, err)
	}

	img, report, err := app.Composer.Compose(spec, shot)
	if err != nil {
		return "", err
	}
	app.Logger.Infof("page", "%s: title %dpx (%d lines, font %s), subtitle %dpx (%d lines, font %s)",
		spec.OutputName,
		report.Title.Size, report.Title.Drawn, report.Title.Font,
		report.Subtitle.Size, report.Subtitle.Drawn, report.Subtitle.Font)

	outPath := filepath.Join(app.Config.AssetsDir, spec.OutputName)
	if err := imaging.Save(img, outPath, imaging.PNGCompressionLevel(png.BestCompression)); err != nil {
		return "", fmt.Errorf("write %s: %w", outPath, err)
	}
	if app.Out != nil {
		fmt.Fprintf(app.Out, "Wrote %s\n", outPath)
	}

	if app.Preview != nil {
		if err := app.Preview.Show(ctx, img); err != nil {
			return outPath, fmt.Errorf("preview %s: %w", spec.OutputName, err)
		}
	}
	return outPath, nil
}
