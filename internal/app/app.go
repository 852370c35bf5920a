package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/polygraingo/internal/config"
	"github.com/vk/polygraingo/internal/ctxlog"
	"github.com/vk/polygraingo/internal/pipeline"
)

// Toolchain bundles the external collaborators a run needs. Tests inject
// fakes here; production wiring (atomsk, genamorph, file export) is built in
// Run once the scratch directory exists.
type Toolchain struct {
	Cells     pipeline.UnitCellBuilder
	Amorphous pipeline.AmorphousBuilder
	Tess      pipeline.Tessellator
	Exporter  pipeline.Exporter
}

// complete reports whether every collaborator is present.
func (tc *Toolchain) complete() bool {
	return tc != nil && tc.Cells != nil && tc.Amorphous != nil && tc.Tess != nil && tc.Exporter != nil
}

// App encapsulates one configured application instance.
type App struct {
	outW      io.Writer
	logger    *slog.Logger
	cfg       *Config
	model     *config.Model
	toolchain *Toolchain
}

// New constructs an App: it builds the isolated logger, loads and validates
// the recipe, and remembers an optional toolchain override for tests. A nil
// toolchain selects the real external tools at run time.
func New(ctx context.Context, outW io.Writer, cfg *Config, loader config.Loader, toolchain *Toolchain) (*App, error) {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, outW)
	ctx = ctxlog.WithLogger(ctx, logger)
	logger.Debug("Logger configured.")

	model, err := loader.Load(ctx, cfg.RecipePath)
	if err != nil {
		return nil, fmt.Errorf("loading recipe: %w", err)
	}
	logger.Debug("Recipe loaded.", "phases", len(model.Phases))

	if toolchain != nil && !toolchain.complete() {
		return nil, fmt.Errorf("toolchain override must provide all collaborators")
	}

	return &App{
		outW:      outW,
		logger:    logger,
		cfg:       cfg,
		model:     model,
		toolchain: toolchain,
	}, nil
}

// Model returns the loaded recipe. This is primarily for testing.
func (a *App) Model() *config.Model {
	return a.model
}
