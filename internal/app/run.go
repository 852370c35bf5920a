package app

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/vk/polygraingo/internal/atomsk"
	"github.com/vk/polygraingo/internal/ctxlog"
	"github.com/vk/polygraingo/internal/export"
	"github.com/vk/polygraingo/internal/genamorph"
	"github.com/vk/polygraingo/internal/grain"
	"github.com/vk/polygraingo/internal/pipeline"
)

// Run executes the full polycrystal assembly for the loaded recipe.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)

	runID := uuid.NewString()[:8]
	rngSeed := a.rngSeed()
	a.logger.Info("Starting polycrystal run.",
		"run_id", runID,
		"phases", len(a.model.Phases),
		"rng_seed", rngSeed)

	phases, err := resolvePhases(ctx, a.model.Phases)
	if err != nil {
		return err
	}

	format, err := export.ParseFormat(a.model.Output.Format)
	if err != nil {
		return err
	}

	scratch, cleanup, err := a.scratchDir(runID)
	if err != nil {
		return err
	}
	defer cleanup()

	toolchain := a.toolchain
	if toolchain == nil {
		ak := atomsk.NewClient(a.cfg.AtomskBin, scratch)
		toolchain = &Toolchain{
			Cells:     ak,
			Amorphous: genamorph.NewBuilder(a.cfg.GenamorphBin, scratch),
			Tess:      ak,
			Exporter:  export.NewWriter(a.outputDir(), a.model.Output.Postfix, format),
		}
	}

	box := grain.Box{X: a.model.Box.X, Y: a.model.Box.Y, Z: a.model.Box.Z}
	pipe := pipeline.New(
		toolchain.Cells,
		toolchain.Amorphous,
		toolchain.Tess,
		toolchain.Exporter,
		a.cfg.Workers,
		rand.New(rand.NewSource(rngSeed)),
	)
	result, err := pipe.Run(ctx, box, phases)
	if err != nil {
		return err
	}

	manifest := export.BuildManifest(runID, rngSeed, phases, result)
	if err := os.MkdirAll(a.outputDir(), 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	manifestPath, err := export.WriteManifest(a.outputDir(), manifest)
	if err != nil {
		return fmt.Errorf("writing run manifest: %w", err)
	}

	a.logger.Info("Run complete.",
		"run_id", runID,
		"atoms", len(result.Merged.Atoms),
		"grains", result.Plan.Partition.Size(),
		"output", result.OutputPath,
		"manifest", manifestPath)
	return nil
}

// rngSeed picks the random seed: CLI flag first, then recipe, then clock.
func (a *App) rngSeed() int64 {
	if a.cfg.Seed != 0 {
		return a.cfg.Seed
	}
	if a.model.Seed != 0 {
		return a.model.Seed
	}
	return time.Now().UnixNano()
}

func (a *App) outputDir() string {
	if a.model.Output.Dir != "" {
		return a.model.Output.Dir
	}
	return a.cfg.OutputDir
}

// scratchDir creates the per-run scratch directory and returns a cleanup
// that honors KeepScratch.
func (a *App) scratchDir(runID string) (string, func(), error) {
	root := a.cfg.ScratchRoot
	if root == "" {
		root = os.TempDir()
	}
	dir := filepath.Join(root, "polygrain-"+runID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", nil, fmt.Errorf("creating scratch directory: %w", err)
	}
	cleanup := func() {
		if a.cfg.KeepScratch {
			a.logger.Info("Keeping scratch directory.", "path", dir)
			return
		}
		if err := os.RemoveAll(dir); err != nil {
			a.logger.Warn("Failed to remove scratch directory.", "path", dir, "error", err)
		}
	}
	return dir, cleanup, nil
}
