package pipeline

import (
	"context"
	"errors"
	"math/rand"

	"golang.org/x/sync/errgroup"

	"github.com/vk/polygraingo/internal/ctxlog"
	"github.com/vk/polygraingo/internal/grain"
	"github.com/vk/polygraingo/internal/phase"
	"github.com/vk/polygraingo/internal/structure"
)

// PhaseRequest is one phase of the target polycrystal: its resolved geometry
// and how many grains it contributes.
type PhaseRequest struct {
	Spec   phase.Spec
	Grains int
}

// Pipeline wires the collaborators for one run. Construct with New.
type Pipeline struct {
	cells     UnitCellBuilder
	amorphous AmorphousBuilder
	tess      Tessellator
	exporter  Exporter
	workers   int
	rng       *rand.Rand
}

// New builds a pipeline. workers caps concurrent phase branches; values
// below 1 are treated as 1. rng drives seed placement and grain orientation
// and is injectable for reproducible runs.
func New(cells UnitCellBuilder, amorphous AmorphousBuilder, tess Tessellator, exporter Exporter, workers int, rng *rand.Rand) *Pipeline {
	if workers < 1 {
		workers = 1
	}
	return &Pipeline{
		cells:     cells,
		amorphous: amorphous,
		tess:      tess,
		exporter:  exporter,
		workers:   workers,
		rng:       rng,
	}
}

// Result is a completed run: the seeding plan, the merged labeled structure,
// and where the exporter wrote it.
type Result struct {
	Plan       *grain.Plan
	Merged     *structure.Structure
	OutputPath string
}

// Run executes the full pipeline for the given box and phases.
func (p *Pipeline) Run(ctx context.Context, box grain.Box, phases []PhaseRequest) (*Result, error) {
	logger := ctxlog.FromContext(ctx)

	if len(phases) == 0 {
		return nil, ErrEmptyMerge
	}

	reqs := make([]grain.Request, len(phases))
	for i, ph := range phases {
		reqs[i] = grain.Request{Phase: ph.Spec.Name, Count: ph.Grains}
	}
	plan, err := grain.Generate(box, reqs, p.rng, grain.NewSequence())
	if err != nil {
		return nil, err
	}
	logger.Info("Grain seeds generated.",
		"seeds", len(plan.Seeds),
		"phases", len(phases),
		"id_domain", plan.Partition.Domain().String())

	// Per-phase branches: build cell, tessellate against the full global
	// seed list, isolate. Results land in a pre-sized slice, so branches
	// share nothing until the merge barrier below.
	isolated := make([]*structure.Structure, len(phases))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers)
	for i, ph := range phases {
		i, ph := i, ph
		g.Go(func() error {
			iso, err := p.runPhase(gctx, ph, box, plan)
			if err != nil {
				return err
			}
			isolated[i] = iso
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged, err := structure.Merge(isolated...)
	if err != nil {
		return nil, err
	}
	logger.Info("Phase structures merged.", "atoms", len(merged.Atoms), "grains", len(merged.GrainIDs()))

	if err := merged.VerifyCoverage(plan.Partition.Domain()); err != nil {
		var cov *structure.CoverageError
		if errors.As(err, &cov) {
			return nil, newMergeIncomplete(cov.Missing, cov.Foreign, plan.Partition)
		}
		return nil, err
	}

	if err := merged.RemapLabels(); err != nil {
		return nil, err
	}

	path, err := p.exporter.Export(ctx, merged)
	if err != nil {
		return nil, &ToolError{Tool: "exporter", Phase: "", Err: err}
	}
	logger.Info("Structure exported.", "path", path)

	return &Result{Plan: plan, Merged: merged, OutputPath: path}, nil
}

// runPhase executes one phase's branch up to its isolated structure.
func (p *Pipeline) runPhase(ctx context.Context, ph PhaseRequest, box grain.Box, plan *grain.Plan) (*structure.Structure, error) {
	logger := ctxlog.FromContext(ctx).With("phase", ph.Spec.Name)

	var cell *structure.Structure
	var err error
	if ph.Spec.Amorphous {
		logger.Info("Building amorphous seed cell.", "density", ph.Spec.Density)
		cell, err = p.amorphous.BuildSeedCell(ctx, ph.Spec)
		if err != nil {
			return nil, &ToolError{Tool: "amorphous seed builder", Phase: ph.Spec.Name, Err: err}
		}
	} else {
		logger.Info("Building unit cell.", "structure", string(ph.Spec.Kind))
		cell, err = p.cells.BuildUnitCell(ctx, ph.Spec)
		if err != nil {
			return nil, &ToolError{Tool: "unit-cell builder", Phase: ph.Spec.Name, Err: err}
		}
	}

	logger.Info("Tessellating box.", "seeds", len(plan.Seeds))
	poly, err := p.tess.Polycrystal(ctx, ph.Spec.Name, cell, box, plan.Seeds)
	if err != nil {
		return nil, &ToolError{Tool: "tessellation engine", Phase: ph.Spec.Name, Err: err}
	}

	return Isolate(ctx, ph.Spec.Name, poly, plan.Partition)
}
