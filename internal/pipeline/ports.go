package pipeline

import (
	"context"

	"github.com/vk/polygraingo/internal/grain"
	"github.com/vk/polygraingo/internal/phase"
	"github.com/vk/polygraingo/internal/structure"
)

// UnitCellBuilder produces one crystalline unit cell for a phase.
type UnitCellBuilder interface {
	BuildUnitCell(ctx context.Context, spec phase.Spec) (*structure.Structure, error)
}

// AmorphousBuilder produces a seed cell for a phase flagged amorphous. The
// build may be slow (iterative acceptance-based placement); no progress
// reporting is assumed, only a single success or failure.
type AmorphousBuilder interface {
	BuildSeedCell(ctx context.Context, spec phase.Spec) (*structure.Structure, error)
}

// Tessellator fills the whole box with one phase's lattice, partitioned into
// grain regions. Every invocation across phases receives the identical
// global seed list so all phases agree on the same grain boundaries; the
// pipeline, not the engine, upholds that invariant.
type Tessellator interface {
	Polycrystal(ctx context.Context, phaseName string, cell *structure.Structure, box grain.Box, seeds []grain.Seed) (*structure.Structure, error)
}

// Exporter persists the labeled structure in a simulation-ready format and
// returns the path it wrote.
type Exporter interface {
	Export(ctx context.Context, s *structure.Structure) (string, error)
}
