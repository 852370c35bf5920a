package testutil

import (
	"context"
	"fmt"
	"sync"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/vk/polygraingo/internal/grain"
	"github.com/vk/polygraingo/internal/phase"
	"github.com/vk/polygraingo/internal/structure"
)

// FakeCellBuilder returns a two-atom cell without invoking any tool.
type FakeCellBuilder struct {
	// FailFor, when set, makes builds for that phase fail.
	FailFor string

	mu    sync.Mutex
	Calls []string
}

// BuildUnitCell implements pipeline.UnitCellBuilder.
func (f *FakeCellBuilder) BuildUnitCell(ctx context.Context, spec phase.Spec) (*structure.Structure, error) {
	f.mu.Lock()
	f.Calls = append(f.Calls, spec.Name)
	f.mu.Unlock()

	if spec.Name == f.FailFor {
		return nil, fmt.Errorf("simulated cell build failure for %q", spec.Name)
	}
	cell := structure.New(grain.Box{X: 1, Y: 1, Z: 1})
	for i, sp := range spec.Species {
		cell.Atoms = append(cell.Atoms, structure.Atom{
			Species: sp,
			Pos:     r3.Vec{X: 0.25 * float64(i+1), Y: 0.25, Z: 0.25},
		})
	}
	return cell, nil
}

// FakeAmorphousBuilder mirrors FakeCellBuilder for amorphous phases: it
// produces one atom per stoichiometry entry.
type FakeAmorphousBuilder struct {
	FailFor string

	mu    sync.Mutex
	Calls []string
}

// BuildSeedCell implements pipeline.AmorphousBuilder.
func (f *FakeAmorphousBuilder) BuildSeedCell(ctx context.Context, spec phase.Spec) (*structure.Structure, error) {
	f.mu.Lock()
	f.Calls = append(f.Calls, spec.Name)
	f.mu.Unlock()

	if spec.Name == f.FailFor {
		return nil, fmt.Errorf("simulated amorphous build failure for %q", spec.Name)
	}
	cell := structure.New(grain.Box{X: 1, Y: 1, Z: 1})
	i := 0
	for sp := range spec.Stoichiometry {
		cell.Atoms = append(cell.Atoms, structure.Atom{
			Species: sp,
			Pos:     r3.Vec{X: 0.2 * float64(i+1), Y: 0.3, Z: 0.4},
		})
		i++
	}
	return cell, nil
}

// FakeTessellator fills every grain region with the cell's atoms placed at
// the seed coordinate, so each grain id is populated and attributable. It
// honors the real engine's contract shape without any geometry.
type FakeTessellator struct {
	// DropGrain, when non-zero, silently omits that grain id from every
	// produced polycrystal, simulating an engine that lost a region.
	DropGrain int
	// FailFor, when set, makes tessellation for that phase fail.
	FailFor string
}

// Polycrystal implements pipeline.Tessellator.
func (f *FakeTessellator) Polycrystal(ctx context.Context, phaseName string, cell *structure.Structure, box grain.Box, seeds []grain.Seed) (*structure.Structure, error) {
	if phaseName == f.FailFor {
		return nil, fmt.Errorf("simulated tessellation failure for %q", phaseName)
	}
	out := structure.New(box)
	for _, s := range seeds {
		if s.ID == f.DropGrain {
			continue
		}
		for _, a := range cell.Atoms {
			out.Atoms = append(out.Atoms, structure.Atom{
				Species: a.Species,
				Pos:     r3.Vec{X: s.Coord.X, Y: s.Coord.Y, Z: s.Coord.Z},
				GrainID: s.ID,
			})
		}
	}
	return out, nil
}

// FakeExporter records what it was asked to export instead of writing files.
type FakeExporter struct {
	Fail bool

	mu       sync.Mutex
	Exported *structure.Structure
}

// Export implements pipeline.Exporter.
func (f *FakeExporter) Export(ctx context.Context, s *structure.Structure) (string, error) {
	if f.Fail {
		return "", fmt.Errorf("simulated export failure")
	}
	f.mu.Lock()
	f.Exported = s
	f.mu.Unlock()
	return "fake://export", nil
}

// Last returns the most recently exported structure.
func (f *FakeExporter) Last() *structure.Structure {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.Exported
}
