package atomsk

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/vk/polygraingo/internal/grain"
	"github.com/vk/polygraingo/internal/structure"
)

// WriteParams renders the atomsk polycrystal parameter file: the box line
// followed by one node per seed with its coordinate and Euler-angle
// orientation. Every phase's invocation receives the identical seed list, so
// the grain boundaries agree across phases.
func WriteParams(path string, box grain.Box, seeds []grain.Seed) error {
	var b strings.Builder
	fmt.Fprintf(&b, "box %g %g %g\n", box.X, box.Y, box.Z)
	for _, s := range seeds {
		fmt.Fprintf(&b, "node %.6f %.6f %.6f %.4f %.4f %.4f\n",
			s.Coord.X, s.Coord.Y, s.Coord.Z,
			s.Orient.Alpha, s.Orient.Beta, s.Orient.Gamma)
	}
	return os.WriteFile(path, []byte(b.String()), 0o644)
}

// Polycrystal implements pipeline.Tessellator: it tessellates the box with
// the phase's unit cell, one grain region per seed, and returns the full-box
// structure with per-atom grain ids.
func (c *Client) Polycrystal(ctx context.Context, phaseName string, cell *structure.Structure, box grain.Box, seeds []grain.Seed) (*structure.Structure, error) {
	if len(seeds) == 0 {
		return nil, fmt.Errorf("polycrystal for phase %q: no seeds", phaseName)
	}
	tag := sanitize(phaseName)
	cellPath := filepath.Join(c.scratch, "seedcell_"+tag+".cfg")
	paramPath := filepath.Join(c.scratch, "nodes_"+tag+".txt")
	outPath := filepath.Join(c.scratch, "poly_"+tag+".cfg")

	if err := WriteCFG(cellPath, cell); err != nil {
		return nil, fmt.Errorf("writing seed cell for phase %q: %w", phaseName, err)
	}
	if err := WriteParams(paramPath, box, seeds); err != nil {
		return nil, fmt.Errorf("writing polycrystal parameters for phase %q: %w", phaseName, err)
	}
	if err := c.run(ctx, "--polycrystal", cellPath, paramPath, outPath, "-wrap"); err != nil {
		return nil, err
	}

	poly, err := ReadCFG(outPath)
	if err != nil {
		return nil, err
	}
	if len(poly.Atoms) > 0 {
		ids := poly.GrainIDs()
		if len(ids) == 1 && ids[0] == 0 {
			return nil, fmt.Errorf("polycrystal for phase %q carries no %s attribution", phaseName, grainAux)
		}
	}
	return poly, nil
}
