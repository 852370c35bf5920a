package export

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/vk/polygraingo/internal/ctxlog"
	"github.com/vk/polygraingo/internal/phase"
	"github.com/vk/polygraingo/internal/structure"
)

// writeLAMMPS renders a LAMMPS data file in molecular atom style: the
// molecule-id column carries the grain id. Atom types are assigned in sorted
// species order, so type numbering is stable across runs.
func writeLAMMPS(ctx context.Context, out io.Writer, s *structure.Structure) error {
	logger := ctxlog.FromContext(ctx)

	species := s.Species()
	types := make(map[string]int, len(species))
	for i, sp := range species {
		types[sp] = i + 1
	}

	w := bufio.NewWriter(out)
	fmt.Fprintf(w, "# polycrystal data file\n\n")
	fmt.Fprintf(w, "%d atoms\n", len(s.Atoms))
	fmt.Fprintf(w, "%d atom types\n\n", len(species))
	fmt.Fprintf(w, "0.0 %.6f xlo xhi\n", s.Box.X)
	fmt.Fprintf(w, "0.0 %.6f ylo yhi\n", s.Box.Y)
	fmt.Fprintf(w, "0.0 %.6f zlo zhi\n\n", s.Box.Z)

	fmt.Fprintf(w, "Masses\n\n")
	for i, sp := range species {
		mass, known := phase.MassOf(sp)
		if !known {
			logger.Warn("No atomic mass for species, writing 1.0.", "species", sp)
		}
		fmt.Fprintf(w, "%d %.4f # %s\n", i+1, mass, sp)
	}

	fmt.Fprintf(w, "\nAtoms # molecular\n\n")
	for i, a := range s.Atoms {
		fmt.Fprintf(w, "%d %d %d %.6f %.6f %.6f\n",
			i+1, a.MoleculeID, types[a.Species], a.Pos.X, a.Pos.Y, a.Pos.Z)
	}
	return w.Flush()
}
