package export

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/vk/polygraingo/internal/structure"
)

// writeXYZ renders an extended XYZ file with the molecule id as a per-atom
// integer column, keeping the grain attribution visible to viewers.
func writeXYZ(_ context.Context, out io.Writer, s *structure.Structure) error {
	w := bufio.NewWriter(out)
	fmt.Fprintf(w, "%d\n", len(s.Atoms))
	fmt.Fprintf(w, "Lattice=\"%.6f 0 0 0 %.6f 0 0 0 %.6f\" Properties=species:S:1:pos:R:3:mol:I:1\n",
		s.Box.X, s.Box.Y, s.Box.Z)
	for _, a := range s.Atoms {
		fmt.Fprintf(w, "%s %.6f %.6f %.6f %d\n", a.Species, a.Pos.X, a.Pos.Y, a.Pos.Z, a.MoleculeID)
	}
	return w.Flush()
}
