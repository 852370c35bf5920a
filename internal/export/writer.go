package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vk/polygraingo/internal/ctxlog"
	"github.com/vk/polygraingo/internal/structure"
)

// Format names a supported output file format.
type Format string

const (
	FormatLAMMPS Format = "lammps"
	FormatXYZ    Format = "xyz"
)

// ParseFormat validates a format name from a recipe. Empty defaults to
// LAMMPS, the format the downstream MD tooling consumes.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatLAMMPS, FormatXYZ:
		return Format(s), nil
	case "":
		return FormatLAMMPS, nil
	default:
		return "", fmt.Errorf("unknown output format %q (supported: lammps, xyz)", s)
	}
}

// extension returns the file extension for the format.
func (f Format) extension() string {
	if f == FormatXYZ {
		return ".xyz"
	}
	return ".lmp"
}

// Writer persists labeled structures. It implements pipeline.Exporter.
type Writer struct {
	dir     string
	postfix string
	format  Format
}

// NewWriter builds a writer targeting dir. postfix is appended to the output
// base name so successive runs do not clobber each other.
func NewWriter(dir, postfix string, format Format) *Writer {
	return &Writer{dir: dir, postfix: postfix, format: format}
}

// Export writes the structure and returns the path written. Atoms must carry
// molecule ids already; an unlabeled structure means label remapping never
// ran and is rejected.
func (w *Writer) Export(ctx context.Context, s *structure.Structure) (string, error) {
	for i := range s.Atoms {
		if s.Atoms[i].MoleculeID == 0 {
			return "", fmt.Errorf("atom %d has no molecule id; structure was not label-remapped", i)
		}
	}

	name := "polycrystal"
	if w.postfix != "" {
		name += "_" + w.postfix
	}
	path := filepath.Join(w.dir, name+w.format.extension())

	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return "", err
	}
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	switch w.format {
	case FormatXYZ:
		err = writeXYZ(ctx, f, s)
	default:
		err = writeLAMMPS(ctx, f, s)
	}
	if err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}

	ctxlog.FromContext(ctx).Info("Wrote structure.", "path", path, "format", string(w.format), "atoms", len(s.Atoms))
	return path, nil
}
