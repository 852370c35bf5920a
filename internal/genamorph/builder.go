package genamorph

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/vk/polygraingo/internal/atomsk"
	"github.com/vk/polygraingo/internal/ctxlog"
	"github.com/vk/polygraingo/internal/phase"
	"github.com/vk/polygraingo/internal/structure"
)

// defaultCellSize is the seed-cell edge length in Angstrom when the recipe
// does not pick one. Large enough for a representative amorphous network,
// small enough that acceptance-based placement stays tractable.
const defaultCellSize = 15.0

// Builder invokes the genamorph binary to produce amorphous seed cells.
type Builder struct {
	bin     string
	scratch string
}

// NewBuilder builds a Builder. bin is the genamorph executable; scratch is
// the run's scratch directory.
func NewBuilder(bin, scratch string) *Builder {
	return &Builder{bin: bin, scratch: scratch}
}

// Args renders the tool's command line for a spec. Species are passed in
// sorted order so identical specs always produce identical invocations.
func Args(spec phase.Spec, cellSize float64, outPath string) []string {
	species := make([]string, 0, len(spec.Stoichiometry))
	for sp := range spec.Stoichiometry {
		species = append(species, sp)
	}
	sort.Strings(species)

	args := []string{"-s"}
	for _, sp := range species {
		args = append(args, fmt.Sprintf("%s:%d", sp, spec.Stoichiometry[sp]))
	}
	size := strconv.FormatFloat(cellSize, 'f', -1, 64)
	args = append(args, "-c", size, size, size)
	args = append(args, "--density", strconv.FormatFloat(spec.Density, 'f', -1, 64))
	args = append(args, "-of", outPath, "-frmt", "cfg")
	return args
}

// BuildSeedCell implements pipeline.AmorphousBuilder.
func (b *Builder) BuildSeedCell(ctx context.Context, spec phase.Spec) (*structure.Structure, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	cellSize := spec.CellSize
	if cellSize <= 0 {
		cellSize = defaultCellSize
	}

	outPath := filepath.Join(b.scratch, "amorphous_"+sanitize(spec.Name)+".cfg")
	args := Args(spec, cellSize, outPath)

	logger := ctxlog.FromContext(ctx)
	logger.Debug("Invoking genamorph.", "phase", spec.Name, "args", strings.Join(args, " "))

	cmd := exec.CommandContext(ctx, b.bin, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			return nil, fmt.Errorf("genamorph: %w", err)
		}
		return nil, fmt.Errorf("genamorph: %w: %s", err, msg)
	}

	return atomsk.ReadCFG(outPath)
}

func sanitize(name string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, name)
}
