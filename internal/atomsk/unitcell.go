package atomsk

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/vk/polygraingo/internal/phase"
	"github.com/vk/polygraingo/internal/structure"
)

// structureNames maps lattice kinds to atomsk --create structure names.
// Generic fallback phases are built as fcc, matching the default-geometry
// request the registry emits for unknown materials.
var structureNames = map[phase.Kind]string{
	phase.Rocksalt:       "rocksalt",
	phase.Zincblende:     "zincblende",
	phase.Wurtzite:       "wurtzite",
	phase.Fluorite:       "fluorite",
	phase.CesiumChloride: "cscl",
	phase.Diamond:        "diamond",
	phase.FCC:            "fcc",
	phase.BCC:            "bcc",
	phase.Generic:        "fcc",
}

// BuildUnitCell implements pipeline.UnitCellBuilder: it asks atomsk to
// create one unit cell for the phase and parses the artifact back.
func (c *Client) BuildUnitCell(ctx context.Context, spec phase.Spec) (*structure.Structure, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	name, ok := structureNames[spec.Kind]
	if !ok {
		return nil, fmt.Errorf("no atomsk structure for lattice kind %q", spec.Kind)
	}

	out := filepath.Join(c.scratch, "cell_"+sanitize(spec.Name)+".cfg")
	args := []string{"--create", name}
	for _, a := range spec.Constants {
		args = append(args, strconv.FormatFloat(a, 'f', -1, 64))
	}
	args = append(args, spec.Species...)
	args = append(args, out)

	if err := c.run(ctx, args...); err != nil {
		return nil, err
	}
	return ReadCFG(out)
}
