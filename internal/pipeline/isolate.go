package pipeline

import (
	"context"
	"fmt"

	"github.com/vk/polygraingo/internal/ctxlog"
	"github.com/vk/polygraingo/internal/grain"
	"github.com/vk/polygraingo/internal/structure"
)

// Isolate strips every foreign grain from one phase's full-box polycrystal.
//
// The removal primitive only takes one contiguous id range at a time, so
// isolation is composed from one exclusion pass per foreign phase, applied in
// the partition's deterministic order. Each pass consumes the previous pass's
// result; the pass count is checked afterwards so a skipped exclusion cannot
// go unnoticed.
func Isolate(ctx context.Context, phaseName string, poly *structure.Structure, part *grain.Partition) (*structure.Structure, error) {
	logger := ctxlog.FromContext(ctx).With("phase", phaseName)

	own, ok := part.Range(phaseName)
	if !ok {
		return nil, &IncompletePartitionError{Phase: phaseName}
	}

	others := part.Others(phaseName)
	cur := poly
	applied := 0
	for _, other := range others {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("isolation of phase %q interrupted after %d of %d passes: %w",
				phaseName, applied, len(others), err)
		}
		before := len(cur.Atoms)
		cur = cur.RemoveGrainRange(other.Lo, other.Hi)
		applied++
		logger.Debug("Applied exclusion pass.",
			"pass", applied,
			"excluded_phase", other.Phase,
			"excluded_range", other.IDRange.String(),
			"atoms_removed", before-len(cur.Atoms),
			"atoms_left", len(cur.Atoms))
	}
	if applied != len(others) {
		return nil, fmt.Errorf("isolation of phase %q applied %d of %d exclusion passes", phaseName, applied, len(others))
	}

	// Every surviving atom must belong to the phase's own range. A violation
	// here means the partition and the tessellation disagree about ids.
	for _, id := range cur.GrainIDs() {
		if !own.Contains(id) {
			return nil, fmt.Errorf("isolation of phase %q left foreign grain id %d outside own range %s",
				phaseName, id, own)
		}
	}

	logger.Debug("Phase isolated.", "own_range", own.String(), "grains_present", len(cur.GrainIDs()), "atoms", len(cur.Atoms))
	return cur, nil
}
