package pipeline

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vk/polygraingo/internal/grain"
)

// ErrEmptyMerge is returned when no phase contributed a structure to merge.
var ErrEmptyMerge = errors.New("merge produced nothing: no phase contributed a structure")

// IncompletePartitionError reports a phase whose id range could not be found
// in the grain-id partition. An unknown range must surface loudly; treating
// it as "nothing to exclude" would leak foreign grains into the phase.
type IncompletePartitionError struct {
	Phase string
}

func (e *IncompletePartitionError) Error() string {
	return fmt.Sprintf("grain-id partition has no range for phase %q; cannot isolate", e.Phase)
}

// ToolError wraps a failed external collaborator invocation. A single failed
// tool call aborts the whole run, because a silently missing phase would
// change the experiment's composition.
type ToolError struct {
	Tool  string
	Phase string
	Err   error
}

func (e *ToolError) Error() string {
	return fmt.Sprintf("%s failed for phase %q: %v", e.Tool, e.Phase, e.Err)
}

func (e *ToolError) Unwrap() error { return e.Err }

// MissingGrain identifies one grain lost between seeding and merge.
type MissingGrain struct {
	ID    int
	Phase string
}

// MergeIncompleteError reports grain ids that were allocated by the
// partition but absent from the merged structure, each attributed to its
// owning phase, plus any ids present that were never allocated. It is fatal:
// a silently incomplete polycrystal is worse than a hard failure.
type MergeIncompleteError struct {
	Missing []MissingGrain
	Foreign []int
}

func (e *MergeIncompleteError) Error() string {
	var b strings.Builder
	b.WriteString("merged structure does not cover the grain-id partition:")
	for _, m := range e.Missing {
		fmt.Fprintf(&b, " grain %d (phase %q) missing;", m.ID, m.Phase)
	}
	if len(e.Foreign) > 0 {
		fmt.Fprintf(&b, " unallocated grain id(s) present: %v", e.Foreign)
	}
	return b.String()
}

// newMergeIncomplete attributes each missing id to its owner via the partition.
func newMergeIncomplete(missing, foreign []int, part *grain.Partition) *MergeIncompleteError {
	e := &MergeIncompleteError{Foreign: foreign}
	for _, id := range missing {
		e.Missing = append(e.Missing, MissingGrain{ID: id, Phase: part.Owner(id)})
	}
	return e
}
