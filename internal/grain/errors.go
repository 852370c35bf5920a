package grain

import "fmt"

// InvalidBoxError reports a non-positive box dimension.
type InvalidBoxError struct {
	Axis  string
	Value float64
}

func (e *InvalidBoxError) Error() string {
	return fmt.Sprintf("invalid box: dimension %s = %g must be positive", e.Axis, e.Value)
}

// InvalidGrainCountError reports a grain-count request below one.
type InvalidGrainCountError struct {
	Phase string
	Count int
}

func (e *InvalidGrainCountError) Error() string {
	return fmt.Sprintf("invalid grain count: phase %q requested %d grains, need at least 1", e.Phase, e.Count)
}

// DuplicatePhaseError reports a phase that appears more than once in the
// seeding request list. Phase-major id allocation requires each phase to
// claim exactly one contiguous range.
type DuplicatePhaseError struct {
	Phase string
}

func (e *DuplicatePhaseError) Error() string {
	return fmt.Sprintf("duplicate phase %q in seeding requests", e.Phase)
}
