package structure

import (
	"fmt"

	"github.com/vk/polygraingo/internal/grain"
)

// Merge combines per-phase isolated structures into one configuration. The
// box is taken from the first part; a part with a different box is a wiring
// error and rejected outright.
func Merge(parts ...*Structure) (*Structure, error) {
	if len(parts) == 0 {
		return nil, fmt.Errorf("merge: no structures to combine")
	}
	out := &Structure{Box: parts[0].Box}
	for i, p := range parts {
		if p.Box != out.Box {
			return nil, fmt.Errorf("merge: structure %d has box %+v, expected %+v", i, p.Box, out.Box)
		}
		out.Atoms = append(out.Atoms, p.Atoms...)
	}
	return out, nil
}

// CoverageError reports a mismatch between the grain ids present in a merged
// structure and the ids the partition allocated.
type CoverageError struct {
	Missing []int // allocated but absent from the merge
	Foreign []int // present but never allocated
}

func (e *CoverageError) Error() string {
	return fmt.Sprintf("grain id coverage violated: %d id(s) missing %v, %d unallocated id(s) present %v",
		len(e.Missing), e.Missing, len(e.Foreign), e.Foreign)
}

// VerifyCoverage checks that the distinct grain ids in the structure are
// exactly the partition domain. Any deviation means atoms were silently lost
// or fabricated somewhere between tessellation and merge.
func (s *Structure) VerifyCoverage(domain grain.IDRange) error {
	present := make(map[int]bool)
	var foreign []int
	for _, id := range s.GrainIDs() {
		if !domain.Contains(id) {
			foreign = append(foreign, id)
			continue
		}
		present[id] = true
	}
	var missing []int
	for id := domain.Lo; id <= domain.Hi; id++ {
		if !present[id] {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 || len(foreign) > 0 {
		return &CoverageError{Missing: missing, Foreign: foreign}
	}
	return nil
}
