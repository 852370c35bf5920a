package structure

import "fmt"

// UnlabeledAtomError reports an atom that reached label remapping without a
// grain id. That is an integrity failure of the upstream stages, never
// something to paper over with a fabricated id.
type UnlabeledAtomError struct {
	Index int
}

func (e *UnlabeledAtomError) Error() string {
	return fmt.Sprintf("atom %d has no grain id; upstream tessellation or merge lost the attribution", e.Index)
}

// RemapLabels copies every atom's grain id into its molecule-id field, the
// integer group label simulation formats expect. It fails on the first atom
// without a grain attribution.
func (s *Structure) RemapLabels() error {
	for i := range s.Atoms {
		if s.Atoms[i].GrainID == 0 {
			return &UnlabeledAtomError{Index: i}
		}
		s.Atoms[i].MoleculeID = s.Atoms[i].GrainID
	}
	return nil
}
