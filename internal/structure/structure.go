package structure

import (
	"sort"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/vk/polygraingo/internal/grain"
)

// Atom is a single atom with its grain attribution. MoleculeID stays zero
// until RemapLabels runs; a zero GrainID means the tessellation engine never
// attributed the atom, which downstream stages treat as a fault.
type Atom struct {
	Species    string
	Pos        r3.Vec
	GrainID    int
	MoleculeID int
}

// Structure is an atomic configuration inside a simulation box.
type Structure struct {
	Box   grain.Box
	Atoms []Atom
}

// New returns an empty structure spanning the given box.
func New(box grain.Box) *Structure {
	return &Structure{Box: box}
}

// Clone returns a deep copy.
func (s *Structure) Clone() *Structure {
	out := &Structure{Box: s.Box, Atoms: make([]Atom, len(s.Atoms))}
	copy(out.Atoms, s.Atoms)
	return out
}

// RemoveGrainRange is the isolation primitive: it returns a new structure
// with every atom whose grain id falls inside [lo, hi] removed. The receiver
// is left untouched so a caller can keep intermediate results from each
// exclusion pass.
func (s *Structure) RemoveGrainRange(lo, hi int) *Structure {
	out := &Structure{Box: s.Box, Atoms: make([]Atom, 0, len(s.Atoms))}
	r := grain.IDRange{Lo: lo, Hi: hi}
	for _, a := range s.Atoms {
		if r.Contains(a.GrainID) {
			continue
		}
		out.Atoms = append(out.Atoms, a)
	}
	return out
}

// GrainIDs returns the sorted distinct grain ids present in the structure.
func (s *Structure) GrainIDs() []int {
	seen := make(map[int]bool)
	for _, a := range s.Atoms {
		seen[a.GrainID] = true
	}
	ids := make([]int, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Species returns the sorted distinct species present in the structure.
func (s *Structure) Species() []string {
	seen := make(map[string]bool)
	for _, a := range s.Atoms {
		seen[a.Species] = true
	}
	out := make([]string, 0, len(seen))
	for sp := range seen {
		out = append(out, sp)
	}
	sort.Strings(out)
	return out
}
