package structure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/vk/polygraingo/internal/grain"
)

var testBox = grain.Box{X: 10, Y: 10, Z: 10}

// fixture builds a structure with one atom per listed grain id.
func fixture(ids ...int) *Structure {
	s := New(testBox)
	for _, id := range ids {
		s.Atoms = append(s.Atoms, Atom{
			Species: "X",
			Pos:     r3.Vec{X: float64(id), Y: 1, Z: 1},
			GrainID: id,
		})
	}
	return s
}

func TestRemoveGrainRange(t *testing.T) {
	s := fixture(1, 2, 3, 4, 5)

	got := s.RemoveGrainRange(2, 4)
	assert.Equal(t, []int{1, 5}, got.GrainIDs())

	// The input structure is untouched.
	assert.Equal(t, []int{1, 2, 3, 4, 5}, s.GrainIDs())
}

func TestRemoveGrainRange_NoMatch(t *testing.T) {
	s := fixture(1, 2)
	got := s.RemoveGrainRange(10, 20)
	assert.Equal(t, []int{1, 2}, got.GrainIDs())
	assert.Len(t, got.Atoms, 2)
}

func TestRemoveGrainRange_OrderIndependent(t *testing.T) {
	// Excluding the same total id set in any pass order yields the same atoms.
	s := fixture(1, 2, 3, 4, 5, 6)

	a := s.RemoveGrainRange(1, 2).RemoveGrainRange(5, 6)
	b := s.RemoveGrainRange(5, 6).RemoveGrainRange(1, 2)

	assert.Equal(t, a.Atoms, b.Atoms)
	assert.Equal(t, []int{3, 4}, a.GrainIDs())
}

func TestMerge(t *testing.T) {
	merged, err := Merge(fixture(1, 2), fixture(3), fixture(4, 5))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, merged.GrainIDs())
	assert.Len(t, merged.Atoms, 5)
}

func TestMerge_Failures(t *testing.T) {
	t.Run("no parts", func(t *testing.T) {
		_, err := Merge()
		assert.Error(t, err)
	})

	t.Run("box mismatch", func(t *testing.T) {
		other := fixture(3)
		other.Box = grain.Box{X: 20, Y: 10, Z: 10}
		_, err := Merge(fixture(1), other)
		assert.Error(t, err)
	})
}

func TestVerifyCoverage(t *testing.T) {
	domain := grain.IDRange{Lo: 1, Hi: 4}

	t.Run("exact cover passes", func(t *testing.T) {
		assert.NoError(t, fixture(1, 2, 3, 4).VerifyCoverage(domain))
	})

	t.Run("missing id is fatal", func(t *testing.T) {
		err := fixture(1, 2, 4).VerifyCoverage(domain)
		var cov *CoverageError
		require.ErrorAs(t, err, &cov)
		assert.Equal(t, []int{3}, cov.Missing)
		assert.Empty(t, cov.Foreign)
	})

	t.Run("unallocated id is fatal", func(t *testing.T) {
		err := fixture(1, 2, 3, 4, 9).VerifyCoverage(domain)
		var cov *CoverageError
		require.ErrorAs(t, err, &cov)
		assert.Equal(t, []int{9}, cov.Foreign)
	})
}

func TestRemapLabels(t *testing.T) {
	s := fixture(1, 2, 3)
	require.NoError(t, s.RemapLabels())
	for _, a := range s.Atoms {
		assert.Equal(t, a.GrainID, a.MoleculeID)
	}
}

func TestRemapLabels_UnattributedAtom(t *testing.T) {
	s := fixture(1)
	s.Atoms = append(s.Atoms, Atom{Species: "X", Pos: r3.Vec{X: 1, Y: 1, Z: 1}})

	err := s.RemapLabels()
	var unlabeled *UnlabeledAtomError
	require.ErrorAs(t, err, &unlabeled)
	assert.Equal(t, 1, unlabeled.Index)
}

func TestSpecies(t *testing.T) {
	s := New(testBox)
	s.Atoms = []Atom{
		{Species: "O", GrainID: 1},
		{Species: "Mg", GrainID: 1},
		{Species: "O", GrainID: 2},
	}
	assert.Equal(t, []string{"Mg", "O"}, s.Species())
}
