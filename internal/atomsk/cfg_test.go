package atomsk

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/vk/polygraingo/internal/grain"
	"github.com/vk/polygraingo/internal/structure"
)

func TestCFG_RoundTripPreservesGrainIDs(t *testing.T) {
	s := structure.New(grain.Box{X: 20, Y: 10, Z: 5})
	s.Atoms = []structure.Atom{
		{Species: "Mg", Pos: r3.Vec{X: 1, Y: 2, Z: 3}, GrainID: 1},
		{Species: "O", Pos: r3.Vec{X: 4, Y: 5, Z: 1}, GrainID: 1},
		{Species: "Mg", Pos: r3.Vec{X: 18, Y: 9.5, Z: 4.5}, GrainID: 2},
	}

	path := filepath.Join(t.TempDir(), "roundtrip.cfg")
	require.NoError(t, WriteCFG(path, s))

	got, err := ReadCFG(path)
	require.NoError(t, err)

	assert.Equal(t, s.Box, got.Box)
	assert.Equal(t, []int{1, 2}, got.GrainIDs())
	assert.Equal(t, []string{"Mg", "O"}, got.Species())
	require.Len(t, got.Atoms, 3)

	// Atoms come back grouped by species; match on grain id and position.
	byGrain := map[int]int{}
	for _, a := range got.Atoms {
		byGrain[a.GrainID]++
	}
	assert.Equal(t, map[int]int{1: 2, 2: 1}, byGrain)
}

func TestCFG_RoundTripPositions(t *testing.T) {
	s := structure.New(grain.Box{X: 7, Y: 11, Z: 13})
	want := r3.Vec{X: 3.25, Y: 10.5, Z: 0.125}
	s.Atoms = []structure.Atom{{Species: "Si", Pos: want, GrainID: 3}}

	path := filepath.Join(t.TempDir(), "pos.cfg")
	require.NoError(t, WriteCFG(path, s))
	got, err := ReadCFG(path)
	require.NoError(t, err)

	require.Len(t, got.Atoms, 1)
	assert.InDelta(t, want.X, got.Atoms[0].Pos.X, 1e-6)
	assert.InDelta(t, want.Y, got.Atoms[0].Pos.Y, 1e-6)
	assert.InDelta(t, want.Z, got.Atoms[0].Pos.Z, 1e-6)
	assert.Equal(t, 3, got.Atoms[0].GrainID)
}

func TestReadCFG_WithoutAuxiliary(t *testing.T) {
	raw := `Number of particles = 2
A = 1.0 Angstrom (basic length-scale)
H0(1,1) = 10.0 A
H0(1,2) = 0.0 A
H0(1,3) = 0.0 A
H0(2,1) = 0.0 A
H0(2,2) = 10.0 A
H0(2,3) = 0.0 A
H0(3,1) = 0.0 A
H0(3,2) = 0.0 A
H0(3,3) = 10.0 A
.NO_VELOCITY.
entry_count = 3
28.086
Si
0.0 0.0 0.0
0.25 0.25 0.25
`
	path := filepath.Join(t.TempDir(), "plain.cfg")
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	got, err := ReadCFG(path)
	require.NoError(t, err)
	require.Len(t, got.Atoms, 2)
	assert.Equal(t, 0, got.Atoms[0].GrainID, "grain id defaults to unset without the auxiliary")
	assert.InDelta(t, 2.5, got.Atoms[1].Pos.X, 1e-9)
}

func TestReadCFG_Failures(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"triclinic cell", "Number of particles = 0\nH0(1,1) = 10 A\nH0(1,2) = 1.0 A\nH0(2,2) = 10 A\nH0(3,3) = 10 A\n"},
		{"count mismatch", "Number of particles = 5\nH0(1,1) = 10 A\nH0(2,2) = 10 A\nH0(3,3) = 10 A\n28.086\nSi\n0.1 0.1 0.1\n"},
		{"atom before species", "Number of particles = 1\nH0(1,1) = 10 A\nH0(2,2) = 10 A\nH0(3,3) = 10 A\n0.1 0.1 0.1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bad.cfg")
			require.NoError(t, os.WriteFile(path, []byte(tt.raw), 0o644))
			_, err := ReadCFG(path)
			assert.Error(t, err)
		})
	}
}
