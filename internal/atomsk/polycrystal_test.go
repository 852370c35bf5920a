package atomsk

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/vk/polygraingo/internal/grain"
)

func TestWriteParams(t *testing.T) {
	box := grain.Box{X: 200, Y: 150, Z: 100}
	seeds := []grain.Seed{
		{ID: 1, Phase: "A", Coord: r3.Vec{X: 10, Y: 20, Z: 30}, Orient: grain.Orientation{Alpha: 45, Beta: 90, Gamma: 135}},
		{ID: 2, Phase: "B", Coord: r3.Vec{X: 100, Y: 75, Z: 50}, Orient: grain.Orientation{Alpha: 1, Beta: 2, Gamma: 3}},
	}

	path := filepath.Join(t.TempDir(), "nodes.txt")
	require.NoError(t, WriteParams(path, box, seeds))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")

	require.Len(t, lines, 3, "box line plus one node per seed")
	assert.Equal(t, "box 200 150 100", lines[0])
	assert.Equal(t, "node 10.000000 20.000000 30.000000 45.0000 90.0000 135.0000", lines[1])
	assert.Equal(t, "node 100.000000 75.000000 50.000000 1.0000 2.0000 3.0000", lines[2])
}

func TestSanitize(t *testing.T) {
	assert.Equal(t, "a-SiO2", sanitize("a-SiO2"))
	assert.Equal(t, "glass_2_", sanitize("glass/2%"))
}
