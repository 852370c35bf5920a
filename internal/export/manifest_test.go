package export

import (
	"math/rand"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/vk/polygraingo/internal/grain"
	"github.com/vk/polygraingo/internal/phase"
	"github.com/vk/polygraingo/internal/pipeline"
)

func TestManifestRoundTrip(t *testing.T) {
	plan, err := grain.Generate(grain.Box{X: 10, Y: 10, Z: 10}, []grain.Request{
		{Phase: "MgO", Count: 2},
		{Phase: "glass", Count: 1},
	}, rand.New(rand.NewSource(4)), grain.NewSequence())
	require.NoError(t, err)

	phases := []pipeline.PhaseRequest{
		{Spec: phase.Spec{Name: "MgO", Kind: phase.Rocksalt}, Grains: 2},
		{Spec: phase.Spec{Name: "glass", Amorphous: true}, Grains: 1},
	}
	res := &pipeline.Result{Plan: plan, OutputPath: "/out/polycrystal.lmp"}

	m := BuildManifest("abcd1234", 4, phases, res)
	assert.Equal(t, [3]float64{10, 10, 10}, m.Box)
	require.Len(t, m.Phases, 2)
	assert.Equal(t, "[1..2]", m.Phases[0].IDRange)
	assert.Equal(t, "rocksalt", m.Phases[0].Structure)
	assert.True(t, m.Phases[1].Amorphous)
	assert.Len(t, m.Phases[0].Seeds, 2)

	dir := t.TempDir()
	path, err := WriteManifest(dir, m)
	require.NoError(t, err)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	var got Manifest
	require.NoError(t, yaml.Unmarshal(raw, &got))
	assert.Equal(t, m, got)
}
