package app_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/polygraingo/internal/app"
	"github.com/vk/polygraingo/internal/pipeline"
	"github.com/vk/polygraingo/internal/testutil"
)

const twoPhaseRecipe = `
box {
  size = [10, 10, 10]
}

phase "MgO" {
  grains = 1
}

phase "AlN" {
  grains = 1
}

output {
  postfix = "it"
}
`

func TestApp_EndToEnd(t *testing.T) {
	toolchain, exporter := testutil.Toolchain()
	result := testutil.RunRecipeTest(t, twoPhaseRecipe, toolchain)
	require.NoError(t, result.Err)

	merged := exporter.Last()
	require.NotNil(t, merged)
	assert.Equal(t, []int{1, 2}, merged.GrainIDs())
	for _, atom := range merged.Atoms {
		assert.Equal(t, atom.GrainID, atom.MoleculeID)
	}

	// The run manifest records the partition next to the output.
	entries, err := os.ReadDir(result.OutputDir)
	require.NoError(t, err)
	var manifests []string
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".manifest.yaml") {
			manifests = append(manifests, e.Name())
		}
	}
	require.Len(t, manifests, 1)

	raw, err := os.ReadFile(filepath.Join(result.OutputDir, manifests[0]))
	require.NoError(t, err)
	assert.Contains(t, string(raw), "id_range: '[1..1]'")
	assert.Contains(t, string(raw), "id_range: '[2..2]'")
}

func TestApp_UnknownPhaseWarnsAndFallsBack(t *testing.T) {
	recipe := `
box {
  size = [10, 10, 10]
}

phase "unobtainium" {
  grains = 2
}
`
	toolchain, exporter := testutil.Toolchain()
	result := testutil.RunRecipeTest(t, recipe, toolchain)

	require.NoError(t, result.Err)
	assert.Contains(t, result.LogOutput, "no registered geometry")
	assert.Equal(t, []int{1, 2}, exporter.Last().GrainIDs())
}

func TestApp_AmorphousPhase(t *testing.T) {
	recipe := `
box {
  size = [10, 10, 10]
}

phase "glass" {
  grains        = 2
  amorphous     = true
  stoichiometry = { Si = 1, O = 2 }
  density       = 2.2
}

phase "MgO" {
  grains = 1
}
`
	toolchain, exporter := testutil.Toolchain()
	result := testutil.RunRecipeTest(t, recipe, toolchain)

	require.NoError(t, result.Err)
	amorphous := toolchain.Amorphous.(*testutil.FakeAmorphousBuilder)
	assert.Equal(t, []string{"glass"}, amorphous.Calls)
	assert.Equal(t, []int{1, 2, 3}, exporter.Last().GrainIDs())
}

func TestApp_InvalidGrainCountSurfaces(t *testing.T) {
	recipe := `
box {
  size = [10, 10, 10]
}

phase "A" {
  grains = 2
}

phase "B" {
  grains = 0
}
`
	toolchain, _ := testutil.Toolchain()
	result := testutil.RunRecipeTest(t, recipe, toolchain)

	require.Error(t, result.Err)
	assert.Contains(t, result.Err.Error(), `phase "B"`)
}

func TestApp_InvalidBoxSurfaces(t *testing.T) {
	recipe := `
box {
  size = [-5, 10, 10]
}

phase "A" {
  grains = 1
}
`
	toolchain, _ := testutil.Toolchain()
	result := testutil.RunRecipeTest(t, recipe, toolchain)

	require.Error(t, result.Err)
	assert.Contains(t, result.Err.Error(), "must be positive")
}

func TestApp_ToolFailureNamesPhase(t *testing.T) {
	toolchain, _ := testutil.Toolchain()
	toolchain.Tess.(*testutil.FakeTessellator).FailFor = "AlN"

	result := testutil.RunRecipeTest(t, twoPhaseRecipe, toolchain)
	require.Error(t, result.Err)

	var toolErr *pipeline.ToolError
	require.ErrorAs(t, result.Err, &toolErr)
	assert.Equal(t, "AlN", toolErr.Phase)
}

func TestApp_DroppedGrainNamesPhaseAndID(t *testing.T) {
	toolchain, _ := testutil.Toolchain()
	toolchain.Tess.(*testutil.FakeTessellator).DropGrain = 2

	result := testutil.RunRecipeTest(t, twoPhaseRecipe, toolchain)
	require.Error(t, result.Err)

	var merr *pipeline.MergeIncompleteError
	require.ErrorAs(t, result.Err, &merr)
	require.Len(t, merr.Missing, 1)
	assert.Equal(t, 2, merr.Missing[0].ID)
	assert.Equal(t, "AlN", merr.Missing[0].Phase)
}

func TestNewConfig(t *testing.T) {
	t.Run("requires recipe path", func(t *testing.T) {
		_, err := app.NewConfig(app.Config{})
		assert.Error(t, err)
	})

	t.Run("applies defaults", func(t *testing.T) {
		cfg, err := app.NewConfig(app.Config{RecipePath: "recipe.hcl"})
		require.NoError(t, err)
		assert.Equal(t, 1, cfg.Workers)
		assert.Equal(t, "atomsk", cfg.AtomskBin)
		assert.Equal(t, "genamorph", cfg.GenamorphBin)
		assert.Equal(t, ".", cfg.OutputDir)
	})
}
