package pipeline_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/polygraingo/internal/grain"
	"github.com/vk/polygraingo/internal/pipeline"
	"github.com/vk/polygraingo/internal/structure"
	"github.com/vk/polygraingo/internal/testutil"
)

// tessellate builds a three-phase plan and one phase's full-box polycrystal
// through the fake engine.
func tessellate(t *testing.T, phaseName string) (*structure.Structure, *grain.Plan) {
	t.Helper()
	plan, err := grain.Generate(box, []grain.Request{
		{Phase: "A", Count: 2},
		{Phase: "B", Count: 3},
		{Phase: "C", Count: 2},
	}, rand.New(rand.NewSource(5)), grain.NewSequence())
	require.NoError(t, err)

	cell := structure.New(grain.Box{X: 1, Y: 1, Z: 1})
	cell.Atoms = []structure.Atom{{Species: "X"}}

	tess := &testutil.FakeTessellator{}
	poly, err := tess.Polycrystal(context.Background(), phaseName, cell, box, plan.Seeds)
	require.NoError(t, err)
	return poly, plan
}

func TestIsolate_RemovesAllForeignGrains(t *testing.T) {
	poly, plan := tessellate(t, "B")

	iso, err := pipeline.Isolate(context.Background(), "B", poly, plan.Partition)
	require.NoError(t, err)

	// Phase B owns ids 3..5; nothing else may survive.
	assert.Equal(t, []int{3, 4, 5}, iso.GrainIDs())

	// Round-trip: the isolated ids are B's partition ids intersected with
	// whatever the tessellation populated (everything, with this fake).
	own, ok := plan.Partition.Range("B")
	require.True(t, ok)
	for _, id := range iso.GrainIDs() {
		assert.True(t, own.Contains(id))
	}
}

func TestIsolate_SinglePhaseAppliesZeroPasses(t *testing.T) {
	plan, err := grain.Generate(box, []grain.Request{{Phase: "only", Count: 4}},
		rand.New(rand.NewSource(2)), grain.NewSequence())
	require.NoError(t, err)

	cell := structure.New(grain.Box{X: 1, Y: 1, Z: 1})
	cell.Atoms = []structure.Atom{{Species: "X"}}
	poly, err := (&testutil.FakeTessellator{}).Polycrystal(context.Background(), "only", cell, box, plan.Seeds)
	require.NoError(t, err)

	iso, err := pipeline.Isolate(context.Background(), "only", poly, plan.Partition)
	require.NoError(t, err)
	assert.Equal(t, poly.GrainIDs(), iso.GrainIDs(), "a phase with no foreign grains passes through unchanged")
	assert.Len(t, iso.Atoms, len(poly.Atoms))
}

func TestIsolate_UnknownPhaseIsIncompletePartition(t *testing.T) {
	poly, plan := tessellate(t, "A")

	_, err := pipeline.Isolate(context.Background(), "D", poly, plan.Partition)

	var partErr *pipeline.IncompletePartitionError
	require.ErrorAs(t, err, &partErr)
	assert.Equal(t, "D", partErr.Phase)
}

func TestIsolate_CancelledContext(t *testing.T) {
	poly, plan := tessellate(t, "A")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := pipeline.Isolate(ctx, "A", poly, plan.Partition)
	assert.ErrorIs(t, err, context.Canceled)
}
