package terrain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlowReachesBoundary(t *testing.T) {
	terrain := testTerrain(t, 1)

	flow := terrain.Data.Flow

	for _, v := range terrain.Graph.Boundary {
		assert.False(t, flow[v].Valid, "boundary vertex %d has a flow target", v)
	}

	// Every interior vertex drains, and following the chain terminates at a
	// boundary sink within vertex-count steps: no cycles.
	limit := len(flow)

	for _, v := range terrain.Graph.Interior {
		require.True(t, flow[v].Valid, "interior vertex %d does not drain", v)

		steps := 0
		end := v
		for flow[end].Valid {
			end = flow[end].To
			steps++
			require.LessOrEqual(t, steps, limit, "flow chain from %d does not terminate", v)
		}

		assert.Equal(t, VertexBoundary, terrain.Graph.VertexType[end],
			"flow chain from %d ends at interior vertex %d", v, end)
	}
}

func TestFluxConservation(t *testing.T) {
	terrain := testTerrain(t, 2)

	flux := terrain.Data.Flux
	rainfall := 1.0 / float64(len(terrain.Graph.Vertices))

	// Every vertex receives at least its own rainfall.
	for i, f := range flux {
		assert.GreaterOrEqual(t, f, rainfall, "vertex %d", i)
	}

	// Flux never decreases downstream.
	for v, f := range terrain.Data.Flow {
		if !f.Valid {
			continue
		}
		assert.GreaterOrEqual(t, flux[f.To], flux[v],
			"flux drops from vertex %d to its drain %d", v, f.To)
	}
}

func TestTraverseFlowVisitsChain(t *testing.T) {
	flow := []Flow{
		{To: 1, Valid: true},
		{To: 2, Valid: true},
		{},
	}

	var visited []int
	TraverseFlow(flow, 0, func(v int) { visited = append(visited, v) })

	assert.Equal(t, []int{0, 1, 2}, visited)
}
