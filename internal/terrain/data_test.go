package terrain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seep/terrain/internal/geom"
)

// testTerrain generates a complete small terrain for hydrology assertions.
func testTerrain(t *testing.T, seed int64) *Terrain {
	t.Helper()

	config := DefaultConfig()
	config.SizeX = 300
	config.SizeY = 300
	config.Seed = seed

	terrain, err := Generate(config)
	require.NoError(t, err)
	return terrain
}

func TestEaseWithPower(t *testing.T) {
	// Power 1 degenerates to a linear ramp.
	for _, v := range []float64{0, 0.25, 0.5, 0.75, 1} {
		assert.InDelta(t, v, easeWithPower(v, 1), 1e-12)
	}

	// Higher powers stay in range, flatten the start, and keep the
	// symmetry point fixed.
	assert.Equal(t, 0.5, easeWithPower(0.5, 4))
	assert.Less(t, easeWithPower(0.25, 4), 0.25)
	assert.Greater(t, easeWithPower(0.75, 4), 0.75)
	assert.Equal(t, 0.0, easeWithPower(0, 4))
	assert.InDelta(t, 1.0, easeWithPower(1, 4), 1e-12)
}

func TestConeComposition(t *testing.T) {
	graph := testGraph(t, 1)

	cone := Cone{Center: graph.Vertices[0], Radius: 100, Height: 50, Steepness: 1}

	elevation := make([]float64, len(graph.Vertices))
	addElevationCone(elevation, graph.Vertices, cone)

	// The cone peaks at its center and never exceeds its height.
	assert.InDelta(t, 50, elevation[0], 1e-9)
	for i, e := range elevation {
		assert.GreaterOrEqual(t, e, 0.0, "vertex %d below zero", i)
		assert.LessOrEqual(t, e, 50.0, "vertex %d above cone height", i)
	}
}

func TestRelaxAveragesNeighbors(t *testing.T) {
	graph := testGraph(t, 2)

	elevation := make([]float64, len(graph.Vertices))
	for i := range elevation {
		elevation[i] = float64(i % 17)
	}

	before := make([]float64, len(elevation))
	copy(before, elevation)

	relax(graph, elevation)

	for i := range elevation {
		neighbors := graph.ConnectedVertices(i)
		if len(neighbors) == 0 {
			assert.Equal(t, 0.0, elevation[i])
			continue
		}
		assert.InDelta(t, geom.IndexedMean(before, neighbors), elevation[i], 1e-9)
	}
}

func TestSeaLevelBalance(t *testing.T) {
	terrain := testTerrain(t, 42)

	above, below := 0, 0
	for _, e := range terrain.Data.Elevation {
		if e >= 0 {
			above++
		} else {
			below++
		}
	}

	assert.LessOrEqual(t, abs(above-below), 1, "median split is unbalanced")
}

func TestSetSeaLevel(t *testing.T) {
	terrain := testTerrain(t, 10)

	before := make([]float64, len(terrain.Data.Elevation))
	copy(before, terrain.Data.Elevation)

	terrain.Data.SetSeaLevel(5)

	for i, e := range terrain.Data.Elevation {
		assert.InDelta(t, before[i]-5, e, 1e-9)
	}
}

func TestErosionBounds(t *testing.T) {
	terrain := testTerrain(t, 3)

	for i, e := range terrain.Data.Erosion {
		assert.GreaterOrEqual(t, e, erosionMin, "vertex %d", i)
		assert.LessOrEqual(t, e, erosionMax, "vertex %d", i)
	}
}

func TestNormalsZeroOnBoundary(t *testing.T) {
	terrain := testTerrain(t, 4)

	for _, v := range terrain.Graph.Boundary {
		n := terrain.Data.Normal[v]
		assert.Zero(t, n.X)
		assert.Zero(t, n.Y)
		assert.Zero(t, n.Z)
	}

	// Interior normals are unit length (or zero for degenerate triangles).
	unit := 0
	for _, v := range terrain.Graph.Interior {
		n := terrain.Data.Normal[v]
		norm2 := n.X*n.X + n.Y*n.Y + n.Z*n.Z
		if norm2 > 0 {
			assert.InDelta(t, 1.0, norm2, 1e-9)
			unit++
		}
	}
	assert.NotZero(t, unit)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
