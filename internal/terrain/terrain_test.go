package terrain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seep/terrain/internal/geom"
)

func TestConfigValidation(t *testing.T) {
	valid := DefaultConfig()
	require.NoError(t, valid.Validate())

	bad := valid
	bad.SizeX = 0
	assert.ErrorIs(t, bad.Validate(), ErrZeroSize)

	bad = valid
	bad.Radius = -1
	assert.ErrorIs(t, bad.Validate(), ErrBadRadius)

	bad = valid
	bad.NumCities = -1
	assert.ErrorIs(t, bad.Validate(), ErrBadCities)

	bad = valid
	bad.NumRegions = -3
	assert.ErrorIs(t, bad.Validate(), ErrBadRegions)

	_, err := Generate(Config{})
	assert.Error(t, err)
}

func TestGenerateDeterminism(t *testing.T) {
	config := DefaultConfig()
	config.SizeX = 300
	config.SizeY = 300
	config.Seed = 1234

	a, err := Generate(config)
	require.NoError(t, err)

	b, err := Generate(config)
	require.NoError(t, err)

	assert.Equal(t, a.Graph.Points, b.Graph.Points)
	assert.Equal(t, a.Graph.Vertices, b.Graph.Vertices)
	assert.Equal(t, a.Graph.Edges, b.Graph.Edges)
	assert.Equal(t, a.Features, b.Features)
	assert.Equal(t, a.Data.Elevation, b.Data.Elevation)
	assert.Equal(t, a.Data.Flux, b.Data.Flux)
	assert.Equal(t, a.Data.Flow, b.Data.Flow)
	assert.Equal(t, a.Climate.Biome, b.Climate.Biome)
}

func TestGenerateAlignment(t *testing.T) {
	terrain := testTerrain(t, 5)

	n := len(terrain.Graph.Vertices)
	assert.Len(t, terrain.Data.Elevation, n)
	assert.Len(t, terrain.Data.Normal, n)
	assert.Len(t, terrain.Data.Flow, n)
	assert.Len(t, terrain.Data.Flux, n)
	assert.Len(t, terrain.Data.Erosion, n)
	assert.Len(t, terrain.Climate.Moisture, n)
	assert.Len(t, terrain.Climate.Temperature, n)
	assert.Len(t, terrain.Climate.Biome, n)
}

func TestGenerateScenario(t *testing.T) {
	if testing.Short() {
		t.Skip("full-size terrain")
	}

	config := Config{
		SizeX:      1000,
		SizeY:      1000,
		Seed:       42,
		Radius:     10,
		NumCities:  5,
		NumRegions: 5,
	}

	terrain, err := Generate(config)
	require.NoError(t, err)

	// Interior sample count lands near area / (radius² · √3/2), give or
	// take the dart-throwing packing factor.
	boundary := len(generateBoundaryPoints(terrain.Extent, config.Radius))
	interior := len(terrain.Graph.Points) - boundary

	assert.Greater(t, interior, 6_000)
	assert.Less(t, interior, 12_000)
}

func TestGenerateRadiusLargerThanDomain(t *testing.T) {
	config := Config{
		SizeX:     1000,
		SizeY:     1000,
		Seed:      7,
		Radius:    2000,
		NumCities: 1,
	}

	terrain, err := Generate(config)
	require.NoError(t, err)

	// Only the boundary frame plus at most one interior dart remains, but
	// the graph still builds a valid minimal triangulation.
	boundary := len(generateBoundaryPoints(terrain.Extent, config.Radius))
	interior := len(terrain.Graph.Points) - boundary
	assert.LessOrEqual(t, interior, 1)

	assert.NotEmpty(t, terrain.Graph.Vertices)
	assert.NotEmpty(t, terrain.Graph.Boundary)
}

func TestBoundaryPointsFrame(t *testing.T) {
	extent := geom.RectFromSize(200, 100)
	points := generateBoundaryPoints(extent, 10)

	inner := extent.Expand(10)
	outer := extent.Expand(20)

	require.NotEmpty(t, points)

	for i, p := range points {
		assert.True(t, outer.Contains(p), "boundary point %d escapes the outer frame", i)
		assert.False(t, extent.Contains(p), "boundary point %d inside the domain", i)
	}

	// Both rings contribute their corners.
	assert.Contains(t, points, inner.Corners()[0])
	assert.Contains(t, points, outer.Corners()[2])
}
