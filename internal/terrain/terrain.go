// Package terrain synthesizes a terrain height field and its hydrology over
// a planar domain. Generation is a pure, sequential pipeline: Poisson-disk
// point sampling, a Voronoi-like dual graph over the Delaunay triangulation,
// randomized elevation features, and an erosion loop that repeatedly routes
// water across the height field. A configuration and seed fully determine
// the result.
package terrain

import (
	"math/rand"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/seep/terrain/internal/geom"
	"github.com/seep/terrain/internal/poisson"
)

// Terrain is the complete, immutable result of one generation run. Callers
// read the per-vertex arrays but never write them; regeneration produces a
// wholly independent result.
type Terrain struct {
	// Config is the configuration the terrain was generated from.
	Config Config
	// Extent is the terrain extent in world coordinates, centered on the
	// origin.
	Extent geom.Rect
	// Graph holds the structures for navigating the terrain.
	Graph *Graph
	// Data holds the per-vertex elevation and hydrology state.
	Data *Data
	// Features holds the elevation primitives the height field was built
	// from.
	Features Features
	// Climate holds the derived per-vertex climate classification.
	Climate *Climate
}

// Generate runs the full terrain pipeline for the given configuration. All
// randomness is drawn from a single seeded stream in a fixed order, so equal
// configurations produce identical terrains.
func Generate(config Config) (*Terrain, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(config.Seed))

	extent := geom.RectFromSize(config.SizeX, config.SizeY)
	points := generatePoints(rng, extent, config.Radius)

	features := GenerateFeatures(rng, extent)

	graph, err := NewGraph(points)
	if err != nil {
		return nil, err
	}

	data := NewData(graph, features)

	climate := GenerateClimate(graph, data, config.Seed)

	return &Terrain{
		Config:   config,
		Extent:   extent,
		Graph:    graph,
		Data:     data,
		Features: features,
		Climate:  climate,
	}, nil
}

// generatePoints fills the extent with randomly sampled points, roughly
// separated by radius distance, followed by the structured boundary frame.
func generatePoints(rng *rand.Rand, extent geom.Rect, radius float64) []r2.Vec {
	points := poisson.Sample(rng, extent, radius)

	// The boundary frame stabilizes the Voronoi cells at the domain edges,
	// which would otherwise be unbounded or degenerate.
	//
	// https://www.redblobgames.com/x/2314-poisson-with-boundary/

	return append(points, generateBoundaryPoints(extent, radius)...)
}

// generateBoundaryPoints produces two nested rectangular rings of evenly
// spaced points, plus their corners, offset by 1x and 2x the separation
// distance.
func generateBoundaryPoints(extent geom.Rect, distance float64) []r2.Vec {
	inner := extent.Expand(distance)
	outer := extent.Expand(distance * 2)

	var points []r2.Vec

	for _, c := range inner.Corners() {
		points = append(points, c)
	}
	for _, c := range outer.Corners() {
		points = append(points, c)
	}

	nx := int(inner.W()/distance) - 1
	ny := int(inner.H()/distance) - 1

	// Inner ring points, interpolated along each side between the corners.

	for i := 1; i < nx; i++ {
		x := geom.MapRange(float64(i), 0, float64(nx), inner.Min.X, inner.Max.X)
		points = append(points, r2.Vec{X: x, Y: inner.Min.Y}, r2.Vec{X: x, Y: inner.Max.Y})
	}

	for i := 1; i < ny; i++ {
		y := geom.MapRange(float64(i), 0, float64(ny), inner.Min.Y, inner.Max.Y)
		points = append(points, r2.Vec{X: inner.Min.X, Y: y}, r2.Vec{X: inner.Max.X, Y: y})
	}

	// Outer ring points. These are not simply interpolated: each side gets
	// n + 1 points at an even half-step offset from the inner ring, so that
	// the triangles between the two rings come out symmetric along an axis.

	nx++
	ny++

	for i := 1; i < nx; i++ {
		x := geom.MapRange(float64(i), 0, float64(nx), inner.Min.X-distance*0.5, inner.Max.X+distance*0.5)
		points = append(points, r2.Vec{X: x, Y: inner.Min.Y - distance}, r2.Vec{X: x, Y: inner.Max.Y + distance})
	}

	for i := 1; i < ny; i++ {
		y := geom.MapRange(float64(i), 0, float64(ny), inner.Min.Y-distance*0.5, inner.Max.Y+distance*0.5)
		points = append(points, r2.Vec{X: inner.Min.X - distance, Y: y}, r2.Vec{X: inner.Max.X + distance, Y: y})
	}

	return points
}
