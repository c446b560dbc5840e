// Package regions partitions the habitable terrain into settlement regions:
// it scores habitability from the hydrology output, places city seeds
// greedily, and grows one weighted region out of each city until every
// terrain vertex belongs to exactly one.
package regions

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/seep/terrain/internal/geom"
	"github.com/seep/terrain/internal/pqueue"
	"github.com/seep/terrain/internal/terrain"
)

// Unassigned marks a vertex with no region. It only survives generation when
// the configuration asks for zero cities.
const Unassigned = -1

// suppressionRadius is the distance over which an existing city suppresses
// the scores of nearby candidates, and over which the domain edge attenuates
// habitability.
const suppressionRadius = 100.0

// habitabilityFluxCap caps the flux contribution to the habitability score;
// anything wetter than this is equally attractive.
const habitabilityFluxCap = 0.05

// Regions holds the settlement partition of a terrain. Built once,
// read-only afterward.
type Regions struct {
	// Habitability is the normalized habitability score of each terrain
	// vertex.
	Habitability []float64
	// Cities holds the vertex index of each city, in placement order.
	Cities []int
	// NearestCity maps each vertex to the vertex index of the city whose
	// region it belongs to. City vertices map to themselves.
	NearestCity []int
}

// New builds the settlement partition for a generated terrain.
func New(t *terrain.Terrain) *Regions {
	habitability := generateHabitability(t)
	cities := placeCities(t, habitability)
	nearest := growRegions(t, cities)

	return &Regions{
		Habitability: habitability,
		Cities:       cities,
		NearestCity:  nearest,
	}
}

// generateHabitability scores each vertex for settlement desirability.
// Boundary vertices and anything at or below sea level score zero; the rest
// score by capped water flux, attenuated toward the domain edges. The final
// array is min-max normalized into [0, 1].
func generateHabitability(t *terrain.Terrain) []float64 {
	score := make([]float64, len(t.Graph.Vertices))

	for i := range score {
		if t.Graph.VertexType[i] == terrain.VertexBoundary {
			continue
		}

		if t.Data.Elevation[i] <= 0 {
			continue // leave underwater vertices at 0
		}

		s := geom.MapClamp(t.Data.Flux[i], 0, habitabilityFluxCap, 0, 1)

		// Scale the score towards zero near the edge of the terrain extent,
		// on each axis independently.

		vertex := t.Graph.Vertices[i]
		extent := t.Extent

		distXEdge := min(vertex.X-extent.Min.X, extent.Max.X-vertex.X)
		distYEdge := min(vertex.Y-extent.Min.Y, extent.Max.Y-vertex.Y)

		s *= geom.MapClamp(distXEdge, 0, suppressionRadius, 0, 1)
		s *= geom.MapClamp(distYEdge, 0, suppressionRadius, 0, 1)

		score[i] = s
	}

	geom.Normalize(score)

	return score
}

// placeCities greedily picks the highest-scoring vertex as the next city,
// then ramps nearby scores down to zero so the following cities spread out.
// Ties go to the lowest vertex index.
func placeCities(t *terrain.Terrain, habitability []float64) []int {
	scores := make([]float64, len(habitability))
	copy(scores, habitability)

	cities := make([]int, 0, t.Config.NumCities)

	for i := 0; i < t.Config.NumCities; i++ {
		city := geom.MaxPosition(scores)
		if city < 0 {
			break
		}

		cityPoint := t.Graph.Vertices[city]

		for j := range scores {
			dist := r2.Norm(r2.Sub(t.Graph.Vertices[j], cityPoint))
			scores[j] *= geom.MapClamp(dist, 0, suppressionRadius, 0, 1)
		}

		cities = append(cities, city)
	}

	return cities
}

// regionSeed is a queued (origin city, candidate vertex) pair with the
// cumulative travel cost from the city.
type regionSeed struct {
	city int
	vert int
	cost float64
}

// growRegions assigns every vertex to a city by multi-source shortest-path
// growth. All cities expand simultaneously through one queue ordered by
// cumulative travel cost; the first region to reach a vertex keeps it, which
// is exactly the minimum-cost assignment because a vertex pops only at its
// minimum cumulative cost.
func growRegions(t *terrain.Terrain, cities []int) []int {
	nearest := make([]int, len(t.Graph.Vertices))
	for i := range nearest {
		nearest[i] = Unassigned
	}

	queue := pqueue.New[regionSeed]()

	// Each city claims its own vertex at zero cost and seeds the frontier
	// with its neighbors. The queue is keyed by negative cost so the
	// cheapest candidate pops first.

	for _, city := range cities {
		nearest[city] = city

		for _, vert := range t.Graph.ConnectedVertices(city) {
			cost := travelCost(t, city, vert)
			queue.Push(regionSeed{city: city, vert: vert, cost: cost}, -cost)
		}
	}

	for {
		next, ok := queue.Pop()
		if !ok {
			break
		}

		if nearest[next.vert] != Unassigned {
			continue // already claimed at lower cost
		}

		nearest[next.vert] = next.city

		for _, vert := range t.Graph.ConnectedVertices(next.vert) {
			if nearest[vert] != Unassigned {
				continue
			}
			cost := next.cost + travelCost(t, next.vert, vert)
			queue.Push(regionSeed{city: next.city, vert: vert, cost: cost}, -cost)
		}
	}

	return nearest
}
