package regions

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/seep/terrain/internal/terrain"
)

// Travel cost multipliers. Water is cheap to cross but uniform, so sea
// routes are discouraged without being forbidden; crossing the coastline
// itself is the expensive part.
const (
	waterCostScalar = 100.0
	coastCostScalar = 1000.0
)

// riverCostScalar weights the flux contribution to land travel cost.
const riverCostScalar = 100.0

// travelCost returns the cost of moving from vertex a to adjacent vertex b.
//
// On land, cost grows with the square of the slope and with the river flux
// at the origin, so region boundaries prefer ridgelines over valleys and
// rivers act as natural borders. Uphill deltas are damped before squaring:
// climbing is cheaper than descending, which biases boundaries toward lying
// just past a crest.
func travelCost(t *terrain.Terrain, a, b int) float64 {
	dist := r2.Norm(r2.Sub(t.Graph.Vertices[b], t.Graph.Vertices[a]))
	if dist == 0 {
		return 0
	}

	ea := t.Data.Elevation[a]
	eb := t.Data.Elevation[b]

	if (ea < 0) != (eb < 0) {
		return dist * coastCostScalar
	}

	if ea < 0 {
		return dist * waterCostScalar
	}

	delta := eb - ea
	if delta > 0 {
		delta /= 10
	}
	slope := delta / dist

	return dist * (1 + 0.25*slope*slope + riverCostScalar*math.Sqrt(t.Data.Flux[a]))
}
