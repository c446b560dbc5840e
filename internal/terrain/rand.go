package terrain

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/seep/terrain/internal/geom"
)

// randRange returns a random float in [lo, hi).
func randRange(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// randBool returns true with probability p.
func randBool(rng *rand.Rand, p float64) bool {
	return rng.Float64() < p
}

// randomDir returns a random unit vector.
func randomDir(rng *rand.Rand) r2.Vec {
	t := randRange(rng, 0, 2*math.Pi)
	return r2.Vec{X: math.Cos(t), Y: math.Sin(t)}
}

// randomPointInRect returns a random point in the rect.
func randomPointInRect(rng *rand.Rand, rect geom.Rect) r2.Vec {
	return r2.Vec{
		X: rect.Min.X + rng.Float64()*rect.W(),
		Y: rect.Min.Y + rng.Float64()*rect.H(),
	}
}
