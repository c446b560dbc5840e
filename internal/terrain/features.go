package terrain

import (
	"math/rand"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/seep/terrain/internal/geom"
)

// Features is the randomized bag of elevation primitives baked into the
// height field, plus the flags selecting the optional conditioning passes.
type Features struct {
	Slopes []Slope
	Cones  []Cone
	Smooth bool
	Relax  bool
	Erode  bool
}

// Slope is a linear elevation ramp.
type Slope struct {
	Origin    r2.Vec
	Direction r2.Vec
	Length    float64
	Height    float64
}

// Cone is a radial elevation primitive. Steepness 1 gives a linear falloff;
// higher values give an exponential in-out falloff.
type Cone struct {
	Center    r2.Vec
	Radius    float64
	Height    float64
	Steepness float64
}

// GenerateFeatures produces random terrain features for the given extent.
// Every draw comes from rng in a fixed order, so a seed reproduces the same
// feature set exactly.
func GenerateFeatures(rng *rand.Rand, extent geom.Rect) Features {
	expandedExtent := extent.Scaled(1.2)
	smallerExtent := extent.Scaled(0.5)

	var slopes []Slope
	var cones []Cone

	// Lots of average cones. Steepness is bimodal: mostly gentle, with the
	// occasional steep peak.

	numCones := 100 + rng.Intn(150)
	for i := 0; i < numCones; i++ {
		var steepness float64
		if randBool(rng, 0.2) {
			steepness = randRange(rng, 2.0, 6.0)
		} else {
			steepness = randRange(rng, 1.0, 1.5)
		}

		cones = append(cones, Cone{
			Center:    randomPointInRect(rng, expandedExtent),
			Radius:    randRange(rng, 50, 400),
			Height:    randRange(rng, 25, 75),
			Steepness: steepness,
		})
	}

	// Maybe add a huge cone.

	if randBool(rng, 0.5) {
		cones = append(cones, Cone{
			Center:    randomPointInRect(rng, expandedExtent),
			Radius:    randRange(rng, 300, 600),
			Height:    randRange(rng, 50, 150),
			Steepness: randRange(rng, 0.9, 1.1),
		})
	}

	// Maybe add a huge slope.

	if randBool(rng, 0.1) {
		slopes = append(slopes, Slope{
			Origin:    randomPointInRect(rng, smallerExtent),
			Direction: randomDir(rng),
			Length:    randRange(rng, 100, 300),
			Height:    randRange(rng, 100, 300),
		})
	}

	return Features{
		Slopes: slopes,
		Cones:  cones,
		Smooth: randBool(rng, 0.5),
		Relax:  randBool(rng, 0.5),
		Erode:  true,
	}
}
