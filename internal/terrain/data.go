package terrain

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/seep/terrain/internal/geom"
)

// erosionIterations is the number of erode/re-route feedback passes. Each
// pass removes eroded material and recomputes the full hydrology from the
// updated elevation, which is what carves persistent drainage channels.
const erosionIterations = 5

// erosionScalar converts the bounded per-pass erosion magnitude into world
// elevation units.
const erosionScalar = 500.0

// Data holds the per-vertex elevation and hydrology state, index-aligned
// with the graph vertices. Generation never mutates it after NewData
// returns; SetSeaLevel is the one caller-facing mutation.
type Data struct {
	// Elevation of each terrain vertex; sea level is 0 after generation.
	Elevation []float64
	// Normal is the surface normal of each terrain vertex.
	Normal []r3.Vec
	// Flow is the downhill drain of each terrain vertex.
	Flow []Flow
	// Flux is the accumulated water volume passing through each vertex.
	Flux []float64
	// Erosion is the bounded erosion magnitude at each vertex.
	Erosion []float64
}

// NewData bakes the features into a height field over the graph, runs the
// hydrology simulation with its erosion feedback loop, and fixes sea level
// at the median elevation.
func NewData(graph *Graph, features Features) *Data {
	elevation := make([]float64, len(graph.Vertices))

	for _, cone := range features.Cones {
		addElevationCone(elevation, graph.Vertices, cone)
	}

	for _, slope := range features.Slopes {
		addElevationSlope(elevation, graph.Vertices, slope)
	}

	if features.Smooth {
		smooth(elevation)
	}

	if features.Relax {
		relax(graph, elevation)
	}

	flow := generateFlow(graph, elevation)
	flux := generateFlux(graph, flow)
	normal := generateNormal(graph, elevation)
	erosion := generateErosion(flux, normal)

	for i := 0; i < erosionIterations; i++ {
		erode(elevation, erosion, erosionScalar)

		// Re-route flow and recompute flux/normal/erosion from the eroded
		// elevation before the next pass.
		flow = generateFlow(graph, elevation)
		flux = generateFlux(graph, flow)
		normal = generateNormal(graph, elevation)
		erosion = generateErosion(flux, normal)
	}

	setMedianSeaLevel(elevation)

	return &Data{
		Elevation: elevation,
		Normal:    normal,
		Flow:      flow,
		Flux:      flux,
		Erosion:   erosion,
	}
}

// addElevationCone adds a radial falloff around the cone center. The falloff
// is the generalized exponential in-out easing of the normalized distance, so
// steepness 1 degenerates to a linear cone.
func addElevationCone(elevation []float64, vertices []r2.Vec, cone Cone) {
	for i, p := range vertices {
		d := r2.Sub(p, cone.Center)
		t := geom.Saturate(1 - r2.Norm(d)/cone.Radius)
		t = easeWithPower(t, cone.Steepness)

		elevation[i] += cone.Height * t
	}
}

// addElevationSlope adds a linear ramp along the slope vector, saturated at
// the slope length.
func addElevationSlope(elevation []float64, vertices []r2.Vec, s Slope) {
	slope := r2.Scale(s.Length, s.Direction)
	lensq := r2.Norm2(slope)

	for i, p := range vertices {
		d := r2.Sub(p, s.Origin)
		t := geom.Saturate(r2.Dot(d, slope) / lensq)

		elevation[i] += s.Height * t
	}
}

// smooth compresses the elevation by taking the square root of each value,
// softening peaks.
func smooth(elevation []float64) {
	for i, e := range elevation {
		elevation[i] = math.Sqrt(e)
	}
}

// relax replaces each elevation with the average of its connected neighbors.
// A vertex with no neighbors relaxes to zero.
func relax(graph *Graph, elevation []float64) {
	average := make([]float64, len(elevation))

	for i := range average {
		sum := 0.0
		div := 0.0

		for _, n := range graph.ConnectedVertices(i) {
			sum += elevation[n]
			div++
		}

		if div > 0 {
			average[i] = sum / div
		}
	}

	copy(elevation, average)
}

// erode subtracts the scaled erosion magnitude from each elevation.
func erode(elevation, erosion []float64, scalar float64) {
	for i := range elevation {
		elevation[i] -= erosion[i] * scalar
	}
}

// setSeaLevel shifts every elevation so the given level becomes zero.
func setSeaLevel(elevation []float64, level float64) {
	floats.AddConst(-level, elevation)
}

// SetSeaLevel re-fixes sea level at the given elevation, shifting the whole
// height field so that level becomes the new zero. Flow, flux, and erosion
// are unaffected: the shift is uniform.
func (d *Data) SetSeaLevel(level float64) {
	setSeaLevel(d.Elevation, level)
}

// setMedianSeaLevel fixes sea level at the median elevation, so the
// land/water split balances around the median rather than a noise-skewed
// mean.
func setMedianSeaLevel(elevation []float64) {
	setSeaLevel(elevation, geom.Median(elevation))
}

// easeWithPower applies a generalized exponential in-out easing, symmetric
// about t = 0.5 and linear at p = 1.
//
// https://www.s-ings.com/scratchpad/exponential-easing/
func easeWithPower(t, p float64) float64 {
	if t <= 0.5 {
		return math.Pow(t*2, p) * 0.5
	}
	return 1 - math.Pow(2-t*2, p)*0.5
}
