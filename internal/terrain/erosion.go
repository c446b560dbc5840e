package terrain

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Per-pass erosion bounds. The clamp limits how much material a single
// iteration can remove.
const (
	erosionMin = 0.00
	erosionMax = 0.02
)

// creepScalar is the slope-proportional background erosion applied
// everywhere, independent of river flux.
const creepScalar = 0.001

// generateNormal computes the surface normal of each interior vertex from
// the triangle of its three graph neighbors, using their planar positions
// and elevations. Boundary vertices keep a zero normal.
func generateNormal(graph *Graph, elevation []float64) []r3.Vec {
	normals := make([]r3.Vec, len(graph.Vertices))

	for _, v := range graph.Interior {
		n, ok := graph.InteriorConnectedVertices(v)
		if !ok {
			continue
		}

		pa := surfacePoint(graph, elevation, n[0])
		pb := surfacePoint(graph, elevation, n[1])
		pc := surfacePoint(graph, elevation, n[2])

		normals[v] = unitOrZero(r3.Cross(r3.Sub(pb, pa), r3.Sub(pc, pa)))
	}

	return normals
}

// generateErosion computes the bounded erosion magnitude at each vertex.
// The horizontal component of the surface normal measures steepness: rivers
// erode steep vertices in proportion to the square root of their flux, and
// every slope creeps a little regardless of water.
func generateErosion(flux []float64, normals []r3.Vec) []float64 {
	erosion := make([]float64, len(flux))

	for i := range erosion {
		scalar := normals[i].X*normals[i].X + normals[i].Y*normals[i].Y
		river := scalar * math.Sqrt(flux[i])
		creep := scalar * creepScalar

		erosion[i] = math.Max(erosionMin, math.Min(erosionMax, river+creep))
	}

	return erosion
}

func surfacePoint(graph *Graph, elevation []float64, v int) r3.Vec {
	return r3.Vec{X: graph.Vertices[v].X, Y: graph.Vertices[v].Y, Z: elevation[v]}
}

// unitOrZero normalizes v, returning the zero vector for a degenerate input.
func unitOrZero(v r3.Vec) r3.Vec {
	if r3.Norm2(v) == 0 {
		return r3.Vec{}
	}
	return r3.Unit(v)
}
