// Package voronoi derives a Voronoi-like dual tesselation from the Delaunay
// triangulation of a planar point set. The triangulation itself comes from
// fogleman/delaunay, which keeps the triangle and half-edge tables as flat
// integer arrays; this package adds the dual vertices (one per triangle) and
// the per-point cell rings used to navigate the tesselation.
package voronoi

import (
	"fmt"

	"github.com/fogleman/delaunay"
	"gonum.org/v1/gonum/spatial/r2"
)

// None marks the absence of a half-edge: a half-edge on the convex hull has
// no opposite, and a point outside every triangle has no incoming edge.
const None = -1

// Voronoi is the dual tesselation of a triangulated point set.
type Voronoi struct {
	// Cells holds the Voronoi cell of each input point, index-aligned with
	// the input point sequence.
	Cells []Cell
	// Vertices holds the Voronoi cell vertices. Each vertex is the centroid
	// of one triangle of the triangulation.
	Vertices []r2.Vec
	// Triangulation is the backing Delaunay triangulation.
	Triangulation *delaunay.Triangulation
	// HullPoints holds the indices of the input points on the convex hull.
	HullPoints []int
}

// Cell is the ring of Voronoi vertices surrounding one input point.
type Cell struct {
	// Vertices holds the vertex indices forming the cell, in half-edge
	// rotation order. For a hull cell these do not form a closed polygon.
	Vertices []int
	// Hull is true if the cell surrounds a point on the convex hull.
	Hull bool
}

// New triangulates points and builds the dual tesselation. The input order is
// significant: cells are index-aligned with the input, and vertex indices are
// triangle indices of the triangulation.
func New(points []r2.Vec) (*Voronoi, error) {
	input := make([]delaunay.Point, len(points))
	for i, p := range points {
		input[i] = delaunay.Point{X: p.X, Y: p.Y}
	}

	tri, err := delaunay.Triangulate(input)
	if err != nil {
		return nil, fmt.Errorf("triangulate %d points: %w", len(points), err)
	}

	vertices := make([]r2.Vec, len(tri.Triangles)/3)
	for t := range vertices {
		a := points[tri.Triangles[t*3]]
		b := points[tri.Triangles[t*3+1]]
		c := points[tri.Triangles[t*3+2]]
		vertices[t] = centroid(a, b, c)
	}

	hull := hullPointIndices(points, tri)

	incoming := incomingEdgeIndex(tri, len(points))

	cells := make([]Cell, len(points))
	for p := range cells {
		cells[p].Vertices = cellVertices(tri, incoming[p])
	}
	for _, p := range hull {
		cells[p].Hull = true
	}

	return &Voronoi{
		Cells:         cells,
		Vertices:      vertices,
		Triangulation: tri,
		HullPoints:    hull,
	}, nil
}

// NextHalfedge returns the next half-edge in the same triangle.
func NextHalfedge(e int) int {
	if e%3 == 2 {
		return e - 2
	}
	return e + 1
}

// TriangleOfEdge returns the triangle a half-edge belongs to.
func TriangleOfEdge(e int) int { return e / 3 }

// EdgesOfTriangle returns the three half-edges of triangle t.
func EdgesOfTriangle(t int) (int, int, int) { return t * 3, t*3 + 1, t*3 + 2 }

// cellVertices walks the incoming half-edges around a point, starting from
// start, and collects the triangle (= dual vertex) of each one. The walk
// rotates via the opposite of the next half-edge and stops when it returns to
// start or falls off the hull.
func cellVertices(tri *delaunay.Triangulation, start int) []int {
	if start == None {
		return nil
	}

	var ring []int

	for e := start; e != None; {
		ring = append(ring, TriangleOfEdge(e))

		next := tri.Halfedges[NextHalfedge(e)]
		if next == start {
			break
		}
		e = next
	}

	return ring
}

// incomingEdgeIndex maps each point index to one of its incoming half-edges.
// The edge whose outgoing twin is missing is preferred, so that a hull cell
// walk starts at the leftmost edge and visits every incoming edge before
// falling off the open side.
func incomingEdgeIndex(tri *delaunay.Triangulation, n int) []int {
	incoming := make([]int, n)
	for i := range incoming {
		incoming[i] = None
	}

	for e := range tri.Triangles {
		p := tri.Triangles[NextHalfedge(e)]
		if incoming[p] == None || tri.Halfedges[e] == None {
			incoming[p] = e
		}
	}

	return incoming
}

// hullPointIndices recovers the input indices of the convex hull points. The
// triangulation reports the hull as point values, which are exact copies of
// the input, so value identity is safe here.
func hullPointIndices(points []r2.Vec, tri *delaunay.Triangulation) []int {
	index := make(map[delaunay.Point]int, len(points))
	for i := len(points) - 1; i >= 0; i-- {
		index[delaunay.Point{X: points[i].X, Y: points[i].Y}] = i
	}

	hull := make([]int, 0, len(tri.ConvexHull))
	for _, p := range tri.ConvexHull {
		hull = append(hull, index[p])
	}
	return hull
}

func centroid(a, b, c r2.Vec) r2.Vec {
	return r2.Scale(1.0/3.0, r2.Add(a, r2.Add(b, c)))
}
