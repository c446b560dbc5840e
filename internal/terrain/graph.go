package terrain

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/seep/terrain/internal/voronoi"
)

// VertexType classifies a graph vertex by its position in the tesselation.
type VertexType uint8

const (
	// VertexInterior vertices have a full triangle of neighbors.
	VertexInterior VertexType = iota
	// VertexBoundary vertices belong to a convex-hull triangle.
	VertexBoundary
)

// Graph holds the structures for navigating the terrain in various ways. It
// is built once per generation run and never mutated afterward; every later
// stage keeps per-vertex arrays index-aligned with Vertices.
type Graph struct {
	// Points holds the terrain control points (the Delaunay sites).
	Points []r2.Vec
	// Vertices holds the terrain vertices, one per triangle.
	Vertices []r2.Vec
	// Boundary holds the indices of the boundary vertices.
	Boundary []int
	// Interior holds the indices of the interior (non-boundary) vertices.
	Interior []int
	// VertexType holds the type of each vertex.
	VertexType []VertexType
	// Edges holds the terrain edges.
	Edges []GraphEdge

	// voronoi is the tesselation backing the graph.
	voronoi *voronoi.Voronoi
}

// GraphEdge connects two adjacent terrain vertices. Its dual relationship:
// the edge crosses exactly one edge of the triangulation, separating the two
// listed input points.
type GraphEdge struct {
	// Vertices holds the indices of the vertices forming the edge.
	Vertices [2]int
	// Points holds the indices of the input points adjacent to the edge.
	Points [2]int
}

// NewGraph builds the terrain graph for the given control points.
func NewGraph(points []r2.Vec) (*Graph, error) {
	vor, err := voronoi.New(points)
	if err != nil {
		return nil, fmt.Errorf("terrain graph: %w", err)
	}

	vertices := vor.Vertices

	// A vertex is a boundary vertex iff it appears in the cell of a convex
	// hull point, i.e. its triangle touches the hull.
	vertexType := make([]VertexType, len(vertices))
	for _, p := range vor.HullPoints {
		for _, v := range vor.Cells[p].Vertices {
			vertexType[v] = VertexBoundary
		}
	}

	var boundary, interior []int
	for i := range vertices {
		if vertexType[i] == VertexBoundary {
			boundary = append(boundary, i)
		} else {
			interior = append(interior, i)
		}
	}

	// Each undirected edge corresponds to one half-edge pair of the
	// triangulation; hull half-edges have no pair and produce no edge.
	tri := vor.Triangulation

	edges := make([]GraphEdge, 0, len(tri.Triangles)/2)
	seen := make([]bool, len(tri.Triangles))

	for inc := range tri.Triangles {
		out := tri.Halfedges[inc]

		if seen[inc] || out == voronoi.None {
			continue
		}

		seen[inc] = true
		seen[out] = true

		edges = append(edges, GraphEdge{
			Vertices: [2]int{voronoi.TriangleOfEdge(out), voronoi.TriangleOfEdge(inc)},
			Points:   [2]int{tri.Triangles[out], tri.Triangles[inc]},
		})
	}

	return &Graph{
		Points:     points,
		Vertices:   vertices,
		Boundary:   boundary,
		Interior:   interior,
		VertexType: vertexType,
		Edges:      edges,
		voronoi:    vor,
	}, nil
}

// Cell returns the vertex ring forming the Voronoi cell around input point p,
// in half-edge rotation order.
func (g *Graph) Cell(p int) []int {
	return g.voronoi.Cells[p].Vertices
}

// IsHullCell reports whether the cell around input point p is open (its point
// lies on the convex hull).
func (g *Graph) IsHullCell(p int) bool {
	return g.voronoi.Cells[p].Hull
}

// ConnectedVertices returns the indices of the vertices connected to vertex
// v, in half-edge order. A vertex has at most three neighbors; those across a
// hull half-edge are absent.
func (g *Graph) ConnectedVertices(v int) []int {
	ea, eb, ec := voronoi.EdgesOfTriangle(v)

	connected := make([]int, 0, 3)
	for _, e := range [3]int{ea, eb, ec} {
		out := g.voronoi.Triangulation.Halfedges[e]
		if out == voronoi.None {
			continue
		}
		connected = append(connected, voronoi.TriangleOfEdge(out))
	}
	return connected
}

// InteriorConnectedVertices returns the triplet of vertices connected to an
// interior vertex. ok is false for boundary vertices, whose neighbor triangle
// is not fully defined.
func (g *Graph) InteriorConnectedVertices(v int) (neighbors [3]int, ok bool) {
	// Each vertex is the center of a Delaunay triangle, so its neighbors are
	// found through the opposites of the triangle's three half-edges. For an
	// interior vertex all three opposites must exist.

	if g.VertexType[v] == VertexBoundary {
		return neighbors, false
	}

	ea, eb, ec := voronoi.EdgesOfTriangle(v)

	ha := g.voronoi.Triangulation.Halfedges[ea]
	hb := g.voronoi.Triangulation.Halfedges[eb]
	hc := g.voronoi.Triangulation.Halfedges[ec]

	if ha == voronoi.None || hb == voronoi.None || hc == voronoi.None {
		panic(fmt.Sprintf("terrain: interior vertex %d has a hull half-edge", v))
	}

	neighbors[0] = voronoi.TriangleOfEdge(ha)
	neighbors[1] = voronoi.TriangleOfEdge(hb)
	neighbors[2] = voronoi.TriangleOfEdge(hc)
	return neighbors, true
}
