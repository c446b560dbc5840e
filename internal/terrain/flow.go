package terrain

import "github.com/seep/terrain/internal/pqueue"

// Flow is the optional downhill drain of a vertex. Valid is false for
// terminal vertices (boundary sinks) that drain off the map.
type Flow struct {
	// To is the index of the next vertex along the downhill path.
	To int
	// Valid reports whether To is set.
	Valid bool
}

// generateFlow computes the flow graph of the terrain vertices.
//
// Implements algorithm 4 from Barnes, Lehmann, Mulla. Unlike depression
// filling, the traversal order itself resolves local depressions, so the
// elevation array is never modified: the queue is seeded with every boundary
// vertex and always pops the lowest-elevation seen vertex, which guarantees
// each interior vertex drains toward the boundary. The queue is keyed by
// negative elevation so the lowest points are processed first.
//
// https://arxiv.org/abs/1511.04463
func generateFlow(graph *Graph, elevation []float64) []Flow {
	flow := make([]Flow, len(graph.Vertices))

	open := pqueue.New[int]()
	seen := make([]bool, len(flow))

	for _, v := range graph.Boundary {
		open.Push(v, -elevation[v])
		seen[v] = true
	}

	for {
		next, ok := open.Pop()
		if !ok {
			break
		}

		for _, neighbor := range graph.ConnectedVertices(next) {
			if seen[neighbor] {
				continue
			}

			flow[neighbor] = Flow{To: next, Valid: true}
			seen[neighbor] = true

			open.Push(neighbor, -elevation[neighbor])
		}
	}

	return flow
}

// TraverseFlow visits every vertex on the flow path from start to its
// terminal sink, starting with start itself.
func TraverseFlow(flow []Flow, start int, visit func(v int)) {
	for v := start; ; {
		visit(v)

		next := flow[v]
		if !next.Valid {
			return
		}
		v = next.To
	}
}
