package terrain

// generateFlux accumulates water flux over the flow graph. Every vertex
// starts with one unit of uniform rainfall; each interior vertex then rains
// one unit onto every vertex along its drain path, so flux at a vertex grows
// with the number of upstream vertices draining through it.
func generateFlux(graph *Graph, flow []Flow) []float64 {
	rainfall := 1.0 / float64(len(graph.Vertices))

	flux := make([]float64, len(graph.Vertices))
	for i := range flux {
		flux[i] = rainfall
	}

	for _, v := range graph.Interior {
		TraverseFlow(flow, v, func(n int) {
			flux[n] += rainfall
		})
	}

	return flux
}
