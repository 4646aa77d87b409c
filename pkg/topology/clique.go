package topology

import "github.com/matzehuels/topogen/pkg/graph"

const methodClique = "Clique"

// Clique builds the complete graph K_n. Edges are emitted in lexicographic
// (i < j) order and no randomness is consumed.
func (b *Builder) Clique(n int) (*graph.Graph, error) {
	if err := checkNodes(methodClique, n); err != nil {
		return nil, err
	}
	pairs := make([]pair, 0, graph.MaxEdges(n))
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			pairs = append(pairs, pair{i, j})
		}
	}
	return b.emit(methodClique, n, pairs, false)
}
