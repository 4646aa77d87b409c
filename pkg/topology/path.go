package topology

import "github.com/matzehuels/topogen/pkg/graph"

const methodPath = "Path"

// Path partitions n nodes into k disjoint simple chains of random lengths
// (each at least one node) and returns their union: n-k edges, every degree
// at most 2. With identity labels and k=1 the chain is 0-1-...-(n-1).
func (b *Builder) Path(n, k int) (*graph.Graph, error) {
	if err := checkComponents(methodPath, n, k); err != nil {
		return nil, err
	}

	var sizes []int
	if k == 1 {
		sizes = []int{n}
	} else {
		sizes = b.composition(n, k, n)
	}

	pairs := make([]pair, 0, n-k)
	next := 0
	for _, size := range sizes {
		for i := 1; i < size; i++ {
			pairs = append(pairs, pair{next + i - 1, next + i})
		}
		next += size
	}
	return b.emit(methodPath, n, pairs, true)
}
