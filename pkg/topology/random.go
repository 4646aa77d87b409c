package topology

import "github.com/matzehuels/topogen/pkg/graph"

const (
	methodSparse = "Sparse"
	methodDense  = "Dense"
)

// Sparse builds a random graph whose edge count is drawn from the low
// quarter [0, M/4] of the possible range, M = n(n-1)/2. It need not be
// connected.
func (b *Builder) Sparse(n int) (*graph.Graph, error) {
	if err := checkNodes(methodSparse, n); err != nil {
		return nil, err
	}
	m, _ := b.src.Int(0, graph.MaxEdges(n)/4)
	return b.sample(methodSparse, n, m)
}

// Dense builds a random graph whose edge count is drawn from the high
// quarter [ceil(3M/4), M] of the possible range.
func (b *Builder) Dense(n int) (*graph.Graph, error) {
	if err := checkNodes(methodDense, n); err != nil {
		return nil, err
	}
	maxEdges := graph.MaxEdges(n)
	m, _ := b.src.Int((3*maxEdges+3)/4, maxEdges)
	return b.sample(methodDense, n, m)
}

// sample inserts m distinct edges by drawing node pairs and rejecting
// self-pairs and pairs already present. m never exceeds n(n-1)/2, so every
// draw has a positive chance of acceptance and the loop terminates.
// Labels are already uniform, so no relabeling pass is applied.
func (b *Builder) sample(method string, n, m int) (*graph.Graph, error) {
	seen := make(map[graph.Edge]struct{}, m)
	pairs := make([]pair, 0, m)
	for len(pairs) < m {
		u, v := b.src.Intn(n), b.src.Intn(n)
		if u == v {
			continue
		}
		e := graph.NewEdge(u, v)
		if _, dup := seen[e]; dup {
			continue
		}
		seen[e] = struct{}{}
		pairs = append(pairs, pair{u, v})
	}
	return b.emit(method, n, pairs, false)
}
