package topology

import "github.com/matzehuels/topogen/pkg/graph"

const (
	methodTree          = "Tree"
	methodForest        = "Forest"
	methodShallowForest = "ShallowForest"
)

// ShallowDepth is the maximum distance from a root to any node of a tree
// built by [Builder.ShallowForest].
const ShallowDepth = 2

// Tree builds a random tree on n nodes: node i attaches to a uniformly chosen
// node among 0..i-1. Connected and acyclic by construction, n-1 edges.
func (b *Builder) Tree(n int) (*graph.Graph, error) {
	if err := checkNodes(methodTree, n); err != nil {
		return nil, err
	}
	return b.emit(methodTree, n, b.attach(n, 1), true)
}

// Forest builds k disjoint random trees covering all n nodes. Nodes 0..k-1
// are roots; every later node attaches to a uniformly chosen earlier node.
// The result has exactly k components and n-k edges.
func (b *Builder) Forest(n, k int) (*graph.Graph, error) {
	if err := checkComponents(methodForest, n, k); err != nil {
		return nil, err
	}
	return b.emit(methodForest, n, b.attach(n, k), true)
}

// attach grows roots 0..roots-1 by uniform random attachment.
func (b *Builder) attach(n, roots int) []pair {
	pairs := make([]pair, 0, n-roots)
	for i := roots; i < n; i++ {
		pairs = append(pairs, pair{b.src.Intn(i), i})
	}
	return pairs
}

// ShallowForest is Forest with every tree's depth bounded by ShallowDepth:
// new nodes attach only to nodes that are still shallower than the bound.
func (b *Builder) ShallowForest(n, k int) (*graph.Graph, error) {
	if err := checkComponents(methodShallowForest, n, k); err != nil {
		return nil, err
	}

	depth := make([]int, n)
	open := make([]int, 0, n)
	for r := 0; r < k; r++ {
		open = append(open, r)
	}

	pairs := make([]pair, 0, n-k)
	for i := k; i < n; i++ {
		parent := open[b.src.Intn(len(open))]
		depth[i] = depth[parent] + 1
		if depth[i] < ShallowDepth {
			open = append(open, i)
		}
		pairs = append(pairs, pair{parent, i})
	}
	return b.emit(methodShallowForest, n, pairs, true)
}
