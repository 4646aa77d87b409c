package topology

import (
	"fmt"

	"github.com/matzehuels/topogen/pkg/graph"
)

const methodBoundedTree = "DegreeBoundedTree"

// DegreeBoundedTree builds a random tree on n nodes in which every node of
// degree 2 or more has degree in [minDegree, maxDegree]. Degree-1 nodes are
// leaves and exempt from the lower bound; the root is not otherwise special.
//
// The tree grows breadth-first from node 0. Each expanded node picks its
// child count uniformly among the counts that keep its own degree legal and
// do not strand the remaining nodes. When no count is legal the whole
// construction restarts; after the configured number of restarts the call
// fails with ErrRetryExhausted.
func (b *Builder) DegreeBoundedTree(n, minDegree, maxDegree int) (*graph.Graph, error) {
	if err := checkNodes(methodBoundedTree, n); err != nil {
		return nil, err
	}
	if minDegree < 1 || minDegree > maxDegree {
		return nil, fmt.Errorf("%s: degree bounds [%d, %d] invalid: %w",
			methodBoundedTree, minDegree, maxDegree, ErrInfeasibleParameters)
	}
	if !boundedTreeFeasible(n, minDegree, maxDegree) {
		return nil, fmt.Errorf("%s: no tree on %d nodes has branching degrees in [%d, %d]: %w",
			methodBoundedTree, n, minDegree, maxDegree, ErrInfeasibleParameters)
	}

	for attempt := 0; attempt < b.maxRestarts; attempt++ {
		if pairs, ok := b.growBounded(n, minDegree, maxDegree); ok {
			return b.emit(methodBoundedTree, n, pairs, true)
		}
	}
	return nil, fmt.Errorf("%s: no valid tree after %d restarts: %w",
		methodBoundedTree, b.maxRestarts, ErrRetryExhausted)
}

// boundedTreeFeasible reports whether some tree on n nodes has all degrees
// in {1} ∪ [max(lo,2), hi]. With i internal nodes the internal degrees sum
// to n-2+i, so a tree exists iff i*(lo'-1) <= n-2 <= i*(hi-1) for some
// 1 <= i <= n-2.
func boundedTreeFeasible(n, lo, hi int) bool {
	if n <= 2 {
		return true
	}
	lo = max(lo, 2)
	if hi < lo {
		return false
	}
	for i := 1; i <= n-2; i++ {
		if i*(lo-1) <= n-2 && n-2 <= i*(hi-1) {
			return true
		}
	}
	return false
}

// growBounded makes one construction attempt. It reports false on a dead end.
func (b *Builder) growBounded(n, lo, hi int) ([]pair, bool) {
	pairs := make([]pair, 0, n-1)
	queue := make([]int, 1, n)
	placed := 1
	choices := make([]int, 0, hi+1)

	for head := 0; head < len(queue) && placed < n; head++ {
		v := queue[head]
		base := 1
		if v == 0 {
			base = 0
		}
		remaining := n - placed
		lastOpen := head == len(queue)-1

		choices = choices[:0]
		for c := 0; c <= min(remaining, hi-base); c++ {
			d := base + c
			if d > 1 && d < lo {
				continue
			}
			if c == 0 && lastOpen {
				continue
			}
			choices = append(choices, c)
		}
		if len(choices) == 0 {
			return nil, false
		}

		c := choices[b.src.Intn(len(choices))]
		for i := 0; i < c; i++ {
			pairs = append(pairs, pair{v, placed})
			queue = append(queue, placed)
			placed++
		}
	}
	return pairs, placed == n
}
