package graph

import (
	"errors"
	"fmt"
)

// ErrUnknownStart is returned by [Walk] and [Distances] when the start label
// is out of range.
var ErrUnknownStart = errors.New("unknown start node")

// frame is one level of the explicit DFS stack: a node and the index of the
// next neighbor to try.
type frame struct {
	node int
	next int
}

// Walk performs a depth-first walk from start and returns nodes in
// visitation (pre-)order. Neighbors are tried in adjacency order, so the
// result equals that of the recursive formulation
//
//	visit(v): record v; for u in adj[v]: if !seen[u] { visit(u) }
//
// but the walk keeps its own stack and never recurses.
func Walk(g *Graph, start int) ([]int, error) {
	if start < 0 || start >= g.n {
		return nil, fmt.Errorf("%w: %d", ErrUnknownStart, start)
	}

	seen := make([]bool, g.n)
	order := make([]int, 0, g.n)
	stack := []frame{{node: start}}
	seen[start] = true
	order = append(order, start)

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		ns := g.adj[top.node]
		if top.next == len(ns) {
			stack = stack[:len(stack)-1]
			continue
		}
		u := ns[top.next]
		top.next++
		if seen[u] {
			continue
		}
		seen[u] = true
		order = append(order, u)
		stack = append(stack, frame{node: u})
	}
	return order, nil
}

// VisitHash folds a visitation order into a single position-weighted value:
// sum over i of (i+1)*order[i]. It is the verdict printed by the traversal
// reference program.
func VisitHash(order []int) int64 {
	var h int64
	for i, v := range order {
		h += int64(i+1) * int64(v)
	}
	return h
}

// Distances returns the hop distance from start to every node, with -1 for
// unreachable nodes.
func Distances(g *Graph, start int) ([]int, error) {
	if start < 0 || start >= g.n {
		return nil, fmt.Errorf("%w: %d", ErrUnknownStart, start)
	}
	dist := make([]int, g.n)
	for i := range dist {
		dist[i] = -1
	}
	dist[start] = 0
	queue := []int{start}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		for _, u := range g.adj[v] {
			if dist[u] < 0 {
				dist[u] = dist[v] + 1
				queue = append(queue, u)
			}
		}
	}
	return dist, nil
}

// Components returns the connected components. Each component lists its
// nodes in walk order from its smallest label; components are ordered by
// smallest label. Every label appears in exactly one component.
func Components(g *Graph) [][]int {
	assigned := make([]bool, g.n)
	var comps [][]int
	for v := 0; v < g.n; v++ {
		if assigned[v] {
			continue
		}
		order, _ := Walk(g, v)
		for _, u := range order {
			assigned[u] = true
		}
		comps = append(comps, order)
	}
	return comps
}

// IsConnected reports whether g has exactly one component.
func IsConnected(g *Graph) bool {
	order, _ := Walk(g, 0)
	return len(order) == g.n
}

// IsForest reports whether g is acyclic. A simple graph is acyclic exactly
// when |E| = n - components.
func IsForest(g *Graph) bool {
	return g.EdgeCount() == g.n-len(Components(g))
}

// IsTree reports whether g is connected and acyclic.
func IsTree(g *Graph) bool {
	return g.EdgeCount() == g.n-1 && IsConnected(g)
}
