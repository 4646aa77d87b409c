package graph

import (
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrInvalidNodeCount is returned by [New] when n < 1.
	ErrInvalidNodeCount = errors.New("node count must be at least 1")

	// ErrTooManyNodes is returned by [New] when n exceeds [MaxNodes].
	ErrTooManyNodes = errors.New("node count too large")

	// ErrNodeOutOfRange is returned by [Graph.AddEdge] when an endpoint is
	// not a label in 0..n-1.
	ErrNodeOutOfRange = errors.New("node label out of range")

	// ErrSelfLoop is returned by [Graph.AddEdge] when both endpoints are equal.
	ErrSelfLoop = errors.New("self-loop")

	// ErrDuplicateEdge is returned by [Graph.AddEdge] when the unordered pair
	// is already present.
	ErrDuplicateEdge = errors.New("duplicate edge")

	// ErrInconsistent is returned by [Graph.Validate] when the edge list and
	// adjacency lists disagree. This indicates graph corruption.
	ErrInconsistent = errors.New("edge list and adjacency disagree")
)

// Edge is an unordered pair of node labels, normalized so that A < B.
type Edge struct {
	A int
	B int
}

// NewEdge returns the normalized edge between a and b.
func NewEdge(a, b int) Edge {
	if a > b {
		a, b = b, a
	}
	return Edge{A: a, B: b}
}

// String renders the edge as "a b", the Solution line format.
func (e Edge) String() string { return fmt.Sprintf("%d %d", e.A, e.B) }

// Graph is a simple undirected graph over dense labels 0..n-1.
//
// The zero value is not usable - use New.
type Graph struct {
	n     int
	edges []Edge
	adj   [][]int
	index map[Edge]struct{}
}

// MaxNodes bounds the node count accepted by [New].
const MaxNodes = 1 << 20

// New creates an edgeless graph with n nodes.
// Returns ErrInvalidNodeCount if n < 1 and ErrTooManyNodes if n > MaxNodes.
func New(n int) (*Graph, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidNodeCount, n)
	}
	if n > MaxNodes {
		return nil, fmt.Errorf("%w: %d exceeds %d", ErrTooManyNodes, n, MaxNodes)
	}
	return &Graph{
		n:     n,
		adj:   make([][]int, n),
		index: make(map[Edge]struct{}),
	}, nil
}

// MaxEdges returns n(n-1)/2, the number of unordered pairs over n nodes.
func MaxEdges(n int) int {
	if n < 2 {
		return 0
	}
	return n * (n - 1) / 2
}

// AddEdge adds the undirected edge {a, b}.
// The edge is appended to the edge list and b (resp. a) is appended to the
// adjacency list of a (resp. b), preserving insertion order.
func (g *Graph) AddEdge(a, b int) error {
	if a < 0 || a >= g.n || b < 0 || b >= g.n {
		return fmt.Errorf("%w: {%d, %d} with n=%d", ErrNodeOutOfRange, a, b, g.n)
	}
	if a == b {
		return fmt.Errorf("%w: %d", ErrSelfLoop, a)
	}
	e := NewEdge(a, b)
	if _, dup := g.index[e]; dup {
		return fmt.Errorf("%w: {%d, %d}", ErrDuplicateEdge, e.A, e.B)
	}
	g.index[e] = struct{}{}
	g.edges = append(g.edges, e)
	g.adj[a] = append(g.adj[a], b)
	g.adj[b] = append(g.adj[b], a)
	return nil
}

// HasEdge reports whether {a, b} is an edge. Out-of-range labels report false.
func (g *Graph) HasEdge(a, b int) bool {
	_, ok := g.index[NewEdge(a, b)]
	return ok
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return g.n }

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Edges returns a copy of the edges in insertion order.
func (g *Graph) Edges() []Edge { return slices.Clone(g.edges) }

// Neighbors returns a copy of v's neighbors in insertion order.
// Returns nil if v is out of range.
func (g *Graph) Neighbors(v int) []int {
	if v < 0 || v >= g.n {
		return nil
	}
	return slices.Clone(g.adj[v])
}

// Degree returns the number of neighbors of v, or 0 if v is out of range.
func (g *Graph) Degree(v int) int {
	if v < 0 || v >= g.n {
		return 0
	}
	return len(g.adj[v])
}

// Degrees returns the degree of every node, indexed by label.
func (g *Graph) Degrees() []int {
	out := make([]int, g.n)
	for v := range g.adj {
		out[v] = len(g.adj[v])
	}
	return out
}

// Clone returns a deep copy of g.
func (g *Graph) Clone() *Graph {
	c := &Graph{
		n:     g.n,
		edges: slices.Clone(g.edges),
		adj:   make([][]int, g.n),
		index: make(map[Edge]struct{}, len(g.index)),
	}
	for v := range g.adj {
		c.adj[v] = slices.Clone(g.adj[v])
	}
	for e := range g.index {
		c.index[e] = struct{}{}
	}
	return c
}

// Equal reports exact-labeling equality: same node count and, for every
// label, the same set of neighbors. Neighbor order is ignored.
// A nil graph equals only another nil graph.
func (g *Graph) Equal(other *Graph) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g.n != other.n || len(g.edges) != len(other.edges) {
		return false
	}
	for _, e := range g.edges {
		if _, ok := other.index[e]; !ok {
			return false
		}
	}
	return true
}

// Validate checks the structural invariants: edge count bounded by
// n(n-1)/2, normalized in-range edges without loops or duplicates, and
// adjacency lists that mirror the edge list exactly.
func (g *Graph) Validate() error {
	if g.n < 1 {
		return ErrInvalidNodeCount
	}
	if len(g.edges) > MaxEdges(g.n) {
		return fmt.Errorf("%w: %d edges exceed maximum %d", ErrInconsistent, len(g.edges), MaxEdges(g.n))
	}
	seen := make(map[Edge]struct{}, len(g.edges))
	for _, e := range g.edges {
		if e.A < 0 || e.B >= g.n {
			return fmt.Errorf("%w: {%d, %d}", ErrNodeOutOfRange, e.A, e.B)
		}
		if e.A == e.B {
			return fmt.Errorf("%w: %d", ErrSelfLoop, e.A)
		}
		if e.A > e.B {
			return fmt.Errorf("%w: edge {%d, %d} not normalized", ErrInconsistent, e.A, e.B)
		}
		if _, dup := seen[e]; dup {
			return fmt.Errorf("%w: {%d, %d}", ErrDuplicateEdge, e.A, e.B)
		}
		seen[e] = struct{}{}
	}
	degreeSum := 0
	for v, ns := range g.adj {
		degreeSum += len(ns)
		for _, u := range ns {
			if _, ok := seen[NewEdge(v, u)]; !ok {
				return fmt.Errorf("%w: adjacency %d->%d has no edge", ErrInconsistent, v, u)
			}
		}
	}
	if degreeSum != 2*len(g.edges) {
		return fmt.Errorf("%w: degree sum %d != 2*%d", ErrInconsistent, degreeSum, len(g.edges))
	}
	return nil
}
