package topology

import (
	"fmt"

	"github.com/matzehuels/topogen/pkg/graph"
	"github.com/matzehuels/topogen/pkg/rng"
)

// DefaultMaxRestarts bounds whole-construction restarts for builders that
// search (currently [Builder.DegreeBoundedTree]).
const DefaultMaxRestarts = 1000

// Option configures a Builder.
type Option func(*Builder)

// WithIdentityLabels keeps construction indices as node labels instead of
// applying a random permutation.
func WithIdentityLabels() Option {
	return func(b *Builder) { b.relabel = false }
}

// WithMaxRestarts overrides DefaultMaxRestarts. Values < 1 are ignored.
func WithMaxRestarts(n int) Option {
	return func(b *Builder) {
		if n >= 1 {
			b.maxRestarts = n
		}
	}
}

// Builder constructs graphs from a single random source.
// A Builder is not safe for concurrent use; it shares the Source's state.
type Builder struct {
	src         *rng.Source
	relabel     bool
	maxRestarts int
}

// New creates a Builder drawing from src.
func New(src *rng.Source, opts ...Option) *Builder {
	b := &Builder{src: src, relabel: true, maxRestarts: DefaultMaxRestarts}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Source returns the underlying random source.
func (b *Builder) Source() *rng.Source { return b.src }

// pair is an edge over construction indices, before relabeling.
type pair struct{ a, b int }

// emit materializes a graph from construction pairs, in order, optionally
// through a random relabeling. Any AddEdge failure is a builder bug.
func (b *Builder) emit(method string, n int, pairs []pair, relabel bool) (*graph.Graph, error) {
	g, err := graph.New(n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	label := identity(n)
	if relabel && b.relabel {
		label = b.src.Perm(n)
	}
	for _, p := range pairs {
		if err := g.AddEdge(label[p.a], label[p.b]); err != nil {
			return nil, fmt.Errorf("%s: internal construction error: %w", method, err)
		}
	}
	return g, nil
}

func identity(n int) []int {
	ids := make([]int, n)
	for i := range ids {
		ids[i] = i
	}
	return ids
}

func checkNodes(method string, n int) error {
	if n < 1 {
		return fmt.Errorf("%s: n=%d < 1: %w", method, n, ErrInfeasibleParameters)
	}
	return nil
}

func checkComponents(method string, n, k int) error {
	if err := checkNodes(method, n); err != nil {
		return err
	}
	if k < 1 || k > n {
		return fmt.Errorf("%s: %d components not in [1, %d]: %w", method, k, n, ErrInfeasibleParameters)
	}
	return nil
}

// composition splits total into parts positive sizes, each at most maxPart,
// in random order. Callers guarantee parts <= total <= parts*maxPart.
func (b *Builder) composition(total, parts, maxPart int) []int {
	sizes := make([]int, parts)
	rem := total
	for i := range sizes {
		left := parts - i - 1
		lo := max(1, rem-left*maxPart)
		hi := min(maxPart, rem-left)
		sizes[i], _ = b.src.Int(lo, hi)
		rem -= sizes[i]
	}
	b.src.Shuffle(parts, func(i, j int) { sizes[i], sizes[j] = sizes[j], sizes[i] })
	return sizes
}
