package suite

import (
	"errors"
	"fmt"
	"slices"

	"github.com/matzehuels/topogen/pkg/graph"
	"github.com/matzehuels/topogen/pkg/rng"
	"github.com/matzehuels/topogen/pkg/topology"
)

// Binding describes one test: which topology to build and where its
// parameters come from. Fields a topology does not use are ignored.
type Binding struct {
	ID           int           `toml:"id"`
	Name         string        `toml:"name"`
	Topology     topology.Kind `toml:"topology"`
	Nodes        Range         `toml:"nodes"`
	Components   Range         `toml:"components,omitempty"`
	MinDegree    int           `toml:"min_degree,omitzero"`
	MaxDegree    int           `toml:"max_degree,omitzero"`
	Rays         Range         `toml:"rays,omitempty"`
	MaxRayLength int           `toml:"max_ray_length,omitzero"`
	Distinct     bool          `toml:"distinct,omitempty"`
}

// Case is the outcome of one [Binding.Generate] call.
type Case struct {
	Binding Binding
	Params  topology.Params
	// Graphs holds one graph, or two for distinct bindings.
	Graphs []*graph.Graph
	// Redraws counts the rejected candidates of a distinct binding.
	Redraws int
}

// Edges returns the total edge count over all graphs of the case.
func (c *Case) Edges() int {
	total := 0
	for _, g := range c.Graphs {
		total += g.EdgeCount()
	}
	return total
}

// Validate checks every graph of the case against the graph invariants and
// the shape of the binding's topology. Errors wrap ErrInvalidGraph.
func (c *Case) Validate() error {
	for i, g := range c.Graphs {
		if err := checkShape(c.Binding.Topology, c.Params, g); err != nil {
			return fmt.Errorf("%w: graph %d: %w", ErrInvalidGraph, i, err)
		}
	}
	return nil
}

func checkShape(kind topology.Kind, p topology.Params, g *graph.Graph) error {
	if g == nil {
		return errors.New("missing graph")
	}
	if err := g.Validate(); err != nil {
		return err
	}
	if g.NodeCount() != p.Nodes {
		return fmt.Errorf("%d nodes, want %d", g.NodeCount(), p.Nodes)
	}
	switch kind {
	case topology.KindClique:
		if g.EdgeCount() != graph.MaxEdges(p.Nodes) {
			return fmt.Errorf("clique has %d edges, want %d", g.EdgeCount(), graph.MaxEdges(p.Nodes))
		}
	case topology.KindTree, topology.KindBoundedTree, topology.KindStarfish:
		if !graph.IsTree(g) {
			return errors.New("not a tree")
		}
		if kind != topology.KindBoundedTree {
			break
		}
		for v, d := range g.Degrees() {
			if d >= 2 && (d < p.MinDegree || d > p.MaxDegree) {
				return fmt.Errorf("node %d has degree %d outside [%d, %d]", v, d, p.MinDegree, p.MaxDegree)
			}
		}
	case topology.KindSparse:
		if hi := graph.MaxEdges(p.Nodes) / 4; g.EdgeCount() > hi {
			return fmt.Errorf("sparse graph has %d edges, want at most %d", g.EdgeCount(), hi)
		}
	case topology.KindDense:
		if lo := (3*graph.MaxEdges(p.Nodes) + 3) / 4; g.EdgeCount() < lo {
			return fmt.Errorf("dense graph has %d edges, want at least %d", g.EdgeCount(), lo)
		}
	case topology.KindPath, topology.KindForest, topology.KindShallowForest:
		want := max(p.Components, 1)
		if !graph.IsForest(g) {
			return errors.New("not a forest")
		}
		if got := len(graph.Components(g)); got != want {
			return fmt.Errorf("%d components, want %d", got, want)
		}
		if kind == topology.KindPath && slices.Max(g.Degrees()) > 2 {
			return errors.New("path node with degree above 2")
		}
	}
	return nil
}

// GenerateOptions tunes [Binding.Generate].
type GenerateOptions struct {
	// MaxRedraws bounds the duplicate-avoidance loop of distinct bindings.
	// Zero means topology.DefaultMaxRedraws.
	MaxRedraws int
	// Builder options applied to the topology builder.
	Builder []topology.Option
}

// Params draws the binding's parameters from src: nodes first, then
// components, then rays. Unset ranges consume no randomness.
func (b Binding) Params(src *rng.Source) (topology.Params, error) {
	var p topology.Params
	var err error
	if p.Nodes, err = b.Nodes.Draw(src); err != nil {
		return p, fmt.Errorf("nodes: %w", err)
	}
	if p.Components, err = b.Components.Draw(src); err != nil {
		return p, fmt.Errorf("components: %w", err)
	}
	if p.Rays, err = b.Rays.Draw(src); err != nil {
		return p, fmt.Errorf("rays: %w", err)
	}
	p.MinDegree, p.MaxDegree = b.MinDegree, b.MaxDegree
	p.MaxRayLength = b.MaxRayLength
	return p, nil
}

// Generate draws parameters and builds the case's graphs from src.
// On failure the returned Case still carries the drawn parameters, so
// callers can report them.
func (b Binding) Generate(src *rng.Source, opts GenerateOptions) (*Case, error) {
	c := &Case{Binding: b}
	p, err := b.Params(src)
	if err != nil {
		return c, err
	}
	c.Params = p

	builder := topology.New(src, opts.Builder...)
	first, err := builder.Build(b.Topology, p)
	if err != nil {
		return c, err
	}
	c.Graphs = []*graph.Graph{first}
	if !b.Distinct {
		return c, c.Validate()
	}

	attempts := 0
	second, err := topology.Distinct(first, opts.MaxRedraws, func() (*graph.Graph, error) {
		attempts++
		return builder.Build(b.Topology, p)
	})
	c.Redraws = attempts - 1
	if err != nil {
		return c, err
	}
	c.Graphs = append(c.Graphs, second)
	return c, c.Validate()
}
