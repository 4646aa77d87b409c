package suite

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"

	perrors "github.com/matzehuels/topogen/pkg/errors"
	"github.com/matzehuels/topogen/pkg/graph"
	"github.com/matzehuels/topogen/pkg/topology"
)

var (
	// ErrUnknownTest is returned when a test id is not in the suite.
	ErrUnknownTest = errors.New("unknown test id")

	// ErrInvalidSuite is returned when a suite table fails validation.
	ErrInvalidSuite = errors.New("invalid suite")

	// ErrInvalidGraph is returned when a built graph breaks the graph
	// invariants or does not have the shape its topology promises.
	ErrInvalidGraph = errors.New("built graph failed validation")
)

// Suite is an ordered table of bindings with unique ids.
type Suite struct {
	tests []Binding
	index map[int]int
}

// file is the on-disk TOML layout.
type file struct {
	Tests []Binding `toml:"test"`
}

// New validates bindings and builds a suite that keeps their order.
func New(bindings ...Binding) (*Suite, error) {
	s := &Suite{
		tests: slices.Clone(bindings),
		index: make(map[int]int, len(bindings)),
	}
	if len(bindings) == 0 {
		return nil, fmt.Errorf("%w: no tests", ErrInvalidSuite)
	}
	for i := range s.tests {
		b := &s.tests[i]
		kind, err := topology.ParseKind(string(b.Topology))
		if err != nil {
			return nil, fmt.Errorf("%w: test %d: %w", ErrInvalidSuite, b.ID, err)
		}
		b.Topology = kind
		if err := validate(*b); err != nil {
			return nil, fmt.Errorf("%w: test %d (%s): %w", ErrInvalidSuite, b.ID, b.Name, err)
		}
		if _, dup := s.index[b.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate test id %d", ErrInvalidSuite, b.ID)
		}
		s.index[b.ID] = i
	}
	return s, nil
}

// Decode reads a TOML suite from r. Unknown keys are rejected.
func Decode(r io.Reader) (*Suite, error) {
	var f file
	md, err := toml.NewDecoder(r).Decode(&f)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSuite, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%w: unknown keys: %s", ErrInvalidSuite, strings.Join(keys, ", "))
	}
	return New(f.Tests...)
}

// Load reads a TOML suite file.
func Load(path string) (*Suite, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	s, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Encode writes the suite as TOML in the layout Decode reads.
func (s *Suite) Encode(w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(file{Tests: s.tests}); err != nil {
		return fmt.Errorf("encode suite: %w", err)
	}
	return nil
}

// Len returns the number of tests.
func (s *Suite) Len() int { return len(s.tests) }

// Bindings returns the tests in suite order.
func (s *Suite) Bindings() []Binding { return slices.Clone(s.tests) }

// IDs returns the test ids in suite order.
func (s *Suite) IDs() []int {
	ids := make([]int, len(s.tests))
	for i, b := range s.tests {
		ids[i] = b.ID
	}
	return ids
}

// Lookup returns the binding for id.
func (s *Suite) Lookup(id int) (Binding, error) {
	i, ok := s.index[id]
	if !ok {
		return Binding{}, fmt.Errorf("%w: %d", ErrUnknownTest, id)
	}
	return s.tests[i], nil
}

// Select returns the bindings for ids in the order given, or every binding
// in suite order when ids is empty. Repeated ids are returned once.
func (s *Suite) Select(ids []int) ([]Binding, error) {
	if len(ids) == 0 {
		return s.Bindings(), nil
	}
	out := make([]Binding, 0, len(ids))
	seen := make(map[int]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		b, err := s.Lookup(id)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}

// validate checks a binding's shape so that every draw it can make is a
// feasible build, except for degree-bounded trees whose feasibility depends
// on the node count in ways that are reported at generation time.
func validate(b Binding) error {
	if b.ID < 0 {
		return fmt.Errorf("id %d is negative", b.ID)
	}
	if err := perrors.ValidateName(b.Name); err != nil {
		return err
	}
	if b.Nodes.IsZero() || !b.Nodes.Valid() || b.Nodes.Min < 1 {
		return fmt.Errorf("nodes %s must be a non-empty range of positive counts", b.Nodes)
	}
	if b.Nodes.Max > graph.MaxNodes {
		return fmt.Errorf("nodes %s exceed %d", b.Nodes, graph.MaxNodes)
	}
	if !b.Components.Valid() || !b.Rays.Valid() {
		return errors.New("ranges must satisfy min <= max")
	}

	switch b.Topology {
	case topology.KindForest, topology.KindShallowForest:
		if b.Components.IsZero() {
			return fmt.Errorf("%s needs components", b.Topology)
		}
		fallthrough
	case topology.KindPath:
		if !b.Components.IsZero() && (b.Components.Min < 1 || b.Components.Max > b.Nodes.Min) {
			return fmt.Errorf("components %s must lie in [1, %d]", b.Components, b.Nodes.Min)
		}
	case topology.KindStarfish:
		if b.Rays.IsZero() || b.Rays.Min < 1 || b.MaxRayLength < 1 {
			return errors.New("starfish needs rays >= 1 and max_ray_length >= 1")
		}
		if b.Rays.Max > b.Nodes.Min-1 || b.Nodes.Max-1 > b.Rays.Min*b.MaxRayLength {
			return fmt.Errorf("rays %s of length <= %d cannot hold nodes %s", b.Rays, b.MaxRayLength, b.Nodes)
		}
	case topology.KindBoundedTree:
		if b.MinDegree < 1 || b.MinDegree > b.MaxDegree {
			return fmt.Errorf("degree bounds [%d, %d] invalid", b.MinDegree, b.MaxDegree)
		}
	case topology.KindClique:
		if b.Distinct {
			return errors.New("a clique has a single labeling; distinct would never succeed")
		}
	}
	return nil
}
