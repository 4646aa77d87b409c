package topology

import (
	"fmt"
	"strings"

	"github.com/matzehuels/topogen/pkg/graph"
)

// Kind names a topology family.
type Kind string

// Supported topology kinds. The string values are used in suite files.
const (
	KindClique        Kind = "clique"
	KindPath          Kind = "path"
	KindTree          Kind = "tree"
	KindForest        Kind = "forest"
	KindShallowForest Kind = "shallow-forest"
	KindBoundedTree   Kind = "bounded-tree"
	KindStarfish      Kind = "starfish"
	KindSparse        Kind = "sparse"
	KindDense         Kind = "dense"
)

var kinds = []Kind{
	KindClique, KindPath, KindTree, KindForest, KindShallowForest,
	KindBoundedTree, KindStarfish, KindSparse, KindDense,
}

// Kinds returns every supported kind in a stable order.
func Kinds() []Kind { return append([]Kind(nil), kinds...) }

// ParseKind resolves a kind name, case-insensitively.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range kinds {
		if k == known {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Params carries the shape parameters of one build. Fields a kind does not
// use are ignored.
type Params struct {
	Nodes        int // all kinds
	Components   int // path (0 means 1), forest, shallow-forest
	MinDegree    int // bounded-tree
	MaxDegree    int // bounded-tree
	Rays         int // starfish
	MaxRayLength int // starfish
}

// String renders the parameters relevant to kind, for diagnostics.
func (p Params) String() string {
	parts := []string{fmt.Sprintf("n=%d", p.Nodes)}
	if p.Components != 0 {
		parts = append(parts, fmt.Sprintf("components=%d", p.Components))
	}
	if p.MinDegree != 0 || p.MaxDegree != 0 {
		parts = append(parts, fmt.Sprintf("degree=[%d,%d]", p.MinDegree, p.MaxDegree))
	}
	if p.Rays != 0 {
		parts = append(parts, fmt.Sprintf("rays=%d", p.Rays), fmt.Sprintf("maxRayLength=%d", p.MaxRayLength))
	}
	return strings.Join(parts, " ")
}

// Build dispatches to the builder method for kind.
func (b *Builder) Build(kind Kind, p Params) (*graph.Graph, error) {
	switch kind {
	case KindClique:
		return b.Clique(p.Nodes)
	case KindPath:
		k := p.Components
		if k == 0 {
			k = 1
		}
		return b.Path(p.Nodes, k)
	case KindTree:
		return b.Tree(p.Nodes)
	case KindForest:
		return b.Forest(p.Nodes, p.Components)
	case KindShallowForest:
		return b.ShallowForest(p.Nodes, p.Components)
	case KindBoundedTree:
		return b.DegreeBoundedTree(p.Nodes, p.MinDegree, p.MaxDegree)
	case KindStarfish:
		return b.Starfish(p.Nodes, p.Rays, p.MaxRayLength)
	case KindSparse:
		return b.Sparse(p.Nodes)
	case KindDense:
		return b.Dense(p.Nodes)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, string(kind))
	}
}
