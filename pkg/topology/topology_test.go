package topology

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/topogen/pkg/graph"
	"github.com/matzehuels/topogen/pkg/rng"
)

var seeds = []uint64{0, 1, 2, 7, 42, 1 << 40, 0xdeadbeef}

func builder(seed uint64, opts ...Option) *Builder {
	return New(rng.New(seed), opts...)
}

func maxDegree(g *graph.Graph) int {
	best := 0
	for _, d := range g.Degrees() {
		best = max(best, d)
	}
	return best
}

func TestClique(t *testing.T) {
	for n := 1; n <= 12; n++ {
		g, err := builder(1).Clique(n)
		if err != nil {
			t.Fatalf("Clique(%d): %v", n, err)
		}
		if got, want := g.EdgeCount(), n*(n-1)/2; got != want {
			t.Errorf("Clique(%d) edges = %d, want %d", n, got, want)
		}
		for v, d := range g.Degrees() {
			if d != n-1 {
				t.Errorf("Clique(%d) degree(%d) = %d, want %d", n, v, d, n-1)
			}
		}
	}
}

func TestCliqueIsSeedIndependent(t *testing.T) {
	want, _ := builder(1).Clique(6)
	for _, seed := range seeds {
		got, _ := builder(seed).Clique(6)
		if diff := cmp.Diff(want.Edges(), got.Edges()); diff != "" {
			t.Errorf("seed %d: edges differ (-want +got):\n%s", seed, diff)
		}
	}
}

func TestPathIdentityLabels(t *testing.T) {
	g, err := builder(3, WithIdentityLabels()).Path(5, 1)
	if err != nil {
		t.Fatal(err)
	}
	want := []graph.Edge{{A: 0, B: 1}, {A: 1, B: 2}, {A: 2, B: 3}, {A: 3, B: 4}}
	if diff := cmp.Diff(want, g.Edges()); diff != "" {
		t.Errorf("Path(5,1) edges (-want +got):\n%s", diff)
	}
}

func TestPathSingleChain(t *testing.T) {
	for _, seed := range seeds {
		for n := 1; n <= 15; n++ {
			g, err := builder(seed).Path(n, 1)
			if err != nil {
				t.Fatalf("Path(%d,1): %v", n, err)
			}
			if g.EdgeCount() != n-1 {
				t.Fatalf("Path(%d,1) edges = %d", n, g.EdgeCount())
			}
			if !graph.IsTree(g) {
				t.Fatalf("Path(%d,1) is not connected and acyclic", n)
			}
			ends := 0
			for _, d := range g.Degrees() {
				if d > 2 {
					t.Fatalf("Path(%d,1) has degree %d", n, d)
				}
				if d == 1 {
					ends++
				}
			}
			if n >= 2 && ends != 2 {
				t.Fatalf("Path(%d,1) has %d endpoints, want 2", n, ends)
			}
		}
	}
}

func TestPathComponents(t *testing.T) {
	for _, seed := range seeds {
		g, err := builder(seed).Path(12, 4)
		if err != nil {
			t.Fatal(err)
		}
		if g.EdgeCount() != 8 {
			t.Errorf("seed %d: edges = %d, want 8", seed, g.EdgeCount())
		}
		if got := len(graph.Components(g)); got != 4 {
			t.Errorf("seed %d: components = %d, want 4", seed, got)
		}
		if maxDegree(g) > 2 {
			t.Errorf("seed %d: max degree %d > 2", seed, maxDegree(g))
		}
	}
}

func TestForest(t *testing.T) {
	for _, seed := range seeds {
		for n := 1; n <= 15; n++ {
			for k := 1; k <= n; k++ {
				g, err := builder(seed).Forest(n, k)
				if err != nil {
					t.Fatalf("Forest(%d,%d): %v", n, k, err)
				}
				if g.EdgeCount() != n-k {
					t.Fatalf("Forest(%d,%d) edges = %d, want %d", n, k, g.EdgeCount(), n-k)
				}
				if !graph.IsForest(g) || len(graph.Components(g)) != k {
					t.Fatalf("Forest(%d,%d) has %d components", n, k, len(graph.Components(g)))
				}
			}
		}
	}
}

func TestTree(t *testing.T) {
	for _, seed := range seeds {
		g, err := builder(seed).Tree(20)
		if err != nil {
			t.Fatal(err)
		}
		if !graph.IsTree(g) {
			t.Errorf("seed %d: Tree(20) is not a tree", seed)
		}
	}
}

// depthWithin reports whether every component has a node from which all
// others are within depth hops.
func depthWithin(t *testing.T, g *graph.Graph, depth int) bool {
	t.Helper()
	for _, comp := range graph.Components(g) {
		ok := false
		for _, root := range comp {
			dist, err := graph.Distances(g, root)
			if err != nil {
				t.Fatal(err)
			}
			far := 0
			for _, v := range comp {
				far = max(far, dist[v])
			}
			if far <= depth {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	return true
}

func TestShallowForest(t *testing.T) {
	for _, seed := range seeds {
		for n := 1; n <= 15; n++ {
			for k := 1; k <= min(n, 4); k++ {
				g, err := builder(seed).ShallowForest(n, k)
				if err != nil {
					t.Fatalf("ShallowForest(%d,%d): %v", n, k, err)
				}
				if !graph.IsForest(g) || len(graph.Components(g)) != k {
					t.Fatalf("ShallowForest(%d,%d) is not a %d-tree forest", n, k, k)
				}
				if !depthWithin(t, g, ShallowDepth) {
					t.Fatalf("ShallowForest(%d,%d) has a tree deeper than %d", n, k, ShallowDepth)
				}
			}
		}
	}
}

func TestComponentsOutOfRange(t *testing.T) {
	b := builder(1)
	calls := map[string]func() (*graph.Graph, error){
		"Path k=0":           func() (*graph.Graph, error) { return b.Path(5, 0) },
		"Path k>n":           func() (*graph.Graph, error) { return b.Path(3, 4) },
		"Forest k=0":         func() (*graph.Graph, error) { return b.Forest(5, 0) },
		"ShallowForest k>n":  func() (*graph.Graph, error) { return b.ShallowForest(2, 3) },
		"Tree n=0":           func() (*graph.Graph, error) { return b.Tree(0) },
		"Clique n=-1":        func() (*graph.Graph, error) { return b.Clique(-1) },
		"Sparse n=0":         func() (*graph.Graph, error) { return b.Sparse(0) },
		"Starfish no rays":   func() (*graph.Graph, error) { return b.Starfish(5, 0, 3) },
		"Starfish too short": func() (*graph.Graph, error) { return b.Starfish(10, 2, 3) },
		"Starfish too many":  func() (*graph.Graph, error) { return b.Starfish(3, 3, 2) },
	}
	for name, call := range calls {
		t.Run(name, func(t *testing.T) {
			if _, err := call(); !errors.Is(err, ErrInfeasibleParameters) {
				t.Errorf("err = %v, want ErrInfeasibleParameters", err)
			}
		})
	}
}

func TestStarfish(t *testing.T) {
	for _, seed := range seeds {
		for n := 5; n <= 20; n++ {
			for rays := 3; rays <= 4; rays++ {
				const maxLen = 7
				g, err := builder(seed, WithIdentityLabels()).Starfish(n, rays, maxLen)
				if err != nil {
					t.Fatalf("Starfish(%d,%d,%d): %v", n, rays, maxLen, err)
				}
				if !graph.IsTree(g) {
					t.Fatalf("Starfish(%d,%d,%d) is not a tree", n, rays, maxLen)
				}
				if d := g.Degree(0); d != rays {
					t.Fatalf("Starfish(%d,%d,%d) centre degree = %d", n, rays, maxLen, d)
				}
				for v := 1; v < n; v++ {
					if g.Degree(v) > 2 {
						t.Fatalf("Starfish(%d,%d,%d) arm node %d has degree %d", n, rays, maxLen, v, g.Degree(v))
					}
				}
				dist, _ := graph.Distances(g, 0)
				for v, d := range dist {
					if d > maxLen {
						t.Fatalf("Starfish(%d,%d,%d) node %d at distance %d", n, rays, maxLen, v, d)
					}
				}
			}
		}
	}
}

func TestStarfishRelabeledStillHasCentre(t *testing.T) {
	g, err := builder(9).Starfish(15, 4, 7)
	if err != nil {
		t.Fatal(err)
	}
	centres := 0
	for _, d := range g.Degrees() {
		if d == 4 {
			centres++
		}
		if d > 4 || d == 3 {
			t.Fatalf("unexpected degree %d", d)
		}
	}
	if centres != 1 {
		t.Errorf("found %d nodes of degree 4, want 1", centres)
	}
}

func TestSparseDense(t *testing.T) {
	for _, seed := range seeds {
		for n := 1; n <= 15; n++ {
			maxEdges := graph.MaxEdges(n)

			sparse, err := builder(seed).Sparse(n)
			if err != nil {
				t.Fatalf("Sparse(%d): %v", n, err)
			}
			if m := sparse.EdgeCount(); m > maxEdges/4 {
				t.Fatalf("Sparse(%d) edges = %d > %d", n, m, maxEdges/4)
			}

			dense, err := builder(seed).Dense(n)
			if err != nil {
				t.Fatalf("Dense(%d): %v", n, err)
			}
			if m := dense.EdgeCount(); m < (3*maxEdges+3)/4 || m > maxEdges {
				t.Fatalf("Dense(%d) edges = %d outside [%d, %d]", n, m, (3*maxEdges+3)/4, maxEdges)
			}
			if err := dense.Validate(); err != nil {
				t.Fatalf("Dense(%d): %v", n, err)
			}
		}
	}
}

func TestDeterminism(t *testing.T) {
	for _, kind := range Kinds() {
		t.Run(string(kind), func(t *testing.T) {
			p := Params{Nodes: 12, Components: 3, MinDegree: 2, MaxDegree: 4, Rays: 3, MaxRayLength: 7}
			a, err := builder(99).Build(kind, p)
			if err != nil {
				t.Fatal(err)
			}
			b, err := builder(99).Build(kind, p)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(a.Edges(), b.Edges()); diff != "" {
				t.Errorf("same seed produced different edge lists (-first +second):\n%s", diff)
			}
		})
	}
}

func TestParseKind(t *testing.T) {
	for _, k := range Kinds() {
		got, err := ParseKind(" " + string(k) + " ")
		if err != nil || got != k {
			t.Errorf("ParseKind(%q) = %q, %v", k, got, err)
		}
	}
	if got, err := ParseKind("Shallow-Forest"); err != nil || got != KindShallowForest {
		t.Errorf("ParseKind is not case-insensitive: %q, %v", got, err)
	}
	if _, err := ParseKind("hypercube"); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("ParseKind(hypercube) err = %v", err)
	}
	if _, err := builder(1).Build("hypercube", Params{Nodes: 4}); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("Build(hypercube) err = %v", err)
	}
}

func TestBuildPathDefaultsToOneComponent(t *testing.T) {
	g, err := builder(5).Build(KindPath, Params{Nodes: 7})
	if err != nil {
		t.Fatal(err)
	}
	if !graph.IsTree(g) {
		t.Error("path with zero components is not a single chain")
	}
}
