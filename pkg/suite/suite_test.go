package suite

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/topogen/pkg/graph"
	"github.com/matzehuels/topogen/pkg/rng"
	"github.com/matzehuels/topogen/pkg/topology"
)

func TestDefault(t *testing.T) {
	s := Default()
	want := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	if diff := cmp.Diff(want, s.IDs()); diff != "" {
		t.Errorf("IDs (-want +got):\n%s", diff)
	}
	b, err := s.Lookup(10)
	if err != nil {
		t.Fatal(err)
	}
	if !b.Distinct || b.Topology != topology.KindPath || b.Nodes != Between(3, 10) {
		t.Errorf("distinct-paths binding = %+v", b)
	}
}

func TestDefaultGeneratesEverywhere(t *testing.T) {
	s := Default()
	for _, b := range s.Bindings() {
		t.Run(b.Name, func(t *testing.T) {
			for seed := uint64(0); seed < 50; seed++ {
				c, err := b.Generate(rng.New(rng.Derive(seed, b.ID)), GenerateOptions{})
				if err != nil {
					t.Fatalf("seed %d: %v (params %s)", seed, err, c.Params)
				}
				n := c.Params.Nodes
				if n < b.Nodes.Min || n > b.Nodes.Max {
					t.Fatalf("seed %d: nodes %d outside %s", seed, n, b.Nodes)
				}
				for _, g := range c.Graphs {
					if err := g.Validate(); err != nil {
						t.Fatalf("seed %d: %v", seed, err)
					}
					if g.NodeCount() != n {
						t.Fatalf("seed %d: graph has %d nodes, drew %d", seed, g.NodeCount(), n)
					}
				}
				wantGraphs := 1
				if b.Distinct {
					wantGraphs = 2
				}
				if len(c.Graphs) != wantGraphs {
					t.Fatalf("seed %d: %d graphs, want %d", seed, len(c.Graphs), wantGraphs)
				}
				if b.Distinct && c.Graphs[0].Equal(c.Graphs[1]) {
					t.Fatalf("seed %d: distinct pair is equal", seed)
				}
			}
		})
	}
}

func TestGenerateDeterministic(t *testing.T) {
	b, _ := Default().Lookup(10)
	first, err := b.Generate(rng.New(77), GenerateOptions{})
	if err != nil {
		t.Fatal(err)
	}
	second, err := b.Generate(rng.New(77), GenerateOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if first.Params != second.Params || first.Redraws != second.Redraws {
		t.Fatalf("runs differ: %+v vs %+v", first.Params, second.Params)
	}
	for i := range first.Graphs {
		if diff := cmp.Diff(first.Graphs[i].Edges(), second.Graphs[i].Edges()); diff != "" {
			t.Errorf("graph %d differs (-first +second):\n%s", i, diff)
		}
	}
}

func TestGenerateReportsParamsOnFailure(t *testing.T) {
	b := Binding{ID: 1, Name: "tiny", Topology: topology.KindPath, Nodes: Fixed(2), Distinct: true}
	c, err := b.Generate(rng.New(1), GenerateOptions{MaxRedraws: 4})
	if !errors.Is(err, topology.ErrRetryExhausted) {
		t.Fatalf("err = %v, want ErrRetryExhausted", err)
	}
	if c.Params.Nodes != 2 || c.Redraws != 3 {
		t.Errorf("case = %+v, want nodes 2 and 3 redraws", c)
	}
}

func TestParamsDrawOrder(t *testing.T) {
	b := Binding{Nodes: Between(10, 20), Components: Between(2, 5), Rays: Between(3, 4)}
	src := rng.New(5)
	got, err := b.Params(src)
	if err != nil {
		t.Fatal(err)
	}

	ref := rng.New(5)
	n, _ := ref.Int(10, 20)
	k, _ := ref.Int(2, 5)
	r, _ := ref.Int(3, 4)
	want := topology.Params{Nodes: n, Components: k, Rays: r}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Params (-want +got):\n%s", diff)
	}
}

func TestSelect(t *testing.T) {
	s := Default()
	got, err := s.Select([]int{4, 0, 4})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0].ID != 4 || got[1].ID != 0 {
		t.Errorf("Select = %v", got)
	}

	all, _ := s.Select(nil)
	if len(all) != s.Len() {
		t.Errorf("Select(nil) returned %d of %d", len(all), s.Len())
	}

	if _, err := s.Select([]int{99}); !errors.Is(err, ErrUnknownTest) {
		t.Errorf("err = %v, want ErrUnknownTest", err)
	}
}

const sampleSuite = `
[[test]]
id = 0
name = "pair"
topology = "Path"
nodes = [3, 6]
distinct = true

[[test]]
id = 4
name = "fixed-forest"
topology = "forest"
nodes = 12
components = [2, 3]

[[test]]
id = 2
name = "star"
topology = "starfish"
nodes = [6, 9]
rays = 3
max_ray_length = 3
`

func TestDecode(t *testing.T) {
	s, err := Decode(strings.NewReader(sampleSuite))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]int{0, 4, 2}, s.IDs()); diff != "" {
		t.Errorf("IDs (-want +got):\n%s", diff)
	}
	want := []Binding{
		{ID: 0, Name: "pair", Topology: topology.KindPath, Nodes: Between(3, 6), Distinct: true},
		{ID: 4, Name: "fixed-forest", Topology: topology.KindForest, Nodes: Fixed(12), Components: Between(2, 3)},
		{ID: 2, Name: "star", Topology: topology.KindStarfish, Nodes: Between(6, 9), Rays: Fixed(3), MaxRayLength: 3},
	}
	if diff := cmp.Diff(want, s.Bindings()); diff != "" {
		t.Errorf("Bindings (-want +got):\n%s", diff)
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := Default().Encode(&buf); err != nil {
		t.Fatal(err)
	}
	back, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode(Encode(Default())): %v\n%s", err, buf.String())
	}
	if diff := cmp.Diff(Default().Bindings(), back.Bindings()); diff != "" {
		t.Errorf("round trip (-want +got):\n%s", diff)
	}
}

func TestDecodeInvalid(t *testing.T) {
	tests := []struct {
		name string
		toml string
	}{
		{"empty", ``},
		{"syntax", `[[test]`},
		{"unknown key", "[[test]]\nid = 0\nname = \"a\"\ntopology = \"tree\"\nnodes = 3\ncolour = \"red\"\n"},
		{"unknown topology", "[[test]]\nid = 0\nname = \"a\"\ntopology = \"cube\"\nnodes = 3\n"},
		{"duplicate id", "[[test]]\nid = 0\nname = \"a\"\ntopology = \"tree\"\nnodes = 3\n[[test]]\nid = 0\nname = \"b\"\ntopology = \"tree\"\nnodes = 3\n"},
		{"bad name", "[[test]]\nid = 0\nname = \"a b\"\ntopology = \"tree\"\nnodes = 3\n"},
		{"negative id", "[[test]]\nid = -1\nname = \"a\"\ntopology = \"tree\"\nnodes = 3\n"},
		{"no nodes", "[[test]]\nid = 0\nname = \"a\"\ntopology = \"tree\"\n"},
		{"too many nodes", "[[test]]\nid = 0\nname = \"a\"\ntopology = \"tree\"\nnodes = [3, 2000000]\n"},
		{"inverted range", "[[test]]\nid = 0\nname = \"a\"\ntopology = \"tree\"\nnodes = [9, 3]\n"},
		{"range arity", "[[test]]\nid = 0\nname = \"a\"\ntopology = \"tree\"\nnodes = [1, 2, 3]\n"},
		{"forest without components", "[[test]]\nid = 0\nname = \"a\"\ntopology = \"forest\"\nnodes = 5\n"},
		{"too many components", "[[test]]\nid = 0\nname = \"a\"\ntopology = \"forest\"\nnodes = [3, 9]\ncomponents = 4\n"},
		{"starfish overflow", "[[test]]\nid = 0\nname = \"a\"\ntopology = \"starfish\"\nnodes = 20\nrays = 2\nmax_ray_length = 3\n"},
		{"bounded without degrees", "[[test]]\nid = 0\nname = \"a\"\ntopology = \"bounded-tree\"\nnodes = 9\n"},
		{"distinct clique", "[[test]]\nid = 0\nname = \"a\"\ntopology = \"clique\"\nnodes = 4\ndistinct = true\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Decode(strings.NewReader(tt.toml)); !errors.Is(err, ErrInvalidSuite) {
				t.Errorf("err = %v, want ErrInvalidSuite", err)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "suite.toml")
	if err := os.WriteFile(path, []byte(sampleSuite), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if s.Len() != 3 {
		t.Errorf("Len = %d, want 3", s.Len())
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("Load of a missing file succeeded")
	}
}

func TestCaseEdges(t *testing.T) {
	a, _ := graph.New(3)
	_ = a.AddEdge(0, 1)
	b, _ := graph.New(3)
	_ = b.AddEdge(0, 1)
	_ = b.AddEdge(1, 2)
	c := &Case{Graphs: []*graph.Graph{a, b}}
	if c.Edges() != 3 {
		t.Errorf("Edges = %d, want 3", c.Edges())
	}
}

func TestCaseValidate(t *testing.T) {
	build := func(n int, edges ...[2]int) *graph.Graph {
		g, err := graph.New(n)
		if err != nil {
			t.Fatal(err)
		}
		for _, e := range edges {
			if err := g.AddEdge(e[0], e[1]); err != nil {
				t.Fatal(err)
			}
		}
		return g
	}
	path4 := build(4, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3})
	star4 := build(4, [2]int{0, 1}, [2]int{0, 2}, [2]int{0, 3})
	triangle := build(3, [2]int{0, 1}, [2]int{1, 2}, [2]int{0, 2})

	tests := []struct {
		name    string
		kind    topology.Kind
		params  topology.Params
		graphs  []*graph.Graph
		wantErr bool
	}{
		{"path", topology.KindPath, topology.Params{Nodes: 4}, []*graph.Graph{path4}, false},
		{"tree", topology.KindTree, topology.Params{Nodes: 4}, []*graph.Graph{star4}, false},
		{"clique", topology.KindClique, topology.Params{Nodes: 3}, []*graph.Graph{triangle}, false},
		{"bounded star", topology.KindBoundedTree, topology.Params{Nodes: 4, MinDegree: 3, MaxDegree: 3}, []*graph.Graph{star4}, false},
		{"zero value graph", topology.KindTree, topology.Params{Nodes: 4}, []*graph.Graph{new(graph.Graph)}, true},
		{"missing graph", topology.KindTree, topology.Params{Nodes: 4}, []*graph.Graph{path4, nil}, true},
		{"wrong node count", topology.KindTree, topology.Params{Nodes: 5}, []*graph.Graph{path4}, true},
		{"star is no path", topology.KindPath, topology.Params{Nodes: 4}, []*graph.Graph{star4}, true},
		{"cycle is no tree", topology.KindTree, topology.Params{Nodes: 3}, []*graph.Graph{triangle}, true},
		{"component count", topology.KindForest, topology.Params{Nodes: 4, Components: 2}, []*graph.Graph{path4}, true},
		{"incomplete clique", topology.KindClique, topology.Params{Nodes: 4}, []*graph.Graph{path4}, true},
		{"degree bound", topology.KindBoundedTree, topology.Params{Nodes: 4, MinDegree: 3, MaxDegree: 3}, []*graph.Graph{path4}, true},
		{"too dense for sparse", topology.KindSparse, topology.Params{Nodes: 3}, []*graph.Graph{triangle}, true},
		{"too sparse for dense", topology.KindDense, topology.Params{Nodes: 4}, []*graph.Graph{path4}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Case{Binding: Binding{Topology: tt.kind}, Params: tt.params, Graphs: tt.graphs}
			err := c.Validate()
			if tt.wantErr != (err != nil) {
				t.Fatalf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidGraph) {
				t.Errorf("err = %v, want ErrInvalidGraph", err)
			}
		})
	}
}
