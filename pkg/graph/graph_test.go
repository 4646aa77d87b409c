package graph

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func mustGraph(t *testing.T, n int, edges ...[2]int) *Graph {
	t.Helper()
	g, err := New(n)
	if err != nil {
		t.Fatalf("New(%d): %v", n, err)
	}
	for _, e := range edges {
		if err := g.AddEdge(e[0], e[1]); err != nil {
			t.Fatalf("AddEdge(%d, %d): %v", e[0], e[1], err)
		}
	}
	return g
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		n       int
		wantErr error
	}{
		{"single", 1, nil},
		{"several", 10, nil},
		{"zero", 0, ErrInvalidNodeCount},
		{"negative", -3, ErrInvalidNodeCount},
		{"at limit", MaxNodes, nil},
		{"above limit", MaxNodes + 1, ErrTooManyNodes},
		{"huge", math.MaxInt, ErrTooManyNodes},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := New(tt.n)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("New(%d) error = %v, want %v", tt.n, err, tt.wantErr)
			}
			if err == nil && (g.NodeCount() != tt.n || g.EdgeCount() != 0) {
				t.Errorf("New(%d) = %d nodes, %d edges", tt.n, g.NodeCount(), g.EdgeCount())
			}
		})
	}
}

func TestAddEdge(t *testing.T) {
	tests := []struct {
		name    string
		a, b    int
		wantErr error
	}{
		{"valid", 0, 1, nil},
		{"reversed valid", 2, 1, nil},
		{"self-loop", 2, 2, ErrSelfLoop},
		{"duplicate", 0, 3, ErrDuplicateEdge},
		{"duplicate reversed", 3, 0, ErrDuplicateEdge},
		{"out of range high", 0, 4, ErrNodeOutOfRange},
		{"out of range negative", -1, 0, ErrNodeOutOfRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := mustGraph(t, 4, [2]int{0, 3})
			err := g.AddEdge(tt.a, tt.b)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("AddEdge(%d, %d) error = %v, want %v", tt.a, tt.b, err, tt.wantErr)
			}
			if err == nil && !g.HasEdge(tt.b, tt.a) {
				t.Errorf("HasEdge(%d, %d) = false after AddEdge", tt.b, tt.a)
			}
			if err := g.Validate(); err != nil {
				t.Errorf("Validate() = %v", err)
			}
		})
	}
}

func TestEdgesNormalizedInInsertionOrder(t *testing.T) {
	g := mustGraph(t, 4, [2]int{3, 1}, [2]int{0, 2}, [2]int{2, 1})

	want := []Edge{{1, 3}, {0, 2}, {1, 2}}
	if diff := cmp.Diff(want, g.Edges()); diff != "" {
		t.Errorf("Edges() mismatch (-want +got):\n%s", diff)
	}

	wantAdj := [][]int{{2}, {3, 2}, {0, 1}, {1}}
	for v, ns := range wantAdj {
		if diff := cmp.Diff(ns, g.Neighbors(v)); diff != "" {
			t.Errorf("Neighbors(%d) mismatch (-want +got):\n%s", v, diff)
		}
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	g := mustGraph(t, 3, [2]int{0, 1})
	g.Edges()[0] = Edge{A: 1, B: 2}
	g.Neighbors(0)[0] = 2
	if !g.HasEdge(0, 1) || g.Neighbors(0)[0] != 1 {
		t.Error("mutating returned slices affected the graph")
	}
	if g.Neighbors(5) != nil || g.Degree(-1) != 0 {
		t.Error("out-of-range accessors should return zero values")
	}
}

func TestEqual(t *testing.T) {
	base := mustGraph(t, 4, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3})

	tests := []struct {
		name  string
		other *Graph
		want  bool
	}{
		{"identical", mustGraph(t, 4, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3}), true},
		{"different insertion order", mustGraph(t, 4, [2]int{3, 2}, [2]int{0, 1}, [2]int{2, 1}), true},
		{"isomorphic but relabeled", mustGraph(t, 4, [2]int{1, 0}, [2]int{0, 2}, [2]int{2, 3}), false},
		{"different node count", mustGraph(t, 5, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3}), false},
		{"subset", mustGraph(t, 4, [2]int{0, 1}, [2]int{1, 2}), false},
		{"nil", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Equal(tt.other); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
			if tt.other != nil {
				if got := tt.other.Equal(base); got != tt.want {
					t.Errorf("Equal() is not symmetric: %v", got)
				}
			}
		})
	}
}

func TestClone(t *testing.T) {
	g := mustGraph(t, 3, [2]int{0, 1})
	c := g.Clone()
	if !c.Equal(g) {
		t.Fatal("Clone() not equal to original")
	}
	if err := c.AddEdge(1, 2); err != nil {
		t.Fatal(err)
	}
	if g.HasEdge(1, 2) || g.Degree(1) != 1 {
		t.Error("mutating the clone affected the original")
	}
}

func TestMaxEdges(t *testing.T) {
	for n, want := range map[int]int{0: 0, 1: 0, 2: 1, 3: 3, 10: 45} {
		if got := MaxEdges(n); got != want {
			t.Errorf("MaxEdges(%d) = %d, want %d", n, got, want)
		}
	}
}

func TestValidateDetectsCorruption(t *testing.T) {
	g := mustGraph(t, 3, [2]int{0, 1})
	g.adj[2] = append(g.adj[2], 0)
	if err := g.Validate(); !errors.Is(err, ErrInconsistent) {
		t.Errorf("Validate() = %v, want ErrInconsistent", err)
	}
}
