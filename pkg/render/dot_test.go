package render

import (
	"context"
	"strings"
	"testing"

	"github.com/matzehuels/topogen/pkg/graph"
)

func triangle(t *testing.T) *graph.Graph {
	t.Helper()
	g, err := graph.New(4)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range [][2]int{{1, 0}, {1, 2}, {2, 0}} {
		if err := g.AddEdge(e[0], e[1]); err != nil {
			t.Fatal(err)
		}
	}
	return g
}

func TestToDOT(t *testing.T) {
	dot := ToDOT(triangle(t), Options{})

	for _, want := range []string{
		"graph G {",
		"layout=neato;",
		`  3 [label="3"];`,
		"  0 -- 1;\n  1 -- 2;\n  0 -- 2;\n",
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %q:\n%s", want, dot)
		}
	}
	if strings.Contains(dot, "->") {
		t.Error("undirected graph rendered with directed edges")
	}
}

func TestToDOTOptions(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		want []string
	}{
		{"detailed", Options{Detailed: true}, []string{`1 [label="1\ndeg 2"]`, `3 [label="3\ndeg 0"]`}},
		{"layout", Options{Layout: "circo"}, []string{"layout=circo;"}},
		{"order", Options{Order: []int{0, 1, 2}}, []string{
			`0 [label="0\n#1"]`,
			`2 [label="2\n#3"]`,
			`3 [label="3", style="filled,dashed"`,
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dot := ToDOT(triangle(t), tt.opts)
			for _, want := range tt.want {
				if !strings.Contains(dot, want) {
					t.Errorf("DOT missing %q:\n%s", want, dot)
				}
			}
		})
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="62pt" height="116pt" viewBox="0.00 0.00 62.00 116.00" xmlns="http://www.w3.org/2000/svg"><g/></svg>`)
	got := string(normalizeViewBox(in))
	want := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 62.00 116.00" width="62" height="116"><g/></svg>`
	if got != want {
		t.Errorf("normalizeViewBox =\n%s\nwant\n%s", got, want)
	}
	if plain := []byte("<svg></svg>"); string(normalizeViewBox(plain)) != "<svg></svg>" {
		t.Error("svg without viewBox should be unchanged")
	}
}

func TestRenderSVG(t *testing.T) {
	if testing.Short() {
		t.Skip("graphviz rendering is slow")
	}
	svg, err := RenderSVG(context.Background(), ToDOT(triangle(t), Options{}))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(svg), "<svg") {
		t.Errorf("output is not SVG: %.80s", svg)
	}
}
