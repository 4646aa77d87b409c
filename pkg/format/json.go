package format

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/matzehuels/topogen/pkg/graph"
)

type document struct {
	Nodes []node `json:"nodes"`
	Edges []edge `json:"edges"`
}

type node struct {
	ID     int `json:"id"`
	Degree int `json:"degree"`
}

type edge struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// WriteJSON encodes g as an indented node-link document. Edges keep their
// insertion order, so [ReadJSON] reproduces the same Solution rendering.
func WriteJSON(w io.Writer, g *graph.Graph) error {
	out := document{
		Nodes: make([]node, g.NodeCount()),
		Edges: make([]edge, 0, g.EdgeCount()),
	}
	for v := range out.Nodes {
		out.Nodes[v] = node{ID: v, Degree: g.Degree(v)}
	}
	for _, e := range g.Edges() {
		out.Edges = append(out.Edges, edge{From: e.A, To: e.B})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ReadJSON decodes a node-link document. Node ids must be exactly 0..n-1;
// the degree field is informational and ignored.
//
// ReadJSON does not close r.
func ReadJSON(r io.Reader) (*graph.Graph, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: decode: %w", ErrMalformed, err)
	}

	g, err := graph.New(len(doc.Nodes))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	for i, n := range doc.Nodes {
		if n.ID != i {
			return nil, fmt.Errorf("%w: node %d has id %d", ErrMalformed, i, n.ID)
		}
	}
	for _, e := range doc.Edges {
		if err := g.AddEdge(e.From, e.To); err != nil {
			return nil, fmt.Errorf("%w: edge %d-%d: %w", ErrMalformed, e.From, e.To, err)
		}
	}
	return g, nil
}
