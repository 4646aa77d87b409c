package format

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/matzehuels/topogen/pkg/graph"
)

// WritePrompt writes g in Prompt format to w.
func WritePrompt(w io.Writer, g *graph.Graph) error {
	bw := bufio.NewWriter(w)
	bw.WriteByte('{')
	for v := 0; v < g.NodeCount(); v++ {
		if v > 0 {
			bw.WriteByte(',')
		}
		bw.WriteByte('{')
		for i, u := range g.Neighbors(v) {
			if i > 0 {
				bw.WriteByte(',')
			}
			bw.WriteString(strconv.Itoa(u))
		}
		bw.WriteByte('}')
	}
	bw.WriteString("}\n")
	fmt.Fprintf(bw, "%d\n", g.NodeCount())
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write prompt: %w", err)
	}
	return nil
}

// Prompt returns g rendered in Prompt format.
func Prompt(g *graph.Graph) string {
	var sb strings.Builder
	_ = WritePrompt(&sb, g)
	return sb.String()
}

// ReadPrompt parses one graph in Prompt format. The adjacency lists must be
// symmetric and agree with the trailing node count.
func ReadPrompt(r io.Reader) (*graph.Graph, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	body, count, ok := strings.Cut(strings.TrimSpace(string(data)), "\n")
	if !ok {
		return nil, fmt.Errorf("%w: missing node count line", ErrMalformed)
	}
	n, err := strconv.Atoi(strings.TrimSpace(count))
	if err != nil {
		return nil, fmt.Errorf("%w: node count %q is not an integer", ErrMalformed, strings.TrimSpace(count))
	}

	lists, err := parseAdjacency(strings.TrimSpace(body))
	if err != nil {
		return nil, err
	}
	if len(lists) != n {
		return nil, fmt.Errorf("%w: %d adjacency lists for %d nodes", ErrMalformed, len(lists), n)
	}

	g, err := graph.New(n)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	for v, list := range lists {
		seen := make(map[int]bool, len(list))
		for _, u := range list {
			if seen[u] {
				return nil, fmt.Errorf("%w: node %d lists %d twice", ErrMalformed, v, u)
			}
			seen[u] = true
			if g.HasEdge(v, u) {
				continue
			}
			if err := g.AddEdge(v, u); err != nil {
				return nil, fmt.Errorf("%w: node %d: %w", ErrMalformed, v, err)
			}
		}
	}
	for v, list := range lists {
		if g.Degree(v) != len(list) {
			return nil, fmt.Errorf("%w: adjacency of node %d is not symmetric", ErrMalformed, v)
		}
	}
	return g, nil
}

// parseAdjacency splits "{{1},{0,2},{}}" into integer lists.
func parseAdjacency(s string) ([][]int, error) {
	if len(s) < 2 || s[0] != '{' || s[len(s)-1] != '}' {
		return nil, fmt.Errorf("%w: adjacency must be wrapped in braces", ErrMalformed)
	}
	inner := s[1 : len(s)-1]
	var lists [][]int
	for len(inner) > 0 {
		if inner[0] != '{' {
			return nil, fmt.Errorf("%w: expected '{' at %q", ErrMalformed, inner)
		}
		end := strings.IndexByte(inner, '}')
		if end < 0 {
			return nil, fmt.Errorf("%w: unterminated adjacency list", ErrMalformed)
		}
		list, err := parseList(inner[1:end])
		if err != nil {
			return nil, fmt.Errorf("node %d: %w", len(lists), err)
		}
		lists = append(lists, list)

		inner = inner[end+1:]
		if len(inner) > 0 {
			if inner[0] != ',' || len(inner) == 1 {
				return nil, fmt.Errorf("%w: expected ',' between adjacency lists", ErrMalformed)
			}
			inner = inner[1:]
		}
	}
	return lists, nil
}

func parseList(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	fields := strings.Split(s, ",")
	out := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("%w: neighbor %q is not an integer", ErrMalformed, f)
		}
		out[i] = v
	}
	return out, nil
}
