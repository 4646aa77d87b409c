package format

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/matzehuels/topogen/pkg/graph"
)

// WriteSolution writes g in Solution format to w.
func WriteSolution(w io.Writer, g *graph.Graph) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d %d\n", g.NodeCount(), g.EdgeCount())
	for _, e := range g.Edges() {
		fmt.Fprintf(bw, "%d %d\n", e.A, e.B)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write solution: %w", err)
	}
	return nil
}

// Solution returns g rendered in Solution format.
func Solution(g *graph.Graph) string {
	var sb strings.Builder
	_ = WriteSolution(&sb, g)
	return sb.String()
}

// ReadSolution parses exactly one graph in Solution format. Trailing
// whitespace is allowed; any other trailing content is an error.
func ReadSolution(r io.Reader) (*graph.Graph, error) {
	tr := newTokenReader(r)
	g, err := tr.solution()
	if err != nil {
		return nil, err
	}
	if _, err := tr.next(); err == nil {
		return nil, fmt.Errorf("%w: trailing content after %d edges", ErrMalformed, g.EdgeCount())
	} else if !errors.Is(err, io.EOF) {
		return nil, err
	}
	return g, nil
}

// ReadSolutions parses a stream of concatenated Solution-format graphs
// until end of input. An empty stream yields no graphs and no error.
func ReadSolutions(r io.Reader) ([]*graph.Graph, error) {
	tr := newTokenReader(r)
	var out []*graph.Graph
	for {
		if _, err := tr.peek(); errors.Is(err, io.EOF) {
			return out, nil
		} else if err != nil {
			return nil, err
		}
		g, err := tr.solution()
		if err != nil {
			return nil, fmt.Errorf("graph %d: %w", len(out), err)
		}
		out = append(out, g)
	}
}

// tokenReader splits input on whitespace and parses integers.
type tokenReader struct {
	sc      *bufio.Scanner
	pending *string
}

func newTokenReader(r io.Reader) *tokenReader {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	return &tokenReader{sc: sc}
}

func (t *tokenReader) peek() (string, error) {
	if t.pending != nil {
		return *t.pending, nil
	}
	if !t.sc.Scan() {
		if err := t.sc.Err(); err != nil {
			return "", fmt.Errorf("read: %w", err)
		}
		return "", io.EOF
	}
	tok := t.sc.Text()
	t.pending = &tok
	return tok, nil
}

func (t *tokenReader) next() (string, error) {
	tok, err := t.peek()
	t.pending = nil
	return tok, err
}

func (t *tokenReader) int(what string) (int, error) {
	tok, err := t.next()
	if errors.Is(err, io.EOF) {
		return 0, fmt.Errorf("%w: unexpected end of input reading %s", ErrMalformed, what)
	}
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not an integer", ErrMalformed, what, tok)
	}
	return v, nil
}

func (t *tokenReader) solution() (*graph.Graph, error) {
	n, err := t.int("node count")
	if err != nil {
		return nil, err
	}
	m, err := t.int("edge count")
	if err != nil {
		return nil, err
	}
	g, err := graph.New(n)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	if m < 0 || m > graph.MaxEdges(n) {
		return nil, fmt.Errorf("%w: edge count %d not in [0, %d]", ErrMalformed, m, graph.MaxEdges(n))
	}
	for i := 0; i < m; i++ {
		a, err := t.int("edge endpoint")
		if err != nil {
			return nil, fmt.Errorf("edge %d: %w", i, err)
		}
		b, err := t.int("edge endpoint")
		if err != nil {
			return nil, fmt.Errorf("edge %d: %w", i, err)
		}
		if err := g.AddEdge(a, b); err != nil {
			return nil, fmt.Errorf("%w: edge %d: %w", ErrMalformed, i, err)
		}
	}
	return g, nil
}
