package render

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/topogen/pkg/graph"
)

// DefaultLayout is the Graphviz engine used when Options.Layout is empty.
const DefaultLayout = "neato"

// Options configures diagram generation.
type Options struct {
	// Detailed adds each node's degree to its label.
	Detailed bool
	// Layout names the Graphviz engine (neato, dot, circo, fdp, sfdp, twopi).
	Layout string
	// Order, when set, annotates nodes with their position in a visitation
	// order. Nodes missing from Order are drawn dashed and grey.
	Order []int
}

// ToDOT converts g to undirected Graphviz DOT source.
func ToDOT(g *graph.Graph, opts Options) string {
	layout := opts.Layout
	if layout == "" {
		layout = DefaultLayout
	}

	position := make(map[int]int, len(opts.Order))
	for i, v := range opts.Order {
		position[v] = i
	}

	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	fmt.Fprintf(&buf, "  layout=%s;\n", layout)
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  overlap=false;\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=14];\n")
	buf.WriteString("\n")

	for v := 0; v < g.NodeCount(); v++ {
		label := fmtLabel(g, v, opts.Detailed, position, opts.Order != nil)
		attrs := fmtAttrs(v, label, position, opts.Order != nil)
		fmt.Fprintf(&buf, "  %d [%s];\n", v, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, e := range g.Edges() {
		fmt.Fprintf(&buf, "  %d -- %d;\n", e.A, e.B)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(g *graph.Graph, v int, detailed bool, position map[int]int, ordered bool) string {
	parts := []string{strconv.Itoa(v)}
	if detailed {
		parts = append(parts, fmt.Sprintf("deg %d", g.Degree(v)))
	}
	if pos, ok := position[v]; ordered && ok {
		parts = append(parts, fmt.Sprintf("#%d", pos+1))
	}
	return strings.Join(parts, "\n")
}

func fmtAttrs(v int, label string, position map[int]int, ordered bool) []string {
	attrs := []string{fmt.Sprintf("label=%q", label)}
	if _, ok := position[v]; ordered && !ok {
		attrs = append(attrs, "style=\"filled,dashed\"", "fillcolor=lightgrey", "fontcolor=grey40")
	}
	return attrs
}

// RenderSVG lays out DOT source and renders it to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's point-based svg header with one whose
// viewBox starts at the origin, so the diagram scales cleanly when embedded.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	header := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(header))
}
