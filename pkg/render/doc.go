// Package render draws generated graphs as node-link diagrams.
//
// # Overview
//
// [ToDOT] converts a graph to undirected Graphviz DOT source; [RenderSVG]
// lays it out and renders SVG in-process:
//
//	dot := render.ToDOT(g, render.Options{})
//	svg, err := render.RenderSVG(ctx, dot)
//
// # Options
//
// The [Options] struct controls diagram generation:
//
//   - Detailed: node labels include the node's degree
//   - Layout: Graphviz engine, "neato" by default (force-directed suits
//     undirected graphs better than the layered "dot" engine)
//   - Order: a visitation order (for example from [graph.Walk]); each node
//     is labeled with its position and unvisited nodes are greyed out
//
// Edges are written in insertion order, so the DOT source is as
// deterministic as the Solution rendering.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for SVG rendering, which
// bundles Graphviz as WebAssembly and needs no system installation.
package render
