// Package format renders graphs into the two text formats consumed by the
// grading pipeline, parses them back, and provides a JSON export for tools.
//
// # Solution Format
//
// The machine-checkable format: a header line with the node and edge counts,
// then one line per edge in insertion order, endpoints normalized so the
// smaller label comes first:
//
//	5 4
//	0 1
//	1 2
//	2 3
//	3 4
//
// Use [WriteSolution] or [Solution] to render, [ReadSolution] to parse one
// graph, and [ReadSolutions] to parse a stream of concatenated graphs (the
// way a comparison input carries two graphs back to back).
//
// # Prompt Format
//
// The consumer-facing format: an adjacency list, one brace group per node in
// label order, each listing that node's neighbors in insertion order, then
// the node count on its own line:
//
//	{{1},{0,2},{1,3},{2,4},{3}}
//	5
//
// Neighbor order is part of the contract. Because each edge appends to both
// endpoints' lists, the order a builder inserts edges is visible here.
// Use [WritePrompt] or [Prompt] to render and [ReadPrompt] to parse.
//
// # JSON Format
//
// [WriteJSON] and [ReadJSON] exchange a node-link document:
//
//	{
//	  "nodes": [{"id": 0}, {"id": 1}],
//	  "edges": [{"from": 0, "to": 1}]
//	}
//
// # Round Trips
//
// For every valid graph g, parsing the rendering of g in any format yields a
// graph equal to g under [graph.Graph.Equal]. The Solution and JSON formats
// also preserve edge insertion order.
//
// # Errors
//
// Parse failures wrap [ErrMalformed] with the position or value that caused
// them. Structural violations (self-loops, duplicates, out-of-range labels)
// additionally wrap the corresponding graph sentinel.
package format
