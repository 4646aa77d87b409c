// Package graph provides the simple undirected graph produced by every
// topology builder.
//
// # Overview
//
// Nodes are dense integer labels 0..n-1. Edges are unordered pairs stored
// normalized (A < B) in insertion order, and every edge is mirrored into the
// adjacency list of both endpoints. The adjacency order is observable in the
// Prompt serialization, so it is part of the contract rather than an
// implementation detail.
//
// # Basic Usage
//
// Create a graph with [New] and add edges with [Graph.AddEdge]:
//
//	g, _ := graph.New(3)
//	_ = g.AddEdge(0, 1)
//	_ = g.AddEdge(1, 2)
//
// AddEdge rejects self-loops, duplicates (in either orientation) and labels
// outside 0..n-1, so a Graph can never hold an invalid edge set.
//
// # Equality
//
// [Graph.Equal] is exact-labeling equality: equal node counts and identical
// neighbor sets for every label. It is not isomorphism; two paths with the
// same shape but different labels are different graphs.
//
// # Traversal
//
// [Walk] performs a depth-first walk with an explicit stack. Its visitation
// order matches a recursive DFS that follows neighbors in adjacency order,
// without being bounded by goroutine stack depth on long paths.
//
// # Concurrency
//
// A Graph is not safe for concurrent mutation. Builders hand graphs off
// fully constructed; readers may share a graph once building is done.
package graph
