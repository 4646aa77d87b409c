// Package suite maps stable test ids to topology generators.
//
// # Overview
//
// A [Suite] is an ordered table of [Binding] values. Each binding names a
// topology and the ranges its parameters are drawn from; the id is what the
// output file is named after (<id>.in), so ids are stable across runs and
// must be unique within a suite.
//
// [Default] returns the built-in table. Suites can also be loaded from TOML:
//
//	[[test]]
//	id = 2
//	name = "paths"
//	topology = "path"
//	nodes = [8, 15]
//	components = [3, 6]
//
//	[[test]]
//	id = 10
//	name = "distinct-paths"
//	topology = "path"
//	nodes = [3, 10]
//	distinct = true
//
// A range is written as a two-element array [min, max] or as a single
// integer for a fixed value.
//
// # Generation
//
// [Binding.Generate] draws parameters in a fixed order (nodes, then
// components, then rays) from the source it is given and builds the graph.
// A binding marked distinct produces a pair of graphs, the second redrawn
// until it differs from the first under exact-labeling equality.
package suite
