// Package pkg provides the libraries behind topogen, a generator of
// randomized graph test inputs with guaranteed structure.
//
// # Overview
//
// Every test case is a list of undirected graphs drawn from a topology
// family (clique, path, forest, starfish, sparse, dense and so on) with
// parameters drawn from ranges. Each graph is written twice: in Prompt
// format (adjacency lists, handed to the program under test) and in
// Solution format (node and edge counts followed by the edge list, handed
// to the reference solution and the comparator).
//
// # Data Flow
//
//	run seed
//	   ↓
//	[rng] Derive(seed, id)       per-test random source
//	   ↓
//	[suite] Binding.Generate     parameters + graphs (+ duplicate avoidance)
//	   ↓
//	[topology] Builder           structured random graphs
//	   ↓
//	[format] Prompt / Solution   canonical text renderings
//	   ↓
//	[pipeline] Runner            atomic files + manifest.json
//
// # Packages
//
// ## Core
//
// [graph] - Undirected simple graph with insertion-ordered edges, exact
// equality, iterative depth-first walk and structural predicates.
//
// [rng] - Seeded random source with inclusive ranges and per-test seed
// derivation.
//
// [topology] - Builders for every topology family, with relabeling,
// feasibility checks and the distinct-draw loop.
//
// [format] - Prompt, Solution and JSON readers and writers.
//
// ## Orchestration
//
// [suite] - The test table: TOML-decodable bindings from test id to
// topology and parameter ranges, and the built-in default suite.
//
// [pipeline] - Generation and verification runs: output layout, atomic
// writes, SHA-256 manifest and run config.
//
// ## Supporting
//
// [render] - Graphviz DOT and SVG diagrams of generated graphs.
//
// [cache] - On-disk cache for rendered SVG.
//
// [observability] - Hooks for generation and output events.
//
// [errors] - Coded errors shared by the CLI and the pipeline.
//
// [buildinfo] - Version information set at build time.
//
// # Testing
//
//	go test ./...                 # All tests
//	go test -short ./...          # Skip Graphviz rendering
//	go test -run Example ./pkg/...
//
// [graph]: https://pkg.go.dev/github.com/matzehuels/topogen/pkg/graph
// [rng]: https://pkg.go.dev/github.com/matzehuels/topogen/pkg/rng
// [topology]: https://pkg.go.dev/github.com/matzehuels/topogen/pkg/topology
// [format]: https://pkg.go.dev/github.com/matzehuels/topogen/pkg/format
// [suite]: https://pkg.go.dev/github.com/matzehuels/topogen/pkg/suite
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/topogen/pkg/pipeline
// [render]: https://pkg.go.dev/github.com/matzehuels/topogen/pkg/render
// [cache]: https://pkg.go.dev/github.com/matzehuels/topogen/pkg/cache
// [observability]: https://pkg.go.dev/github.com/matzehuels/topogen/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/topogen/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/topogen/pkg/buildinfo
package pkg
