// Package topology builds random graphs with guaranteed structural
// invariants.
//
// # Overview
//
// A [Builder] wraps one [rng.Source] and exposes one method per topology
// kind. Every method is a pure function of the source state and its
// parameters: the same seed and the same call sequence always produce the
// same graph, including edge insertion order.
//
//	b := topology.New(rng.New(42))
//	tree, err := b.Tree(10)
//	forest, err := b.Forest(12, 3)
//
// # Topologies
//
//   - [Builder.Clique]: every pair connected
//   - [Builder.Path]: k disjoint simple chains covering all nodes
//   - [Builder.Tree], [Builder.Forest]: random attachment; connected and
//     acyclic by construction
//   - [Builder.ShallowForest]: forest whose trees have depth at most [ShallowDepth]
//   - [Builder.DegreeBoundedTree]: tree whose branching degrees stay in a range
//   - [Builder.Starfish]: a centre with disjoint bounded-length rays
//   - [Builder.Sparse], [Builder.Dense]: rejection-sampled random edge sets
//
// [Builder.Build] dispatches on a [Kind] and [Params] pair, which is how
// suite files describe tests.
//
// # Labels
//
// Structure is built over internal indices and then relabeled through a
// uniformly random permutation, so two draws with identical shape still
// differ as labeled graphs. [WithIdentityLabels] disables the relabeling for
// golden outputs. Cliques are never relabeled: every labeling is the same
// edge set.
//
// # Duplicate avoidance
//
// [Distinct] redraws a construction until it differs, by exact-labeling
// equality, from a reference graph. It gives up with [ErrRetryExhausted]
// after a bounded number of attempts instead of spinning forever when the
// parameter space has a single realization.
//
// # Errors
//
// Impossible requests (more components than nodes, rays that cannot hold
// the nodes, degree bounds no tree can satisfy) fail with
// [ErrInfeasibleParameters] before any randomness is consumed.
package topology
