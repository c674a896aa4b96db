// Package treebuild constructs trees with known shapes: deterministic
// topologies (Path, Star, Spider), seeded random trees, and label
// permutation. The analysis packages never build trees themselves; these
// constructors exist for callers, examples, and above all the property
// tests, which need large batches of random and relabeled trees.
//
// Determinism:
//
//   - Topology constructors emit nodes and edges in a fixed order, so two
//     calls with equal parameters produce identical adjacency lists.
//   - Random(n, rng) is fully determined by the supplied rand source.
//
// Errors:
//
//   - ErrTooFewNodes     n below the constructor's minimum
//   - ErrNeedRandSource  Random called without a rand source
//   - ErrBadPermutation  Relabel's perm is not a permutation of the nodes
package treebuild
