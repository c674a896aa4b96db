// Package aggregate provides generic post-order accumulation over rooted
// trees: one iterative fold, reused by the subtree-size and subtree-sum
// style computations so traversal logic is written exactly once.
//
// What:
//
//   - Fold(rt, leaf, combine): result[v] = leaf(v) folded with the results
//     of v's children, children before parents, no recursion.
//   - SubtreeSizes(rt): node count of every subtree.
//   - SubtreeSums(rt, values): sum of caller-supplied values per subtree.
//   - LeafSums(rt, values): sum of values over the leaves of each subtree.
//
// Ordering contract: for each node the child results are folded left to
// right in Children insertion order, seeded with leaf(v). An associative
// and commutative combine is therefore order-independent; a non-commutative
// combine is allowed and yields an explicitly order-dependent result
// following that same insertion order.
//
// Complexity: O(V) applications of leaf and combine, O(V) memory.
//
// Errors:
//
//   - ErrNilTree     rt is nil
//   - ErrNilFunc     leaf or combine is nil
//   - ErrValueLength values slice does not cover every node
package aggregate
