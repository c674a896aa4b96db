// Package eccentricity computes per-node eccentricities of an unrooted tree
// in a single linear pass using the re-rooting (two-pass DP) technique, and
// derives the diameter and radius from the resulting table.
//
// What:
//
//   - Eccentricities(t): for every node, the longest distance to any other
//     node, without the naive O(n²) root-everywhere approach.
//   - Diameter(t): the maximum eccentricity (longest path in the tree).
//   - Radius(t): the minimum eccentricity (attained by the center nodes).
//   - Height(rt): height of an already rooted tree (max depth below root).
//
// How:
//
//	The tree is rooted once at node 0. A post-order pass computes down[v],
//	the height of v's subtree, tracking the best and second-best child
//	contribution per node. A pre-order pass then computes up[v], the longest
//	path leaving v through its parent, reusing the parent's up value and its
//	best child height excluding v's own subtree. Eccentricity of v is
//	max(down[v], up[v]). The choice of node 0 as the internal root is a
//	convenience; any root yields the same table.
//
// Complexity:
//
//   - Time:   O(V) for all functions.
//   - Memory: O(V).
//
// Errors:
//
//   - tree.ErrMalformedTree (and its derived sentinels) propagated from
//     tree.Root on disconnected, cyclic, or empty input.
package eccentricity
