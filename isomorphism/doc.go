// Package isomorphism decides whether two trees are structurally identical
// up to relabeling of their nodes, using AHU canonical encoding of subtree
// shapes (Aho-Hopcroft-Ullman).
//
// What:
//
//   - Unrooted(a, b): unrooted-tree isomorphism. Both trees are rooted at
//     their centers (every center pairing is tried for two-center trees),
//     and the rooted canonical forms are compared.
//   - Rooted(a, b): rooted-tree isomorphism, root alignment included.
//
// How:
//
//	Each subtree is encoded bottom-up into a string: a leaf is "()", an
//	internal node wraps the sorted concatenation of its children's
//	encodings in parentheses. Sorting the child labels is what makes the
//	encoding invariant under child reordering; the parentheses make the
//	concatenation unambiguous, so two distinct multisets of child labels
//	can never collide. Two rooted trees are isomorphic iff their root
//	labels are byte-equal. The labels never leave this package.
//
// Edge cases: zero-node trees are isomorphic only to each other; one-node
// trees are always mutually isomorphic; trees of different node counts, or
// with different center counts, are never isomorphic.
//
// Complexity:
//
//   - Time:   O(V log V) per tree (label sorting dominates).
//   - Memory: O(V) label storage (O(V²) bytes worst case on path trees).
//
// Errors:
//
//   - tree.ErrMalformedTree (and derived sentinels) propagated from
//     centering/rooting on invalid input.
package isomorphism
