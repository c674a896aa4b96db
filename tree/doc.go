// Package tree provides the shared substrate for the tree-analysis
// algorithms in this module: a compact adjacency-list representation of an
// unrooted tree over integer nodes, and the rooting transformation that
// turns it into an explicit parent/children/depth view.
//
// What:
//
//   - Unrooted: adjacency list over nodes 0..n-1; symmetric, connected,
//     acyclic (|E| = n-1). Built via NewUnrooted/AddEdge or FromEdges.
//   - Rooted: derived, owned snapshot with Parent, Children, Depth and
//     discovery Order per node. Never aliases or mutates its source.
//   - Root(t, root, opts...): single iterative traversal establishing the
//     rooted view, with an optional pre-order hook.
//
// Why:
//   - Eccentricity, center, isomorphism and subtree aggregation all need the
//     same parent-tracking traversal; it lives here exactly once.
//
// Complexity:
//
//   - Root:     Time O(V), Memory O(V) (explicit stack, no recursion).
//   - Validate: Time O(V), Memory O(V).
//
// Errors:
//
//   - ErrMalformedTree       base class for structurally invalid input
//   - ErrDisconnected        traversal did not reach every node
//   - ErrCycleDetected       edge count or a revisit proves a cycle
//   - ErrNodeOutOfRange      node id outside [0, n)
//   - ErrSelfLoop            edge endpoints coincide
//   - ErrEmptyTree           zero-node input where a node is required
//   - ErrNilTree             nil *Unrooted or *Rooted
//
// All malformed-input sentinels satisfy errors.Is(err, ErrMalformedTree);
// branch on the base sentinel unless the precise cause matters.
package tree
