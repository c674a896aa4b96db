// Package tree defines the Node, Unrooted and Rooted types, sentinel errors,
// and the constructors used by every algorithm package in this module.
package tree

import (
	"errors"
	"fmt"
)

// Node identifies a vertex of a tree. Valid nodes of an n-node tree are the
// integers [0, n); no intrinsic payload is attached. Callers supply per-node
// values as parallel slices indexed by Node.
type Node int

// NoParent marks the absent parent of a root node in Rooted.Parent.
const NoParent Node = -1

// Sentinel errors for tree construction and rooting.
//
// Every structural-invariant violation wraps ErrMalformedTree, so callers
// that only care about "input is not a tree" can branch with a single
// errors.Is(err, ErrMalformedTree) check.
var (
	// ErrMalformedTree is the base sentinel for any input that violates the
	// tree invariants (connected, acyclic, simple, ids in range).
	ErrMalformedTree = errors.New("tree: malformed tree")

	// ErrDisconnected indicates a traversal failed to reach every node.
	ErrDisconnected = fmt.Errorf("%w: disconnected input", ErrMalformedTree)

	// ErrCycleDetected indicates the edge-count invariant |E| = n-1 is
	// violated upward, or a node was revisited along a second path.
	ErrCycleDetected = fmt.Errorf("%w: cycle detected", ErrMalformedTree)

	// ErrNodeOutOfRange indicates a node id outside [0, n).
	ErrNodeOutOfRange = fmt.Errorf("%w: node out of range", ErrMalformedTree)

	// ErrSelfLoop indicates an edge whose endpoints coincide.
	ErrSelfLoop = fmt.Errorf("%w: self-loop not allowed", ErrMalformedTree)

	// ErrEmptyTree indicates a zero-node tree was supplied to an operation
	// that requires at least one node.
	ErrEmptyTree = fmt.Errorf("%w: tree has no nodes", ErrMalformedTree)

	// ErrNilTree indicates a nil *Unrooted or *Rooted was supplied.
	ErrNilTree = errors.New("tree: tree is nil")
)

// Unrooted is an adjacency-list encoding of an undirected tree over nodes
// 0..n-1. AddEdge keeps the list symmetric; connectivity and acyclicity are
// enforced by Validate and Root rather than at insertion time, so a partially
// built Unrooted is representable but rejected by every consumer.
type Unrooted struct {
	adj   [][]Node // adj[v] lists the neighbors of v in insertion order
	edges int      // undirected edges added so far
}

// NewUnrooted returns an edgeless Unrooted over n nodes.
// n may be zero; such a tree is only meaningful to the isomorphism checker.
// Complexity: O(n).
func NewUnrooted(n int) *Unrooted {
	return &Unrooted{adj: make([][]Node, n)}
}

// FromEdges builds an Unrooted over n nodes from an edge list.
// It fails fast on the first out-of-range endpoint or self-loop; the
// connectivity and edge-count invariants are checked later by Validate/Root.
// Complexity: O(n + len(edges)).
func FromEdges(n int, edges [][2]Node) (*Unrooted, error) {
	t := NewUnrooted(n)
	for _, e := range edges {
		if err := t.AddEdge(e[0], e[1]); err != nil {
			return nil, err
		}
	}

	return t, nil
}
