package aggregate

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/TianyiShi2001/Algorithms/tree"
)

var (
	// ErrNilTree is returned when a nil *tree.Rooted is supplied.
	ErrNilTree = errors.New("aggregate: rooted tree is nil")

	// ErrNilFunc is returned when the leaf or combine function is nil.
	ErrNilFunc = errors.New("aggregate: leaf and combine must be non-nil")

	// ErrValueLength is returned when a values slice is shorter or longer
	// than the tree's node count.
	ErrValueLength = errors.New("aggregate: values length does not match node count")
)

// Number constrains the summation helpers to built-in numeric types.
type Number interface {
	constraints.Integer | constraints.Float
}

// Fold computes a post-order accumulation over rt: for every node v,
//
//	result[v] = combine(...combine(combine(leaf(v), result[c1]), result[c2])...)
//
// over v's children c1, c2, ... in insertion order. Children are always
// evaluated before their parent. See the package documentation for the
// ordering contract under non-commutative combine functions.
//
// Complexity: O(V) time and memory.
func Fold[V any](rt *tree.Rooted, leaf func(tree.Node) V, combine func(V, V) V) ([]V, error) {
	if rt == nil {
		return nil, ErrNilTree
	}
	if leaf == nil || combine == nil {
		return nil, ErrNilFunc
	}

	n := rt.Len()
	res := make([]V, n)

	// Reverse discovery order visits children before parents, so every
	// child result is final when its parent folds it in.
	var v tree.Node
	var acc V
	for i := n - 1; i >= 0; i-- {
		v = rt.Order[i]
		acc = leaf(v)
		for _, c := range rt.Children[v] {
			acc = combine(acc, res[c])
		}
		res[v] = acc
	}

	return res, nil
}

// SubtreeSizes returns, for every node, the number of nodes in its subtree
// (itself included). The root's entry equals the node count.
func SubtreeSizes(rt *tree.Rooted) ([]int, error) {
	return Fold(rt,
		func(tree.Node) int { return 1 },
		func(a, b int) int { return a + b },
	)
}

// SubtreeSums returns, for every node v, the sum of values over all nodes
// in v's subtree. values must hold one entry per node, indexed by node.
func SubtreeSums[V Number](rt *tree.Rooted, values []V) ([]V, error) {
	if rt != nil && len(values) != rt.Len() {
		return nil, fmt.Errorf("%w: %d values for %d nodes", ErrValueLength, len(values), rt.Len())
	}

	return Fold(rt,
		func(v tree.Node) V { return values[v] },
		func(a, b V) V { return a + b },
	)
}

// LeafSums returns, for every node v, the sum of values over the leaves of
// v's subtree; internal nodes contribute nothing. values must hold one
// entry per node, indexed by node.
func LeafSums[V Number](rt *tree.Rooted, values []V) ([]V, error) {
	if rt != nil && len(values) != rt.Len() {
		return nil, fmt.Errorf("%w: %d values for %d nodes", ErrValueLength, len(values), rt.Len())
	}

	return Fold(rt,
		func(v tree.Node) V {
			if rt.IsLeaf(v) {
				return values[v]
			}
			var zero V

			return zero
		},
		func(a, b V) V { return a + b },
	)
}
