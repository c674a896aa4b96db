package treebuild

import "errors"

var (
	// ErrTooFewNodes indicates a size parameter below the constructor's
	// minimum (every constructor here requires at least one node).
	ErrTooFewNodes = errors.New("treebuild: too few nodes")

	// ErrNeedRandSource indicates a stochastic constructor was called with
	// a nil *rand.Rand.
	ErrNeedRandSource = errors.New("treebuild: rand source is required")

	// ErrBadPermutation indicates the relabeling slice is not a
	// permutation of the tree's node set.
	ErrBadPermutation = errors.New("treebuild: not a permutation of the node set")
)
