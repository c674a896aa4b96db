package treebuild

import (
	"fmt"
	"math/rand"

	"github.com/TianyiShi2001/Algorithms/tree"
)

// Constructor minima; trees are meaningful from a single node up.
const (
	minPathNodes   = 1
	minStarNodes   = 1
	minRandomNodes = 1
)

// Path returns the path P_n: 0-1-2-...-(n-1). Edges are emitted in
// increasing order, so the adjacency lists are deterministic.
func Path(n int) (*tree.Unrooted, error) {
	if n < minPathNodes {
		return nil, fmt.Errorf("treebuild: Path(%d): %w", n, ErrTooFewNodes)
	}

	t := tree.NewUnrooted(n)
	for i := 1; i < n; i++ {
		if err := t.AddEdge(tree.Node(i-1), tree.Node(i)); err != nil {
			return nil, fmt.Errorf("treebuild: Path(%d): %w", n, err)
		}
	}

	return t, nil
}

// Star returns the star S_n: hub 0 with leaves 1..n-1, spokes emitted in
// increasing leaf order. Star(1) is the single-node tree, Star(2) an edge.
func Star(n int) (*tree.Unrooted, error) {
	if n < minStarNodes {
		return nil, fmt.Errorf("treebuild: Star(%d): %w", n, ErrTooFewNodes)
	}

	t := tree.NewUnrooted(n)
	for i := 1; i < n; i++ {
		if err := t.AddEdge(0, tree.Node(i)); err != nil {
			return nil, fmt.Errorf("treebuild: Star(%d): %w", n, err)
		}
	}

	return t, nil
}

// Spider returns a spider tree: hub 0 with legs paths of legLen nodes each,
// numbered leg by leg. legs and legLen must be non-negative; Spider(0, x)
// and Spider(x, 0) are the single-node tree. Node count is 1 + legs*legLen.
func Spider(legs, legLen int) (*tree.Unrooted, error) {
	if legs < 0 || legLen < 0 {
		return nil, fmt.Errorf("treebuild: Spider(%d, %d): %w", legs, legLen, ErrTooFewNodes)
	}

	n := 1 + legs*legLen
	t := tree.NewUnrooted(n)

	next := tree.Node(1)
	var attach tree.Node
	for l := 0; l < legs; l++ {
		attach = 0 // each leg starts at the hub
		for s := 0; s < legLen; s++ {
			if err := t.AddEdge(attach, next); err != nil {
				return nil, fmt.Errorf("treebuild: Spider(%d, %d): %w", legs, legLen, err)
			}
			attach = next
			next++
		}
	}

	return t, nil
}

// Random returns a uniformly shaped random-attachment tree on n nodes:
// node i (for i >= 1) attaches to a node drawn uniformly from [0, i).
// The result is always a valid tree and is fully determined by rng.
func Random(n int, rng *rand.Rand) (*tree.Unrooted, error) {
	if n < minRandomNodes {
		return nil, fmt.Errorf("treebuild: Random(%d): %w", n, ErrTooFewNodes)
	}
	if rng == nil {
		return nil, fmt.Errorf("treebuild: Random(%d): %w", n, ErrNeedRandSource)
	}

	t := tree.NewUnrooted(n)
	for i := 1; i < n; i++ {
		if err := t.AddEdge(tree.Node(rng.Intn(i)), tree.Node(i)); err != nil {
			return nil, fmt.Errorf("treebuild: Random(%d): %w", n, err)
		}
	}

	return t, nil
}

// Relabel returns a copy of t with every node v renamed to perm[v].
// perm must be a permutation of 0..n-1. The result has the same shape as t,
// so the two are always isomorphic; t itself is not modified.
func Relabel(t *tree.Unrooted, perm []tree.Node) (*tree.Unrooted, error) {
	if t == nil {
		return nil, fmt.Errorf("treebuild: Relabel: %w", tree.ErrNilTree)
	}
	n := t.Len()
	if len(perm) != n {
		return nil, fmt.Errorf("treebuild: Relabel: perm has %d entries for %d nodes: %w", len(perm), n, ErrBadPermutation)
	}

	seen := make([]bool, n)
	for _, p := range perm {
		if p < 0 || int(p) >= n || seen[p] {
			return nil, fmt.Errorf("treebuild: Relabel: entry %d: %w", p, ErrBadPermutation)
		}
		seen[p] = true
	}

	out := tree.NewUnrooted(n)
	for _, e := range t.Edges() {
		if err := out.AddEdge(perm[e[0]], perm[e[1]]); err != nil {
			return nil, fmt.Errorf("treebuild: Relabel: %w", err)
		}
	}

	return out, nil
}
