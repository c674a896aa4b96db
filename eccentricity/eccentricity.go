package eccentricity

import (
	"fmt"

	"github.com/TianyiShi2001/Algorithms/tree"
)

// internalRoot anchors the single rooting pass; any fixed node would do.
const internalRoot tree.Node = 0

// Eccentricities returns, for every node of t, the maximum distance to any
// other node, as a slice indexed by node. A single-node tree yields [0].
//
// Algorithm: re-rooting two-pass DP, O(V) total; see the package
// documentation. Fails with a tree.ErrMalformedTree-derived sentinel on
// disconnected, cyclic, or empty input.
func Eccentricities(t *tree.Unrooted) ([]int, error) {
	rt, err := tree.Root(t, internalRoot)
	if err != nil {
		return nil, fmt.Errorf("eccentricity: %w", err)
	}

	n := rt.Len()
	var (
		down = make([]int, n) // height of the subtree below each node
		best = make([]int, n) // best child contribution: max(down[c]+1)
		next = make([]int, n) // second-best child contribution
	)

	// 1. Post-order pass (children before parents): subtree heights, with
	// the top two child contributions kept so the second pass can exclude
	// any one child's subtree without recomputation.
	var i int
	var v, c tree.Node
	var h int
	for i = n - 1; i >= 0; i-- {
		v = rt.Order[i]
		for _, c = range rt.Children[v] {
			h = down[c] + 1
			switch {
			case h > best[v]:
				next[v] = best[v]
				best[v] = h
			case h > next[v]:
				next[v] = h
			}
		}
		down[v] = best[v]
	}

	// 2. Pre-order pass (parents before children): longest path from each
	// node that leaves through its parent. For child c of v this is one step
	// to v, then either v's own upward path or v's best downward path that
	// avoids c's subtree. up[root] stays 0.
	up := make([]int, n)
	var sideways int
	for _, v = range rt.Order {
		for _, c = range rt.Children[v] {
			sideways = best[v]
			if down[c]+1 == best[v] {
				// c's own subtree realizes the best; fall back to the
				// runner-up (equal to best on ties, so still correct).
				sideways = next[v]
			}
			up[c] = up[v] + 1
			if sideways+1 > up[c] {
				up[c] = sideways + 1
			}
		}
	}

	// 3. Combine: the farthest node from v lies either below it or above it.
	ecc := make([]int, n)
	for i = 0; i < n; i++ {
		ecc[i] = max(down[i], up[i])
	}

	return ecc, nil
}

// Diameter returns the length of the longest path in t (the maximum
// eccentricity over all nodes). A single-node tree has diameter 0.
func Diameter(t *tree.Unrooted) (int, error) {
	ecc, err := Eccentricities(t)
	if err != nil {
		return 0, err
	}

	d := 0
	for _, e := range ecc {
		d = max(d, e)
	}

	return d, nil
}

// Radius returns the minimum eccentricity over all nodes of t; it is
// attained exactly by the tree's center(s).
func Radius(t *tree.Unrooted) (int, error) {
	ecc, err := Eccentricities(t)
	if err != nil {
		return 0, err
	}

	r := ecc[0]
	for _, e := range ecc[1:] {
		r = min(r, e)
	}

	return r, nil
}

// Height returns the height of an already rooted tree: the maximum depth of
// any node below the root. A single-node tree has height 0.
func Height(rt *tree.Rooted) int {
	h := 0
	for _, d := range rt.Depth {
		h = max(h, d)
	}

	return h
}
