package center

import (
	"fmt"
	"slices"

	"github.com/TianyiShi2001/Algorithms/eccentricity"
	"github.com/TianyiShi2001/Algorithms/tree"
)

// Centers returns the center node(s) of t, sorted ascending: a single node
// when the diameter is even, two adjacent nodes when it is odd. A one-node
// tree returns that node.
//
// The default strategy is LeafTrimming; override with
// WithStrategy(ViaEccentricity). Both strategies validate the input first
// and fail with a tree.ErrMalformedTree-derived sentinel on disconnected,
// cyclic, or empty trees.
//
// Complexity: O(V) time and memory for either strategy.
func Centers(t *tree.Unrooted, opts ...Option) ([]tree.Node, error) {
	if t == nil {
		return nil, fmt.Errorf("center: %w", tree.ErrNilTree)
	}

	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	switch o.strategy {
	case LeafTrimming:
		return trimToCenter(t)
	case ViaEccentricity:
		return viaEccentricity(t)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownStrategy, o.strategy)
	}
}

// trimToCenter removes all current leaves layer by layer until at most two
// nodes remain. It works on a private adjacency copy and degree slice; the
// caller's tree is never touched.
func trimToCenter(t *tree.Unrooted) ([]tree.Node, error) {
	// Validation up front: trimming itself cannot tell a cycle apart from a
	// fat center, so malformed input must be rejected before peeling.
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("center: %w", err)
	}

	n := t.Len()
	adj := t.AdjacencyList()
	degree := t.Degrees()

	// Seed with the initial leaves (degree <= 1 covers the n=1 tree too).
	leaves := make([]tree.Node, 0)
	for v := tree.Node(0); int(v) < n; v++ {
		if degree[v] <= 1 {
			leaves = append(leaves, v)
		}
	}

	// Peel one layer at a time; a node joins the next layer the moment its
	// remaining degree drops to one.
	trimmed := len(leaves)
	for trimmed < n {
		next := make([]tree.Node, 0, len(leaves))
		for _, leaf := range leaves {
			for _, w := range adj[leaf] {
				degree[w]--
				if degree[w] == 1 {
					next = append(next, w)
				}
			}
			degree[leaf] = 0
		}
		trimmed += len(next)
		leaves = next
	}

	slices.Sort(leaves)

	return leaves, nil
}

// viaEccentricity collects the nodes attaining the minimum eccentricity.
func viaEccentricity(t *tree.Unrooted) ([]tree.Node, error) {
	ecc, err := eccentricity.Eccentricities(t)
	if err != nil {
		return nil, fmt.Errorf("center: %w", err)
	}

	radius := ecc[0]
	for _, e := range ecc[1:] {
		radius = min(radius, e)
	}

	centers := make([]tree.Node, 0, 2)
	for v, e := range ecc {
		if e == radius {
			centers = append(centers, tree.Node(v))
		}
	}

	// ecc is walked in node order, so the result is already ascending.
	return centers, nil
}
