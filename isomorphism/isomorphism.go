package isomorphism

import (
	"fmt"

	"github.com/TianyiShi2001/Algorithms/center"
	"github.com/TianyiShi2001/Algorithms/tree"
)

// Unrooted reports whether a and b are isomorphic as unrooted trees: whether
// some bijection between their node sets preserves adjacency.
//
// Node counts are compared first, then center counts; on a match each tree
// is rooted at its center(s) and the canonical labels compared, trying every
// center pairing for two-center trees. Two zero-node trees are isomorphic;
// a zero-node tree matches nothing else.
//
// Fails with a tree.ErrMalformedTree-derived sentinel if either input is
// disconnected or cyclic.
//
// Complexity: O(V log V) time, O(V) label storage.
func Unrooted(a, b *tree.Unrooted) (bool, error) {
	// 1. Validate presence and the cheap size discriminator.
	if a == nil || b == nil {
		return false, fmt.Errorf("isomorphism: %w", tree.ErrNilTree)
	}
	if a.Len() != b.Len() {
		return false, nil
	}
	if a.Len() == 0 {
		return true, nil
	}

	// 2. Centers are structural: differing center counts decide immediately.
	ca, err := center.Centers(a)
	if err != nil {
		return false, fmt.Errorf("isomorphism: %w", err)
	}
	cb, err := center.Centers(b)
	if err != nil {
		return false, fmt.Errorf("isomorphism: %w", err)
	}
	if len(ca) != len(cb) {
		return false, nil
	}

	// 3. Any isomorphism maps center set onto center set, so rooting at
	// centers aligns the candidates; try every pairing (at most 2x2).
	for _, c1 := range ca {
		ra, err := tree.Root(a, c1)
		if err != nil {
			return false, fmt.Errorf("isomorphism: %w", err)
		}
		la := canonical(ra)

		for _, c2 := range cb {
			rb, err := tree.Root(b, c2)
			if err != nil {
				return false, fmt.Errorf("isomorphism: %w", err)
			}
			if la == canonical(rb) {
				return true, nil
			}
		}
	}

	return false, nil
}

// Rooted reports whether two rooted trees are isomorphic with their roots
// aligned: whether some adjacency-preserving bijection maps a's root to b's.
// Both arguments must come from tree.Root and are not re-validated.
func Rooted(a, b *tree.Rooted) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Len() != b.Len() {
		return false
	}

	return canonical(a) == canonical(b)
}
