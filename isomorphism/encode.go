package isomorphism

import (
	"sort"
	"strings"

	"github.com/TianyiShi2001/Algorithms/tree"
)

// Canonical-label delimiters. A leaf encodes as open+close; an internal
// node wraps its sorted child labels. Using a bracket pair keeps distinct
// child-label multisets from ever concatenating to the same string.
const (
	labelOpen  = "("
	labelClose = ")"
)

// canonical returns the AHU canonical label of rt's root.
//
// Labels are built bottom-up by walking the discovery order in reverse, so
// every child label exists before its parent's is assembled. Child labels
// are sorted lexicographically before concatenation; that sort is what
// makes the encoding independent of the children's stored order.
func canonical(rt *tree.Rooted) string {
	n := rt.Len()
	labels := make([]string, n)

	var v tree.Node
	for i := n - 1; i >= 0; i-- {
		v = rt.Order[i]
		kids := rt.Children[v]
		if len(kids) == 0 {
			labels[v] = labelOpen + labelClose
			continue
		}

		parts := make([]string, len(kids))
		for j, c := range kids {
			parts[j] = labels[c]
		}
		sort.Strings(parts)
		labels[v] = labelOpen + strings.Join(parts, "") + labelClose
	}

	return labels[rt.Root]
}
