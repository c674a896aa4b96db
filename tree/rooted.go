package tree

// Rooted is the parent/children/depth view of a tree derived by Root.
// It is an owned snapshot: building it never mutates the Unrooted source,
// and the two share no storage. Treat all fields as read-only.
type Rooted struct {
	// Root is the node the tree was rooted at.
	Root Node

	// Parent maps each node to the node it was discovered from;
	// Parent[Root] is NoParent and no other entry is.
	Parent []Node

	// Children maps each node to its children in discovery order.
	// Every node except Root appears in exactly one children list.
	Children [][]Node

	// Depth maps each node to its distance from Root (Root has depth 0).
	// Following Parent links from v reaches Root in exactly Depth[v] steps.
	Depth []int

	// Order lists the nodes in discovery order, Root first. Every node
	// precedes its descendants, so iterating Order in reverse yields a
	// valid post-order (children before parents).
	Order []Node
}

// Len reports the number of nodes.
func (t *Rooted) Len() int { return len(t.Parent) }

// IsLeaf reports whether v has no children.
func (t *Rooted) IsLeaf(v Node) bool { return len(t.Children[v]) == 0 }
