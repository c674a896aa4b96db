package tree

import "fmt"

// Len reports the number of nodes.
func (t *Unrooted) Len() int { return len(t.adj) }

// EdgeCount reports the number of undirected edges added so far.
// A valid tree has exactly Len()-1.
func (t *Unrooted) EdgeCount() int { return t.edges }

// AddEdge records the undirected edge (u, v) by appending v to u's adjacency
// and u to v's. It rejects out-of-range endpoints and self-loops immediately;
// parallel edges are representable here and surface later as ErrCycleDetected
// from Validate or Root via the edge-count invariant.
// Complexity: O(1) amortized.
func (t *Unrooted) AddEdge(u, v Node) error {
	if !t.contains(u) {
		return fmt.Errorf("tree: AddEdge(%d, %d): endpoint %d: %w", u, v, u, ErrNodeOutOfRange)
	}
	if !t.contains(v) {
		return fmt.Errorf("tree: AddEdge(%d, %d): endpoint %d: %w", u, v, v, ErrNodeOutOfRange)
	}
	if u == v {
		return fmt.Errorf("tree: AddEdge(%d, %d): %w", u, v, ErrSelfLoop)
	}

	t.adj[u] = append(t.adj[u], v)
	t.adj[v] = append(t.adj[v], u)
	t.edges++

	return nil
}

// Neighbors returns the adjacency of v in insertion order.
// The returned slice is a read-only view into the tree; callers must not
// modify it. Use AdjacencyList for an owned copy.
func (t *Unrooted) Neighbors(v Node) ([]Node, error) {
	if !t.contains(v) {
		return nil, fmt.Errorf("tree: Neighbors(%d): %w", v, ErrNodeOutOfRange)
	}

	return t.adj[v], nil
}

// Degree reports the number of neighbors of v.
func (t *Unrooted) Degree(v Node) (int, error) {
	if !t.contains(v) {
		return 0, fmt.Errorf("tree: Degree(%d): %w", v, ErrNodeOutOfRange)
	}

	return len(t.adj[v]), nil
}

// Degrees returns a freshly allocated slice of per-node degrees.
// Mutating the result never affects the tree; the leaf-trimming center
// strategy relies on exactly this ownership guarantee.
// Complexity: O(n).
func (t *Unrooted) Degrees() []int {
	deg := make([]int, len(t.adj))
	for v, nbs := range t.adj {
		deg[v] = len(nbs)
	}

	return deg
}

// Edges returns each undirected edge exactly once as an ordered pair (u, v)
// with u < v, in adjacency order. Intended for relabeling and inspection of
// valid trees; parallel edges collapse in the output.
// Complexity: O(V + E).
func (t *Unrooted) Edges() [][2]Node {
	out := make([][2]Node, 0, t.edges)
	for u, nbs := range t.adj {
		for _, v := range nbs {
			if Node(u) < v {
				out = append(out, [2]Node{Node(u), v})
			}
		}
	}

	return out
}

// AdjacencyList returns a deep copy of the adjacency structure.
// Complexity: O(V + E).
func (t *Unrooted) AdjacencyList() [][]Node {
	cp := make([][]Node, len(t.adj))
	for v, nbs := range t.adj {
		cp[v] = append([]Node(nil), nbs...)
	}

	return cp
}

// Clone returns an independent copy of t.
func (t *Unrooted) Clone() *Unrooted {
	return &Unrooted{adj: t.AdjacencyList(), edges: t.edges}
}

// Validate checks the full tree invariant set: at least one node, exactly
// n-1 edges, connected, acyclic. It performs one rooting traversal from
// node 0 and discards the result.
// Complexity: O(V).
func (t *Unrooted) Validate() error {
	if t == nil {
		return ErrNilTree
	}
	_, err := Root(t, 0)

	return err
}

// contains reports whether v is a valid node id of t.
func (t *Unrooted) contains(v Node) bool {
	return v >= 0 && int(v) < len(t.adj)
}
