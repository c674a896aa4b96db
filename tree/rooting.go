package tree

import "fmt"

// RootOption configures optional behavior of the Root transformation.
type RootOption func(*rootOptions)

// rootOptions holds configurable parameters for Root.
type rootOptions struct {
	// onVisit, if non-nil, is invoked when a node is taken from the stack
	// (pre-order), with its depth. Returning an error aborts the rooting.
	onVisit func(v Node, depth int) error
}

// WithOnVisit installs fn as a pre-order hook: it fires for every node in
// discovery order, Root first. An error returned by fn aborts the traversal
// and is propagated, wrapped with the offending node.
func WithOnVisit(fn func(v Node, depth int) error) RootOption {
	return func(o *rootOptions) {
		o.onVisit = fn
	}
}

// Root converts t into a Rooted view anchored at root.
//
// It performs a single iterative depth-first traversal with an explicit
// stack (no recursion, safe for path-shaped trees of any size): root gets
// Parent = NoParent and Depth 0; every other node gets Parent = the node it
// was discovered from, Depth = parent's depth + 1, and is appended to its
// parent's Children in adjacency order.
//
// Returns, all satisfying errors.Is(err, ErrMalformedTree):
//
//   - ErrEmptyTree      if t has no nodes
//   - ErrNodeOutOfRange if root is not a node of t
//   - ErrCycleDetected  if |E| > n-1, or a node is reached twice
//   - ErrDisconnected   if |E| < n-1, or the traversal misses nodes
//
// Complexity: O(V) time and memory.
func Root(t *Unrooted, root Node, opts ...RootOption) (*Rooted, error) {
	// 1. Validate input tree and root id.
	if t == nil {
		return nil, fmt.Errorf("tree: Root: %w", ErrNilTree)
	}
	n := t.Len()
	if n == 0 {
		return nil, fmt.Errorf("tree: Root: %w", ErrEmptyTree)
	}
	if !t.contains(root) {
		return nil, fmt.Errorf("tree: Root(%d): %w", root, ErrNodeOutOfRange)
	}

	// 2. Edge-count invariant: a connected acyclic graph has exactly n-1
	// edges, so either deviation is decidable before traversing.
	if t.edges > n-1 {
		return nil, fmt.Errorf("tree: Root: %d edges for %d nodes: %w", t.edges, n, ErrCycleDetected)
	}
	if t.edges < n-1 {
		return nil, fmt.Errorf("tree: Root: %d edges for %d nodes: %w", t.edges, n, ErrDisconnected)
	}

	// 3. Apply options.
	var o rootOptions
	for _, fn := range opts {
		fn(&o)
	}

	// 4. Allocate the owned rooted view.
	rt := &Rooted{
		Root:     root,
		Parent:   make([]Node, n),
		Children: make([][]Node, n),
		Depth:    make([]int, n),
		Order:    make([]Node, 0, n),
	}
	for i := range rt.Parent {
		rt.Parent[i] = NoParent
	}

	visited := make([]bool, n)
	// One adjacency entry per node leads back to its parent; skip it exactly
	// once so a parallel edge still reads as a revisit.
	skippedParent := make([]bool, n)

	stack := make([]Node, 0, n)
	stack = append(stack, root)
	visited[root] = true

	// 5. Iterative DFS: pop a node, record it, discover its neighbors.
	var v, w Node
	for len(stack) > 0 {
		v = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		rt.Order = append(rt.Order, v)

		if o.onVisit != nil {
			if err := o.onVisit(v, rt.Depth[v]); err != nil {
				return nil, fmt.Errorf("tree: Root: OnVisit hook for %d: %w", v, err)
			}
		}

		for _, w = range t.adj[v] {
			if w == rt.Parent[v] && !skippedParent[v] {
				skippedParent[v] = true
				continue
			}
			if visited[w] {
				return nil, fmt.Errorf("tree: Root: second path to %d: %w", w, ErrCycleDetected)
			}
			visited[w] = true
			rt.Parent[w] = v
			rt.Depth[w] = rt.Depth[v] + 1
			rt.Children[v] = append(rt.Children[v], w)
			stack = append(stack, w)
		}
	}

	// 6. Coverage check: anything unreached means a separate component.
	if len(rt.Order) != n {
		return nil, fmt.Errorf("tree: Root: reached %d of %d nodes: %w", len(rt.Order), n, ErrDisconnected)
	}

	return rt, nil
}
