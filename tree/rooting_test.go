package tree_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TianyiShi2001/Algorithms/tree"
)

// buildPath returns the path 0-1-...-(n-1).
func buildPath(t *testing.T, n int) *tree.Unrooted {
	t.Helper()
	ut := tree.NewUnrooted(n)
	for i := 1; i < n; i++ {
		require.NoError(t, ut.AddEdge(tree.Node(i-1), tree.Node(i)))
	}

	return ut
}

func TestRoot_NilTree(t *testing.T) {
	rt, err := tree.Root(nil, 0)
	assert.Nil(t, rt)
	assert.ErrorIs(t, err, tree.ErrNilTree)
}

func TestRoot_EmptyTree(t *testing.T) {
	rt, err := tree.Root(tree.NewUnrooted(0), 0)
	assert.Nil(t, rt)
	assert.ErrorIs(t, err, tree.ErrEmptyTree)
	assert.ErrorIs(t, err, tree.ErrMalformedTree)
}

func TestRoot_RootOutOfRange(t *testing.T) {
	ut := buildPath(t, 3)

	for _, root := range []tree.Node{-1, 3, 100} {
		rt, err := tree.Root(ut, root)
		assert.Nil(t, rt)
		assert.ErrorIs(t, err, tree.ErrNodeOutOfRange)
		assert.ErrorIs(t, err, tree.ErrMalformedTree)
	}
}

func TestRoot_SingleNode(t *testing.T) {
	rt, err := tree.Root(tree.NewUnrooted(1), 0)
	require.NoError(t, err)
	assert.Equal(t, tree.Node(0), rt.Root)
	assert.Equal(t, []tree.Node{tree.NoParent}, rt.Parent)
	assert.Equal(t, []int{0}, rt.Depth)
	assert.Equal(t, []tree.Node{0}, rt.Order)
	assert.True(t, rt.IsLeaf(0))
}

func TestRoot_PathFromEnd(t *testing.T) {
	rt, err := tree.Root(buildPath(t, 5), 0)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1, 2, 3, 4}, rt.Depth)
	assert.Equal(t, []tree.Node{tree.NoParent, 0, 1, 2, 3}, rt.Parent)
	for v := tree.Node(0); v < 4; v++ {
		assert.Equal(t, []tree.Node{v + 1}, rt.Children[v])
	}
	assert.Empty(t, rt.Children[4])
}

func TestRoot_PathFromMiddle(t *testing.T) {
	rt, err := tree.Root(buildPath(t, 5), 2)
	require.NoError(t, err)

	assert.Equal(t, []int{2, 1, 0, 1, 2}, rt.Depth)
	assert.Equal(t, tree.NoParent, rt.Parent[2])
	assert.ElementsMatch(t, []tree.Node{1, 3}, rt.Children[2])
}

// Following parent links from any node must reach the root in exactly
// Depth[v] steps, for every choice of root.
func TestRoot_ParentChainMatchesDepth(t *testing.T) {
	ut, err := tree.FromEdges(9, [][2]tree.Node{
		{0, 1}, {2, 1}, {2, 3}, {3, 4}, {5, 3}, {2, 6}, {6, 7}, {6, 8},
	})
	require.NoError(t, err)

	for root := tree.Node(0); int(root) < ut.Len(); root++ {
		rt, err := tree.Root(ut, root)
		require.NoError(t, err)

		for v := tree.Node(0); int(v) < ut.Len(); v++ {
			steps := 0
			for cur := v; cur != root; cur = rt.Parent[cur] {
				steps++
				require.LessOrEqual(t, steps, ut.Len(), "parent chain from %d does not terminate", v)
			}
			assert.Equal(t, rt.Depth[v], steps, "depth of %d under root %d", v, root)
		}
	}
}

// Every node except the root appears in exactly one children list.
func TestRoot_ChildrenPartitionNodes(t *testing.T) {
	ut, err := tree.FromEdges(7, [][2]tree.Node{
		{0, 1}, {0, 2}, {1, 3}, {1, 4}, {2, 5}, {5, 6},
	})
	require.NoError(t, err)

	rt, err := tree.Root(ut, 0)
	require.NoError(t, err)

	seen := make(map[tree.Node]int)
	for v := range rt.Children {
		for _, c := range rt.Children[v] {
			seen[c]++
			assert.Equal(t, tree.Node(v), rt.Parent[c])
		}
	}
	assert.Len(t, seen, ut.Len()-1)
	for v, count := range seen {
		assert.Equal(t, 1, count, "node %d discovered more than once", v)
		assert.NotEqual(t, rt.Root, v)
	}
}

// Order lists every node after its parent, so reversed Order is a
// valid post-order for the aggregation passes.
func TestRoot_OrderParentsFirst(t *testing.T) {
	ut, err := tree.FromEdges(7, [][2]tree.Node{
		{0, 1}, {0, 2}, {1, 3}, {1, 4}, {2, 5}, {5, 6},
	})
	require.NoError(t, err)

	rt, err := tree.Root(ut, 3)
	require.NoError(t, err)
	require.Len(t, rt.Order, 7)

	pos := make(map[tree.Node]int, len(rt.Order))
	for i, v := range rt.Order {
		pos[v] = i
	}
	assert.Equal(t, 0, pos[3], "root must come first")
	for v := tree.Node(0); int(v) < ut.Len(); v++ {
		if v == rt.Root {
			continue
		}
		assert.Less(t, pos[rt.Parent[v]], pos[v], "parent of %d must precede it", v)
	}
}

func TestRoot_Disconnected(t *testing.T) {
	// Two separate edges forming two components.
	ut, err := tree.FromEdges(4, [][2]tree.Node{{0, 1}, {2, 3}})
	require.NoError(t, err)

	rt, err := tree.Root(ut, 0)
	assert.Nil(t, rt)
	assert.ErrorIs(t, err, tree.ErrDisconnected)
	assert.ErrorIs(t, err, tree.ErrMalformedTree)
}

func TestRoot_TriangleCycle(t *testing.T) {
	ut, err := tree.FromEdges(3, [][2]tree.Node{{0, 1}, {1, 2}, {2, 0}})
	require.NoError(t, err)

	rt, err := tree.Root(ut, 0)
	assert.Nil(t, rt)
	assert.ErrorIs(t, err, tree.ErrCycleDetected)
}

// A cycle plus an isolated node keeps |E| = n-1, so only the traversal's
// revisit check can catch it.
func TestRoot_CycleWithCorrectEdgeCount(t *testing.T) {
	ut, err := tree.FromEdges(4, [][2]tree.Node{{0, 1}, {1, 2}, {2, 0}})
	require.NoError(t, err)

	rt, err := tree.Root(ut, 0)
	assert.Nil(t, rt)
	assert.ErrorIs(t, err, tree.ErrCycleDetected)
}

func TestRoot_ParallelEdge(t *testing.T) {
	ut := tree.NewUnrooted(2)
	require.NoError(t, ut.AddEdge(0, 1))
	require.NoError(t, ut.AddEdge(0, 1))

	rt, err := tree.Root(ut, 0)
	assert.Nil(t, rt)
	assert.ErrorIs(t, err, tree.ErrCycleDetected)
}

func TestRoot_OnVisitHook(t *testing.T) {
	ut := buildPath(t, 4)

	var visited []tree.Node
	var depths []int
	rt, err := tree.Root(ut, 0, tree.WithOnVisit(func(v tree.Node, depth int) error {
		visited = append(visited, v)
		depths = append(depths, depth)

		return nil
	}))
	require.NoError(t, err)
	assert.Equal(t, rt.Order, visited, "hook fires in discovery order")
	assert.Equal(t, []int{0, 1, 2, 3}, depths)
}

func TestRoot_OnVisitHookAborts(t *testing.T) {
	ut := buildPath(t, 4)
	boom := errors.New("halt at 2")

	rt, err := tree.Root(ut, 0, tree.WithOnVisit(func(v tree.Node, _ int) error {
		if v == 2 {
			return boom
		}

		return nil
	}))
	assert.Nil(t, rt)
	assert.ErrorIs(t, err, boom)
	assert.ErrorContains(t, err, "OnVisit hook for 2")
}

// Rooting is a derived snapshot: the source adjacency must be untouched.
func TestRoot_DoesNotMutateSource(t *testing.T) {
	ut := buildPath(t, 5)
	before := ut.AdjacencyList()

	rt, err := tree.Root(ut, 2)
	require.NoError(t, err)

	// Scribble over the rooted view; the unrooted tree must not notice.
	rt.Children[2] = nil
	rt.Parent[0] = 4
	assert.Equal(t, before, ut.AdjacencyList())
	assert.Equal(t, 4, ut.EdgeCount())
}
