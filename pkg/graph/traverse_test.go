package graph

import (
	"slices"
	"testing"
)

// buildGraph creates a graph with nodes for every listed UID and one edge
// per (parent, child) pair.
func buildGraph(t *testing.T, ids []int64, edges [][2]int64) *Graph[struct{}, struct{}] {
	t.Helper()
	g := New[struct{}, struct{}]("test")
	for _, id := range ids {
		g.AddNode(NewNode[struct{}](id))
	}
	for _, e := range edges {
		g.AddEdge(NewEdge[struct{}](e[0], e[1]))
	}
	return g
}

// collect returns a MutateFunc recording visited UIDs, in visit order.
func collect(visited *[]int64) MutateFunc[struct{}] {
	return func(n *Node[struct{}]) { *visited = append(*visited, n.ID) }
}

func sorted(ids []int64) []int64 {
	out := slices.Clone(ids)
	slices.Sort(out)
	return out
}

func TestMapParents_SingleHop(t *testing.T) {
	// 1 -> 2 -> 3: parents of 3 is just 2, not 1.
	g := buildGraph(t, []int64{1, 2, 3}, [][2]int64{{1, 2}, {2, 3}})

	var visited []int64
	g.MapParents([]int64{3}, collect(&visited))

	if want := []int64{2}; !slices.Equal(visited, want) {
		t.Errorf("MapParents(3) visited %v, want %v", visited, want)
	}
}

func TestMapChildren_SingleHop(t *testing.T) {
	g := buildGraph(t, []int64{1, 2, 3}, [][2]int64{{1, 2}, {1, 3}})

	var visited []int64
	g.MapChildren([]int64{1}, collect(&visited))

	if want := []int64{2, 3}; !slices.Equal(sorted(visited), want) {
		t.Errorf("MapChildren(1) visited %v, want %v", visited, want)
	}
}

func TestMapParents_UnregisteredSkipped(t *testing.T) {
	// Edge 99 -> 1 where node 99 does not exist.
	g := buildGraph(t, []int64{1}, [][2]int64{{99, 1}})

	var visited []int64
	g.MapParents([]int64{1}, collect(&visited))

	if len(visited) != 0 {
		t.Errorf("MapParents() visited %v, want no mutations for unregistered UID", visited)
	}
}

func TestMapParents_DuplicateEdgesMutateOnce(t *testing.T) {
	g := buildGraph(t, []int64{1, 2}, [][2]int64{{1, 2}, {1, 2}})

	var visited []int64
	g.MapParents([]int64{2}, collect(&visited))

	if want := []int64{1}; !slices.Equal(visited, want) {
		t.Errorf("MapParents() visited %v, want each distinct parent once", visited)
	}
}

func TestMapAscendants_Chain(t *testing.T) {
	// 1 -> 2 -> 3 -> 4: ascendants of 4 are 3, 2, 1.
	g := buildGraph(t, []int64{1, 2, 3, 4}, [][2]int64{{1, 2}, {2, 3}, {3, 4}})

	var visited []int64
	g.MapAscendants([]int64{4}, collect(&visited))

	if want := []int64{1, 2, 3}; !slices.Equal(sorted(visited), want) {
		t.Errorf("MapAscendants(4) visited %v, want %v", visited, want)
	}
}

func TestMapDescendants_Diamond(t *testing.T) {
	// 1 -> {2, 3} -> 4: node 4 reachable via two paths, mutated once.
	g := buildGraph(t, []int64{1, 2, 3, 4}, [][2]int64{{1, 2}, {1, 3}, {2, 4}, {3, 4}})

	var visited []int64
	g.MapDescendants([]int64{1}, collect(&visited))

	if want := []int64{2, 3, 4}; !slices.Equal(sorted(visited), want) {
		t.Errorf("MapDescendants(1) visited %v, want each reachable node exactly once: %v", visited, want)
	}
}

func TestMapDescendants_CycleTerminates(t *testing.T) {
	// 1 -> 2 -> 3 -> 1: a cycle. Every node including the seed is
	// reachable, each mutated exactly once.
	g := buildGraph(t, []int64{1, 2, 3}, [][2]int64{{1, 2}, {2, 3}, {3, 1}})

	var visited []int64
	g.MapDescendants([]int64{1}, collect(&visited))

	if want := []int64{1, 2, 3}; !slices.Equal(sorted(visited), want) {
		t.Errorf("MapDescendants() on cycle visited %v, want %v", visited, want)
	}
}

func TestMapAscendants_SelfLoop(t *testing.T) {
	g := buildGraph(t, []int64{1}, [][2]int64{{1, 1}})

	var visited []int64
	g.MapAscendants([]int64{1}, collect(&visited))

	if want := []int64{1}; !slices.Equal(visited, want) {
		t.Errorf("MapAscendants() on self-loop visited %v, want %v", visited, want)
	}
}

func TestMapAscendants_ThroughUnregistered(t *testing.T) {
	// 1 -> 99 -> 2 with node 99 missing: the closure still propagates
	// through 99 but only mutates registered nodes.
	g := buildGraph(t, []int64{1, 2}, [][2]int64{{1, 99}, {99, 2}})

	var visited []int64
	g.MapAscendants([]int64{2}, collect(&visited))

	if want := []int64{1}; !slices.Equal(visited, want) {
		t.Errorf("MapAscendants(2) visited %v, want %v", visited, want)
	}
}

func TestMapDescendants_MutationIsVisibility(t *testing.T) {
	g := buildGraph(t, []int64{1, 2, 3}, [][2]int64{{1, 2}, {2, 3}})
	g.MapDescendants([]int64{1}, func(n *Node[struct{}]) { n.Visible = false })

	for _, id := range []int64{2, 3} {
		if n, _ := g.Node(id); n.Visible {
			t.Errorf("node %d still visible after hide traversal", id)
		}
	}
	if n, _ := g.Node(1); !n.Visible {
		t.Error("seed node hidden by descendant traversal, want untouched")
	}
}
