package graph

// MutateFunc is a side-effecting mutation applied to a single node during
// traversal, such as "set Visible = false". Traversal never creates or
// removes nodes; it only mutates existing nodes found by UID lookup.
type MutateFunc[N any] func(*Node[N])

// MapParents applies fn to every direct parent of the seed UIDs: for each
// edge whose child is a seed, the edge's parent node is mutated. Each
// distinct parent is mutated once. Unregistered parent UIDs are silently
// skipped.
func (g *Graph[N, E]) MapParents(seeds []int64, fn MutateFunc[N]) {
	g.mapAdjacent(seeds, fn, false)
}

// MapChildren applies fn to every direct child of the seed UIDs: for each
// edge whose parent is a seed, the edge's child node is mutated. Each
// distinct child is mutated once. Unregistered child UIDs are silently
// skipped.
func (g *Graph[N, E]) MapChildren(seeds []int64, fn MutateFunc[N]) {
	g.mapAdjacent(seeds, fn, true)
}

// MapAscendants applies fn to every node reachable from the seeds by
// following parent edges transitively. A per-call done set guarantees each
// reachable node is mutated at most once and that traversal terminates on
// cyclic graphs. Seeds themselves are mutated only when reachable from a
// seed, i.e. when they sit on a cycle.
func (g *Graph[N, E]) MapAscendants(seeds []int64, fn MutateFunc[N]) {
	g.mapClosure(seeds, fn, false)
}

// MapDescendants applies fn to every node reachable from the seeds by
// following child edges transitively. See MapAscendants for the visit-once
// and termination guarantees.
func (g *Graph[N, E]) MapDescendants(seeds []int64, fn MutateFunc[N]) {
	g.mapClosure(seeds, fn, true)
}

// mapAdjacent is the single-hop traversal shared by MapParents and
// MapChildren. When childward is true the traversal follows parent->child
// edges, otherwise child->parent.
func (g *Graph[N, E]) mapAdjacent(seeds []int64, fn MutateFunc[N], childward bool) {
	seen := make(map[int64]bool, len(seeds))
	for _, id := range seeds {
		seen[id] = true
	}
	applied := make(map[int64]bool)
	for _, e := range g.edges {
		from, to := e.Child, e.Parent
		if childward {
			from, to = e.Parent, e.Child
		}
		if !seen[from] || applied[to] {
			continue
		}
		applied[to] = true
		if n, ok := g.nodes[to]; ok {
			fn(n)
		}
	}
}

// mapClosure is the breadth-first transitive closure shared by
// MapAscendants and MapDescendants. Unregistered UIDs still propagate the
// frontier (their edges are followed) but receive no mutation.
func (g *Graph[N, E]) mapClosure(seeds []int64, fn MutateFunc[N], childward bool) {
	done := make(map[int64]bool)
	frontier := make(map[int64]bool, len(seeds))
	for _, id := range seeds {
		frontier[id] = true
	}
	for len(frontier) > 0 {
		next := make(map[int64]bool)
		for _, e := range g.edges {
			from, to := e.Child, e.Parent
			if childward {
				from, to = e.Parent, e.Child
			}
			if frontier[from] && !done[to] {
				next[to] = true
			}
		}
		for id := range next {
			done[id] = true
			if n, ok := g.nodes[id]; ok {
				fn(n)
			}
		}
		frontier = next
	}
}
