package graph

import "slices"

// Styles holds free-form Graphviz attributes as key/value pairs.
// Keys are unique; insertion order is irrelevant (output is sorted).
type Styles map[string]string

// Merge copies every key from other into s, overwriting on collision.
func (s Styles) Merge(other map[string]string) {
	for k, v := range other {
		s[k] = v
	}
}

// Node represents a single FBX object in the dependency graph.
// The payload type N carries decoder-specific object data and may be a
// pointer type whose nil value means "no data" (implicit nodes, such as the
// document root, have no payload).
//
// Nodes are never deleted once added; hiding an entity from the output is
// done by clearing Visible. The ID never changes and is never reused.
type Node[N any] struct {
	ID      int64  // Object UID, unique within a graph
	Visible bool   // Emitted by WriteDOT when true (default)
	Styles  Styles // Per-node Graphviz attributes (never nil after NewNode)
	Data    N      // Opaque decoder payload
}

// NewNode creates a visible node with an empty style map and zero payload.
func NewNode[N any](id int64) *Node[N] {
	return &Node[N]{ID: id, Visible: true, Styles: Styles{}}
}

// NewNodeWithData creates a visible node carrying the given payload.
func NewNodeWithData[N any](id int64, data N) *Node[N] {
	n := NewNode[N](id)
	n.Data = data
	return n
}

// Edge represents a directed (parent, child) connection. Parent and Child
// reference node UIDs but are not validated: an edge may legally point at a
// UID with no corresponding node. Parent and Child are immutable after
// creation; Styles and Data are mutable by filter operations.
type Edge[E any] struct {
	Parent int64
	Child  int64
	Styles Styles // Per-edge Graphviz attributes (never nil after NewEdge)
	Data   E      // Opaque decoder payload
}

// NewEdge creates an edge from parent to child with an empty style map.
func NewEdge[E any](parent, child int64) *Edge[E] {
	return &Edge[E]{Parent: parent, Child: child, Styles: Styles{}}
}

// Graph is a directed graph of FBX objects with collection-wide style
// defaults. Nodes are keyed by UID; edges are an append-only sequence that
// permits duplicates and unregistered endpoints.
//
// The zero value is not usable - use New.
// Graph is not safe for concurrent use without external synchronization.
type Graph[N, E any] struct {
	// Name is the graph name emitted in the DOT header, typically the
	// source document path.
	Name string

	// GraphStyles, NodeStyles and EdgeStyles are the collection-wide
	// defaults emitted as the DOT graph/node/edge attribute blocks. They
	// are independent of per-entity style maps: attribute operations only
	// ever touch the per-entity maps.
	GraphStyles Styles
	NodeStyles  Styles
	EdgeStyles  Styles

	nodes map[int64]*Node[N]
	edges []*Edge[E]
}

// New creates an empty graph with the given name.
func New[N, E any](name string) *Graph[N, E] {
	return &Graph[N, E]{
		Name:        name,
		GraphStyles: Styles{},
		NodeStyles:  Styles{},
		EdgeStyles:  Styles{},
		nodes:       make(map[int64]*Node[N]),
	}
}

// AddNode inserts the node, keyed by its ID. If a node with the same ID is
// already present it is replaced (not merged) and the previous node is
// returned; otherwise AddNode returns nil. A nil style map is initialized
// to an empty map.
func (g *Graph[N, E]) AddNode(n *Node[N]) *Node[N] {
	if n.Styles == nil {
		n.Styles = Styles{}
	}
	prev := g.nodes[n.ID]
	g.nodes[n.ID] = n
	return prev
}

// AddEdge appends the edge. Endpoints are not validated: edges referencing
// unregistered UIDs are kept and resolved at traversal and emission time.
// A nil style map is initialized to an empty map.
func (g *Graph[N, E]) AddEdge(e *Edge[E]) {
	if e.Styles == nil {
		e.Styles = Styles{}
	}
	g.edges = append(g.edges, e)
}

// Node returns the node with the given UID and true, or nil and false.
// The returned pointer refers to the node stored in the graph, so
// modifications affect the graph.
func (g *Graph[N, E]) Node(id int64) (*Node[N], bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// Nodes returns all nodes in the graph. The order is not guaranteed; use
// NodeIDs for a deterministic iteration order. The returned slice contains
// pointers to the stored nodes.
func (g *Graph[N, E]) Nodes() []*Node[N] {
	nodes := make([]*Node[N], 0, len(g.nodes))
	for _, n := range g.nodes {
		nodes = append(nodes, n)
	}
	return nodes
}

// NodeIDs returns all node UIDs in ascending order.
func (g *Graph[N, E]) NodeIDs() []int64 {
	ids := make([]int64, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Edges returns the edge sequence in insertion order. The returned slice
// contains pointers to the stored edges; it must not be reordered.
func (g *Graph[N, E]) Edges() []*Edge[E] { return g.edges }

// NodeCount returns the number of nodes in the graph.
func (g *Graph[N, E]) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of edges in the graph.
func (g *Graph[N, E]) EdgeCount() int { return len(g.edges) }
