// Package graph provides the directed graph model used to describe FBX
// object dependencies.
//
// # Overview
//
// An FBX document is a forest of objects connected by typed links. This
// package models that structure as a directed graph: nodes keyed by the
// 64-bit object UID, edges as (parent, child) pairs in the "depends on"
// direction, and free-form Graphviz style attributes on every entity.
//
// The graph is deliberately permissive. Edges may reference UIDs with no
// corresponding node ("unregistered" references, common in real FBX files),
// duplicate edges are allowed, and nothing is ever deleted - entities are
// removed from the output by clearing their visibility flag instead.
//
// # Basic Usage
//
// Create a graph with [New], add nodes with [Graph.AddNode], and edges with
// [Graph.AddEdge]. The payload types N and E carry decoder-specific data and
// are opaque to this package:
//
//	g := graph.New[*props, linkData]("scene.fbx")
//	g.AddNode(graph.NewNode[*props](282828))
//	g.AddEdge(graph.NewEdge[linkData](0, 282828))
//
// # Traversal
//
// The Map* methods apply a [MutateFunc] to nodes reached from a seed set:
// [Graph.MapParents] and [Graph.MapChildren] are single-hop, while
// [Graph.MapAscendants] and [Graph.MapDescendants] compute the transitive
// closure. Closure traversals track visited UIDs per call, so every
// reachable node is mutated exactly once and cyclic graphs terminate.
//
// # Output
//
// [Graph.WriteDOT] serializes the graph in Graphviz DOT format, honoring
// visibility flags and the graph/node/edge style default blocks.
//
// # Concurrency
//
// Graph instances are not safe for concurrent use. The filter engine built
// on top of this package is a single deterministic pass, so no internal
// locking is provided.
package graph
