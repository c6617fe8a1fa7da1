// Package filter applies declarative restyle and hide/show rules to FBX
// object dependency graphs.
//
// A filter document (TOML or JSON, see [Load]) carries style-default
// overlays, named operation groups, and ordered rule lists for nodes and
// edges. Each rule pairs a regular-expression condition with the names of
// the operation groups to run on every match.
//
// [Filters.Apply] runs a single deterministic pass: all conditions are
// compiled up front (a bad pattern aborts before any mutation), then node
// rules run in declared order, then edge rules. A rule's matches are
// computed against the graph state left behind by all earlier rules, and
// all of a rule's operations finish before the next rule's matching starts.
package filter

import (
	"slices"

	"github.com/lo48576/fbx-objects-depviz/pkg/errors"
	"github.com/lo48576/fbx-objects-depviz/pkg/fbx"
)

// NodeFilter is one node rule: a condition and the names of the operation
// groups to apply to every matching node. Names without a corresponding
// group in Filters.NodeOperations are ignored.
type NodeFilter struct {
	Condition  NodeCondition `toml:"condition" json:"condition"`
	Operations []string      `toml:"operations" json:"operations"`
}

// EdgeFilter is one edge rule, analogous to NodeFilter.
type EdgeFilter struct {
	Condition  EdgeCondition `toml:"condition" json:"condition"`
	Operations []string      `toml:"operations" json:"operations"`
}

// Filters is a deserialized filter document. The zero value is a valid
// empty filter set. A Filters instance is applied at most once; it holds no
// state across graphs beyond the applied flag.
type Filters struct {
	// Style-default overlays copied into the graph's corresponding
	// collection-wide maps (graph, node, edge attribute blocks).
	GraphStyles map[string]string `toml:"graph_styles" json:"graph_styles"`
	NodeStyles  map[string]string `toml:"node_styles" json:"node_styles"`
	EdgeStyles  map[string]string `toml:"edge_styles" json:"edge_styles"`

	// Named operation groups referenced by the rules.
	NodeOperations map[string][]Operation `toml:"node_operations" json:"node_operations"`
	EdgeOperations map[string][]Operation `toml:"edge_operations" json:"edge_operations"`

	// Ordered rule lists. Node rules always run to completion before the
	// first edge rule.
	NodeFilters []NodeFilter `toml:"node_filters" json:"node_filters"`
	EdgeFilters []EdgeFilter `toml:"edge_filters" json:"edge_filters"`

	// ShowImplicitNodes controls the visibility of edge endpoints that
	// reference a UID with no corresponding node. Absent means hide.
	ShowImplicitNodes *bool `toml:"show_implicit_nodes" json:"show_implicit_nodes"`

	applied bool
}

// ShowImplicit resolves the ShowImplicitNodes option, defaulting to false
// when the document leaves it unset.
func (f *Filters) ShowImplicit() bool {
	return f.ShowImplicitNodes != nil && *f.ShowImplicitNodes
}

type compiledNodeFilter struct {
	cond *compiledNodeCondition
	ops  []string
}

type compiledEdgeFilter struct {
	cond *compiledEdgeCondition
	ops  []string
}

// Apply runs the filter set over the graph, mutating styles and visibility
// in place.
//
// Every condition is compiled before anything else; a malformed pattern
// returns an ErrCodeInvalidPattern error with the graph untouched. Node
// rules then run in declared order: each rule snapshots its match set
// against every node at that moment and applies its operation groups to all
// matches before the next rule matches. Edge rules follow the same scheme
// after all node rules are done.
//
// Apply is single-shot: a second call on the same Filters returns an error.
func (f *Filters) Apply(g *fbx.Graph) error {
	if f.applied {
		return errors.New(errors.ErrCodeInternal, "filter set already applied")
	}

	nodeRules := make([]compiledNodeFilter, len(f.NodeFilters))
	for i, rule := range f.NodeFilters {
		cond, err := rule.Condition.compile()
		if err != nil {
			return err
		}
		nodeRules[i] = compiledNodeFilter{cond: cond, ops: rule.Operations}
	}
	edgeRules := make([]compiledEdgeFilter, len(f.EdgeFilters))
	for i, rule := range f.EdgeFilters {
		cond, err := rule.Condition.compile()
		if err != nil {
			return err
		}
		edgeRules[i] = compiledEdgeFilter{cond: cond, ops: rule.Operations}
	}
	f.applied = true

	g.GraphStyles.Merge(f.GraphStyles)
	g.NodeStyles.Merge(f.NodeStyles)
	g.EdgeStyles.Merge(f.EdgeStyles)

	for _, rule := range nodeRules {
		// Snapshot the match set before mutating: a rule must not see
		// its own side effects, only those of earlier rules.
		var targets []int64
		for _, n := range g.Nodes() {
			if rule.cond.match(n) {
				targets = append(targets, n.ID)
			}
		}
		slices.Sort(targets)
		for _, id := range targets {
			f.applyNodeOperations(g, id, rule.ops)
		}
	}

	for _, rule := range edgeRules {
		var targets []*fbx.Edge
		for _, e := range g.Edges() {
			if rule.cond.match(e, g) {
				targets = append(targets, e)
			}
		}
		for _, e := range targets {
			f.applyEdgeOperations(e, rule.ops)
		}
	}

	return nil
}

// applyNodeOperations runs the named node operation groups against one
// matched node, in name order then group order.
func (f *Filters) applyNodeOperations(g *fbx.Graph, id int64, names []string) {
	for _, name := range names {
		for _, op := range f.NodeOperations[name] {
			switch opKindOf(op.Name) {
			case opUpdateAttr:
				if n, ok := g.Node(id); ok {
					applyUpdateAttr(n.Styles, op.Args)
				}
			case opRemoveAttr:
				if n, ok := g.Node(id); ok {
					applyRemoveAttr(n.Styles, op.Args)
				}
			case opHide:
				applyVisibility(g, id, false, op.Args)
			case opShow:
				applyVisibility(g, id, true, op.Args)
			case opUnknown:
				// Forward compatibility: unknown operations are ignored.
			}
		}
	}
}

// applyEdgeOperations runs the named edge operation groups against one
// matched edge. Edges have no visibility flag, so only the attribute
// operations are meaningful; everything else is ignored.
func (f *Filters) applyEdgeOperations(e *fbx.Edge, names []string) {
	for _, name := range names {
		for _, op := range f.EdgeOperations[name] {
			switch opKindOf(op.Name) {
			case opUpdateAttr:
				applyUpdateAttr(e.Styles, op.Args)
			case opRemoveAttr:
				applyRemoveAttr(e.Styles, op.Args)
			default:
				// hide/show and unknown names: ignored for edges.
			}
		}
	}
}
