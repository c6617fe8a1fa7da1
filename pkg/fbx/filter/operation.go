package filter

import (
	"github.com/lo48576/fbx-objects-depviz/pkg/fbx"
	"github.com/lo48576/fbx-objects-depviz/pkg/graph"
)

// Operation is one step of a named operation group. Name selects the
// behavior; Args is an ordered list of argument groups whose meaning depends
// on the operation. Operation names outside the known vocabulary are
// silently ignored.
type Operation struct {
	Name string     `toml:"name" json:"name"`
	Args [][]string `toml:"args" json:"args"`
}

// opKind is the closed enumeration behind the operation name vocabulary.
// Unknown names map to opUnknown, which applies as the identity.
type opKind int

const (
	opUnknown opKind = iota
	opUpdateAttr
	opRemoveAttr
	opHide
	opShow
)

func opKindOf(name string) opKind {
	switch name {
	case "update-attr":
		return opUpdateAttr
	case "remove-attr":
		return opRemoveAttr
	case "hide":
		return opHide
	case "show":
		return opShow
	default:
		return opUnknown
	}
}

// visTarget is the vocabulary of hide/show traversal targets. Unrecognized
// target tokens map to targetUnknown and are ignored.
type visTarget int

const (
	targetUnknown visTarget = iota
	targetSelf
	targetAscendant
	targetDescendant
	targetParents
	targetChildren
)

func visTargetOf(token string) visTarget {
	switch token {
	case "self":
		return targetSelf
	case "ascendant":
		return targetAscendant
	case "descendant":
		return targetDescendant
	case "parents":
		return targetParents
	case "children":
		return targetChildren
	default:
		return targetUnknown
	}
}

// applyUpdateAttr applies update-attr argument groups to a style map: each
// group with at least two elements sets key = group[0] to value = group[1].
// Groups with fewer than two elements are ignored.
func applyUpdateAttr(styles graph.Styles, args [][]string) {
	for _, group := range args {
		if len(group) < 2 {
			continue
		}
		styles[group[0]] = group[1]
	}
}

// applyRemoveAttr removes every key named by the first argument group from
// the style map. Missing keys are a no-op.
func applyRemoveAttr(styles graph.Styles, args [][]string) {
	if len(args) == 0 {
		return
	}
	for _, key := range args[0] {
		delete(styles, key)
	}
}

// applyVisibility sets the visibility flag on the targets enumerated by the
// first argument group of a hide/show operation. "self" touches only the
// matched node; the directional targets dispatch to the graph traversal
// seeded with the matched node's UID.
func applyVisibility(g *fbx.Graph, id int64, visible bool, args [][]string) {
	if len(args) == 0 {
		return
	}
	set := func(n *fbx.Node) { n.Visible = visible }
	for _, token := range args[0] {
		switch visTargetOf(token) {
		case targetSelf:
			if n, ok := g.Node(id); ok {
				set(n)
			}
		case targetAscendant:
			g.MapAscendants([]int64{id}, set)
		case targetDescendant:
			g.MapDescendants([]int64{id}, set)
		case targetParents:
			g.MapParents([]int64{id}, set)
		case targetChildren:
			g.MapChildren([]int64{id}, set)
		case targetUnknown:
			// Forward compatibility: unrecognized tokens are ignored.
		}
	}
}
