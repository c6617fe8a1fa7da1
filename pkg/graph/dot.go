package graph

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"
)

// DOTOptions configures DOT serialization.
type DOTOptions struct {
	// All emits every node and edge regardless of visibility flags.
	// Used when no filter document was applied.
	All bool

	// ShowImplicitNodes controls whether edges referencing a UID with no
	// corresponding node are emitted. When false (the default) such edges
	// are treated as having a hidden endpoint and are omitted.
	ShowImplicitNodes bool
}

// WriteDOT serializes the graph in Graphviz DOT format.
//
// The output starts with a digraph header named after the graph, followed by
// one attribute block per non-empty style-default map (graph, node, edge),
// one line per emitted node with its style attributes, and one line per
// emitted edge. Unless opts.All is set, a node is emitted when its Visible
// flag is true and an edge when both endpoints are visible; unregistered
// endpoints count as visible according to opts.ShowImplicitNodes.
//
// Style maps are emitted in sorted key order so output is deterministic.
// Attribute values are escaped by doubling embedded quote characters only.
func (g *Graph[N, E]) WriteDOT(w io.Writer, opts DOTOptions) error {
	if _, err := fmt.Fprintf(w, "digraph \"%s\" {\n", escapeValue(g.Name)); err != nil {
		return err
	}
	if err := writeDefaults(w, "graph", g.GraphStyles); err != nil {
		return err
	}
	if err := writeDefaults(w, "node", g.NodeStyles); err != nil {
		return err
	}
	if err := writeDefaults(w, "edge", g.EdgeStyles); err != nil {
		return err
	}

	for _, id := range g.NodeIDs() {
		n := g.nodes[id]
		if !opts.All && !n.Visible {
			continue
		}
		if _, err := fmt.Fprintf(w, "\t%d%s\n", n.ID, fmtAttrs(n.Styles)); err != nil {
			return err
		}
	}

	for _, e := range g.edges {
		if !opts.All && !(g.endpointVisible(e.Parent, opts) && g.endpointVisible(e.Child, opts)) {
			continue
		}
		if _, err := fmt.Fprintf(w, "\t%d -> %d%s\n", e.Parent, e.Child, fmtAttrs(e.Styles)); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintln(w, "}")
	return err
}

// endpointVisible reports whether the edge endpoint with the given UID
// should be treated as visible. Unregistered UIDs fall back to the
// ShowImplicitNodes option.
func (g *Graph[N, E]) endpointVisible(id int64, opts DOTOptions) bool {
	n, ok := g.nodes[id]
	if !ok {
		return opts.ShowImplicitNodes
	}
	return n.Visible
}

// writeDefaults emits a group-level attribute block such as
//
//	node [
//		shape="box",
//		style="filled"
//	]
//
// Empty style maps produce no output.
func writeDefaults(w io.Writer, group string, styles Styles) error {
	if len(styles) == 0 {
		return nil
	}
	if _, err := fmt.Fprintf(w, "\t%s [\n", group); err != nil {
		return err
	}
	keys := slices.Sorted(maps.Keys(styles))
	for i, k := range keys {
		sep := ",\n"
		if i == len(keys)-1 {
			sep = "\n"
		}
		if _, err := fmt.Fprintf(w, "\t\t%s=\"%s\"%s", k, escapeValue(styles[k]), sep); err != nil {
			return err
		}
	}
	_, err := fmt.Fprint(w, "\t]\n")
	return err
}

// fmtAttrs renders a per-entity attribute list like ` [label="a", color="b"]`,
// or the empty string when there are no attributes.
func fmtAttrs(styles Styles) string {
	if len(styles) == 0 {
		return ""
	}
	parts := make([]string, 0, len(styles))
	for _, k := range slices.Sorted(maps.Keys(styles)) {
		parts = append(parts, fmt.Sprintf("%s=\"%s\"", k, escapeValue(styles[k])))
	}
	return " [" + strings.Join(parts, ", ") + "]"
}

// escapeValue doubles embedded quote characters. DOT requires no other
// escaping for quoted attribute values here; backslash sequences are passed
// through so labels may contain literal "\n".
func escapeValue(v string) string {
	return strings.ReplaceAll(v, `"`, `""`)
}
