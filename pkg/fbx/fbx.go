// Package fbx builds object dependency graphs from decoded FBX documents.
//
// The package consumes a depth-first event stream (see [Reader]) describing
// the document's node tree and materializes the "Objects" and "Connections"
// sections into a [Graph]: one graph node per object record, one edge per
// connection record, plus the Pose-to-bone links nested inside Pose objects.
// Everything outside those sections is skipped.
//
// The [filter] subpackage applies declarative restyle/hide rules to the
// resulting graph before DOT emission.
//
// [filter]: github.com/lo48576/fbx-objects-depviz/pkg/fbx/filter
package fbx

import (
	"fmt"

	"github.com/lo48576/fbx-objects-depviz/pkg/errors"
	"github.com/lo48576/fbx-objects-depviz/pkg/graph"
)

// NodeData is the graph node payload: the object record properties, or nil
// for implicit nodes such as the document root.
type NodeData = *ObjectProperties

// EdgeData is the graph edge payload decoded from a connection record.
// Empty fields mean the record did not carry the value.
type EdgeData struct {
	ConnectionType string // "OO", "OP", "Pose", ...
	PropertyName   string // set for object-to-property connections
}

// Graph is an object dependency graph with FBX payloads.
type Graph = graph.Graph[NodeData, EdgeData]

// Node is a graph node carrying optional object properties.
type Node = graph.Node[NodeData]

// Edge is a graph edge carrying connection metadata.
type Edge = graph.Edge[EdgeData]

// RootUID is the UID of the implicit document root object. Top-level
// connection records reference it as their parent.
const RootUID = 0

// NewGraph creates an empty dependency graph named after the source document
// and registers the implicit root node. Real documents never carry an object
// record for the root, but connections point at it.
func NewGraph(name string) *Graph {
	g := graph.New[NodeData, EdgeData](name)
	g.AddNode(graph.NewNode[NodeData](RootUID))
	return g
}

// Traverse walks the document event stream and adds every discovered object
// and connection to g. Object records that do not carry the (uid,
// name+class, subclass) attribute triple are skipped; structural stream
// errors abort with the decoder's error.
func Traverse(g *Graph, r Reader) error {
	for {
		name, _, ok, err := nextNode(r)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		switch name {
		case "Objects":
			err = traverseObjects(g, r)
		case "Connections":
			err = traverseConnections(g, r)
		default:
			err = skipCurrentNode(r)
		}
		if err != nil {
			return err
		}
	}
}

func traverseObjects(g *Graph, r Reader) error {
	for {
		name, attrs, ok, err := nextNode(r)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		props := objectPropertiesFromAttrs(attrs)
		if props == nil {
			if err := skipCurrentNode(r); err != nil {
				return err
			}
			continue
		}
		if name == "Pose" {
			if err := traversePose(g, r, props); err != nil {
				return err
			}
			continue
		}
		g.AddNode(newObjectNode(props))
		if err := skipCurrentNode(r); err != nil {
			return err
		}
	}
}

// traversePose handles a Pose object: besides the object node itself, every
// nested PoseNode contributes a "Pose" typed edge from the pose object to
// the referenced bone node.
func traversePose(g *Graph, r Reader, props *ObjectProperties) error {
	for {
		name, _, ok, err := nextNode(r)
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		if name != "PoseNode" {
			if err := skipCurrentNode(r); err != nil {
				return err
			}
			continue
		}
		var childUID *int64
		for {
			name, attrs, ok, err := nextNode(r)
			if err != nil {
				return err
			}
			if !ok {
				break
			}
			if name == "Node" && len(attrs) > 0 {
				if uid, ok := AttrInt64(attrs[0]); ok {
					childUID = &uid
				}
			}
			if err := skipCurrentNode(r); err != nil {
				return err
			}
		}
		if childUID != nil {
			e := graph.NewEdge[EdgeData](props.UID, *childUID)
			e.Data.ConnectionType = "Pose"
			g.AddEdge(e)
		}
	}
	g.AddNode(newObjectNode(props))
	return nil
}

func traverseConnections(g *Graph, r Reader) error {
	for {
		name, attrs, ok, err := nextNode(r)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if name == "C" {
			addConnectionEdge(g, attrs)
		}
		if err := skipCurrentNode(r); err != nil {
			return err
		}
	}
}

// addConnectionEdge decodes a "C" record: (connection type, child UID,
// parent UID, optional property name). Records missing any of the first
// three attributes are ignored.
func addConnectionEdge(g *Graph, attrs []Attr) {
	if len(attrs) < 3 {
		return
	}
	connType, ok := AttrString(attrs[0])
	if !ok {
		return
	}
	childUID, ok := AttrInt64(attrs[1])
	if !ok {
		return
	}
	parentUID, ok := AttrInt64(attrs[2])
	if !ok {
		return
	}
	e := graph.NewEdge[EdgeData](parentUID, childUID)
	e.Data.ConnectionType = connType
	if len(attrs) > 3 {
		if propName, ok := AttrString(attrs[3]); ok {
			e.Styles["label"] = propName
			e.Data.PropertyName = propName
		}
	}
	g.AddEdge(e)
}

// newObjectNode creates the graph node for an object record. The label
// carries class, name, subclass and UID on separate lines ("\n" is a DOT
// escape interpreted by Graphviz, not a literal newline).
func newObjectNode(props *ObjectProperties) *Node {
	n := graph.NewNodeWithData(props.UID, NodeData(props))
	n.Styles["label"] = fmt.Sprintf(`%s::%s\n%s\n%d`, props.Class, props.Name, props.Subclass, props.UID)
	return n
}

// nextNode advances to the next sibling node start. ok=false means the
// enclosing node (or the document) ended.
func nextNode(r Reader) (name string, attrs []Attr, ok bool, err error) {
	ev, err := r.Next()
	if err != nil {
		return "", nil, false, err
	}
	switch e := ev.(type) {
	case StartNode:
		return e.Name, e.Attrs, true, nil
	case EndNode, EndDocument:
		return "", nil, false, nil
	default:
		return "", nil, false, errors.New(errors.ErrCodeInvalidInput, "unexpected event %T", ev)
	}
}

// skipCurrentNode consumes events until the current node's EndNode,
// balancing nested children. Reaching EndDocument here means the stream is
// unbalanced.
func skipCurrentNode(r Reader) error {
	depth := 0
	for {
		ev, err := r.Next()
		if err != nil {
			return err
		}
		switch ev.(type) {
		case StartNode:
			depth++
		case EndNode:
			if depth == 0 {
				return nil
			}
			depth--
		case EndDocument:
			return errors.New(errors.ErrCodeInvalidInput, "unbalanced document: end of stream inside a node")
		}
	}
}
