package fbx

import (
	"strings"
	"testing"
)

const sceneDoc = `[
  {"name": "Header", "children": [{"name": "Creator", "attrs": ["test"]}]},
  {"name": "Objects", "children": [
    {"name": "Model", "attrs": [1, "Cube\u0000\u0001Model", "Mesh"]},
    {"name": "Material", "attrs": [2, "Red\u0000\u0001Material", "Phong"]},
    {"name": "Geometry", "attrs": ["not-an-object"]},
    {"name": "Pose", "attrs": [3, "BindPose\u0000\u0001Pose", "BindPose"], "children": [
      {"name": "Type", "attrs": ["BindPose"]},
      {"name": "PoseNode", "children": [
        {"name": "Node", "attrs": [1]},
        {"name": "Matrix", "attrs": [1.0]}
      ]}
    ]}
  ]},
  {"name": "Connections", "children": [
    {"name": "C", "attrs": ["OO", 1, 0]},
    {"name": "C", "attrs": ["OP", 2, 1, "DiffuseColor"]},
    {"name": "Comment"}
  ]}
]`

func TestTraverse_Scene(t *testing.T) {
	g := NewGraph("scene.fbx")
	if err := Traverse(g, NewDocumentReader(strings.NewReader(sceneDoc))); err != nil {
		t.Fatalf("Traverse() error = %v", err)
	}

	// Root + Model + Material + Pose.
	if g.NodeCount() != 4 {
		t.Errorf("NodeCount() = %d, want 4", g.NodeCount())
	}
	// Pose edge + two connection records.
	if g.EdgeCount() != 3 {
		t.Errorf("EdgeCount() = %d, want 3", g.EdgeCount())
	}

	model, ok := g.Node(1)
	if !ok {
		t.Fatal("node 1 missing")
	}
	if model.Data == nil || model.Data.Class != "Model" || model.Data.Name != "Cube" {
		t.Errorf("node 1 data = %+v, want class Model name Cube", model.Data)
	}
	if got := model.Styles["label"]; got != `Model::Cube\nMesh\n1` {
		t.Errorf("node 1 label = %q", got)
	}

	root, ok := g.Node(RootUID)
	if !ok {
		t.Fatal("implicit root node missing")
	}
	if root.Data != nil {
		t.Errorf("root node carries payload %+v, want none", root.Data)
	}
}

func TestTraverse_ConnectionEdges(t *testing.T) {
	g := NewGraph("scene.fbx")
	if err := Traverse(g, NewDocumentReader(strings.NewReader(sceneDoc))); err != nil {
		t.Fatalf("Traverse() error = %v", err)
	}

	var oo, op, pose *Edge
	for _, e := range g.Edges() {
		switch e.Data.ConnectionType {
		case "OO":
			oo = e
		case "OP":
			op = e
		case "Pose":
			pose = e
		}
	}

	if oo == nil || oo.Parent != 0 || oo.Child != 1 {
		t.Errorf("OO edge = %+v, want parent 0 child 1", oo)
	}
	if op == nil || op.Parent != 1 || op.Child != 2 {
		t.Fatalf("OP edge = %+v, want parent 1 child 2", op)
	}
	if op.Data.PropertyName != "DiffuseColor" {
		t.Errorf("OP property name = %q, want DiffuseColor", op.Data.PropertyName)
	}
	if op.Styles["label"] != "DiffuseColor" {
		t.Errorf("OP label style = %q, want DiffuseColor", op.Styles["label"])
	}
	if pose == nil || pose.Parent != 3 || pose.Child != 1 {
		t.Errorf("Pose edge = %+v, want parent 3 child 1", pose)
	}
}

func TestTraverse_SkipsMalformedObjects(t *testing.T) {
	doc := `[{"name": "Objects", "children": [
	  {"name": "Model", "attrs": [7]},
	  {"name": "Model", "attrs": [8, "Ok\u0000\u0001Model", "Mesh"]}
	]}]`

	g := NewGraph("x")
	if err := Traverse(g, NewDocumentReader(strings.NewReader(doc))); err != nil {
		t.Fatalf("Traverse() error = %v", err)
	}

	if _, ok := g.Node(7); ok {
		t.Error("malformed object record produced a node")
	}
	if _, ok := g.Node(8); !ok {
		t.Error("well-formed record after a malformed one was lost")
	}
}

func TestTraverse_MalformedJSONFatal(t *testing.T) {
	g := NewGraph("x")
	err := Traverse(g, NewDocumentReader(strings.NewReader("{not json")))
	if err == nil {
		t.Fatal("Traverse() error = nil, want decode failure")
	}
}

func TestNewDocumentReader_LargeUIDPrecision(t *testing.T) {
	// 2^53+1 is not representable as float64; json.Number must preserve it.
	doc := `[{"name": "Objects", "children": [
	  {"name": "Model", "attrs": [9007199254740993, "Cube\u0000\u0001Model", "Mesh"]}
	]}]`

	g := NewGraph("x")
	if err := Traverse(g, NewDocumentReader(strings.NewReader(doc))); err != nil {
		t.Fatalf("Traverse() error = %v", err)
	}
	if _, ok := g.Node(9007199254740993); !ok {
		t.Error("64-bit UID lost precision during decode")
	}
}
