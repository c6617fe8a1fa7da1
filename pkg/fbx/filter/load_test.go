package filter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lo48576/fbx-objects-depviz/pkg/errors"
)

const sampleTOML = `
show_implicit_nodes = true

[graph_styles]
rankdir = "LR"

[node_styles]
shape = "box"

[node_operations]
emphasize = [
    { name = "update-attr", args = [["color", "red"], ["penwidth", "2"]] },
]
prune = [
    { name = "hide", args = [["self", "descendant"]] },
]

[edge_operations]
dashed = [
    { name = "update-attr", args = [["style", "dashed"]] },
]

[[node_filters]]
operations = ["emphasize"]
[node_filters.condition]
class = "^Model$"
name = "Cube"

[[node_filters]]
operations = ["prune"]
[node_filters.condition]
uid = "^42$"

[[edge_filters]]
operations = ["dashed"]
[edge_filters.condition]
connection_type = "^OP$"
property_name = "DiffuseColor"
[edge_filters.condition.src_condition]
class = "Material"
`

const sampleJSON = `{
    "show_implicit_nodes": false,
    "edge_styles": {"arrowhead": "open"},
    "node_operations": {
        "emphasize": [
            {"name": "update-attr", "args": [["color", "red"]]}
        ]
    },
    "node_filters": [
        {"condition": {"class": "^Model$"}, "operations": ["emphasize"]}
    ]
}`

func TestParse_TOML(t *testing.T) {
	f, err := Parse([]byte(sampleTOML), ".toml")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if !f.ShowImplicit() {
		t.Error("ShowImplicit() = false, want true")
	}
	if f.GraphStyles["rankdir"] != "LR" {
		t.Errorf("GraphStyles = %v", f.GraphStyles)
	}
	if f.NodeStyles["shape"] != "box" {
		t.Errorf("NodeStyles = %v", f.NodeStyles)
	}

	emph := f.NodeOperations["emphasize"]
	if len(emph) != 1 || emph[0].Name != "update-attr" {
		t.Fatalf("emphasize group = %+v", emph)
	}
	if len(emph[0].Args) != 2 || emph[0].Args[0][1] != "red" {
		t.Errorf("emphasize args = %v", emph[0].Args)
	}
	prune := f.NodeOperations["prune"]
	if len(prune) != 1 || len(prune[0].Args[0]) != 2 {
		t.Fatalf("prune group = %+v", prune)
	}

	if len(f.NodeFilters) != 2 {
		t.Fatalf("NodeFilters count = %d, want 2", len(f.NodeFilters))
	}
	first := f.NodeFilters[0]
	if first.Condition.Class == nil || *first.Condition.Class != "^Model$" {
		t.Errorf("first rule class = %v", first.Condition.Class)
	}
	if first.Condition.Subclass != nil {
		t.Error("absent subclass deserialized as non-nil")
	}
	if f.NodeFilters[1].Condition.UID == nil || *f.NodeFilters[1].Condition.UID != "^42$" {
		t.Errorf("second rule uid = %v", f.NodeFilters[1].Condition.UID)
	}

	if len(f.EdgeFilters) != 1 {
		t.Fatalf("EdgeFilters count = %d, want 1", len(f.EdgeFilters))
	}
	ec := f.EdgeFilters[0].Condition
	if ec.ConnectionType == nil || *ec.ConnectionType != "^OP$" {
		t.Errorf("connection_type = %v", ec.ConnectionType)
	}
	if ec.Src == nil || ec.Src.Class == nil || *ec.Src.Class != "Material" {
		t.Errorf("src_condition = %+v", ec.Src)
	}
	if ec.Dst != nil {
		t.Error("absent dst_condition deserialized as non-nil")
	}
}

func TestParse_JSON(t *testing.T) {
	f, err := Parse([]byte(sampleJSON), ".json")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if f.ShowImplicit() {
		t.Error("ShowImplicit() = true, want false")
	}
	if f.ShowImplicitNodes == nil {
		t.Error("explicit false deserialized as unset")
	}
	if f.EdgeStyles["arrowhead"] != "open" {
		t.Errorf("EdgeStyles = %v", f.EdgeStyles)
	}
	if len(f.NodeFilters) != 1 {
		t.Fatalf("NodeFilters count = %d, want 1", len(f.NodeFilters))
	}
}

func TestParse_UnknownFieldsIgnored(t *testing.T) {
	doc := `
future_option = "whatever"
[node_styles]
shape = "box"
`
	f, err := Parse([]byte(doc), ".toml")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if f.NodeStyles["shape"] != "box" {
		t.Errorf("NodeStyles = %v", f.NodeStyles)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name     string
		data     string
		ext      string
		wantCode errors.Code
	}{
		{name: "MalformedTOML", data: "= broken", ext: ".toml", wantCode: errors.ErrCodeInvalidFilter},
		{name: "MalformedJSON", data: "{", ext: ".json", wantCode: errors.ErrCodeInvalidFilter},
		{name: "UnsupportedExtension", data: "", ext: ".yaml", wantCode: errors.ErrCodeUnsupported},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data), tt.ext)
			if err == nil {
				t.Fatal("Parse() error = nil")
			}
			if got := errors.GetCode(err); got != tt.wantCode {
				t.Errorf("error code = %q, want %q", got, tt.wantCode)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "filters.toml")
	if err := os.WriteFile(path, []byte(sampleTOML), 0o644); err != nil {
		t.Fatal(err)
	}

	f, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(f.NodeFilters) != 2 {
		t.Errorf("NodeFilters count = %d, want 2", len(f.NodeFilters))
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("Load() error = %v, want FILE_NOT_FOUND", err)
	}
}
