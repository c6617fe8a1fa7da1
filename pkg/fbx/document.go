package fbx

import (
	"encoding/json"
	"io"

	"github.com/lo48576/fbx-objects-depviz/pkg/errors"
)

// docNode is the JSON shape of one document node. A document is a top-level
// array of these, e.g. as produced by an FBX-to-JSON dump tool:
//
//	[
//	  {"name": "Objects", "children": [
//	    {"name": "Model", "attrs": [282828, "Cube\u0000\u0001Model", "Mesh"]}
//	  ]},
//	  {"name": "Connections", "children": [
//	    {"name": "C", "attrs": ["OO", 282828, 0]}
//	  ]}
//	]
type docNode struct {
	Name     string    `json:"name"`
	Attrs    []any     `json:"attrs"`
	Children []docNode `json:"children"`
}

// documentReader yields the event stream for a decoded JSON node tree.
type documentReader struct {
	events []Event
	pos    int
}

// NewDocumentReader decodes a JSON node-tree document and returns a [Reader]
// over its depth-first event stream. Numeric attributes are decoded with
// json.Number precision so 64-bit UIDs survive the round trip. Unknown
// object keys are ignored.
//
// The decode error, if any, is returned by the first call to Next.
func NewDocumentReader(r io.Reader) Reader {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var nodes []docNode
	if err := dec.Decode(&nodes); err != nil {
		return &errReader{err: errors.Wrap(errors.ErrCodeInvalidInput, err, "decode document")}
	}

	dr := &documentReader{}
	for _, n := range nodes {
		dr.push(n)
	}
	dr.events = append(dr.events, EndDocument{})
	return dr
}

func (d *documentReader) push(n docNode) {
	d.events = append(d.events, StartNode{Name: n.Name, Attrs: convertAttrs(n.Attrs)})
	for _, c := range n.Children {
		d.push(c)
	}
	d.events = append(d.events, EndNode{})
}

func (d *documentReader) Next() (Event, error) {
	if d.pos >= len(d.events) {
		return EndDocument{}, nil
	}
	ev := d.events[d.pos]
	d.pos++
	return ev, nil
}

// convertAttrs maps JSON values onto decoder attribute types: json.Number
// becomes int64 when integral (float64 otherwise), everything else passes
// through unchanged.
func convertAttrs(raw []any) []Attr {
	if len(raw) == 0 {
		return nil
	}
	attrs := make([]Attr, len(raw))
	for i, v := range raw {
		if num, ok := v.(json.Number); ok {
			if n, err := num.Int64(); err == nil {
				attrs[i] = n
				continue
			}
			if f, err := num.Float64(); err == nil {
				attrs[i] = f
				continue
			}
		}
		attrs[i] = v
	}
	return attrs
}

// errReader reports a decode failure on first use.
type errReader struct {
	err error
}

func (r *errReader) Next() (Event, error) { return nil, r.err }
