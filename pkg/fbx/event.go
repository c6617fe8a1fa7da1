package fbx

// Attr is a single attribute value attached to a document node, as produced
// by the decoder. The concrete type is decoder-defined; this package only
// interprets int64 and string values and passes everything else through.
type Attr any

// AttrInt64 extracts an integer attribute. Decoders backed by formats
// without a native integer type (JSON) may produce float64 values; those are
// accepted when they are exactly representable as int64.
func AttrInt64(a Attr) (int64, bool) {
	switch v := a.(type) {
	case int64:
		return v, true
	case int:
		return int64(v), true
	case float64:
		n := int64(v)
		if float64(n) == v {
			return n, true
		}
	}
	return 0, false
}

// AttrString extracts a string attribute.
func AttrString(a Attr) (string, bool) {
	s, ok := a.(string)
	return s, ok
}

// Event is a single parse event produced by a document [Reader].
// The concrete types are [StartNode], [EndNode] and [EndDocument].
type Event interface {
	isEvent()
}

// StartNode marks the beginning of a named document node. Child nodes follow
// until the matching [EndNode].
type StartNode struct {
	Name  string
	Attrs []Attr
}

// EndNode marks the end of the current document node.
type EndNode struct{}

// EndDocument marks the end of the event stream.
type EndDocument struct{}

func (StartNode) isEvent()   {}
func (EndNode) isEvent()     {}
func (EndDocument) isEvent() {}

// Reader is the event-producing side of an FBX decoder. Implementations
// yield a depth-first stream of StartNode/EndNode pairs terminated by a
// single EndDocument. The binary FBX decoders themselves are external
// collaborators; this package ships [NewDocumentReader] for JSON dumps of
// the node tree.
//
// Next returns the next event, or a non-nil error on a structurally
// malformed document. Errors are fatal: traversal does not resume.
type Reader interface {
	Next() (Event, error)
}
