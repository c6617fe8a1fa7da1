package filter

import (
	"regexp"
	"strconv"

	"github.com/lo48576/fbx-objects-depviz/pkg/errors"
	"github.com/lo48576/fbx-objects-depviz/pkg/fbx"
)

// NodeCondition selects nodes by matching regular expressions against the
// object properties. Every field is optional; absent fields impose no
// constraint and all present fields must match (logical AND). Patterns use
// search semantics: they match anywhere in the value unless anchored.
type NodeCondition struct {
	// Class matches the object class name ("Model", "Material", ...).
	Class *string `toml:"class" json:"class"`
	// Subclass matches the object subclass name ("Mesh", "Phong", ...).
	Subclass *string `toml:"subclass" json:"subclass"`
	// Name matches the object name.
	Name *string `toml:"name" json:"name"`
	// UID matches the object UID formatted as a decimal string.
	UID *string `toml:"uid" json:"uid"`
}

// EdgeCondition selects edges. Src and Dst constrain the parent and child
// endpoint nodes; an endpoint sub-condition fails when the referenced UID
// has no corresponding node. ConnectionType and PropertyName match the
// connection record fields and fail when the field is absent. All present
// sub-conditions AND together.
type EdgeCondition struct {
	Src            *NodeCondition `toml:"src_condition" json:"src_condition"`
	Dst            *NodeCondition `toml:"dst_condition" json:"dst_condition"`
	ConnectionType *string        `toml:"connection_type" json:"connection_type"`
	PropertyName   *string        `toml:"property_name" json:"property_name"`
}

// compiledNodeCondition holds the compiled matchers for a NodeCondition.
type compiledNodeCondition struct {
	class    *regexp.Regexp
	subclass *regexp.Regexp
	name     *regexp.Regexp
	uid      *regexp.Regexp
}

// compiledEdgeCondition holds the compiled matchers for an EdgeCondition.
type compiledEdgeCondition struct {
	src            *compiledNodeCondition
	dst            *compiledNodeCondition
	connectionType *regexp.Regexp
	propertyName   *regexp.Regexp
}

// compilePattern compiles a single optional pattern. A nil pattern compiles
// to a nil matcher. Compilation failures carry ErrCodeInvalidPattern; they
// are configuration errors, fatal before any graph mutation.
func compilePattern(field string, pattern *string) (*regexp.Regexp, error) {
	if pattern == nil {
		return nil, nil
	}
	re, err := regexp.Compile(*pattern)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPattern, err, "compile %s pattern %q", field, *pattern)
	}
	return re, nil
}

func (c *NodeCondition) compile() (*compiledNodeCondition, error) {
	out := &compiledNodeCondition{}
	var err error
	if out.class, err = compilePattern("class", c.Class); err != nil {
		return nil, err
	}
	if out.subclass, err = compilePattern("subclass", c.Subclass); err != nil {
		return nil, err
	}
	if out.name, err = compilePattern("name", c.Name); err != nil {
		return nil, err
	}
	if out.uid, err = compilePattern("uid", c.UID); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *EdgeCondition) compile() (*compiledEdgeCondition, error) {
	out := &compiledEdgeCondition{}
	var err error
	if c.Src != nil {
		if out.src, err = c.Src.compile(); err != nil {
			return nil, err
		}
	}
	if c.Dst != nil {
		if out.dst, err = c.Dst.compile(); err != nil {
			return nil, err
		}
	}
	if out.connectionType, err = compilePattern("connection_type", c.ConnectionType); err != nil {
		return nil, err
	}
	if out.propertyName, err = compilePattern("property_name", c.PropertyName); err != nil {
		return nil, err
	}
	return out, nil
}

// match reports whether the node satisfies the condition. A node without
// object properties (an implicit node) fails whenever a class, subclass or
// name matcher is present; the UID matcher is evaluated regardless of
// payload presence.
func (c *compiledNodeCondition) match(n *fbx.Node) bool {
	if n.Data != nil {
		if c.class != nil && !c.class.MatchString(n.Data.Class) {
			return false
		}
		if c.subclass != nil && !c.subclass.MatchString(n.Data.Subclass) {
			return false
		}
		if c.name != nil && !c.name.MatchString(n.Data.Name) {
			return false
		}
	} else if c.class != nil || c.subclass != nil || c.name != nil {
		return false
	}
	if c.uid != nil && !c.uid.MatchString(strconv.FormatInt(n.ID, 10)) {
		return false
	}
	return true
}

// match reports whether the edge satisfies the condition. Endpoint
// sub-conditions never match unregistered references.
func (c *compiledEdgeCondition) match(e *fbx.Edge, g *fbx.Graph) bool {
	if c.src != nil {
		src, ok := g.Node(e.Parent)
		if !ok || !c.src.match(src) {
			return false
		}
	}
	if c.dst != nil {
		dst, ok := g.Node(e.Child)
		if !ok || !c.dst.match(dst) {
			return false
		}
	}
	if c.connectionType != nil {
		if e.Data.ConnectionType == "" || !c.connectionType.MatchString(e.Data.ConnectionType) {
			return false
		}
	}
	if c.propertyName != nil {
		if e.Data.PropertyName == "" || !c.propertyName.MatchString(e.Data.PropertyName) {
			return false
		}
	}
	return true
}
