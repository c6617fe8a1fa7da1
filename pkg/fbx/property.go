package fbx

import "strings"

// ObjectProperties holds the attributes common to every FBX object record:
// the unique object UID and the name/class/subclass triple.
type ObjectProperties struct {
	UID      int64
	Name     string
	Class    string
	Subclass string
}

// objectPropertiesFromAttrs decodes the leading attributes of an object
// record: (uid, name+class, subclass). Returns nil when the record does not
// carry the expected attribute shape, in which case the caller skips the
// record.
func objectPropertiesFromAttrs(attrs []Attr) *ObjectProperties {
	if len(attrs) < 3 {
		return nil
	}
	uid, ok := AttrInt64(attrs[0])
	if !ok {
		return nil
	}
	nameClass, ok := AttrString(attrs[1])
	if !ok {
		return nil
	}
	subclass, ok := AttrString(attrs[2])
	if !ok {
		return nil
	}
	name, class, ok := SeparateNameClass(nameClass)
	if !ok {
		return nil
	}
	return &ObjectProperties{UID: uid, Name: name, Class: class, Subclass: subclass}
}

// SeparateNameClass splits the combined name/class attribute of an object
// record. Binary documents encode it as "name\x00\x01class", ASCII documents
// as "class::name". Returns ok=false when neither separator is present.
func SeparateNameClass(nameClass string) (name, class string, ok bool) {
	if i := strings.Index(nameClass, "\x00\x01"); i >= 0 {
		return nameClass[:i], nameClass[i+2:], true
	}
	if i := strings.Index(nameClass, "::"); i >= 0 {
		return nameClass[i+2:], nameClass[:i], true
	}
	return "", "", false
}
