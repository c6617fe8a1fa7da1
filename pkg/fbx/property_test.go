package fbx

import "testing"

func TestSeparateNameClass(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantName  string
		wantClass string
		wantOK    bool
	}{
		{name: "BinarySeparator", input: "Cube\x00\x01Model", wantName: "Cube", wantClass: "Model", wantOK: true},
		{name: "ASCIISeparator", input: "Model::Cube", wantName: "Cube", wantClass: "Model", wantOK: true},
		{name: "BinaryEmptyName", input: "\x00\x01Model", wantName: "", wantClass: "Model", wantOK: true},
		{name: "NoSeparator", input: "Cube", wantOK: false},
		{name: "Empty", input: "", wantOK: false},
		// The binary separator wins when both are present.
		{name: "BothSeparators", input: "a::b\x00\x01c", wantName: "a::b", wantClass: "c", wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, class, ok := SeparateNameClass(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("SeparateNameClass(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if name != tt.wantName || class != tt.wantClass {
				t.Errorf("SeparateNameClass(%q) = (%q, %q), want (%q, %q)",
					tt.input, name, class, tt.wantName, tt.wantClass)
			}
		})
	}
}

func TestObjectPropertiesFromAttrs(t *testing.T) {
	tests := []struct {
		name  string
		attrs []Attr
		want  *ObjectProperties
	}{
		{
			name:  "Valid",
			attrs: []Attr{int64(282828), "Cube\x00\x01Model", "Mesh"},
			want:  &ObjectProperties{UID: 282828, Name: "Cube", Class: "Model", Subclass: "Mesh"},
		},
		{
			name:  "FloatUID",
			attrs: []Attr{float64(42), "Red::Material", "Phong"},
			want:  &ObjectProperties{UID: 42, Name: "Material", Class: "Red", Subclass: "Phong"},
		},
		{name: "TooFewAttrs", attrs: []Attr{int64(1), "a::b"}, want: nil},
		{name: "NonIntegerUID", attrs: []Attr{"oops", "a::b", "c"}, want: nil},
		{name: "MissingSeparator", attrs: []Attr{int64(1), "plain", "c"}, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := objectPropertiesFromAttrs(tt.attrs)
			if (got == nil) != (tt.want == nil) {
				t.Fatalf("objectPropertiesFromAttrs() = %v, want %v", got, tt.want)
			}
			if got != nil && *got != *tt.want {
				t.Errorf("objectPropertiesFromAttrs() = %+v, want %+v", *got, *tt.want)
			}
		})
	}
}

func TestAttrInt64(t *testing.T) {
	if _, ok := AttrInt64(float64(1.5)); ok {
		t.Error("AttrInt64(1.5) ok = true, want rejection of fractional floats")
	}
	if v, ok := AttrInt64(int64(9007199254740993)); !ok || v != 9007199254740993 {
		t.Errorf("AttrInt64(int64) = %d, %v", v, ok)
	}
}
