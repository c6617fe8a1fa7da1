package render

import (
	"strings"
	"testing"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{in: "svg", want: SVG},
		{in: "png", want: PNG},
		{in: "pdf", wantErr: true},
		{in: "", wantErr: true},
		{in: "SVG", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormat(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("ParseFormat(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := `<?xml version="1.0"?>
<svg width="100pt" height="50pt" viewBox="0.00 0.00 134.00 72.50" xmlns="http://www.w3.org/2000/svg">
<g></g>
</svg>`

	out := string(NormalizeViewBox([]byte(in)))

	if !strings.Contains(out, `viewBox="0 0 134.00 72.50"`) {
		t.Errorf("viewBox not normalized:\n%s", out)
	}
	if !strings.Contains(out, `width="134" height="73"`) {
		t.Errorf("width/height not rewritten from viewBox:\n%s", out)
	}
	if !strings.Contains(out, "<g></g>") {
		t.Error("svg body altered")
	}
}

func TestNormalizeViewBox_NoViewBox(t *testing.T) {
	in := `<svg width="10" height="10"><g/></svg>`
	if got := string(NormalizeViewBox([]byte(in))); got != in {
		t.Errorf("svg without viewBox changed: %s", got)
	}
}

func TestNormalizeViewBox_ZeroSize(t *testing.T) {
	in := `<svg viewBox="0 0 0 0"><g/></svg>`
	if got := string(NormalizeViewBox([]byte(in))); got != in {
		t.Errorf("zero-size viewBox changed: %s", got)
	}
}
