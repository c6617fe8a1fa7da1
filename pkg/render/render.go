// Package render rasterizes DOT graph text into image formats.
//
// Rendering runs in-process through [github.com/goccy/go-graphviz], so no
// external Graphviz installation is needed. SVG output gets its viewBox
// normalized to a zero origin so the image embeds cleanly in web pages.
package render

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/lo48576/fbx-objects-depviz/pkg/errors"
)

// Format selects the render output format.
type Format string

// Supported output formats.
const (
	SVG Format = "svg"
	PNG Format = "png"
)

// ParseFormat maps a user-supplied format name to a Format.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case SVG, PNG:
		return Format(s), nil
	default:
		return "", errors.New(errors.ErrCodeUnsupported, "unsupported render format %q (supported: svg, png)", s)
	}
}

// Render lays out and rasterizes DOT text in the requested format.
func Render(ctx context.Context, dot string, format Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "init graphviz")
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse DOT")
	}
	defer g.Close()

	var gvFormat graphviz.Format
	switch format {
	case SVG:
		gvFormat = graphviz.SVG
	case PNG:
		gvFormat = graphviz.PNG
	default:
		return nil, errors.New(errors.ErrCodeUnsupported, "unsupported render format %q", format)
	}

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, gvFormat, &buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "render %s", format)
	}

	if format == SVG {
		return NormalizeViewBox(buf.Bytes()), nil
	}
	return buf.Bytes(), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// NormalizeViewBox rewrites the outer <svg> tag so the viewBox starts at the
// origin and the width/height attributes match it. Graphviz emits point-based
// sizes with a translated viewBox, which confuses some SVG consumers.
func NormalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
