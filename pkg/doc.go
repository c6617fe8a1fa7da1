// Package pkg provides the core libraries for FBX object dependency
// visualization.
//
// # Overview
//
// fbx-objects-depviz turns the object and connection records of an FBX
// document into a directed dependency graph and serializes it as Graphviz
// DOT text or a rendered image. The pkg directory is organized into:
//
//  1. [graph] - Generic directed graph with visibility and traversal
//  2. [fbx] - FBX document traversal and the object/connection data model
//  3. [fbx/filter] - Declarative restyle and hide/show rule documents
//  4. [render] - In-process Graphviz rasterization (SVG, PNG)
//  5. [cache] - File-based artifact cache for rendered output
//  6. [errors] - Structured error codes shared across the module
//  7. [buildinfo] - Build-time version information
//
// # Architecture
//
// The typical data flow:
//
//	FBX document (JSON node tree)
//	         ↓
//	    [fbx] package (traverse objects and connections)
//	         ↓
//	    [fbx/filter] package (restyle, hide, show)
//	         ↓
//	    [graph] package (DOT serialization)
//	         ↓
//	    DOT text / SVG / PNG output
//
// # Quick Start
//
// Traverse a document, apply filters, and emit DOT:
//
//	g := fbx.NewGraph("scene")
//	if err := fbx.Traverse(g, fbx.NewDocumentReader(f)); err != nil {
//	    return err
//	}
//
//	flt, err := filter.Load("filters.toml")
//	if err != nil {
//	    return err
//	}
//	if err := flt.Apply(g); err != nil {
//	    return err
//	}
//
//	err = g.WriteDOT(os.Stdout, graph.DOTOptions{
//	    ShowImplicitNodes: flt.ShowImplicit(),
//	})
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/fbx/...      # Specific package
//	go test -run Example       # Examples only
//
// [graph]: https://pkg.go.dev/github.com/lo48576/fbx-objects-depviz/pkg/graph
// [fbx]: https://pkg.go.dev/github.com/lo48576/fbx-objects-depviz/pkg/fbx
// [fbx/filter]: https://pkg.go.dev/github.com/lo48576/fbx-objects-depviz/pkg/fbx/filter
// [render]: https://pkg.go.dev/github.com/lo48576/fbx-objects-depviz/pkg/render
// [cache]: https://pkg.go.dev/github.com/lo48576/fbx-objects-depviz/pkg/cache
// [errors]: https://pkg.go.dev/github.com/lo48576/fbx-objects-depviz/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/lo48576/fbx-objects-depviz/pkg/buildinfo
package pkg
