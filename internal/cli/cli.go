// Package cli implements the fbx-objects-depviz command-line interface.
//
// This package provides commands for converting FBX object dependency
// documents into Graphviz DOT text and rendering them as images. The CLI is
// built using cobra and supports verbose logging via the charmbracelet/log
// library.
//
// # Commands
//
// The main commands are:
//   - dot: Convert an FBX document to DOT text, optionally filtered
//   - render: Render an FBX document or DOT file to SVG or PNG
//   - completion: Generate shell completion scripts
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
//
// # Example
//
//	import "github.com/lo48576/fbx-objects-depviz/internal/cli"
//
//	func main() {
//	    if err := cli.Execute(ctx); err != nil {
//	        os.Exit(1)
//	    }
//	}
package cli

import (
	"os"
	"path/filepath"

	"github.com/lo48576/fbx-objects-depviz/pkg/cache"
)

// appName is the application name used for directories and display.
const appName = "fbx-objects-depviz"

// newCache creates the render artifact cache. Cache setup failures degrade
// to a null cache rather than failing the command.
func newCache(noCache bool) cache.Cache {
	if noCache {
		return cache.NewNullCache()
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache()
	}
	c, err := cache.NewFileCache(dir)
	if err != nil {
		return cache.NewNullCache()
	}
	return c
}

// cacheDir returns the cache directory using XDG standard (~/.cache/fbx-objects-depviz/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
