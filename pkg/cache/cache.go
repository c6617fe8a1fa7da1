// Package cache provides artifact caching for rendered graph output.
//
// Rendering DOT text through Graphviz layout is the slow step of the
// pipeline, so rendered SVG and PNG bytes are cached keyed by a hash of the
// DOT text and the output format. [FileCache] persists entries on disk
// between runs; [NullCache] disables caching entirely.
package cache

import (
	"context"
	"time"
)

// Cache stores opaque byte blobs under string keys with optional expiry.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key was
	// present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A ttl of zero means the entry never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}

// RenderKeyOpts carries the render parameters that distinguish otherwise
// identical DOT inputs.
type RenderKeyOpts struct {
	// Format is the output format, "svg" or "png".
	Format string
}

// Keyer derives cache keys from render inputs.
type Keyer interface {
	// RenderKey generates a key for a rendered artifact. dotHash is the
	// content hash of the DOT text being rendered.
	RenderKey(dotHash string, opts RenderKeyOpts) string
}

// DefaultKeyer is the standard key scheme.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// RenderKey generates a key for a rendered artifact.
func (k *DefaultKeyer) RenderKey(dotHash string, opts RenderKeyOpts) string {
	return hashKey("render", dotHash, opts.Format)
}
