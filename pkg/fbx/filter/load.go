package filter

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/lo48576/fbx-objects-depviz/pkg/errors"
)

// Load reads a filter document from disk. The format is chosen by file
// extension: ".toml" or ".json". Unknown top-level fields are ignored by
// both decoders; missing fields keep their zero values (empty maps/lists,
// unset ShowImplicitNodes).
func Load(path string) (*Filters, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "filter document %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidFilter, err, "read filter document %s", path)
	}
	return Parse(data, filepath.Ext(path))
}

// Parse decodes a filter document from bytes. The ext argument selects the
// decoder (".toml" or ".json", case-insensitive).
func Parse(data []byte, ext string) (*Filters, error) {
	var f Filters
	switch strings.ToLower(ext) {
	case ".toml":
		if err := toml.Unmarshal(data, &f); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFilter, err, "parse TOML filter document")
		}
	case ".json":
		if err := json.Unmarshal(data, &f); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFilter, err, "parse JSON filter document")
		}
	default:
		return nil, errors.New(errors.ErrCodeUnsupported, "unsupported filter format %q (want .toml or .json)", ext)
	}
	return &f, nil
}
