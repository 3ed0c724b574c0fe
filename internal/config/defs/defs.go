// Package defs loads entry definition tables from YAML or Lua files.
//
// A definition table declares entries the same way the built-in toggle
// table does, so hosts can add their own entries without recompiling.
// Each row has the fields key, type, default, chord, description, name,
// min, max, options, max_length and tags. Only key is required; type
// defaults to bool.
package defs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dshills/tweakreg/internal/config/entry"
	"github.com/dshills/tweakreg/internal/config/registry"
)

// ErrUnknownFormat is returned by LoadFile for unsupported extensions.
var ErrUnknownFormat = errors.New("unknown definition file format")

// RowError reports an invalid row in a definition table.
type RowError struct {
	// Index is the 1-based row number.
	Index int
	Key   string
	Err   error
}

func (e *RowError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("definition %d (%s): %v", e.Index, e.Key, e.Err)
	}
	return fmt.Sprintf("definition %d: %v", e.Index, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}

// LoadFile reads a definition table, choosing the parser by extension:
// .yaml and .yml for YAML, .lua for Lua.
func LoadFile(path string) ([]registry.Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading definitions %s: %w", path, err)
	}

	var defs []registry.Definition
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		defs, err = ParseYAML(data)
	case ".lua":
		defs, err = ParseLua(string(data))
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return defs, nil
}

// row is the format-neutral form of one table row.
type row struct {
	Key         string   `yaml:"key"`
	Type        string   `yaml:"type"`
	Default     any      `yaml:"default"`
	Chord       string   `yaml:"chord"`
	Description string   `yaml:"description"`
	Name        string   `yaml:"name"`
	Min         *int64   `yaml:"min"`
	Max         *int64   `yaml:"max"`
	Options     []string `yaml:"options"`
	MaxLength   int      `yaml:"max_length"`
	Tags        []string `yaml:"tags"`
}

// definition converts a row. Value checks are left to entry construction.
func (r row) definition(index int) (registry.Definition, error) {
	if strings.TrimSpace(r.Key) == "" {
		return registry.Definition{}, &RowError{Index: index, Err: errors.New("missing key")}
	}
	typ, err := entry.ParseType(r.Type)
	if err != nil {
		return registry.Definition{}, &RowError{Index: index, Key: r.Key, Err: err}
	}
	if r.MaxLength < 0 {
		return registry.Definition{}, &RowError{Index: index, Key: r.Key, Err: errors.New("negative max_length")}
	}

	return registry.Definition{
		Key:         r.Key,
		Type:        typ,
		Default:     r.Default,
		Chord:       r.Chord,
		Description: r.Description,
		DisplayName: r.Name,
		Min:         r.Min,
		Max:         r.Max,
		Options:     r.Options,
		MaxLength:   r.MaxLength,
		Tags:        r.Tags,
	}, nil
}
