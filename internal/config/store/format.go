package store

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format is a settings file encoding.
type Format int

const (
	// FormatJSON is a flat JSON object.
	FormatJSON Format = iota
	// FormatTOML is a flat TOML document.
	FormatTOML
	// FormatYAML is a flat YAML mapping.
	FormatYAML
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
	}
}
