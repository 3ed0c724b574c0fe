package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
	"gopkg.in/yaml.v3"

	"github.com/dshills/tweakreg/internal/config/registry"
)

var errNotObject = errors.New("document is not an object")

// Decode parses a settings document into a flat key/value map.
// Empty input decodes to an empty map.
func Decode(format Format, data []byte) (map[string]any, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return map[string]any{}, nil
	}

	switch format {
	case FormatJSON:
		return decodeJSON(data)
	case FormatTOML:
		var values map[string]any
		if err := toml.Unmarshal(data, &values); err != nil {
			return nil, &ParseError{Path: "<data>", Format: format, Message: err.Error(), Err: err}
		}
		return values, nil
	case FormatYAML:
		var doc any
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, &ParseError{Path: "<data>", Format: format, Message: err.Error(), Err: err}
		}
		values, ok := doc.(map[string]any)
		if !ok {
			return nil, &ParseError{Path: "<data>", Format: format, Message: errNotObject.Error(), Err: errNotObject}
		}
		return values, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownFormat, format)
	}
}

// decodeJSON reads each top-level member with gjson. Numbers are kept as
// json.Number so integer entries do not lose precision.
func decodeJSON(data []byte) (map[string]any, error) {
	if !gjson.ValidBytes(data) {
		err := errors.New("invalid JSON")
		return nil, &ParseError{Path: "<data>", Format: FormatJSON, Message: err.Error(), Err: err}
	}
	doc := gjson.ParseBytes(data)
	if !doc.IsObject() {
		return nil, &ParseError{Path: "<data>", Format: FormatJSON, Message: errNotObject.Error(), Err: errNotObject}
	}

	values := make(map[string]any)
	doc.ForEach(func(k, v gjson.Result) bool {
		values[k.String()] = jsonValue(v)
		return true
	})
	return values, nil
}

func jsonValue(v gjson.Result) any {
	switch v.Type {
	case gjson.True:
		return true
	case gjson.False:
		return false
	case gjson.Number:
		return json.Number(v.Raw)
	case gjson.String:
		return v.Str
	case gjson.Null:
		return nil
	default:
		return v.Value()
	}
}

// Encode renders the registry's values, merged over an existing document.
// Keys present in existing but unknown to the registry are preserved.
func Encode(format Format, existing []byte, reg *registry.Registry) ([]byte, error) {
	switch format {
	case FormatJSON:
		return encodeJSON(existing, reg)
	case FormatTOML:
		values, err := Decode(format, existing)
		if err != nil {
			return nil, err
		}
		for k, v := range reg.Snapshot() {
			values[k] = v
		}
		return toml.Marshal(values)
	case FormatYAML:
		return encodeYAML(existing, reg)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownFormat, format)
	}
}

func encodeJSON(existing []byte, reg *registry.Registry) ([]byte, error) {
	doc := existing
	if len(strings.TrimSpace(string(doc))) == 0 {
		doc = []byte("{}")
	} else if _, err := decodeJSON(doc); err != nil {
		return nil, err
	}

	var err error
	for _, e := range reg.All() {
		doc, err = sjson.SetBytes(doc, escapePath(e.Key()), e.ToSerializable())
		if err != nil {
			return nil, fmt.Errorf("encoding %s: %w", e.Key(), err)
		}
	}
	return pretty.Pretty(doc), nil
}

// escapePath escapes the characters sjson treats as path syntax.
func escapePath(key string) string {
	var b strings.Builder
	for _, r := range key {
		switch r {
		case '.', '*', '?', '|', '#', '@', '\\', ':', '!', '=', '<', '>', '%':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// encodeYAML writes registry keys in declaration order followed by
// unknown keys from the existing document in sorted order.
func encodeYAML(existing []byte, reg *registry.Registry) ([]byte, error) {
	values, err := Decode(FormatYAML, existing)
	if err != nil {
		return nil, err
	}

	root := &yaml.Node{Kind: yaml.MappingNode}
	add := func(k string, v any) error {
		var val yaml.Node
		if err := val.Encode(v); err != nil {
			return fmt.Errorf("encoding %s: %w", k, err)
		}
		root.Content = append(root.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: k}, &val)
		return nil
	}

	for _, e := range reg.All() {
		if err := add(e.Key(), e.ToSerializable()); err != nil {
			return nil, err
		}
	}

	var unknown []string
	for k := range values {
		if !reg.Has(k) {
			unknown = append(unknown, k)
		}
	}
	slices.Sort(unknown)
	for _, k := range unknown {
		if err := add(k, values[k]); err != nil {
			return nil, err
		}
	}

	return yaml.Marshal(root)
}
