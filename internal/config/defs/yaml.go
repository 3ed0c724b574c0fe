package defs

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/dshills/tweakreg/internal/config/registry"
)

type yamlDocument struct {
	Definitions []row `yaml:"definitions"`
}

// ParseYAML parses a YAML definition table:
//
//	definitions:
//	  - key: tweakClickRate
//	    type: int
//	    default: 4
//	    min: 1
//	    max: 64
//	    chord: LSHIFT,X,R
//
// Unknown fields are rejected.
func ParseYAML(data []byte) ([]registry.Definition, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc yamlDocument
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing YAML definitions: %w", err)
	}

	defs := make([]registry.Definition, 0, len(doc.Definitions))
	for i, r := range doc.Definitions {
		def, err := r.definition(i + 1)
		if err != nil {
			return nil, err
		}
		defs = append(defs, def)
	}
	return defs, nil
}
