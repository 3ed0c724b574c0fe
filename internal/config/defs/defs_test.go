package defs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/tweakreg/internal/config/entry"
	"github.com/dshills/tweakreg/internal/config/registry"
)

const yamlTable = `
definitions:
  - key: tweakClickRate
    type: int
    default: 4
    min: 1
    max: 64
    chord: LSHIFT,X,R
    description: Clicks per game tick
    tags: [clicking]
  - key: tweakAutoSprint
    chord: X,R
  - key: tweakPlacementMode
    type: enum
    options: [normal, adjacent, offset]
    default: adjacent
    name: Placement Mode
  - key: tweakSignText
    type: string
    max_length: 15
`

const luaTable = `
local rows = {
  { key = "tweakClickRate", type = "int", default = 4, min = 1, max = 64,
    chord = "LSHIFT,X,R", description = "Clicks per game tick", tags = { "clicking" } },
  { key = "tweakAutoSprint", chord = "X,R" },
  { key = "tweakPlacementMode", type = "enum", options = { "normal", "adjacent", "offset" },
    default = "adjacent", name = "Placement Mode" },
}
table.insert(rows, { key = "tweakSignText", type = "string", max_length = 5 * 3 })
return rows
`

func checkTable(t *testing.T, defs []registry.Definition) {
	t.Helper()
	require.Len(t, defs, 4)

	rate := defs[0]
	assert.Equal(t, "tweakClickRate", rate.Key)
	assert.Equal(t, entry.TypeInt, rate.Type)
	assert.EqualValues(t, 4, rate.Default)
	require.NotNil(t, rate.Min)
	require.NotNil(t, rate.Max)
	assert.Equal(t, int64(1), *rate.Min)
	assert.Equal(t, int64(64), *rate.Max)
	assert.Equal(t, "LSHIFT,X,R", rate.Chord)
	assert.Equal(t, []string{"clicking"}, rate.Tags)

	assert.Equal(t, entry.TypeBool, defs[1].Type)
	assert.Nil(t, defs[1].Default)

	assert.Equal(t, entry.TypeEnum, defs[2].Type)
	assert.Equal(t, "Placement Mode", defs[2].DisplayName)
	assert.Equal(t, []string{"normal", "adjacent", "offset"}, defs[2].Options)

	assert.Equal(t, 15, defs[3].MaxLength)

	r, err := registry.FromDefinitions(defs)
	require.NoError(t, err)
	assert.Equal(t, int64(4), r.Get("tweakClickRate").Get())
	assert.Equal(t, false, r.Get("tweakAutoSprint").Get())
	assert.Equal(t, "adjacent", r.Get("tweakPlacementMode").Get())
	assert.Equal(t, "Auto Sprint", r.Get("tweakAutoSprint").DisplayName())
}

func TestParseYAML(t *testing.T) {
	defs, err := ParseYAML([]byte(yamlTable))
	require.NoError(t, err)
	checkTable(t, defs)
}

func TestParseLua(t *testing.T) {
	defs, err := ParseLua(luaTable)
	require.NoError(t, err)
	checkTable(t, defs)
}

func TestParseYAMLErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"unknown field", "definitions:\n  - key: tweakA\n    colour: red\n"},
		{"missing key", "definitions:\n  - type: int\n"},
		{"bad type", "definitions:\n  - key: tweakA\n    type: float\n"},
		{"broken yaml", "definitions: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseYAML([]byte(tt.src))
			assert.Error(t, err)
		})
	}
}

func TestParseYAMLEmpty(t *testing.T) {
	defs, err := ParseYAML(nil)
	require.NoError(t, err)
	assert.Empty(t, defs)
}

func TestParseLuaErrors(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		wantRow bool
	}{
		{"syntax", "return {", false},
		{"runtime", "error('boom')", false},
		{"not a table", "return 42", false},
		{"row not a table", "return { 'tweakA' }", true},
		{"bad field type", "return { { key = 'tweakA', chord = 5 } }", true},
		{"non-integral bound", "return { { key = 'tweakA', type = 'int', max = 1.5 } }", true},
		{"bad tags", "return { { key = 'tweakA', tags = { 1 } } }", true},
		{"missing key", "return { { type = 'int' } }", true},
		{"no io", "return io.open('x')", false},
		{"no os", "return os.exit(1)", false},
		{"no dofile", "return dofile('defs.lua')", false},
		{"no loadfile", "return loadfile('defs.lua')()", false},
		{"no load", "return load('return {}')()", false},
		{"no loadstring", "return loadstring('return {}')()", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseLua(tt.src)
			require.Error(t, err)
			var rowErr *RowError
			assert.Equal(t, tt.wantRow, errors.As(err, &rowErr), err.Error())
		})
	}
}

func TestParseLuaCannotReadFiles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "other.lua")
	require.NoError(t, os.WriteFile(path, []byte(`return "tweakFromDisk"`), 0o644))

	for _, call := range []string{"dofile(%q)", "loadfile(%q)()"} {
		src := fmt.Sprintf("local k = "+call+" return { { key = k } }", path)
		defs, err := ParseLua(src)
		assert.Error(t, err, src)
		assert.Empty(t, defs, src)
	}
}

func TestRowErrorNamesKey(t *testing.T) {
	_, err := ParseLua("return { { key = 'tweakA' }, { key = 'tweakB', default = {} } }")
	var rowErr *RowError
	require.ErrorAs(t, err, &rowErr)
	assert.Equal(t, 2, rowErr.Index)
	assert.Equal(t, "tweakB", rowErr.Key)
	assert.Contains(t, err.Error(), "definition 2 (tweakB)")
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "extra.yml")
	require.NoError(t, os.WriteFile(yamlPath, []byte(yamlTable), 0o644))
	defs, err := LoadFile(yamlPath)
	require.NoError(t, err)
	checkTable(t, defs)

	luaPath := filepath.Join(dir, "extra.lua")
	require.NoError(t, os.WriteFile(luaPath, []byte(luaTable), 0o644))
	defs, err = LoadFile(luaPath)
	require.NoError(t, err)
	checkTable(t, defs)

	_, err = LoadFile(filepath.Join(dir, "extra.json"))
	assert.Error(t, err)

	jsonPath := filepath.Join(dir, "real.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte("{}"), 0o644))
	_, err = LoadFile(jsonPath)
	assert.ErrorIs(t, err, ErrUnknownFormat)
}
