package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"DEBUG", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"trace", zerolog.TraceLevel},
		{"bogus", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseLevel(tt.in), "ParseLevel(%q)", tt.in)
	}
}

func TestParseFormat(t *testing.T) {
	assert.Equal(t, FormatJSON, ParseFormat("json"))
	assert.Equal(t, FormatJSON, ParseFormat("JSON"))
	assert.Equal(t, FormatConsole, ParseFormat("text"))
}

func TestNewJSONRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: zerolog.WarnLevel, Format: FormatJSON, Output: &buf})

	log.Info().Msg("hidden")
	log.Warn().Str("key", "tweakHotbarSwap").Msg("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"key":"tweakHotbarSwap"`)
	assert.Contains(t, out, `"level":"warn"`)
}

func TestNewConsole(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: zerolog.DebugLevel, Format: FormatConsole, Output: &buf})
	log.Debug().Msg("console line")

	assert.Contains(t, buf.String(), "console line")
}

func TestComponent(t *testing.T) {
	var buf bytes.Buffer
	log := Component(New(Config{Level: zerolog.InfoLevel, Format: FormatJSON, Output: &buf}), "store")
	log.Info().Msg("x")

	assert.Contains(t, buf.String(), `"component":"store"`)
}
