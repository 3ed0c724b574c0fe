package registry

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/tweakreg/internal/config/entry"
	"github.com/dshills/tweakreg/internal/input/chord"
)

func TestNewWithDefaults(t *testing.T) {
	r := NewWithDefaults()

	require.Equal(t, 23, r.Len())
	assert.Equal(t, "carpetFlexibleBlockPlacement", r.Keys()[0])
	assert.Equal(t, "tweakSwapAlmostBrokenTools", r.Keys()[22])

	for _, e := range r.All() {
		assert.Equal(t, entry.TypeBool, e.Type(), e.Key())
		assert.NotEmpty(t, e.Description(), e.Key())
	}
}

func TestDefaultsValues(t *testing.T) {
	r := NewWithDefaults()

	tests := []struct {
		key         string
		def         bool
		chord       string
		displayName string
	}{
		{"carpetFlexibleBlockPlacement", false, "LMENU,C", "Carpet protocol Flexible Placement"},
		{"fastPlacementRememberOrientation", true, "LSHIFT,X,F", "Fast Placement Remember Orientation"},
		{"rememberFlexibleFromClick", true, "LSHIFT,X,L", "Remember Flexible Orientation From First Click"},
		{"tweakFastBlockPlacement", false, "X,F", "Fast Block Placement"},
		{"tweakPermanentSneak", false, "LSHIFT,X,S", "Permanent Sneak"},
		{"tweakNoFallingBlockEntityRendering", false, "", "No Falling Block Entity Rendering"},
		{"tweakEmptyShulkerBoxesStack", false, "", "Empty Shulker Boxes Stack"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			e := r.Get(tt.key)
			require.NotNil(t, e)
			assert.Equal(t, tt.def, e.Default())
			assert.Equal(t, tt.def, e.Get())
			assert.Equal(t, tt.chord, e.Binding().Chord().Serialize())
			assert.Equal(t, tt.displayName, e.DisplayName())
			assert.False(t, e.IsModified())
		})
	}
}

func TestRegisterDuplicate(t *testing.T) {
	r := New()
	_, err := r.Register(Toggle("tweakOne", false, "", ""))
	require.NoError(t, err)

	_, err = r.Register(Toggle("tweakOne", true, "", ""))
	require.ErrorIs(t, err, ErrDuplicateKey)
	assert.Equal(t, 1, r.Len())
	assert.Equal(t, false, r.Get("tweakOne").Default())
}

func TestRegisterInvalid(t *testing.T) {
	r := New()

	_, err := r.Register(Toggle("tweakBad", false, "X,X", ""))
	require.ErrorIs(t, err, chord.ErrDuplicateModifier)

	_, err = r.Register(Definition{Key: "tweakLevel", Type: entry.TypeInt, Default: 20, Max: entry.MaxValue(10)})
	require.ErrorIs(t, err, entry.ErrOutOfDomain)

	_, err = r.Register(Definition{Key: "abc"})
	require.ErrorIs(t, err, entry.ErrInvalidKey)

	assert.Equal(t, 0, r.Len())
	assert.False(t, r.Has("tweakBad"))
}

func TestMustRegisterPanics(t *testing.T) {
	r := New()
	r.MustRegister(Toggle("tweakOne", false, "", ""))
	assert.Panics(t, func() { r.MustRegister(Toggle("tweakOne", false, "", "")) })
}

func TestFromDefinitions(t *testing.T) {
	defs := []Definition{
		Toggle("tweakAlpha", false, "X,A", "alpha"),
		{Key: "tweakLevel", Type: entry.TypeInt, Default: 3, Min: entry.MinValue(0), Max: entry.MaxValue(10)},
		{Key: "tweakMode", Type: entry.TypeEnum, Options: []string{"fast", "slow"}},
	}

	r, err := FromDefinitions(defs)
	require.NoError(t, err)
	assert.Equal(t, []string{"tweakAlpha", "tweakLevel", "tweakMode"}, r.Keys())
	assert.Equal(t, int64(3), r.Get("tweakLevel").Get())
	assert.Equal(t, "fast", r.Get("tweakMode").Get())

	_, err = FromDefinitions(append(defs, Toggle("tweakAlpha", true, "", "")))
	assert.ErrorIs(t, err, ErrDuplicateKey)
}

func TestGetUnknown(t *testing.T) {
	r := NewWithDefaults()
	assert.Nil(t, r.Get("tweakDoesNotExist"))
	assert.False(t, r.Has("tweakDoesNotExist"))
}

func TestAllReturnsCopy(t *testing.T) {
	r := NewWithDefaults()
	all := r.All()
	all[0] = nil
	assert.NotNil(t, r.All()[0])
}

func TestModifiedAndResetAll(t *testing.T) {
	r := NewWithDefaults()
	require.NoError(t, r.Get("tweakHotbarSwap").SetBool(true))
	require.NoError(t, r.Get("fastPlacementRememberOrientation").SetBool(false))

	modified := r.Modified()
	require.Len(t, modified, 2)
	assert.Equal(t, "fastPlacementRememberOrientation", modified[0].Key())
	assert.Equal(t, "tweakHotbarSwap", modified[1].Key())

	var notified []string
	r.SetObserver(entry.ObserverFunc(func(e *entry.Entry) {
		notified = append(notified, e.Key())
	}))

	r.ResetAll()
	assert.Empty(t, r.Modified())
	assert.Equal(t, []string{"fastPlacementRememberOrientation", "tweakHotbarSwap"}, notified)
}

func TestByTagAndSearch(t *testing.T) {
	r := NewWithDefaults()

	clicking := r.ByTag(TagClicking)
	keys := make([]string, len(clicking))
	for i, e := range clicking {
		keys[i] = e.Key()
	}
	assert.Equal(t, []string{"tweakAfterClicker", "tweakFastLeftClick", "tweakFastRightClick"}, keys)
	assert.Equal(t, []string{TagPlacement, TagClicking}, r.Tags("tweakAfterClicker"))
	assert.Empty(t, r.ByTag("nope"))

	found := r.Search("shulker")
	require.Len(t, found, 1)
	assert.Equal(t, "tweakEmptyShulkerBoxesStack", found[0].Key())

	assert.Len(t, r.Search("MOVEMENT"), 2)
}

func TestSnapshotApply(t *testing.T) {
	src := NewWithDefaults()
	require.NoError(t, src.Get("tweakNoLightUpdates").SetBool(true))

	snap := src.Snapshot()
	assert.Len(t, snap, 23)
	assert.Equal(t, true, snap["tweakNoLightUpdates"])

	dst := NewWithDefaults()
	var notified []string
	dst.SetObserver(entry.ObserverFunc(func(e *entry.Entry) {
		notified = append(notified, e.Key())
	}))
	dst.Apply(snap, zerolog.Nop())

	assert.Equal(t, true, dst.Get("tweakNoLightUpdates").Get())
	assert.Equal(t, []string{"tweakNoLightUpdates"}, notified)
}

func TestApplyTolerant(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf).Level(zerolog.DebugLevel)

	r := NewWithDefaults()
	r.Apply(map[string]any{
		"tweakHotbarSwap":       "yes",
		"tweakFastLeftClick":    true,
		"tweakSomethingRemoved": true,
	}, log)

	assert.Equal(t, false, r.Get("tweakHotbarSwap").Get())
	assert.Equal(t, true, r.Get("tweakFastLeftClick").Get())

	out := buf.String()
	assert.Contains(t, out, `"level":"warn"`)
	assert.Contains(t, out, `"key":"tweakHotbarSwap"`)
	assert.Contains(t, out, `"key":"tweakSomethingRemoved"`)
}

func TestSetMessengerChord(t *testing.T) {
	r := NewWithDefaults()
	var messages []string
	r.SetMessenger(entry.MessengerFunc(func(text string) { messages = append(messages, text) }))

	b := r.Get("carpetFlexibleBlockPlacement").Binding()
	assert.True(t, b.Trigger())
	assert.True(t, b.Trigger())
	assert.Equal(t, []string{"Carpet protocol Flexible Placement ON", "Carpet protocol Flexible Placement OFF"}, messages)
}
