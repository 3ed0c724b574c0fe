package keymap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/tweakreg/internal/input/chord"
	"github.com/dshills/tweakreg/internal/input/key"
)

func counting(spec string, count *int) *chord.Binding {
	b := chord.NewBinding(chord.MustParse(spec))
	b.SetCallback(func() { *count++ })
	return b
}

func TestAddAndLookup(t *testing.T) {
	km := New()
	var n int
	b := counting("X,F", &n)

	require.NoError(t, km.Add("tweakFastBlockPlacement", b))
	assert.Same(t, b, km.Lookup("tweakFastBlockPlacement"))
	assert.Nil(t, km.Lookup("missing"))

	err := km.Add("tweakFastBlockPlacement", counting("X,G", &n))
	assert.ErrorIs(t, err, ErrDuplicateName)
	assert.Error(t, km.Add("nil", nil))
	assert.Equal(t, 1, km.Len())
}

func TestBindingsOrder(t *testing.T) {
	km := New()
	var n int
	names := []string{"c", "a", "b"}
	for _, name := range names {
		require.NoError(t, km.Add(name, counting("X,C", &n)))
	}

	var got []string
	for _, nb := range km.Bindings() {
		got = append(got, nb.Name)
	}
	assert.Equal(t, names, got)
}

func TestDispatch(t *testing.T) {
	km := New()
	var plain, shifted, unbound int
	require.NoError(t, km.Add("tweakFastBlockPlacement", counting("X,F", &plain)))
	require.NoError(t, km.Add("fastPlacementRememberOrientation", counting("LSHIFT,X,F", &shifted)))
	require.NoError(t, km.Add("tweakEmptyShulkerBoxesStack", counting("", &unbound)))

	tests := []struct {
		name string
		held []key.Token
		want []string
	}{
		{"plain chord", []key.Token{key.X, key.F}, []string{"tweakFastBlockPlacement"}},
		{"shifted chord", []key.Token{key.LShift, key.X, key.F}, []string{"fastPlacementRememberOrientation"}},
		{"modifier order ignored", []key.Token{key.X, key.LShift, key.F}, []string{"fastPlacementRememberOrientation"}},
		{"primary not last", []key.Token{key.F, key.X}, nil},
		{"extra key", []key.Token{key.X, key.C, key.F}, nil},
		{"nothing held", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, km.Dispatch(tt.held))
		})
	}

	assert.Equal(t, 1, plain)
	assert.Equal(t, 2, shifted)
	assert.Equal(t, 0, unbound)
}

func TestDispatchSkipsEmptySlot(t *testing.T) {
	km := New()
	require.NoError(t, km.Add("noAction", chord.NewBinding(chord.MustParse("X,C"))))

	assert.Equal(t, []string{"noAction"}, km.Match([]key.Token{key.X, key.C}))
	assert.Empty(t, km.Dispatch([]key.Token{key.X, key.C}))
}

func TestDispatchAfterRebind(t *testing.T) {
	km := New()
	var n int
	b := counting("X,C", &n)
	require.NoError(t, km.Add("tweakAfterClicker", b))

	b.Rebind(chord.MustParse("LCONTROL,C"))
	assert.Empty(t, km.Dispatch([]key.Token{key.X, key.C}))
	assert.Len(t, km.Dispatch([]key.Token{key.LControl, key.C}), 1)
}

func TestConflicts(t *testing.T) {
	km := New()
	var n int
	for _, b := range []struct{ name, spec string }{
		{"a", "X,C"},
		{"b", "X,F"},
		{"c", "X,C"},
		{"d", ""},
		{"e", ""},
		{"f", "LSHIFT,X,F"},
		{"g", "X,LSHIFT,F"},
	} {
		require.NoError(t, km.Add(b.name, counting(b.spec, &n)))
	}

	conflicts := km.Conflicts()
	require.Len(t, conflicts, 2)
	assert.Equal(t, "a", conflicts[0].First)
	assert.Equal(t, "c", conflicts[0].Second)
	assert.Equal(t, "X,C", conflicts[0].Chord.Serialize())
	assert.Equal(t, "f", conflicts[1].First)
	assert.Equal(t, "g", conflicts[1].Second)
	assert.Equal(t, "a and c both bound to X,C", conflicts[0].String())

	// both conflicting bindings still fire
	assert.Equal(t, []string{"a", "c"}, km.Dispatch([]key.Token{key.X, key.C}))
}
