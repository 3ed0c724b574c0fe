package defs

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/tweakreg/internal/config/registry"
)

// LuaTimeout bounds the execution of a Lua definition chunk.
const LuaTimeout = 5 * time.Second

// ParseLua runs a Lua chunk that returns an array of definition rows:
//
//	return {
//	  { key = "tweakClickRate", type = "int", default = 4, min = 1, max = 64 },
//	  { key = "tweakAutoSprint", default = false, chord = "X,R", tags = { "movement" } },
//	}
//
// The chunk runs with only the base, table, string and math libraries, and
// the base functions that load other chunks are removed.
func ParseLua(src string) ([]registry.Definition, error) {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	defer L.Close()
	openSafeLibraries(L)

	ctx, cancel := context.WithTimeout(context.Background(), LuaTimeout)
	defer cancel()
	L.SetContext(ctx)

	fn, err := L.LoadString(src)
	if err != nil {
		return nil, fmt.Errorf("loading Lua definitions: %w", err)
	}
	L.Push(fn)
	if err := L.PCall(0, 1, nil); err != nil {
		return nil, fmt.Errorf("running Lua definitions: %w", err)
	}

	ret := L.Get(-1)
	L.Pop(1)
	table, ok := ret.(*lua.LTable)
	if !ok {
		return nil, fmt.Errorf("definitions chunk must return a table, got %s", ret.Type())
	}

	var defs []registry.Definition
	for i := 1; i <= table.Len(); i++ {
		rt, ok := table.RawGetInt(i).(*lua.LTable)
		if !ok {
			return nil, &RowError{Index: i, Err: errors.New("row is not a table")}
		}
		r, err := luaRow(rt)
		if err != nil {
			return nil, &RowError{Index: i, Key: luaString(rt.RawGetString("key")), Err: err}
		}
		def, err := r.definition(i)
		if err != nil {
			return nil, err
		}
		defs = append(defs, def)
	}
	return defs, nil
}

// chunkLoaders are base library functions that read files or compile
// further chunks.
var chunkLoaders = []string{"dofile", "loadfile", "load", "loadstring"}

// openSafeLibraries opens only libraries without file or process access.
func openSafeLibraries(L *lua.LState) {
	for _, lib := range []struct {
		name string
		fn   lua.LGFunction
	}{
		{lua.BaseLibName, lua.OpenBase},
		{lua.TabLibName, lua.OpenTable},
		{lua.StringLibName, lua.OpenString},
		{lua.MathLibName, lua.OpenMath},
	} {
		L.Push(L.NewFunction(lib.fn))
		L.Push(lua.LString(lib.name))
		L.Call(1, 0)
	}
	for _, name := range chunkLoaders {
		L.SetGlobal(name, lua.LNil)
	}
}

func luaRow(t *lua.LTable) (row, error) {
	var r row
	var err error

	fields := []struct {
		name string
		dst  *string
	}{
		{"key", &r.Key},
		{"type", &r.Type},
		{"chord", &r.Chord},
		{"description", &r.Description},
		{"name", &r.Name},
	}
	for _, f := range fields {
		if *f.dst, err = optString(t, f.name); err != nil {
			return r, err
		}
	}

	if r.Default, err = luaScalar(t.RawGetString("default")); err != nil {
		return r, fmt.Errorf("default: %w", err)
	}
	if r.Min, err = optInt(t, "min"); err != nil {
		return r, err
	}
	if r.Max, err = optInt(t, "max"); err != nil {
		return r, err
	}
	maxLen, err := optInt(t, "max_length")
	if err != nil {
		return r, err
	}
	if maxLen != nil {
		r.MaxLength = int(*maxLen)
	}
	if r.Options, err = optStrings(t, "options"); err != nil {
		return r, err
	}
	if r.Tags, err = optStrings(t, "tags"); err != nil {
		return r, err
	}
	return r, nil
}

func luaString(v lua.LValue) string {
	if s, ok := v.(lua.LString); ok {
		return string(s)
	}
	return ""
}

func optString(t *lua.LTable, field string) (string, error) {
	switch v := t.RawGetString(field).(type) {
	case *lua.LNilType:
		return "", nil
	case lua.LString:
		return string(v), nil
	default:
		return "", fmt.Errorf("%s: expected string, got %s", field, v.Type())
	}
}

func optInt(t *lua.LTable, field string) (*int64, error) {
	switch v := t.RawGetString(field).(type) {
	case *lua.LNilType:
		return nil, nil
	case lua.LNumber:
		n, err := luaInt(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", field, err)
		}
		return &n, nil
	default:
		return nil, fmt.Errorf("%s: expected number, got %s", field, v.Type())
	}
}

func optStrings(t *lua.LTable, field string) ([]string, error) {
	switch v := t.RawGetString(field).(type) {
	case *lua.LNilType:
		return nil, nil
	case *lua.LTable:
		result := make([]string, 0, v.Len())
		for i := 1; i <= v.Len(); i++ {
			s, ok := v.RawGetInt(i).(lua.LString)
			if !ok {
				return nil, fmt.Errorf("%s[%d]: expected string", field, i)
			}
			result = append(result, string(s))
		}
		return result, nil
	default:
		return nil, fmt.Errorf("%s: expected array of strings, got %s", field, v.Type())
	}
}

// luaScalar converts a default value. Integral numbers become int64.
func luaScalar(v lua.LValue) (any, error) {
	switch val := v.(type) {
	case *lua.LNilType:
		return nil, nil
	case lua.LBool:
		return bool(val), nil
	case lua.LString:
		return string(val), nil
	case lua.LNumber:
		return luaInt(val)
	default:
		return nil, fmt.Errorf("unsupported value of type %s", v.Type())
	}
}

func luaInt(n lua.LNumber) (int64, error) {
	f := float64(n)
	if f != math.Trunc(f) || math.IsInf(f, 0) || f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, fmt.Errorf("not an integer: %v", f)
	}
	return int64(f), nil
}
