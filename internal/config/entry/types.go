package entry

import (
	"encoding/json"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Type is the value type of an entry. It is fixed at construction.
type Type uint8

const (
	// TypeBool represents a boolean toggle.
	TypeBool Type = iota
	// TypeInt represents an integer, optionally bounded.
	TypeInt
	// TypeString represents free text, optionally length-limited.
	TypeString
	// TypeEnum represents one value from a fixed set of strings.
	TypeEnum
)

// String returns the string representation of the type.
func (t Type) String() string {
	switch t {
	case TypeBool:
		return "boolean"
	case TypeInt:
		return "integer"
	case TypeString:
		return "string"
	case TypeEnum:
		return "enum"
	default:
		return "unknown"
	}
}

// ParseType parses a type name as written in definition tables.
func ParseType(s string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bool", "boolean", "":
		return TypeBool, nil
	case "int", "integer":
		return TypeInt, nil
	case "string":
		return TypeString, nil
	case "enum":
		return TypeEnum, nil
	default:
		return 0, fmt.Errorf("%w: unknown type %q", ErrInvalidSpec, s)
	}
}

// domain holds the constraints of an entry's value type.
type domain struct {
	typ       Type
	min       *int64
	max       *int64
	options   []string
	maxLength int
}

// zero returns the value used when a declaration omits its default.
func (d *domain) zero() any {
	switch d.typ {
	case TypeBool:
		return false
	case TypeInt:
		return int64(0)
	case TypeEnum:
		if len(d.options) > 0 {
			return d.options[0]
		}
	}
	return ""
}

// normalize converts a Go value to the entry's canonical representation:
// bool, int64 or string. Any integer kind is accepted for TypeInt.
func (d *domain) normalize(value any) (any, error) {
	switch d.typ {
	case TypeBool:
		if b, ok := value.(bool); ok {
			return b, nil
		}
	case TypeInt:
		if n, ok := toInt64(value); ok {
			return n, nil
		}
	case TypeString, TypeEnum:
		if s, ok := value.(string); ok {
			return s, nil
		}
	}
	return nil, fmt.Errorf("expected %s, got %T", d.typ, value)
}

// check validates a normalized value against the type's constraints.
func (d *domain) check(value any) error {
	switch d.typ {
	case TypeInt:
		n := value.(int64)
		if d.min != nil && n < *d.min {
			return fmt.Errorf("value %d is less than minimum %d", n, *d.min)
		}
		if d.max != nil && n > *d.max {
			return fmt.Errorf("value %d is greater than maximum %d", n, *d.max)
		}
	case TypeString:
		s := value.(string)
		if d.maxLength > 0 && utf8.RuneCountInString(s) > d.maxLength {
			return fmt.Errorf("value is longer than %d characters", d.maxLength)
		}
	case TypeEnum:
		s := value.(string)
		if !slices.Contains(d.options, s) {
			return fmt.Errorf("value must be one of: %v", d.options)
		}
	}
	return nil
}

// decode converts a value decoded from a settings file (JSON, TOML or YAML)
// to the canonical representation. Unlike normalize it accepts integral
// floating point numbers and json.Number for integers, since that is how
// generic decoders surface numbers.
func (d *domain) decode(value any) (any, error) {
	if d.typ != TypeInt {
		return d.normalize(value)
	}

	switch v := value.(type) {
	case float64:
		return floatToInt64(v)
	case float32:
		return floatToInt64(float64(v))
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return nil, fmt.Errorf("not an integer: %s", v)
		}
		return n, nil
	}
	return d.normalize(value)
}

// parseText interprets a candidate value as typed into a settings UI.
// Booleans follow the host convention: only "true" (any case) is true.
func (d *domain) parseText(s string) (any, error) {
	switch d.typ {
	case TypeBool:
		return strings.EqualFold(s, "true"), nil
	case TypeInt:
		n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
		if err != nil {
			return nil, err
		}
		return n, nil
	default:
		return s, nil
	}
}

// format returns the textual form of a normalized value.
func format(value any) string {
	switch v := value.(type) {
	case bool:
		return strconv.FormatBool(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

// toInt64 converts any Go integer kind to int64.
func toInt64(value any) (int64, bool) {
	switch v := value.(type) {
	case int:
		return int64(v), true
	case int8:
		return int64(v), true
	case int16:
		return int64(v), true
	case int32:
		return int64(v), true
	case int64:
		return v, true
	case uint:
		return uintToInt64(uint64(v))
	case uint8:
		return int64(v), true
	case uint16:
		return int64(v), true
	case uint32:
		return int64(v), true
	case uint64:
		return uintToInt64(v)
	default:
		return 0, false
	}
}

func uintToInt64(v uint64) (int64, bool) {
	if v > math.MaxInt64 {
		return 0, false
	}
	return int64(v), true
}

func floatToInt64(f float64) (any, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return nil, fmt.Errorf("not an integer: %v", f)
	}
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return nil, fmt.Errorf("integer out of range: %v", f)
	}
	return int64(f), nil
}

// MinValue creates a pointer to an int64 for use as Spec.Min.
func MinValue(v int64) *int64 {
	return &v
}

// MaxValue creates a pointer to an int64 for use as Spec.Max.
func MaxValue(v int64) *int64 {
	return &v
}
