package value

import (
	"slices"
	"strings"
)

// Kind identifies the variant of a Value.
type Kind uint8

const (
	// KindNull is an explicit null (YAML ~, JSON null).
	KindNull Kind = iota
	// KindString is a text value.
	KindString
	// KindInt is a signed integer value.
	KindInt
	// KindFloat is a floating point value.
	KindFloat
	// KindBool is a boolean value.
	KindBool
	// KindList is an ordered sequence of values.
	KindList
	// KindMap is a string keyed mapping of values.
	KindMap
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindList:
		return "list"
	case KindMap:
		return "map"
	default:
		return "unknown"
	}
}

// Value is a dynamic configuration value.
// The set of implementations is closed: String, Int, Float, Bool, List, Map and Null.
type Value interface {
	// Kind reports the variant.
	Kind() Kind
	// Interface returns the value as plain Go data (string, int64, float64, bool, []any,
	// map[string]any or nil).
	Interface() any

	isValue()
}

// String is a text value.
type String string

// Int is an integer value.
type Int int64

// Float is a floating point value.
type Float float64

// Bool is a boolean value.
type Bool bool

// List is an ordered sequence of values.
type List []Value

// Map is a mapping from string keys to values.
type Map map[string]Value

// Null is an explicit null value.
type Null struct{}

func (String) Kind() Kind { return KindString }
func (Int) Kind() Kind { return KindInt }
func (Float) Kind() Kind { return KindFloat }
func (Bool) Kind() Kind { return KindBool }
func (List) Kind() Kind { return KindList }
func (Map) Kind() Kind { return KindMap }
func (Null) Kind() Kind { return KindNull }

func (s String) Interface() any { return string(s) }
func (i Int) Interface() any { return int64(i) }
func (f Float) Interface() any { return float64(f) }
func (b Bool) Interface() any { return bool(b) }
func (Null) Interface() any { return nil }

// Interface returns the list as []any, recursively.
func (l List) Interface() any {
	if l == nil {
		return []any(nil)
	}

	out := make([]any, len(l))
	for i, item := range l {
		out[i] = item.Interface()
	}

	return out
}

// Interface returns the map as map[string]any, recursively.
func (m Map) Interface() any {
	if m == nil {
		return map[string]any(nil)
	}

	out := make(map[string]any, len(m))
	for key, item := range m {
		out[key] = item.Interface()
	}

	return out
}

func (String) isValue() {}
func (Int) isValue() {}
func (Float) isValue() {}
func (Bool) isValue() {}
func (List) isValue() {}
func (Map) isValue() {}
func (Null) isValue() {}

// Keys returns the keys of the map in ascending order.
func (m Map) Keys() []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}

	slices.Sort(keys)

	return keys
}

// Clone returns a deep copy of the map.
func (m Map) Clone() Map {
	if m == nil {
		return nil
	}

	dst := make(Map, len(m))
	for key, item := range m {
		dst[key] = Clone(item)
	}

	return dst
}

// Clone returns a deep copy of the list.
func (l List) Clone() List {
	if l == nil {
		return nil
	}

	dst := make(List, len(l))
	for i, item := range l {
		dst[i] = Clone(item)
	}

	return dst
}

// Clone returns a deep copy of v. Scalars are returned as is.
//
//nolint:ireturn // value.Value is a closed sum type.
func Clone(v Value) Value {
	switch typed := v.(type) {
	case Map:
		return typed.Clone()
	case List:
		return typed.Clone()
	default:
		return v
	}
}

// Strings returns the String elements of the list, skipping every other kind.
func (l List) Strings() []string {
	out := make([]string, 0, len(l))

	for _, item := range l {
		if s, ok := item.(String); ok {
			out = append(out, string(s))
		}
	}

	return out
}

// IsNull reports whether v is nil or an explicit Null.
func IsNull(v Value) bool {
	if v == nil {
		return true
	}

	_, isNull := v.(Null)

	return isNull
}

// Join joins path segments with the key separator.
func Join(segments ...string) string {
	return strings.Join(segments, Separator)
}

// Separator separates the segments of a key path.
const Separator = "."
