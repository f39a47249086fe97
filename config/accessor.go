package config

import (
	"math"

	"github.com/0xalexb/spindle/markup"
	"github.com/0xalexb/spindle/value"
)

// Accessor provides typed, defaulted access to a Store. Every string it returns, on its own or
// as a list element, passes through the configured markup.Codec.
//
// Lookups never fail: a missing key or a value of another type yields the caller's default.
// Use New or NewAccessor; the zero value is not usable.
type Accessor struct {
	store *Store
	codec markup.Codec
}

// New returns an Accessor over a copy of data.
func New(data value.Map, opts ...Option) *Accessor {
	options := newOptions(opts)

	return &Accessor{
		store: NewStore(data),
		codec: options.codec,
	}
}

// NewAccessor returns an Accessor over an existing Store.
func NewAccessor(store *Store, codec markup.Codec) *Accessor {
	if codec == nil {
		codec = defaultCodec()
	}

	return &Accessor{store: store, codec: codec}
}

// Store returns the underlying Store.
func (a *Accessor) Store() *Store {
	return a.store
}

// Codec returns the codec applied to strings.
//
//nolint:ireturn // the codec is configured by the caller.
func (a *Accessor) Codec() markup.Codec {
	return a.codec
}

// GetValue returns the raw value at path. Maps and lists are copies the caller may modify.
//
//nolint:ireturn // value.Value is a closed sum type.
func (a *Accessor) GetValue(path string) (value.Value, bool) {
	return a.store.Resolve(path)
}

// Has reports whether path resolves to a value.
func (a *Accessor) Has(path string) bool {
	_, ok := a.store.lookup(path)

	return ok
}

// GetString returns the transformed string at path, or def when the value is missing or not a
// string. Numbers and booleans are never converted to strings.
func (a *Accessor) GetString(path string, def string) string {
	found, ok := a.store.lookup(path)
	if !ok {
		return def
	}

	s, isString := found.(value.String)
	if !isString {
		return def
	}

	return a.codec.Transform(string(s))
}

// GetInt returns the integer at path, or def when the value is missing or not an integer.
// Floats and numeric strings are not converted, and integers that do not fit in int yield def.
func (a *Accessor) GetInt(path string, def int) int {
	found, ok := a.store.lookup(path)
	if !ok {
		return def
	}

	i, isInt := found.(value.Int)
	if !isInt || int64(i) < math.MinInt || int64(i) > math.MaxInt {
		return def
	}

	return int(i)
}

// GetBool returns the boolean at path, or def when the value is missing or not a boolean.
func (a *Accessor) GetBool(path string, def bool) bool {
	found, ok := a.store.lookup(path)
	if !ok {
		return def
	}

	b, isBool := found.(value.Bool)
	if !isBool {
		return def
	}

	return bool(b)
}

// GetList returns a new list holding the elements at path, with every string element
// transformed and every other element unchanged. It returns def when the value is missing or
// not a list.
func (a *Accessor) GetList(path string, def value.List) value.List {
	found, ok := a.store.lookup(path)
	if !ok {
		return def
	}

	list, isList := found.(value.List)
	if !isList {
		return def
	}

	out := make(value.List, len(list))

	for i, item := range list {
		if s, isString := item.(value.String); isString {
			out[i] = value.String(a.codec.Transform(string(s)))

			continue
		}

		out[i] = value.Clone(item)
	}

	return out
}

// GetStringList is GetList restricted to string elements.
func (a *Accessor) GetStringList(path string) []string {
	return a.GetList(path, nil).Strings()
}

// GetMap returns a copy of the map at path, or an empty map when the value is missing or not a
// map. Nested maps and lists are copied too. Strings inside the map are returned as stored,
// without markup applied.
func (a *Accessor) GetMap(path string) value.Map {
	found, _ := a.store.lookup(path)

	return copyMap(found)
}

// GetNestedMap is GetMap resolved against m instead of the document root.
func (a *Accessor) GetNestedMap(m value.Map, path string) value.Map {
	found, _ := ResolveFrom(m, path)

	return copyMap(found)
}

func copyMap(found value.Value) value.Map {
	m, isMap := found.(value.Map)
	if !isMap {
		return value.Map{}
	}

	return m.Clone()
}
