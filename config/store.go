package config

import (
	"strings"

	"github.com/0xalexb/spindle/value"
)

// Store owns a loaded document and resolves dotted key paths against it.
// A Store is read-only after construction and safe for concurrent use.
type Store struct {
	root value.Map
}

// NewStore returns a Store holding a deep copy of data. Later changes to data are not visible
// through the Store.
func NewStore(data value.Map) *Store {
	root := data.Clone()
	if root == nil {
		root = value.Map{}
	}

	return &Store{root: root}
}

// Resolve returns the value at path, for example "messages.error.notfound".
// It reports false when any segment is missing, an intermediate value is not a map, the value is
// null, or the path contains an empty segment. Maps and lists are returned as deep copies.
//
//nolint:ireturn // value.Value is a closed sum type.
func (s *Store) Resolve(path string) (value.Value, bool) {
	found, ok := ResolveFrom(s.root, path)
	if !ok {
		return nil, false
	}

	return value.Clone(found), true
}

func (s *Store) lookup(path string) (value.Value, bool) {
	return ResolveFrom(s.root, path)
}

// Keys returns the top-level keys in ascending order.
func (s *Store) Keys() []string {
	return s.root.Keys()
}

// Root returns a deep copy of the whole document.
func (s *Store) Root() value.Map {
	return s.root.Clone()
}

// ResolveFrom resolves path against m with the same rules as Store.Resolve. It allows drilling
// into a map obtained from an earlier lookup. The result is not copied and shares storage with m.
func ResolveFrom(m value.Map, path string) (value.Value, bool) {
	if m == nil || path == "" {
		return nil, false
	}

	var current value.Value = m

	for _, segment := range strings.Split(path, value.Separator) {
		if segment == "" {
			return nil, false
		}

		node, isMap := current.(value.Map)
		if !isMap {
			return nil, false
		}

		next, exists := node[segment]
		if !exists || value.IsNull(next) {
			return nil, false
		}

		current = next
	}

	return current, true
}
