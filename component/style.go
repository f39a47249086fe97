package component

import "strings"

// Decoration is a text decoration flag.
type Decoration uint8

const (
	// Bold renders heavier text.
	Bold Decoration = 1 << iota
	// Italic renders slanted text.
	Italic
	// Underlined renders a line under the text.
	Underlined
	// Strikethrough renders a line through the text.
	Strikethrough
	// Obfuscated renders scrambled text.
	Obfuscated
)

// Decorations lists every decoration in legacy code order.
//
//nolint:gochecknoglobals // fixed lookup table.
var Decorations = []Decoration{Obfuscated, Bold, Strikethrough, Underlined, Italic}

// String returns the decoration name.
func (d Decoration) String() string {
	switch d {
	case Bold:
		return "bold"
	case Italic:
		return "italic"
	case Underlined:
		return "underlined"
	case Strikethrough:
		return "strikethrough"
	case Obfuscated:
		return "obfuscated"
	default:
		return "unknown"
	}
}

// Style is the formatting of a component. Decorations not mentioned in Set or Unset are
// inherited from the parent.
type Style struct {
	Color *Color
	Set   Decoration
	Unset Decoration
}

// IsEmpty reports whether the style changes nothing.
func (s Style) IsEmpty() bool {
	return s.Color == nil && s.Set == 0 && s.Unset == 0
}

// Has reports whether the decoration is explicitly enabled.
func (s Style) Has(d Decoration) bool {
	return s.Set&d != 0
}

// Inherit returns s with unset fields taken from parent.
func (s Style) Inherit(parent Style) Style {
	out := s
	if out.Color == nil {
		out.Color = parent.Color
	}

	out.Set = (parent.Set &^ s.Unset) | s.Set
	out.Unset = (parent.Unset &^ s.Set) | s.Unset

	return out
}

// Equal reports whether two styles render identically.
func (s Style) Equal(other Style) bool {
	if s.Set != other.Set {
		return false
	}

	switch {
	case s.Color == nil && other.Color == nil:
		return true
	case s.Color == nil || other.Color == nil:
		return false
	default:
		return s.Color.Equal(*other.Color)
	}
}

// String describes the style, for debugging.
func (s Style) String() string {
	parts := make([]string, 0, len(Decorations)+1)
	if s.Color != nil {
		parts = append(parts, s.Color.String())
	}

	for _, decoration := range Decorations {
		if s.Has(decoration) {
			parts = append(parts, decoration.String())
		}
	}

	return strings.Join(parts, ",")
}
