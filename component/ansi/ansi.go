// Package ansi renders components as terminal text using ANSI escape sequences.
package ansi

import (
	"strings"

	"github.com/0xalexb/spindle/component"

	"github.com/muesli/termenv"
)

// Serializer renders components for a terminal with the given color profile.
// With termenv.Ascii every span is written without escapes.
type Serializer struct {
	profile termenv.Profile
}

// New returns a Serializer for an explicit profile.
func New(profile termenv.Profile) Serializer {
	return Serializer{profile: profile}
}

// FromEnv returns a Serializer for the profile detected from the environment of stdout.
func FromEnv() Serializer {
	return New(termenv.EnvColorProfile())
}

// Profile returns the color profile used for rendering.
func (s Serializer) Profile() termenv.Profile {
	return s.profile
}

// Serialize renders c span by span, resetting attributes after each span.
func (s Serializer) Serialize(c component.Component) string {
	var builder strings.Builder

	for _, span := range c.Spans() {
		builder.WriteString(s.render(span))
	}

	return builder.String()
}

func (s Serializer) render(span component.Span) string {
	if span.Style.IsEmpty() {
		return span.Text
	}

	styled := s.profile.String(span.Text)

	if span.Style.Color != nil {
		styled = styled.Foreground(s.profile.Color(span.Style.Color.Hex()))
	}

	decorations := span.Style.Set
	if decorations&component.Bold != 0 {
		styled = styled.Bold()
	}

	if decorations&component.Italic != 0 {
		styled = styled.Italic()
	}

	if decorations&component.Underlined != 0 {
		styled = styled.Underline()
	}

	if decorations&component.Strikethrough != 0 {
		styled = styled.CrossOut()
	}

	if decorations&component.Obfuscated != 0 {
		styled = styled.Blink()
	}

	return styled.String()
}
