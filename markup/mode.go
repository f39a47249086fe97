package markup

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownMode is returned for a mode outside Plain, Legacy and Modern.
var ErrUnknownMode = errors.New("unknown serializer mode")

// Mode selects how string values are transformed.
type Mode uint8

const (
	// Legacy decodes '&' color codes. It is the default.
	Legacy Mode = iota
	// Modern decodes tag markup such as <red>text</red>.
	Modern
	// Plain leaves strings untouched.
	Plain
)

// DefaultMode is the mode used when none is configured.
const DefaultMode = Legacy

// String returns the canonical name of the mode.
func (m Mode) String() string {
	switch m {
	case Legacy:
		return "legacy"
	case Modern:
		return "modern"
	case Plain:
		return "plain"
	default:
		return fmt.Sprintf("mode(%d)", uint8(m))
	}
}

// ParseMode parses a mode name. Accepted names are "plain" or "none", "legacy", and "modern"
// or "minimessage", in any case. An empty name yields DefaultMode.
func ParseMode(name string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "":
		return DefaultMode, nil
	case "plain", "none":
		return Plain, nil
	case "legacy":
		return Legacy, nil
	case "modern", "minimessage":
		return Modern, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMode, name)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	if m > Plain {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMode, uint8(m))
	}

	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler so a Mode can be read from YAML, TOML or
// JSON configuration.
func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}

	*m = parsed

	return nil
}
