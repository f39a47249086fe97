package component

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidColor is returned when a color name or hex string cannot be parsed.
var ErrInvalidColor = errors.New("invalid color")

// Color is a text color. Named colors belong to the sixteen-color legacy palette; hex colors
// carry an arbitrary RGB value.
type Color struct {
	name string
	rgb  colorful.Color
}

// NamedColor describes one entry of the legacy palette.
type NamedColor struct {
	Name string
	Code rune
	Hex  string
}

// Palette lists the legacy colors in code order.
//
//nolint:gochecknoglobals // fixed lookup table.
var Palette = []NamedColor{
	{Name: "black", Code: '0', Hex: "#000000"},
	{Name: "dark_blue", Code: '1', Hex: "#0000aa"},
	{Name: "dark_green", Code: '2', Hex: "#00aa00"},
	{Name: "dark_aqua", Code: '3', Hex: "#00aaaa"},
	{Name: "dark_red", Code: '4', Hex: "#aa0000"},
	{Name: "dark_purple", Code: '5', Hex: "#aa00aa"},
	{Name: "gold", Code: '6', Hex: "#ffaa00"},
	{Name: "gray", Code: '7', Hex: "#aaaaaa"},
	{Name: "dark_gray", Code: '8', Hex: "#555555"},
	{Name: "blue", Code: '9', Hex: "#5555ff"},
	{Name: "green", Code: 'a', Hex: "#55ff55"},
	{Name: "aqua", Code: 'b', Hex: "#55ffff"},
	{Name: "red", Code: 'c', Hex: "#ff5555"},
	{Name: "light_purple", Code: 'd', Hex: "#ff55ff"},
	{Name: "yellow", Code: 'e', Hex: "#ffff55"},
	{Name: "white", Code: 'f', Hex: "#ffffff"},
}

//nolint:gochecknoglobals // aliases accepted by Named.
var colorAliases = map[string]string{
	"grey":      "gray",
	"dark_grey": "dark_gray",
}

// Named returns the palette color with the given name (case-insensitive, "grey" spellings
// accepted).
func Named(name string) (Color, error) {
	lower := strings.ToLower(name)
	if alias, ok := colorAliases[lower]; ok {
		lower = alias
	}

	for _, entry := range Palette {
		if entry.Name == lower {
			return paletteColor(entry), nil
		}
	}

	return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, name)
}

// ByCode returns the palette color for a legacy code character (0-9, a-f, case-insensitive).
func ByCode(code rune) (Color, bool) {
	code = toLower(code)

	for _, entry := range Palette {
		if entry.Code == code {
			return paletteColor(entry), true
		}
	}

	return Color{}, false
}

// Hex parses a "#rrggbb" color.
func Hex(hex string) (Color, error) {
	if len(hex) != 7 || hex[0] != '#' {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, hex)
	}

	rgb, err := colorful.Hex(hex)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q: %w", ErrInvalidColor, hex, err)
	}

	return Color{rgb: rgb}, nil
}

// Parse accepts either a palette name or a "#rrggbb" hex color.
func Parse(s string) (Color, error) {
	if strings.HasPrefix(s, "#") {
		return Hex(s)
	}

	return Named(s)
}

func paletteColor(entry NamedColor) Color {
	rgb, _ := colorful.Hex(entry.Hex)

	return Color{name: entry.Name, rgb: rgb}
}

// Name returns the palette name, or "" for a hex color.
func (c Color) Name() string {
	return c.name
}

// Hex returns the color as lowercase "#rrggbb".
func (c Color) Hex() string {
	return c.rgb.Hex()
}

// RGB returns the 8-bit channels of the color.
func (c Color) RGB() (uint8, uint8, uint8) {
	return c.rgb.RGB255()
}

// Nearest returns the palette color closest to c. Palette colors return themselves.
func (c Color) Nearest() NamedColor {
	if c.name != "" {
		for _, entry := range Palette {
			if entry.Name == c.name {
				return entry
			}
		}
	}

	best := Palette[0]
	bestDistance := math.Inf(1)

	for _, entry := range Palette {
		candidate, _ := colorful.Hex(entry.Hex)

		distance := c.rgb.DistanceLab(candidate)
		if distance < bestDistance {
			best = entry
			bestDistance = distance
		}
	}

	return best
}

// Equal reports whether two colors have the same name and RGB value.
func (c Color) Equal(other Color) bool {
	return c.name == other.name && c.Hex() == other.Hex()
}

// String returns the palette name or the hex form.
func (c Color) String() string {
	if c.name != "" {
		return c.name
	}

	return c.Hex()
}

func toLower(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}

	return r
}
