package legacy

import (
	"strings"
	"unicode/utf8"

	"github.com/0xalexb/spindle/component"
)

const (
	// AmpersandChar prefixes codes in hand-written text.
	AmpersandChar = '&'
	// SectionChar prefixes codes in rendered text.
	SectionChar = '§'

	resetCode = 'r'
	hexCode   = '#'
	hexLength = 6
)

//nolint:gochecknoglobals // fixed lookup table.
var decorationCodes = map[rune]component.Decoration{
	'k': component.Obfuscated,
	'l': component.Bold,
	'm': component.Strikethrough,
	'n': component.Underlined,
	'o': component.Italic,
}

// Codec decodes and serializes legacy text using a single prefix character.
type Codec struct {
	char rune
}

// New returns a Codec using char as the code prefix.
func New(char rune) Codec {
	return Codec{char: char}
}

// Ampersand returns the Codec for '&' prefixed text.
func Ampersand() Codec {
	return New(AmpersandChar)
}

// Section returns the Codec for '§' prefixed text.
func Section() Codec {
	return New(SectionChar)
}

// Decode parses input into a flat component whose children carry the resolved styles.
func (c Codec) Decode(input string) component.Component {
	root := component.Component{}

	var (
		style component.Style
		text  strings.Builder
	)

	flush := func() {
		if text.Len() == 0 {
			return
		}

		root.Children = append(root.Children, component.Styled(text.String(), style))
		text.Reset()
	}

	for i := 0; i < len(input); {
		r, size := utf8.DecodeRuneInString(input[i:])
		if r != c.char || i+size >= len(input) {
			text.WriteString(input[i : i+size])
			i += size

			continue
		}

		next, nextSize := utf8.DecodeRuneInString(input[i+size:])
		code := toLower(next)

		if code == hexCode {
			start := i + size + nextSize
			if color, ok := parseHex(input, start); ok {
				flush()

				style = component.Style{Color: &color}
				i = start + hexLength

				continue
			}
		}

		if color, ok := component.ByCode(code); ok {
			flush()

			style = component.Style{Color: &color}
			i += size + nextSize

			continue
		}

		if decoration, ok := decorationCodes[code]; ok {
			flush()

			style.Set |= decoration
			i += size + nextSize

			continue
		}

		if code == resetCode {
			flush()

			style = component.Style{}
			i += size + nextSize

			continue
		}

		text.WriteString(input[i : i+size])
		i += size
	}

	flush()

	return root
}

// Serialize renders c as legacy text. Hex colors are downsampled to the nearest palette color.
func (c Codec) Serialize(comp component.Component) string {
	var (
		builder     strings.Builder
		color       rune
		decorations component.Decoration
	)

	writeCode := func(code rune) {
		builder.WriteRune(c.char)
		builder.WriteRune(code)
	}

	for _, span := range comp.Spans() {
		code := colorCode(span.Style)
		want := span.Style.Set

		if code != color || decorations&^want != 0 {
			switch {
			case code != 0:
				writeCode(code)
			case color != 0 || decorations != 0:
				writeCode(resetCode)
			}

			color = code
			decorations = 0
		}

		for _, decoration := range component.Decorations {
			if want&decoration != 0 && decorations&decoration == 0 {
				writeCode(decorationCode(decoration))
			}
		}

		decorations = want

		builder.WriteString(span.Text)
	}

	return builder.String()
}

// Strip removes every valid code from input, keeping only the text.
func (c Codec) Strip(input string) string {
	return c.Decode(input).PlainText()
}

func colorCode(style component.Style) rune {
	if style.Color == nil {
		return 0
	}

	return style.Color.Nearest().Code
}

func decorationCode(decoration component.Decoration) rune {
	for code, candidate := range decorationCodes {
		if candidate == decoration {
			return code
		}
	}

	return resetCode
}

func parseHex(input string, start int) (component.Color, bool) {
	if start+hexLength > len(input) {
		return component.Color{}, false
	}

	digits := input[start : start+hexLength]
	for _, r := range digits {
		if !isHexDigit(r) {
			return component.Color{}, false
		}
	}

	color, err := component.Hex("#" + digits)
	if err != nil {
		return component.Color{}, false
	}

	return color, true
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

func toLower(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}

	return r
}
