package minimessage

import (
	"strings"

	"github.com/0xalexb/spindle/component"
)

const (
	tagOpen   = '<'
	tagClose  = '>'
	escape    = '\\'
	closeMark = "/"
	negate    = "!"
	argSep    = ":"
)

//nolint:gochecknoglobals // fixed lookup table.
var decorationTags = map[string]component.Decoration{
	"bold":          component.Bold,
	"b":             component.Bold,
	"italic":        component.Italic,
	"i":             component.Italic,
	"em":            component.Italic,
	"underlined":    component.Underlined,
	"u":             component.Underlined,
	"strikethrough": component.Strikethrough,
	"st":            component.Strikethrough,
	"obfuscated":    component.Obfuscated,
	"obf":           component.Obfuscated,
}

//nolint:gochecknoglobals // fixed lookup table.
var colorTags = map[string]bool{
	"color":  true,
	"colour": true,
	"c":      true,
}

// Decoder decodes tag markup.
type Decoder struct{}

// New returns a Decoder.
func New() Decoder {
	return Decoder{}
}

type frame struct {
	key  string
	node component.Component
}

type parser struct {
	stack []frame
	text  strings.Builder
}

// Decode parses input into a component tree. It never fails; anything it does not understand is
// kept as text.
func (Decoder) Decode(input string) component.Component {
	p := &parser{stack: []frame{{}}}

	for i := 0; i < len(input); i++ {
		char := input[i]

		switch {
		case char == escape && i+1 < len(input) && (input[i+1] == tagOpen || input[i+1] == escape):
			p.text.WriteByte(input[i+1])
			i++
		case char == tagOpen:
			end := strings.IndexByte(input[i+1:], tagClose)
			if end < 0 {
				p.text.WriteString(input[i:])

				i = len(input)

				continue
			}

			if next := strings.IndexByte(input[i+1:], tagOpen); next >= 0 && next < end {
				p.text.WriteByte(char)

				continue
			}

			raw := input[i : i+end+2]
			if !p.tag(input[i+1 : i+1+end]) {
				p.text.WriteString(raw)
			}

			i += end + 1
		default:
			p.text.WriteByte(char)
		}
	}

	p.flush()

	for len(p.stack) > 1 {
		p.pop()
	}

	return p.stack[0].node
}

// tag applies one tag body (the text between the angle brackets) and reports whether it was
// recognized.
func (p *parser) tag(body string) bool {
	if body == "" || strings.ContainsAny(body, " \t\n<") {
		return false
	}

	if strings.HasPrefix(body, closeMark) {
		return p.closeTag(strings.ToLower(strings.TrimPrefix(body, closeMark)))
	}

	name, arg, hasArg := strings.Cut(body, argSep)
	name = strings.ToLower(name)

	switch {
	case name == "reset" && !hasArg:
		p.flush()

		for len(p.stack) > 1 {
			p.pop()
		}

		return true
	case (name == "newline" || name == "br") && !hasArg:
		p.text.WriteByte('\n')

		return true
	case colorTags[name] && hasArg:
		color, err := component.Parse(arg)
		if err != nil {
			return false
		}

		p.push(name, component.Style{Color: &color})

		return true
	case strings.HasPrefix(name, "#") && !hasArg:
		color, err := component.Hex(name)
		if err != nil {
			return false
		}

		p.push(name, component.Style{Color: &color})

		return true
	case strings.HasPrefix(name, negate) && !hasArg:
		decoration, ok := decorationTags[strings.TrimPrefix(name, negate)]
		if !ok {
			return false
		}

		p.push(name, component.Style{Unset: decoration})

		return true
	}

	if hasArg {
		return false
	}

	if decoration, ok := decorationTags[name]; ok {
		p.push(name, component.Style{Set: decoration})

		return true
	}

	if color, err := component.Named(name); err == nil {
		p.push(name, component.Style{Color: &color})

		return true
	}

	return false
}

func (p *parser) closeTag(name string) bool {
	if name == "" {
		if len(p.stack) == 1 {
			return true
		}

		p.flush()
		p.pop()

		return true
	}

	for depth := len(p.stack) - 1; depth > 0; depth-- {
		if sameTag(p.stack[depth].key, name) {
			p.flush()

			for len(p.stack) > depth {
				p.pop()
			}

			return true
		}
	}

	// Unmatched closing tags are dropped.
	return true
}

func (p *parser) push(key string, style component.Style) {
	p.flush()
	p.stack = append(p.stack, frame{key: key, node: component.Component{Style: style}})
}

func (p *parser) pop() {
	last := len(p.stack) - 1
	top := p.stack[last]
	p.stack = p.stack[:last]

	parent := &p.stack[last-1].node
	parent.Children = append(parent.Children, top.node)
}

func (p *parser) flush() {
	if p.text.Len() == 0 {
		return
	}

	top := &p.stack[len(p.stack)-1].node
	top.Children = append(top.Children, component.Text(p.text.String()))
	p.text.Reset()
}

// sameTag reports whether a closing tag name closes an opening tag key. Aliases of the same
// decoration close each other.
func sameTag(open, closing string) bool {
	if open == closing {
		return true
	}

	if colorTags[open] && colorTags[closing] {
		return true
	}

	openDecoration, openOK := decorationTags[open]
	closeDecoration, closeOK := decorationTags[closing]

	return openOK && closeOK && openDecoration == closeDecoration
}
