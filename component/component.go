package component

import "strings"

// Component is a node of styled text.
type Component struct {
	Text     string
	Style    Style
	Children []Component
}

// Text returns an unstyled text component.
func Text(text string) Component {
	return Component{Text: text}
}

// Styled returns a text component with the given style.
func Styled(text string, style Style) Component {
	return Component{Text: text, Style: style}
}

// Append returns c with the children appended.
func (c Component) Append(children ...Component) Component {
	c.Children = append(append([]Component(nil), c.Children...), children...)

	return c
}

// Span is a run of text with its fully resolved style.
type Span struct {
	Text  string
	Style Style
}

// Spans flattens the tree depth-first into resolved spans. Empty text nodes are dropped and
// adjacent spans with equal styles are merged.
func (c Component) Spans() []Span {
	var spans []Span

	c.collect(Style{}, &spans)

	return spans
}

func (c Component) collect(parent Style, spans *[]Span) {
	style := c.Style.Inherit(parent)

	if c.Text != "" {
		last := len(*spans) - 1
		if last >= 0 && (*spans)[last].Style.Equal(style) {
			(*spans)[last].Text += c.Text
		} else {
			*spans = append(*spans, Span{Text: c.Text, Style: style})
		}
	}

	for _, child := range c.Children {
		child.collect(style, spans)
	}
}

// PlainText returns the concatenated text of the tree without any styling.
func (c Component) PlainText() string {
	var builder strings.Builder

	c.writePlain(&builder)

	return builder.String()
}

func (c Component) writePlain(builder *strings.Builder) {
	builder.WriteString(c.Text)

	for _, child := range c.Children {
		child.writePlain(builder)
	}
}

// Decoder turns a markup string into a Component.
type Decoder interface {
	Decode(input string) Component
}

// Serializer renders a Component as a string.
type Serializer interface {
	Serialize(c Component) string
}

// DecoderFunc adapts a function to Decoder.
type DecoderFunc func(input string) Component

// Decode calls f.
func (f DecoderFunc) Decode(input string) Component {
	return f(input)
}

// SerializerFunc adapts a function to Serializer.
type SerializerFunc func(c Component) string

// Serialize calls f.
func (f SerializerFunc) Serialize(c Component) string {
	return f(c)
}

// PlainSerializer renders only the text of a component, discarding style.
type PlainSerializer struct{}

// Serialize returns the plain text of c.
func (PlainSerializer) Serialize(c Component) string {
	return c.PlainText()
}
