package markup

import (
	"github.com/0xalexb/spindle/component"
	"github.com/0xalexb/spindle/component/legacy"
	"github.com/0xalexb/spindle/component/minimessage"
)

// Components bundles the decoders and serializer the Legacy and Modern modes depend on.
type Components struct {
	// Legacy decodes '&' color codes.
	Legacy component.Decoder
	// Modern decodes tag markup.
	Modern component.Decoder
	// Serializer renders decoded components back into a string.
	Serializer component.Serializer
}

// DefaultComponents returns the built-in decoders with the plain-text serializer.
func DefaultComponents() *Components {
	return &Components{
		Legacy:     legacy.Ampersand(),
		Modern:     minimessage.New(),
		Serializer: component.PlainSerializer{},
	}
}

// WithSerializer returns a copy of c using s to render components.
func (c *Components) WithSerializer(s component.Serializer) *Components {
	out := *c
	out.Serializer = s

	return &out
}

func (c *Components) decoder(mode Mode) component.Decoder {
	if c == nil {
		return nil
	}

	switch mode {
	case Legacy:
		return c.Legacy
	case Modern:
		return c.Modern
	default:
		return nil
	}
}
