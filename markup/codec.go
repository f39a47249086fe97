package markup

import (
	"errors"
	"fmt"

	"github.com/0xalexb/spindle/component"
)

// ErrComponentsUnavailable is returned when a mode needs a decoder or serializer that was not
// provided.
var ErrComponentsUnavailable = errors.New("text components are required for this serializer mode")

// Codec transforms a raw configuration string into its display form.
// Transform must be pure: the same input always yields the same output.
type Codec interface {
	Transform(input string) string
}

// PlainCodec returns strings unchanged.
type PlainCodec struct{}

// Transform returns input.
func (PlainCodec) Transform(input string) string {
	return input
}

// ComponentCodec decodes a string into a component and serializes it back. Build it with New;
// the zero value returns strings unchanged.
type ComponentCodec struct {
	decoder    component.Decoder
	serializer component.Serializer
}

// Transform decodes input and serializes the result.
func (c ComponentCodec) Transform(input string) string {
	if c.decoder == nil || c.serializer == nil {
		return input
	}

	return c.serializer.Serialize(c.decoder.Decode(input))
}

//nolint:gochecknoglobals // dispatch table keyed by mode.
var constructors = map[Mode]func(mode Mode, components *Components) (Codec, error){
	Plain:  newPlain,
	Legacy: newComponentCodec,
	Modern: newComponentCodec,
}

// New returns the Codec for mode. Legacy and Modern fail with ErrComponentsUnavailable when
// components, their decoder or their serializer is missing.
//
//nolint:ireturn // the codec variant depends on mode.
func New(mode Mode, components *Components) (Codec, error) {
	constructor, ok := constructors[mode]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownMode, mode)
	}

	return constructor(mode, components)
}

//nolint:ireturn // matches constructors signature.
func newPlain(Mode, *Components) (Codec, error) {
	return PlainCodec{}, nil
}

//nolint:ireturn // matches constructors signature.
func newComponentCodec(mode Mode, components *Components) (Codec, error) {
	decoder := components.decoder(mode)
	if decoder == nil {
		return nil, fmt.Errorf("%w: %s mode has no decoder", ErrComponentsUnavailable, mode)
	}

	if components.Serializer == nil {
		return nil, fmt.Errorf("%w: %s mode has no serializer", ErrComponentsUnavailable, mode)
	}

	return ComponentCodec{decoder: decoder, serializer: components.Serializer}, nil
}

// Must is like New but panics on error. It is meant for package-level defaults in programs.
//
//nolint:ireturn // see New.
func Must(mode Mode, components *Components) Codec {
	codec, err := New(mode, components)
	if err != nil {
		panic(err)
	}

	return codec
}
