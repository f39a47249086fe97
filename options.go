package spindle

import (
	"io/fs"
	"log/slog"

	"github.com/0xalexb/spindle/markup"
)

// Options holds configuration settings for a Loader.
type Options struct {
	Resources fs.FS
	Codec     markup.Codec
	Logger    *slog.Logger
}

// Option defines a function type for applying configuration options.
type Option func(*Options)

// WithResources sets the bundled files copied into the config folder on first run, typically an
// embed.FS.
func WithResources(resources fs.FS) Option {
	return func(opts *Options) {
		opts.Resources = resources
	}
}

// WithCodec sets the codec applied to string values of loaded documents.
// If not set, the Legacy codec with the built-in components is used.
func WithCodec(codec markup.Codec) Option {
	return func(opts *Options) {
		opts.Codec = codec
	}
}

// WithLogger sets the logger. If not set, slog.Default() is used.
func WithLogger(logger *slog.Logger) Option {
	return func(opts *Options) {
		opts.Logger = logger
	}
}

func newOptions(opts []Option) Options {
	var options Options

	for _, apply := range opts {
		apply(&options)
	}

	if options.Logger == nil {
		options.Logger = slog.Default()
	}

	return options
}
