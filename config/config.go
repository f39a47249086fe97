package config

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/0xalexb/spindle/markup"
	"github.com/0xalexb/spindle/value"
)

// ErrNotMapping is returned by parsers when a document or section is not a mapping.
var ErrNotMapping = errors.New("document is not a mapping")

// ErrSectionNotFound is returned by parsers when the requested section does not exist.
var ErrSectionNotFound = errors.New("path not found")

// Parser decodes raw configuration data into a mapping.
//
// The section parameter selects a nested mapping using dotted keys. For example:
//   - "messages" decodes config["messages"]
//   - "database.connection" decodes config["database"]["connection"]
//   - "" (empty section) decodes the entire document
//
// Empty data decodes to an empty mapping.
type Parser interface {
	Parse(data []byte, section string) (value.Map, error)
}

// DataFetcher defines an interface for reading configuration data.
type DataFetcher interface {
	Fetch() ([]byte, error)
}

// Provider returns a function that reads and parses configuration data into an Accessor.
// The returned function fits fx.Provide.
func Provider(section string, opts ...Option) func(Parser, DataFetcher) (*Accessor, error) {
	return func(parser Parser, dataFetcher DataFetcher) (*Accessor, error) {
		return Load(parser, dataFetcher, section, opts...)
	}
}

// Load reads data from dataFetcher, decodes it with parser and returns an Accessor over it.
func Load(parser Parser, dataFetcher DataFetcher, section string, opts ...Option) (*Accessor, error) {
	options := newOptions(opts)

	data, err := dataFetcher.Fetch()
	if err != nil {
		return nil, fmt.Errorf("reading data error: %w", err)
	}

	document, err := parser.Parse(data, section)
	if err != nil {
		return nil, fmt.Errorf("parsing error: %w", err)
	}

	options.logger.Debug("config loaded",
		slog.String("section", section),
		slog.Int("keys", len(document)),
	)

	return &Accessor{
		store: NewStore(document),
		codec: options.codec,
	}, nil
}

// Section returns the mapping at section inside document. An empty section returns document.
// Parsers without native path support use it to honor the section parameter.
func Section(document value.Map, section string) (value.Map, error) {
	if section == "" {
		return document, nil
	}

	found, ok := ResolveFrom(document, section)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSectionNotFound, section)
	}

	m, isMap := found.(value.Map)
	if !isMap {
		return nil, fmt.Errorf("%w: %q is %s", ErrNotMapping, section, found.Kind())
	}

	return m, nil
}

// Option configures an Accessor.
type Option func(*options)

type options struct {
	codec  markup.Codec
	logger *slog.Logger
}

// WithCodec sets the codec applied to string values. A nil codec keeps the default.
func WithCodec(codec markup.Codec) Option {
	return func(opts *options) {
		if codec != nil {
			opts.codec = codec
		}
	}
}

// WithLogger sets the logger used while loading.
func WithLogger(logger *slog.Logger) Option {
	return func(opts *options) {
		if logger != nil {
			opts.logger = logger
		}
	}
}

func newOptions(opts []Option) options {
	result := options{
		codec:  nil,
		logger: slog.Default(),
	}

	for _, apply := range opts {
		apply(&result)
	}

	if result.codec == nil {
		result.codec = defaultCodec()
	}

	return result
}

// defaultCodec is the Legacy codec with the built-in components.
//
//nolint:ireturn // see markup.New.
func defaultCodec() markup.Codec {
	return markup.Must(markup.DefaultMode, markup.DefaultComponents())
}
