// Package toml provides a TOML parser implementation for the config package,
// built on github.com/pelletier/go-toml/v2.
//
// Integers decode to value.Int, floats to value.Float, and dates and times to their RFC 3339
// text as value.String.
package toml

import (
	"errors"
	"fmt"

	"github.com/0xalexb/spindle/config"
	"github.com/0xalexb/spindle/value"

	"github.com/pelletier/go-toml/v2"
)

// Parser implements config.Parser interface for TOML data.
type Parser struct{}

// NewParser creates a new TOML parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// Parse decodes TOML data and returns the mapping at section.
func (p *Parser) Parse(data []byte, section string) (value.Map, error) {
	var document map[string]any

	err := toml.Unmarshal(data, &document)
	if err != nil {
		var decodeErr *toml.DecodeError
		if errors.As(err, &decodeErr) {
			row, column := decodeErr.Position()

			return nil, fmt.Errorf("unmarshal error at line %d, column %d: %w", row, column, err)
		}

		return nil, fmt.Errorf("unmarshal error: %w", err)
	}

	converted, err := value.MapOf(document)
	if err != nil {
		return nil, fmt.Errorf("converting document: %w", err)
	}

	return config.Section(converted, section)
}
