// Package jsonc provides a parser for JSON with comments and trailing commas (JWCC) for the
// config package. Documents are standardized with github.com/tailscale/hujson and then decoded
// with encoding/json, keeping integer literals as value.Int.
package jsonc

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/0xalexb/spindle/config"
	"github.com/0xalexb/spindle/value"

	"github.com/tailscale/hujson"
)

// Parser implements config.Parser interface for JSON and JWCC data.
type Parser struct{}

// NewParser creates a new JSONC parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// Parse decodes data and returns the mapping at section. Empty data decodes to an empty mapping.
func (p *Parser) Parse(data []byte, section string) (value.Map, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return config.Section(value.Map{}, section)
	}

	standard, err := hujson.Standardize(data)
	if err != nil {
		return nil, fmt.Errorf("standardize error: %w", err)
	}

	decoder := json.NewDecoder(bytes.NewReader(standard))
	decoder.UseNumber()

	var document any

	err = decoder.Decode(&document)
	if err != nil {
		return nil, fmt.Errorf("unmarshal error: %w", err)
	}

	if document == nil {
		return config.Section(value.Map{}, section)
	}

	converted, err := value.Of(document)
	if err != nil {
		return nil, fmt.Errorf("converting document: %w", err)
	}

	m, isMap := converted.(value.Map)
	if !isMap {
		return nil, fmt.Errorf("%w: root is %s", config.ErrNotMapping, converted.Kind())
	}

	return config.Section(m, section)
}
