package yaml

import (
	"bytes"
	"fmt"
	"slices"
	"strings"

	"github.com/0xalexb/spindle/config"
	"github.com/0xalexb/spindle/value"

	"github.com/goccy/go-yaml"
)

// ErrPathNotFound is returned when the specified section is not found in the YAML document.
// It is the same error as config.ErrSectionNotFound.
var ErrPathNotFound = config.ErrSectionNotFound

// Parser implements config.Parser interface for YAML data.
// It uses goccy/go-yaml PathString for section navigation.
type Parser struct{}

// NewParser creates a new YAML parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// Parse decodes YAML data into a mapping.
// The section parameter selects a nested mapping using dot (.) as separator.
// Empty section decodes the entire document; empty data decodes to an empty mapping.
func (p *Parser) Parse(data []byte, section string) (value.Map, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		if section != "" {
			return nil, fmt.Errorf("%w: %s", ErrPathNotFound, section)
		}

		return value.Map{}, nil
	}

	var document any

	if section == "" {
		err := yaml.Unmarshal(data, &document)
		if err != nil {
			return nil, fmt.Errorf("unmarshal error: %w", err)
		}

		return toMap(document, "")
	}

	yamlPath, ok := convertToYAMLPath(section)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrPathNotFound, section)
	}

	pathObj, err := yaml.PathString(yamlPath)
	if err != nil {
		return nil, fmt.Errorf("invalid path %q: %w", section, err)
	}

	err = pathObj.Read(bytes.NewReader(data), &document)
	if err != nil {
		if isKeyNotFoundError(err) {
			return nil, fmt.Errorf("%w: %s", ErrPathNotFound, section)
		}

		return nil, fmt.Errorf("reading path %q: %w", section, err)
	}

	return toMap(document, section)
}

func toMap(document any, section string) (value.Map, error) {
	if document == nil {
		return value.Map{}, nil
	}

	converted, err := value.Of(document)
	if err != nil {
		return nil, fmt.Errorf("converting document: %w", err)
	}

	m, isMap := converted.(value.Map)
	if !isMap {
		return nil, fmt.Errorf("%w: %q is %s", config.ErrNotMapping, section, converted.Kind())
	}

	return m, nil
}

// convertToYAMLPath converts a dotted section to goccy/go-yaml PathString format.
// It reports false for sections with empty segments.
// Examples:
//   - "key" -> "$.key"
//   - "api.permissions" -> "$.api.permissions"
//   - "api..permissions" -> false
func convertToYAMLPath(section string) (string, bool) {
	if slices.Contains(strings.Split(section, "."), "") {
		return "", false
	}

	return "$." + section, true
}

// isKeyNotFoundError checks if the error indicates a key was not found.
func isKeyNotFoundError(err error) bool {
	return yaml.IsNotFoundNodeError(err)
}
