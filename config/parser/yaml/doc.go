// Package yaml provides a YAML parser implementation for the config package.
//
// This package uses github.com/goccy/go-yaml for YAML parsing with native
// PathString support for section navigation. Dotted sections (e.g., "api.permissions")
// are converted to YAML path format (e.g., "$.api.permissions") internally.
//
// Usage:
//
//	parser := yaml.NewParser()
//	document, err := parser.Parse(data, "messages")
//
// Decoding rules:
//   - Empty or whitespace-only data -> empty mapping
//   - A document whose root is not a mapping -> config.ErrNotMapping
//   - Integers of any size -> value.Int, floats -> value.Float
package yaml
