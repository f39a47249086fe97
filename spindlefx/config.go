// Package spindlefx provides Fx modules that load named configuration files and share the markup
// selector across an application.
package spindlefx

import "errors"

// ErrEmptyName is returned when the module name is empty.
var ErrEmptyName = errors.New("module name must not be empty")

// ErrEmptyPath is returned when the configuration file path is empty.
var ErrEmptyPath = errors.New("config path must not be empty")

// Config describes one configuration file.
type Config struct {
	// Path is the file to read. Its extension selects the parser.
	Path string
	// Section restricts the accessor to the mapping at this dotted path.
	Section string
	// Optional makes a missing file load as an empty configuration.
	Optional bool
}

// Validate validates the Config.
func (c *Config) Validate() error {
	if c.Path == "" {
		return ErrEmptyPath
	}

	return nil
}
