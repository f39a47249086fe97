package spindlefx

// Option defines a function type for configuring a config module.
type Option func(*Config)

// WithPath sets the file the module loads.
func WithPath(path string) Option {
	return func(cfg *Config) {
		cfg.Path = path
	}
}

// WithSection restricts the module to a section of the file.
func WithSection(section string) Option {
	return func(cfg *Config) {
		cfg.Section = section
	}
}

// Optional lets the file be absent.
func Optional() Option {
	return func(cfg *Config) {
		cfg.Optional = true
	}
}
