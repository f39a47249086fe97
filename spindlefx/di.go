package spindlefx

import (
	"fmt"
	"log/slog"

	"go.uber.org/fx"

	"github.com/0xalexb/spindle"
	"github.com/0xalexb/spindle/config"
	"github.com/0xalexb/spindle/config/fetcher/file"
	"github.com/0xalexb/spindle/markup"
)

// NewModule creates an Fx module for a named configuration file.
// The name is used as both the module name and the DI named tag for Config and *config.Accessor.
// If any options are passed, the module supplies Config to DI from those options.
// Otherwise, Config must be provided externally.
// A markup.Codec in the container, such as the one SelectorModule provides, transforms strings;
// without one the default Legacy codec is used. Load errors fail application start.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func NewModule(name string, opts ...Option) fx.Option {
	if name == "" {
		return fx.Error(ErrEmptyName)
	}

	var cfg Config

	for _, apply := range opts {
		apply(&cfg)
	}

	tag := fmt.Sprintf(`name:"%s"`, name)

	var moduleOpts []fx.Option

	if len(opts) > 0 {
		moduleOpts = append(moduleOpts, fx.Supply(
			fx.Annotate(cfg, fx.ResultTags(tag)),
		))
	}

	moduleOpts = append(moduleOpts, fx.Provide(
		fx.Annotate(
			func(moduleCfg Config, codec markup.Codec, logger *slog.Logger) (*config.Accessor, error) {
				return load(name, moduleCfg, codec, logger)
			},
			fx.ParamTags(tag, `optional:"true"`, `optional:"true"`),
			fx.ResultTags(tag),
		),
	))

	return fx.Module(name, moduleOpts...)
}

// SelectorModule provides a *markup.Selector starting in mode, and exposes it as the
// application's markup.Codec. An optional *markup.Components in the container replaces the
// built-in ones. A mode whose components are unavailable fails application start.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func SelectorModule(mode markup.Mode) fx.Option {
	return fx.Module("markup",
		fx.Provide(
			fx.Annotate(
				func(components *markup.Components, logger *slog.Logger) (*markup.Selector, error) {
					if components == nil {
						components = markup.DefaultComponents()
					}

					var opts []markup.SelectorOption
					if logger != nil {
						opts = append(opts, markup.WithLogger(logger))
					}

					return markup.NewSelector(mode, components, opts...)
				},
				fx.ParamTags(`optional:"true"`, `optional:"true"`),
			),
			fx.Annotate(
				func(selector *markup.Selector) *markup.Selector { return selector },
				fx.As(new(markup.Codec)),
			),
		),
	)
}

func load(name string, cfg Config, codec markup.Codec, logger *slog.Logger) (*config.Accessor, error) {
	err := cfg.Validate()
	if err != nil {
		return nil, fmt.Errorf("config %q: %w", name, err)
	}

	parser, err := spindle.ParserFor(cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("config %q: %w", name, err)
	}

	var fetchOpts []file.Option
	if cfg.Optional {
		fetchOpts = append(fetchOpts, file.AllowMissing())
	}

	fetcher, err := file.NewFetcher(cfg.Path, fetchOpts...)()
	if err != nil {
		return nil, fmt.Errorf("config %q: %w", name, err)
	}

	var configOpts []config.Option
	if codec != nil {
		configOpts = append(configOpts, config.WithCodec(codec))
	}

	if logger != nil {
		configOpts = append(configOpts, config.WithLogger(logger.With(slog.String("config", name))))
	}

	accessor, err := config.Load(parser, fetcher, cfg.Section, configOpts...)
	if err != nil {
		return nil, fmt.Errorf("config %q: %w", name, err)
	}

	return accessor, nil
}
