package app

import (
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/0xalexb/spindle/config"
	"github.com/0xalexb/spindle/logging"
	"github.com/0xalexb/spindle/spindlefx"
)

const targetName = "target"

type targetParams struct {
	fx.In

	Accessor *config.Accessor `name:"target"`
}

// openConfig loads path through the same Fx modules an application would use.
func openConfig(s settings, path, section string) (*config.Accessor, error) {
	var params targetParams

	app := fx.New(
		fx.WithLogger(func() fxevent.Logger { return logging.NewFxLogger(s.logger) }),
		fx.Supply(s.logger, s.components),
		spindlefx.SelectorModule(s.mode),
		spindlefx.NewModule(targetName, spindlefx.WithPath(path), spindlefx.WithSection(section)),
		fx.Populate(&params),
	)

	err := app.Err()
	if err != nil {
		return nil, err
	}

	return params.Accessor, nil
}

func writeYAML(w io.Writer, data any) error {
	out, err := yaml.Marshal(data)
	if err != nil {
		return fmt.Errorf("encoding yaml: %w", err)
	}

	_, err = w.Write(out)

	return err
}
