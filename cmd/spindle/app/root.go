// Package app provides the commands of the spindle command-line application.
package app

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/0xalexb/spindle"
	"github.com/0xalexb/spindle/component"
	"github.com/0xalexb/spindle/component/ansi"
	"github.com/0xalexb/spindle/component/legacy"
	"github.com/0xalexb/spindle/logging"
	"github.com/0xalexb/spindle/markup"
)

const envPrefix = "SPINDLE"

// Output serializers accepted by --serializer.
const (
	SerializerPlain   = "plain"
	SerializerSection = "section"
	SerializerANSI    = "ansi"
)

// ErrUnknownSerializer is returned for --serializer values other than plain, section and ansi.
var ErrUnknownSerializer = errors.New("unknown serializer")

type settings struct {
	mode       markup.Mode
	components *markup.Components
	logger     *slog.Logger
}

// NewRootCmd creates a new root command for the spindle CLI. Every persistent flag can also be
// set through a SPINDLE_ prefixed environment variable, e.g. SPINDLE_LOG_LEVEL.
func NewRootCmd() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	rootCmd := &cobra.Command{
		Use:               "spindle",
		DisableAutoGenTag: true,
		SilenceUsage:      true,
		Short:             "Inspect and bootstrap spindle configuration files",
		Long: `spindle reads YAML, TOML and JSONC configuration files the way applications using the
spindle library see them, with color markup in strings rendered by the selected mode.`,
		Version: fmt.Sprintf("%s (compiled %s)", spindle.Version, spindle.CompiledAt),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.String("mode", markup.DefaultMode.String(), "Markup mode: plain, legacy or modern")
	flags.String("serializer", SerializerPlain, "Output of decoded markup: plain, section or ansi")
	flags.String("log-level", "warn", "Log level: debug, info, warn or error")
	flags.String("log-format", logging.FormatText, "Log format: text or json")

	for _, name := range []string{"mode", "serializer", "log-level", "log-format"} {
		cobra.CheckErr(v.BindPFlag(name, flags.Lookup(name)))
	}

	rootCmd.AddCommand(newGetCmd(v), newDumpCmd(v), newInitCmd(v))

	return rootCmd
}

func loadSettings(cmd *cobra.Command, v *viper.Viper) (settings, error) {
	logger := logging.NewLogger(logging.LoggerConfig{
		Level:  v.GetString("log-level"),
		Format: v.GetString("log-format"),
	}, cmd.ErrOrStderr())

	mode, err := markup.ParseMode(v.GetString("mode"))
	if err != nil {
		return settings{}, err
	}

	serializer, err := serializerFor(v.GetString("serializer"))
	if err != nil {
		return settings{}, err
	}

	return settings{
		mode:       mode,
		components: markup.DefaultComponents().WithSerializer(serializer),
		logger:     logger,
	}, nil
}

//nolint:ireturn // the serializers share no concrete type.
func serializerFor(name string) (component.Serializer, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case SerializerPlain, "":
		return component.PlainSerializer{}, nil
	case SerializerSection:
		return legacy.Section(), nil
	case SerializerANSI:
		return ansi.FromEnv(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSerializer, name)
	}
}
