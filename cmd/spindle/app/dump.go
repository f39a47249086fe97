package app

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newDumpCmd(v *viper.Viper) *cobra.Command {
	var section string

	cmd := &cobra.Command{
		Use:   "dump <file>",
		Short: "Print a configuration file as YAML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSettings(cmd, v)
			if err != nil {
				return err
			}

			accessor, err := openConfig(s, args[0], section)
			if err != nil {
				return err
			}

			s.logger.Debug("dumping config", "keys", accessor.Store().Keys())

			return writeYAML(cmd.OutOrStdout(), accessor.Store().Root().Interface())
		},
	}

	cmd.Flags().StringVar(&section, "section", "", "Only print the mapping at this dotted path")

	return cmd
}
