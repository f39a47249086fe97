package app

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/0xalexb/spindle/config"
	"github.com/0xalexb/spindle/value"
)

func newGetCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "get <file> <path>",
		Short: "Print the value at a dotted path",
		Long: `Print the value at a dotted path. Strings, alone or inside lists, are rendered with the
selected markup mode; mappings and lists are printed as YAML.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSettings(cmd, v)
			if err != nil {
				return err
			}

			accessor, err := openConfig(s, args[0], "")
			if err != nil {
				return err
			}

			path := args[1]

			found, ok := accessor.GetValue(path)
			if !ok {
				return fmt.Errorf("%w: %s", config.ErrSectionNotFound, path)
			}

			out := cmd.OutOrStdout()

			switch found.(type) {
			case value.String:
				_, err = fmt.Fprintln(out, accessor.GetString(path, ""))
			case value.List:
				err = writeYAML(out, accessor.GetList(path, nil).Interface())
			case value.Map:
				err = writeYAML(out, found.Interface())
			default:
				_, err = fmt.Fprintln(out, found.Interface())
			}

			return err
		},
	}
}
