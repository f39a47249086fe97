package app

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/0xalexb/spindle"
)

func newInitCmd(v *viper.Viper) *cobra.Command {
	var resources string

	cmd := &cobra.Command{
		Use:   "init <folder> <name>...",
		Short: "Create a configuration folder and copy missing files into it",
		Long: `Create a configuration folder and copy every named file that does not exist yet from the
resources directory. Existing files are never overwritten.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSettings(cmd, v)
			if err != nil {
				return err
			}

			opts := []spindle.Option{spindle.WithLogger(s.logger)}
			if resources != "" {
				opts = append(opts, spindle.WithResources(os.DirFS(resources)))
			}

			loader, err := spindle.Setup(args[0], args[1:], opts...)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			for _, name := range args[1:] {
				status := "present"

				_, err = os.Stat(loader.Path(name))
				if errors.Is(err, fs.ErrNotExist) {
					status = "missing"
				}

				_, err = fmt.Fprintf(out, "%s\t%s\n", status, loader.Path(name))
				if err != nil {
					return err
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&resources, "resources", "", "Directory holding the default files")

	return cmd
}
