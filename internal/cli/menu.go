package cli

import (
	"errors"
	"fmt"

	"github.com/atomicstack/termpick/internal/app"
	"github.com/atomicstack/termpick/internal/menu"
	"github.com/atomicstack/termpick/internal/ui"
	"github.com/spf13/cobra"
)

func newMenuCommand(rt *runtime) *cobra.Command {
	var (
		path     string
		rootName string
		logLines int
	)
	cmd := &cobra.Command{
		Use:   "menu",
		Short: "Walk a menu tree from a YAML or TOML file and run its actions",
		Long: "Walk a menu tree loaded from a YAML or TOML file. Nodes may run shell\n" +
			"commands, whose output is shown in the log panel. The value of the node\n" +
			"that ends the session is printed.",
		Example: "  termpick menu --file ops.yaml\n  termpick menu --file ops.toml --root-name Ops",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if path == "" {
				return usageError(errors.New("menu: --file is required"))
			}
			tree, file, err := menu.LoadFile(path)
			if err != nil {
				if errors.Is(err, menu.ErrInvalidMenu) {
					return usageError(err)
				}
				return err
			}
			name := file.RootName
			if hasFlag(cmd.Flags(), "root-name") || name == "" {
				name = rootName
			}
			value, err := app.RunMenu(cmd.Context(), rt.appConfig(false), tree, ui.MenuOptions{RootName: name, LogLines: logLines})
			if err != nil {
				return err
			}
			if value != nil {
				fmt.Fprintln(cmd.OutOrStdout(), value)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&path, "file", "f", "", "menu definition (.yaml, .yml or .toml)")
	cmd.Flags().StringVar(&rootName, "root-name", "Root", "name of the top breadcrumb entry")
	cmd.Flags().IntVar(&logLines, "log-lines", menu.DefaultLogLines, "action output lines to keep")
	return cmd
}
