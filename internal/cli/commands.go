package cli

import (
	"fmt"

	"github.com/atomicstack/termpick/internal/app"
	"github.com/atomicstack/termpick/internal/ui"
	"github.com/atomicstack/termpick/internal/validate"
	"github.com/spf13/cobra"
)

func newChoiceCommand(rt *runtime) *cobra.Command {
	var initial string
	cmd := &cobra.Command{
		Use:   "choice [items...]",
		Short: "Pick one item and print it",
		Example: "  termpick choice red green blue\n" +
			"  ls | termpick choice --initial main.go",
		RunE: func(cmd *cobra.Command, args []string) error {
			items, fromStdin, err := contentItems(args, rt.io.In)
			if err != nil {
				return err
			}
			got, err := app.RunChoice(cmd.Context(), rt.appConfig(fromStdin), items, app.ListOptions[string]{Initial: initial})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), got)
			return nil
		},
	}
	cmd.Flags().StringVar(&initial, "initial", "", "start on the item best matching this query")
	return cmd
}

func newMultiCommand(rt *runtime) *cobra.Command {
	var initial string
	cmd := &cobra.Command{
		Use:   "multi [items...]",
		Short: "Pick any number of items and print one per line",
		RunE: func(cmd *cobra.Command, args []string) error {
			items, fromStdin, err := contentItems(args, rt.io.In)
			if err != nil {
				return err
			}
			chosen, err := app.RunMulti(cmd.Context(), rt.appConfig(fromStdin), items, app.ListOptions[string]{Initial: initial})
			if err != nil {
				return err
			}
			for _, item := range chosen {
				fmt.Fprintln(cmd.OutOrStdout(), item)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&initial, "initial", "", "start on the item best matching this query")
	return cmd
}

func newInputCommand(rt *runtime) *cobra.Command {
	var (
		expr     string
		errorMsg string
		password bool
		value    string
	)
	cmd := &cobra.Command{
		Use:   "input",
		Short: "Read one line of text and print it",
		Example: "  termpick input --validate 'size(input) > 4'\n" +
			"  termpick input --validate int --error-message '{input} is not a number'\n" +
			"  termpick input --password",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in := ui.InputOptions{ErrorTemplate: errorMsg, Password: password, Initial: value}
			if expr != "" {
				compiled, err := validate.Compile(expr)
				if err != nil {
					return usageError(err)
				}
				in.Validator = compiled.Validator()
			}
			got, err := app.RunInput(cmd.Context(), rt.appConfig(false), in)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), got)
			return nil
		},
	}
	cmd.Flags().StringVar(&expr, "validate", "", "CEL expression over input that must be true, or a preset (nonempty, int, number, word)")
	cmd.Flags().StringVar(&errorMsg, "error-message", "", "message shown on rejected input; {input} is replaced by the text")
	cmd.Flags().BoolVar(&password, "password", false, "mask the typed characters")
	cmd.Flags().StringVar(&value, "value", "", "initial text")
	return cmd
}
