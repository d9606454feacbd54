package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	goversion "go.hein.dev/go-version"

	"github.com/faizmokh/mdorg/internal/version"
)

func newVersionCommand() *cobra.Command {
	var (
		shortened bool
		output    string
	)

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print mdorg build information.",
		Example: `  mdorg version
  mdorg version --short
  mdorg version -o yaml`,
		Args: cobra.NoArgs,
		// Build information never depends on settings.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		Run: func(cmd *cobra.Command, _ []string) {
			resp := goversion.FuncWithOutput(shortened, version.Version, version.Commit, version.Date, output)
			fmt.Fprint(cmd.OutOrStdout(), resp)
		},
	}

	cmd.Flags().BoolVarP(&shortened, "short", "s", false, "Print just the version number.")
	cmd.Flags().StringVarP(&output, "output", "o", "json", "Output format. One of 'yaml' or 'json'.")

	return cmd
}
