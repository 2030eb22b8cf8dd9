package version

import (
	"fmt"
	"runtime"

	"github.com/flarebyte/ixcalc/internal/buildinfo"
	"github.com/spf13/cobra"
)

// NewCmd creates the `ixcalc version` command.
func NewCmd() *cobra.Command {
	var short, asJSON bool
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the CLI version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if short || !asJSON {
				_, err := fmt.Fprintf(out, "ixcalc %s\n", buildinfo.Summary())
				return err
			}
			// JSON goes to stdout, a human friendly line to stderr.
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "ixcalc version: %s\n", buildinfo.Summary())
			return encodeJSON(out, map[string]any{
				"version":  buildinfo.Version,
				"commit":   buildinfo.Commit,
				"date":     buildinfo.Date,
				"built_by": buildinfo.BuiltBy,
				"go":       runtime.Version(),
				"go_os":    runtime.GOOS,
				"go_arch":  runtime.GOARCH,
			})
		},
	}
	cmd.Flags().BoolVar(&short, "short", false, "Print only the version string")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print detailed JSON version info")
	return cmd
}
