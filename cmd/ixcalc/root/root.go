package root

import (
	"context"
	"io"
	"strings"

	"github.com/flarebyte/ixcalc/cmd/ixcalc/version"
	"github.com/flarebyte/ixcalc/internal/calc"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for ixcalc. rawArgs is the full
// command line after the program path; it is echoed verbatim.
func NewRootCmd(rawArgs []string) *cobra.Command {
	s := &session{rawArgs: rawArgs}
	cmd := &cobra.Command{
		Use:   "ixcalc [flags] <command> [args...]",
		Short: "CLI: a tiny arithmetic sandbox with a calc command",
		Long: `Print a greeting, echo the arguments and evaluate one command.

  calc <operator> <operand>...   reduce integers with ` + strings.Join(calc.Operators(), " or ") + `

  add   sum of all operands
  sub   first operand minus every following operand`,
		Example: "  ixcalc calc add 1 2 3\n  ixcalc --format json calc sub 10 -5",
		// calc and every unknown command name land here and are handled by
		// the dispatcher. Flags stop at the first positional argument, so
		// dash tokens after the command name are never read as flags.
		Args: cobra.ArbitraryArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return s.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.dispatch(cmd.Context(), args)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.CompletionOptions.DisableDefaultCmd = true
	cmd.Flags().SetInterspersed(false)

	pf := cmd.PersistentFlags()
	pf.StringVarP(&s.flags.cfgPath, "config", "c", "", "Path to config file (.cue or .toml)")
	pf.StringVar(&s.flags.format, "format", "text", "Output format: text, json, yaml or table")
	pf.BoolVarP(&s.flags.verbose, "verbose", "v", false, "Write debug logs to stderr")
	pf.BoolVar(&s.flags.strict, "strict", false, "Exit with code 1 when the calculation reports an error")

	// Subcommands
	cmd.AddCommand(version.NewCmd())
	// Replace cobra's implicit `help` command; that name goes to the
	// dispatcher like any other unknown command. --help still works.
	cmd.SetHelpCommand(&cobra.Command{
		Use:    "no-help",
		Hidden: true,
		Args:   cobra.ArbitraryArgs,
		RunE: func(c *cobra.Command, args []string) error {
			return s.dispatch(c.Context(), append([]string{c.Name()}, args...))
		},
	})

	return cmd
}

// Execute runs the root command with provided args.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	if args == nil {
		// cobra falls back to os.Args for a nil slice
		args = []string{}
	}
	cmd := NewRootCmd(args)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd.ExecuteContext(ctx)
}
