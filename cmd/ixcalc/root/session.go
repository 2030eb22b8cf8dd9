package root

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/flarebyte/ixcalc/internal/calc"
	"github.com/flarebyte/ixcalc/internal/config"
	"github.com/flarebyte/ixcalc/internal/logging"
	"github.com/flarebyte/ixcalc/internal/present"
	"github.com/spf13/cobra"
)

type flagValues struct {
	cfgPath string
	format  string
	verbose bool
	strict  bool
}

// session is the per-invocation state shared by the root and calc commands.
type session struct {
	rawArgs []string
	flags   flagValues

	stdout io.Writer
	format present.Format
	echo   bool
	strict bool
	log    *slog.Logger
}

// setup merges config file values with explicitly set flags.
func (s *session) setup(cmd *cobra.Command) error {
	cfg := config.Default()
	if s.flags.cfgPath != "" {
		c, err := config.Load(s.flags.cfgPath)
		if err != nil {
			return err
		}
		cfg = c
	}
	fs := cmd.Flags()
	if fs.Changed("format") {
		cfg.Output.Format = s.flags.format
	}
	if fs.Changed("verbose") {
		cfg.Log.Verbose = s.flags.verbose
	}
	if fs.Changed("strict") {
		cfg.Errors.Strict = s.flags.strict
	}

	f, err := present.ParseFormat(cfg.Output.Format)
	if err != nil {
		return fmt.Errorf("invalid --format: %v", err)
	}
	s.format = f
	s.echo = cfg.Output.Echo
	s.strict = cfg.Errors.Strict
	s.stdout = cmd.OutOrStdout()
	s.log = logging.New(cmd.ErrOrStderr(), logging.Options{Verbose: cfg.Log.Verbose})
	s.log.Debug("config resolved", "path", s.flags.cfgPath, "format", string(f), "echo", s.echo, "strict", s.strict)
	return nil
}

// dispatch prints the greeting and the echoed arguments, evaluates args
// and renders the outcome. Logical errors are printed, not returned,
// unless strict mode asks for a failing exit code.
func (s *session) dispatch(ctx context.Context, args []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := present.WriteGreeting(s.stdout); err != nil {
		return err
	}
	if s.echo {
		if err := present.Echo(s.stdout, s.rawArgs); err != nil {
			return err
		}
	}

	res, calcErr := calc.Dispatcher{Log: s.log}.Run(args)
	if err := present.Render(s.stdout, s.format, present.Outcome{Result: res, Err: calcErr}); err != nil {
		return err
	}
	if calcErr != nil {
		s.log.Debug("calculation failed", "kind", int(calc.KindOf(calcErr)), "error", calcErr)
		if s.strict {
			return exitError{code: exitCodeLogical, msg: calcErr.Error()}
		}
	}
	return nil
}
