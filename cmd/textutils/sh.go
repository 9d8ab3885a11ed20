// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/invowk/textutils/internal/issue"

	"github.com/spf13/cobra"
	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"
)

// exitCommandNotFound is the POSIX status for an unknown command.
const exitCommandNotFound = 127

func newShCommand(app *App) *cobra.Command {
	var script string

	cmd := &cobra.Command{
		Use:   "sh [-c SCRIPT | FILE] [ARG]...",
		Short: "Run a POSIX shell script with textutils builtins",
		Long: `Run a POSIX shell script in-process. Commands named like a textutils
utility (cat, head, sh, uniq, wc) run in-process; other commands run from
PATH unless sh.builtins_only is set in the configuration. Shell builtins
such as echo, printf and cd keep their shell behavior.

The script comes from -c, from FILE, or from standard input. Remaining
arguments become the positional parameters $1, $2, ...`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSh(cmd, app, script, cmd.Flags().Changed("command"), args)
		},
	}

	cmd.Flags().SetInterspersed(false)
	cmd.Flags().StringVarP(&script, "command", "c", "", "read commands from SCRIPT")

	return cmd
}

func runSh(cmd *cobra.Command, app *App, script string, inline bool, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	workDir := workDirFromContext(ctx)
	stdin := cmd.InOrStdin()

	var (
		name   string
		reader io.Reader
		params = args
	)
	switch {
	case inline:
		name, reader = "-c", strings.NewReader(script)
	case len(args) > 0:
		name, params = args[0], args[1:]
		path := name
		if !filepath.IsAbs(path) && workDir != "" {
			path = filepath.Join(workDir, path)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return issue.NewErrorContext().
				WithOperation("read script").
				WithResource(name).
				WithIssue(issue.ScriptExecutionFailedId).
				Wrap(err).
				BuildError()
		}
		reader = strings.NewReader(string(data))
	default:
		// The script consumes standard input, so builtins see an empty stream.
		name, reader = "-", stdin
		stdin = strings.NewReader("")
	}

	prog, err := syntax.NewParser().Parse(reader, name)
	if err != nil {
		return issue.NewErrorContext().
			WithOperation("parse script").
			WithResource(name).
			WithSuggestion("Check the script for unbalanced quotes or missing keywords").
			WithIssue(issue.ScriptExecutionFailedId).
			Wrap(err).
			BuildError()
	}

	opts := []interp.RunnerOption{
		interp.StdIO(stdin, cmd.OutOrStdout(), cmd.ErrOrStderr()),
		interp.Env(expand.ListEnviron(os.Environ()...)),
		interp.ExecHandlers(app.builtinExecHandler(app.Settings().Sh.BuiltinsOnly)),
	}
	if workDir != "" {
		opts = append(opts, interp.Dir(workDir))
	}
	// "--" keeps arguments such as "-v" from being read as shell options.
	if len(params) > 0 {
		opts = append(opts, interp.Params(append([]string{"--"}, params...)...))
	}

	runner, err := interp.New(opts...)
	if err != nil {
		return fmt.Errorf("failed to create interpreter: %w", err)
	}

	if err := runner.Run(ctx, prog); err != nil {
		var exitStatus interp.ExitStatus
		if errors.As(err, &exitStatus) {
			return &ExitError{Code: int(exitStatus)}
		}
		return issue.NewErrorContext().
			WithOperation("run script").
			WithResource(name).
			WithIssue(issue.ScriptExecutionFailedId).
			Wrap(err).
			BuildError()
	}
	return nil
}

// builtinExecHandler runs registered utilities in-process. Unknown
// commands go to next, or fail with status 127 when builtinsOnly is set.
func (a *App) builtinExecHandler(builtinsOnly bool) func(next interp.ExecHandlerFunc) interp.ExecHandlerFunc {
	return func(next interp.ExecHandlerFunc) interp.ExecHandlerFunc {
		return func(ctx context.Context, args []string) error {
			if len(args) == 0 {
				return next(ctx, args)
			}

			if _, ok := a.Builtins.Lookup(args[0]); !ok {
				if builtinsOnly {
					hc := interp.HandlerCtx(ctx)
					fmt.Fprintf(hc.Stderr, "%s: %s\n", args[0], ErrCommandNotFound)
					if a.verbose {
						renderIssue(hc.Stderr, issue.CommandNotFoundId, a.Settings().UI.ColorScheme.GlamourStyle())
					}
					return interp.ExitStatus(exitCommandNotFound)
				}
				slog.Debug("running host command", "command", args[0])
				return next(ctx, args)
			}

			return a.runBuiltin(ctx, args)
		}
	}
}

// runBuiltin executes a registered utility with the interpreter's stdio
// and current directory, translating failures into exit statuses.
func (a *App) runBuiltin(ctx context.Context, args []string) error {
	hc := interp.HandlerCtx(ctx)
	stdio := Stdio{In: strings.NewReader(""), Out: hc.Stdout, Err: hc.Stderr}
	if hc.Stdin != nil {
		stdio.In = hc.Stdin
	}

	slog.Debug("running builtin", "command", args[0], "args", args[1:], "dir", hc.Dir)

	err := a.Builtins.Run(contextWithWorkDir(ctx, hc.Dir), a, args[0], args[1:], stdio)
	if err == nil {
		return nil
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		if exitErr.Err != nil {
			fmt.Fprintf(hc.Stderr, "%s: %s\n", args[0], exitErr.Err)
		}
		return interp.ExitStatus(uint8(exitErr.Code))
	}
	fmt.Fprintf(hc.Stderr, "%s: %s\n", args[0], formatErrorForDisplay(err, a.verbose))
	return interp.ExitStatus(1)
}
