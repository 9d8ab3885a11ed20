// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/invowk/textutils/internal/config"
	"github.com/invowk/textutils/internal/logging"

	"github.com/spf13/cobra"
)

type (
	workDirContextKey struct{}

	// ConfigProvider loads configuration using explicit options.
	ConfigProvider interface {
		Load(ctx context.Context, opts config.LoadOptions) (*config.Config, error)
		Resolve(ctx context.Context, opts config.LoadOptions) (config.Result, error)
	}

	// App wires CLI services and shared state. All command factories receive
	// an App; settings are loaded once per process by the root command.
	App struct {
		Config   ConfigProvider
		Builtins *Registry
		stdin    io.Reader
		stdout   io.Writer
		stderr   io.Writer

		verbose    bool
		configPath string
		settings   *config.Config
	}

	// Dependencies defines the injection points for building an App. Nil
	// fields are replaced with production defaults by NewApp.
	Dependencies struct {
		Config   ConfigProvider
		Builtins *Registry
		Stdin    io.Reader
		Stdout   io.Writer
		Stderr   io.Writer
	}
)

// NewApp creates an App with defaults for omitted dependencies.
func NewApp(deps Dependencies) *App {
	if deps.Stdin == nil {
		deps.Stdin = os.Stdin
	}
	if deps.Stdout == nil {
		deps.Stdout = os.Stdout
	}
	if deps.Stderr == nil {
		deps.Stderr = os.Stderr
	}
	if deps.Config == nil {
		deps.Config = config.NewProvider()
	}
	if deps.Builtins == nil {
		deps.Builtins = DefaultRegistry
	}

	return &App{
		Config:   deps.Config,
		Builtins: deps.Builtins,
		stdin:    deps.Stdin,
		stdout:   deps.Stdout,
		stderr:   deps.Stderr,
	}
}

// Settings returns the loaded configuration, or the defaults before the
// root command has run.
func (a *App) Settings() *config.Config {
	if a.settings == nil {
		return config.DefaultConfig()
	}
	return a.settings
}

// loadOptions returns the LoadOptions derived from global flags.
func (a *App) loadOptions() config.LoadOptions {
	return config.LoadOptions{ConfigFilePath: a.configPath}
}

// initialize loads configuration and installs the process logger. An
// explicit --config that fails to load is fatal; a broken default file is
// reported as a warning and the defaults apply.
func (a *App) initialize(cmd *cobra.Command) error {
	cfg, err := a.Config.Load(cmd.Context(), a.loadOptions())
	if err != nil {
		if a.configPath != "" {
			return err
		}
		fmt.Fprintln(cmd.ErrOrStderr(),
			WarningStyle.Render("Warning:")+" "+formatErrorForDisplay(err, a.verbose))
		cfg = config.DefaultConfig()
	}

	a.settings = cfg
	if cfg.UI.Verbose {
		a.verbose = true
	}

	logging.Install(cmd.ErrOrStderr(), a.verbose)
	slog.Debug("configuration loaded", "file", a.configPath, "verbose", a.verbose)
	return nil
}

// contextWithWorkDir records the directory relative operands resolve
// against. The sh builtin dispatcher sets it to the script's current
// directory.
func contextWithWorkDir(ctx context.Context, dir string) context.Context {
	return context.WithValue(ctx, workDirContextKey{}, dir)
}

// workDirFromContext returns the directory set by contextWithWorkDir, or
// "" for the process working directory.
func workDirFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if dir, ok := ctx.Value(workDirContextKey{}).(string); ok {
		return dir
	}
	return ""
}
