// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

// rootName is the program name that selects subcommand mode.
const rootName = "textutils"

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// NewRootCommand builds the command tree for app.
func NewRootCommand(app *App) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   rootName,
		Short: "Small Unix text utilities",
		Long: TitleStyle.Render("textutils") + SubtitleStyle.Render(" - small Unix text utilities") + `

Counts, de-duplicates, numbers and truncates text streams, and runs POSIX
scripts that use them as builtins. Each utility also runs directly when the
binary is invoked under its name (for example through a 'wc' symlink).

` + SubtitleStyle.Render("Examples:") + `
  textutils wc -l *.go          Count lines in Go files
  textutils uniq -c words.txt   Count adjacent repeated lines
  textutils head -n 3 log.txt   Print the first three lines
  textutils sh -c 'cat a | wc'  Run a pipeline of builtins`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.initialize(cmd)
		},
	}

	rootCmd.SetIn(app.stdin)
	rootCmd.SetOut(app.stdout)
	rootCmd.SetErr(app.stderr)

	pf := rootCmd.PersistentFlags()
	pf.BoolVar(&app.verbose, "verbose", false, "enable debug logging and issue help on errors")
	pf.StringVar(&app.configPath, "config", "", "config file (default is $HOME/.config/textutils/config.cue)")

	for _, name := range app.Builtins.Names() {
		factory, _ := app.Builtins.Lookup(name)
		rootCmd.AddCommand(factory(app))
	}
	rootCmd.AddCommand(newConfigCommand(app))

	return rootCmd
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// multiCallArgs prefixes args with the utility name when the program was
// invoked as a registered utility, busybox style.
func multiCallArgs(registry *Registry, argv0 string, args []string) []string {
	name := strings.TrimSuffix(filepath.Base(argv0), ".exe")
	if name == rootName {
		return args
	}
	if _, ok := registry.Lookup(name); !ok {
		return args
	}
	return append([]string{name}, args...)
}

// Execute runs the command tree against os.Args and exits the process
// with the resulting status.
func Execute() {
	app := NewApp(Dependencies{})
	rootCmd := NewRootCommand(app)
	rootCmd.SetArgs(multiCallArgs(app.Builtins, os.Args[0], os.Args[1:]))

	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
		fang.WithErrorHandler(app.handleError),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}
