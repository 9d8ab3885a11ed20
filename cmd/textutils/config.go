// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/invowk/textutils/internal/config"
	"github.com/invowk/textutils/internal/textproc"

	"github.com/spf13/cobra"
)

// newConfigCommand creates the `textutils config` command tree.
func newConfigCommand(app *App) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage textutils configuration",
		Long: `Manage textutils configuration.

Configuration is stored in:
  - Linux: ~/.config/textutils/config.cue
  - macOS: ~/Library/Application Support/textutils/config.cue
  - Windows: %APPDATA%\textutils\config.cue

Every key can be overridden from the environment, e.g. TEXTUTILS_HEAD_LINES=20.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.Config.Resolve(cmd.Context(), app.loadOptions())
			if err != nil {
				return err
			}
			return showConfig(cmd.OutOrStdout(), res)
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(cmd.OutOrStdout())
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath := app.configPath
			if cfgPath == "" {
				var err error
				if cfgPath, err = config.ConfigFilePath(); err != nil {
					return err
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), cfgPath)
			return nil
		},
	})

	var dumpFormat string
	dumpCmd := &cobra.Command{
		Use:   "dump",
		Short: "Output the effective configuration as CUE or TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.Config.Load(cmd.Context(), app.loadOptions())
			if err != nil {
				return err
			}
			return dumpConfig(cmd.OutOrStdout(), cfg, dumpFormat)
		},
	}
	dumpCmd.Flags().StringVar(&dumpFormat, "format", "cue", "output format: cue or toml")
	cfgCmd.AddCommand(dumpCmd)

	return cfgCmd
}

func dumpConfig(w io.Writer, cfg *config.Config, format string) error {
	var out string
	switch format {
	case "cue":
		out = config.GenerateCUE(cfg)
	case "toml":
		var err error
		if out, err = config.GenerateTOML(cfg); err != nil {
			return err
		}
	default:
		return textproc.Argumentf("unknown format %q (valid: cue, toml)", format)
	}
	_, err := io.WriteString(w, out)
	return err
}

func showConfig(w io.Writer, res config.Result) error {
	cfg := res.Config
	keyStyle := CmdStyle
	valueStyle := SuccessStyle

	fmt.Fprintln(w, TitleStyle.Render("Current Configuration"))
	fmt.Fprintln(w)

	if res.Path != "" {
		fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("Config file"), res.Path)
	} else {
		fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("Config file"), SubtitleStyle.Render("(using defaults)"))
	}

	sections := []struct {
		name   string
		values [][2]string
	}{
		{"ui", [][2]string{
			{"color_scheme", cfg.UI.ColorScheme.String()},
			{"verbose", fmt.Sprint(cfg.UI.Verbose)},
		}},
		{"wc", [][2]string{
			{"column_width", fmt.Sprint(cfg.Wc.ColumnWidth)},
			{"invalid_utf8", string(cfg.Wc.InvalidUTF8)},
		}},
		{"head", [][2]string{{"lines", fmt.Sprint(cfg.Head.Lines)}}},
		{"uniq", [][2]string{{"count_width", fmt.Sprint(cfg.Uniq.CountWidth)}}},
		{"cat", [][2]string{{"number_width", fmt.Sprint(cfg.Cat.NumberWidth)}}},
		{"sh", [][2]string{{"builtins_only", fmt.Sprint(cfg.Sh.BuiltinsOnly)}}},
	}

	for _, section := range sections {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "%s:\n", keyStyle.Render(section.name))
		for _, kv := range section.values {
			fmt.Fprintf(w, "  %s: %s\n", kv[0], valueStyle.Render(kv[1]))
		}
	}
	return nil
}

func initConfig(w io.Writer) error {
	cfgPath, err := config.ConfigFilePath()
	if err != nil {
		return err
	}

	if _, err := os.Stat(cfgPath); err == nil {
		fmt.Fprintf(w, "Configuration file already exists at: %s\n", cfgPath)
		return nil
	}

	created, err := config.CreateDefaultConfig()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%s %s\n", SuccessStyle.Render("Created configuration file:"), created)
	return nil
}
