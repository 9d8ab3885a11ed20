// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/invowk/textutils/internal/source"
	"github.com/invowk/textutils/internal/textproc"

	"github.com/spf13/cobra"
)

func newUniqCommand(app *App) *cobra.Command {
	var opts textproc.DedupOptions

	cmd := &cobra.Command{
		Use:   "uniq [INPUT [OUTPUT]]",
		Short: "Report or omit repeated lines",
		Long: `Filter adjacent matching lines from INPUT (or standard input), writing to
OUTPUT (or standard output). Lines match when they are equal after trailing
white space, including the line terminator, is removed.`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.CountWidth = int(app.Settings().Uniq.CountWidth)
			return runUniq(cmd, opts, args)
		},
	}

	f := cmd.Flags()
	f.BoolVarP(&opts.Count, "count", "c", false, "prefix lines by the number of occurrences")
	f.BoolVarP(&opts.Repeated, "repeated", "d", false, "only print duplicate lines, one for each group")
	f.BoolVarP(&opts.Unique, "unique", "u", false, "only print unique lines")
	f.BoolVarP(&opts.IgnoreCase, "ignore-case", "i", false, "ignore differences in case when comparing")

	return cmd
}

func runUniq(cmd *cobra.Command, opts textproc.DedupOptions, args []string) (err error) {
	inName := source.StdinName
	if len(args) > 0 {
		inName = args[0]
	}
	workDir := workDirFromContext(cmd.Context())

	in, err := source.Open(inName, cmd.InOrStdin(), workDir)
	if err != nil {
		return err
	}
	defer in.Close()

	out := cmd.OutOrStdout()
	if len(args) == 2 && args[1] != source.StdinName {
		outName := args[1]
		path := outName
		if !filepath.IsAbs(path) && workDir != "" {
			path = filepath.Join(workDir, path)
		}

		f, createErr := os.Create(path)
		if createErr != nil {
			var pe *os.PathError
			if errors.As(createErr, &pe) {
				createErr = pe.Err
			}
			return textproc.NewError(textproc.WriteError, outName, createErr)
		}
		defer func() {
			if closeErr := f.Close(); closeErr != nil && err == nil {
				err = textproc.NewError(textproc.WriteError, outName, closeErr)
			}
		}()
		out = f
	}

	if err := textproc.Dedup(out, in, opts); err != nil {
		return withSource(err, in.Name())
	}
	return nil
}
