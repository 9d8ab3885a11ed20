// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/invowk/textutils/internal/source"
	"github.com/invowk/textutils/internal/textproc"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func newHeadCommand(app *App) *cobra.Command {
	var (
		lines int
		bytes int64
	)

	cmd := &cobra.Command{
		Use:   "head [FILE]...",
		Short: "Output the first part of files",
		Long: `Print the first 10 lines of each FILE to standard output. With more than
one FILE, precede each with a header giving the file name. With no FILE, or
when FILE is -, read standard input.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := headOptions(cmd.Flags(), app, lines, bytes)
			if err != nil {
				return err
			}
			return runHead(cmd, opts, args)
		},
	}

	f := cmd.Flags()
	f.IntVarP(&lines, "lines", "n", textproc.DefaultHeadLines, "print the first NUM lines")
	f.Int64VarP(&bytes, "bytes", "c", 0, "print the first NUM bytes")
	cmd.MarkFlagsMutuallyExclusive("lines", "bytes")

	return cmd
}

// headOptions validates the flags. An unset --lines falls back to the
// configured default.
func headOptions(flags *pflag.FlagSet, app *App, lines int, bytes int64) (textproc.HeadOptions, error) {
	if flags.Changed("bytes") {
		if bytes <= 0 {
			return textproc.HeadOptions{}, textproc.Argumentf("invalid number of bytes: %d (must be positive)", bytes)
		}
		return textproc.HeadOptions{Bytes: bytes}, nil
	}

	if !flags.Changed("lines") {
		return textproc.HeadOptions{Lines: int(app.Settings().Head.Lines)}, nil
	}
	if lines <= 0 {
		return textproc.HeadOptions{}, textproc.Argumentf("invalid number of lines: %d (must be positive)", lines)
	}
	return textproc.HeadOptions{Lines: lines}, nil
}

func runHead(cmd *cobra.Command, opts textproc.HeadOptions, args []string) error {
	stdout := cmd.OutOrStdout()
	stderr := cmd.ErrOrStderr()
	names := source.Names(args)
	withHeaders := len(names) > 1

	return source.Each(names, cmd.InOrStdin(), workDirFromContext(cmd.Context()),
		func(src source.Source, index, _ int) error {
			if withHeaders {
				sep := ""
				if index > 0 {
					sep = "\n"
				}
				if _, err := fmt.Fprintf(stdout, "%s==> %s <==\n", sep, src.Name()); err != nil {
					return textproc.NewError(textproc.WriteError, "", err)
				}
			}

			if err := textproc.Head(stdout, src, opts); err != nil {
				return withSource(err, src.Name())
			}
			return nil
		},
		func(name string, err error) {
			reportSourceError(stderr, name, err)
		})
}
