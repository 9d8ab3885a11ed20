// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/invowk/textutils/internal/source"
	"github.com/invowk/textutils/internal/textproc"

	"github.com/spf13/cobra"
)

// wcOptions holds the selected count columns.
type wcOptions struct {
	lines bool
	words bool
	bytes bool
	chars bool
}

// columns returns the selected fields in output order. With nothing
// selected, lines, words and bytes are shown.
func (o wcOptions) columns() []func(textproc.CountResult) int64 {
	if !o.lines && !o.words && !o.bytes && !o.chars {
		o.lines, o.words, o.bytes = true, true, true
	}

	var cols []func(textproc.CountResult) int64
	if o.lines {
		cols = append(cols, func(r textproc.CountResult) int64 { return r.Lines })
	}
	if o.words {
		cols = append(cols, func(r textproc.CountResult) int64 { return r.Words })
	}
	if o.bytes {
		cols = append(cols, func(r textproc.CountResult) int64 { return r.Bytes })
	}
	if o.chars {
		cols = append(cols, func(r textproc.CountResult) int64 { return r.Chars })
	}
	return cols
}

func newWcCommand(app *App) *cobra.Command {
	var opts wcOptions

	cmd := &cobra.Command{
		Use:   "wc [FILE]...",
		Short: "Print newline, word, and byte counts for each FILE",
		Long: `Print newline, word, and byte counts for each FILE, and a total line if
more than one FILE is specified. With no FILE, or when FILE is -, read
standard input.

A word is a non-empty run of characters delimited by white space.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWc(cmd, app, opts, args)
		},
	}

	f := cmd.Flags()
	f.BoolVarP(&opts.lines, "lines", "l", false, "print the newline counts")
	f.BoolVarP(&opts.words, "words", "w", false, "print the word counts")
	f.BoolVarP(&opts.bytes, "bytes", "c", false, "print the byte counts")
	f.BoolVarP(&opts.chars, "chars", "m", false, "print the character counts")
	cmd.MarkFlagsMutuallyExclusive("bytes", "chars")

	return cmd
}

func runWc(cmd *cobra.Command, app *App, opts wcOptions, args []string) error {
	settings := app.Settings()
	width := int(settings.Wc.ColumnWidth)
	countOpts := textproc.CountOptions{InvalidUTF8: settings.Wc.InvalidUTF8}
	cols := opts.columns()

	stdout := cmd.OutOrStdout()
	stderr := cmd.ErrOrStderr()
	names := source.Names(args)

	var total textproc.CountResult
	failed := false

	err := source.Each(names, cmd.InOrStdin(), workDirFromContext(cmd.Context()),
		func(src source.Source, _, _ int) error {
			res, err := textproc.Count(src, countOpts)
			if err != nil {
				failed = true
				reportSourceError(stderr, src.Name(), err)
				return nil
			}
			total = total.Add(res)

			label := ""
			if !src.IsStdin() {
				label = src.Name()
			}
			return writeCounts(stdout, res, cols, width, label)
		},
		func(name string, err error) {
			reportSourceError(stderr, name, err)
		})
	if err != nil {
		return err
	}

	if len(names) > 1 {
		if err := writeCounts(stdout, total, cols, width, "total"); err != nil {
			return err
		}
	}

	if failed {
		return &ExitError{Code: 1}
	}
	return nil
}

// writeCounts writes one row of right-justified columns, followed by
// " label" when label is not empty.
func writeCounts(w io.Writer, res textproc.CountResult, cols []func(textproc.CountResult) int64, width int, label string) error {
	var sb strings.Builder
	for _, col := range cols {
		fmt.Fprintf(&sb, "%*d", width, col(res))
	}
	if label != "" {
		sb.WriteByte(' ')
		sb.WriteString(label)
	}
	sb.WriteByte('\n')

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return textproc.NewError(textproc.WriteError, "", err)
	}
	return nil
}
