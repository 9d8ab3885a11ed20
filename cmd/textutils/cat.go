// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"github.com/invowk/textutils/internal/source"
	"github.com/invowk/textutils/internal/textproc"

	"github.com/spf13/cobra"
)

func newCatCommand(app *App) *cobra.Command {
	var opts textproc.CatOptions

	cmd := &cobra.Command{
		Use:   "cat [FILE]...",
		Short: "Concatenate files to standard output",
		Long: `Concatenate FILE(s) to standard output. With no FILE, or when FILE is -,
read standard input. Line numbers restart at 1 for each FILE.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.NumberWidth = int(app.Settings().Cat.NumberWidth)
			return runCat(cmd, opts, args)
		},
	}

	f := cmd.Flags()
	f.BoolVarP(&opts.NumberAll, "number", "n", false, "number all output lines")
	f.BoolVarP(&opts.NumberNonBlank, "number-nonblank", "b", false, "number nonempty output lines (-n takes precedence)")

	return cmd
}

func runCat(cmd *cobra.Command, opts textproc.CatOptions, args []string) error {
	stdout := cmd.OutOrStdout()
	stderr := cmd.ErrOrStderr()

	return source.Each(source.Names(args), cmd.InOrStdin(), workDirFromContext(cmd.Context()),
		func(src source.Source, _, _ int) error {
			if err := textproc.Cat(stdout, src, opts); err != nil {
				return withSource(err, src.Name())
			}
			return nil
		},
		func(name string, err error) {
			reportSourceError(stderr, name, err)
		})
}
