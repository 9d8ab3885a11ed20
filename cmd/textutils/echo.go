// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"github.com/invowk/textutils/internal/textproc"

	"github.com/spf13/cobra"
)

func newEchoCommand(_ *App) *cobra.Command {
	var noNewline bool

	cmd := &cobra.Command{
		Use:   "echo TEXT...",
		Short: "Display a line of text",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return textproc.Echo(cmd.OutOrStdout(), args, !noNewline)
		},
	}

	// Everything after the first word is text, including words like "-n".
	cmd.Flags().SetInterspersed(false)
	cmd.Flags().BoolVarP(&noNewline, "no-newline", "n", false, "do not output the trailing newline")

	return cmd
}
