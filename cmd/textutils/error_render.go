// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"

	"github.com/invowk/textutils/internal/issue"
	"github.com/invowk/textutils/internal/textproc"

	"github.com/charmbracelet/fang"
)

// formatErrorForDisplay formats an error for user display. ActionableErrors
// use their Format method, which adds the full chain in verbose mode.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}

// classifyError maps a failure to an issue catalog Id, or zero when no page
// applies.
func classifyError(err error) issue.Id {
	if id := issue.IdOf(err); id != 0 {
		return id
	}

	switch {
	case errors.Is(err, ErrCommandNotFound):
		return issue.CommandNotFoundId
	case errors.Is(err, textproc.ErrInvalidUTF8):
		return issue.InvalidEncodingId
	case errors.Is(err, fs.ErrNotExist):
		return issue.SourceNotFoundId
	case errors.Is(err, fs.ErrPermission):
		return issue.PermissionDeniedId
	}

	switch textproc.KindOf(err) {
	case textproc.ArgumentError:
		return issue.InvalidArgumentsId
	case textproc.ReadError:
		return issue.ReadFailedId
	case textproc.WriteError:
		return issue.WriteFailedId
	default:
		return 0
	}
}

// reportError writes a fatal error to w. ExitErrors without a cause were
// already reported and print nothing. In verbose mode the matching issue
// catalog page is rendered with glamour in the given style.
func reportError(w io.Writer, err error, verbose bool, style string) {
	if err == nil {
		return
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) && exitErr.Err == nil {
		return
	}

	fmt.Fprintf(w, "%s %s\n", ErrorStyle.Render("Error:"), formatErrorForDisplay(err, verbose))

	if verbose {
		renderIssue(w, classifyError(err), style)
	}
}

// renderIssue writes the catalog page for id, if there is one.
func renderIssue(w io.Writer, id issue.Id, style string) {
	entry := issue.Get(id)
	if entry == nil {
		return
	}
	rendered, err := entry.Render(style)
	if err != nil {
		slog.Warn("failed to render issue catalog entry", "issueID", id, "error", err)
		return
	}
	fmt.Fprint(w, rendered)
}

// handleError adapts reportError to fang's error handler.
func (a *App) handleError(w io.Writer, _ fang.Styles, err error) {
	reportError(w, err, a.verbose, a.Settings().UI.ColorScheme.GlamourStyle())
}

// reportSourceError prints a per-operand diagnostic as "<name>: <reason>"
// and lets processing continue.
func reportSourceError(w io.Writer, name string, err error) {
	slog.Debug("operand skipped", "operand", name, "kind", textproc.KindOf(err).String(), "error", err)
	fmt.Fprintln(w, withSource(err, name).Error())
}

// withSource attaches name to a textproc error that has none.
func withSource(err error, name string) error {
	var te *textproc.Error
	if errors.As(err, &te) && te.Source == "" {
		return &textproc.Error{Kind: te.Kind, Source: name, Err: te.Err}
	}
	if textproc.KindOf(err) == textproc.KindUnknown {
		return textproc.NewError(textproc.ReadError, name, err)
	}
	return err
}
