// SPDX-License-Identifier: MPL-2.0

// Package logging configures the process-wide slog logger on top of
// charmbracelet/log.
package logging

import (
	"io"
	"log/slog"

	"github.com/charmbracelet/log"
)

// Prefix is printed in front of every log line.
const Prefix = "textutils"

// New returns a charm logger writing to w. Verbose lowers the level to
// Debug; otherwise only warnings and errors are emitted so command output
// on stdout stays clean.
func New(w io.Writer, verbose bool) *log.Logger {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Prefix:          Prefix,
		Level:           level,
		ReportTimestamp: verbose,
	})
}

// Install sets a logger built by New as the slog default and returns it.
func Install(w io.Writer, verbose bool) *log.Logger {
	logger := New(w, verbose)
	slog.SetDefault(slog.New(logger))
	return logger
}
