// SPDX-License-Identifier: MPL-2.0

// Package textproc implements the streaming algorithms behind the textutils
// utilities: counting (wc), adjacent-duplicate filtering (uniq), prefix
// extraction (head), line numbering (cat) and argument echoing (echo).
//
// Every function here works on plain io.Reader and io.Writer values. Opening
// files, parsing flags and formatting multi-source output belong to the
// callers in cmd/textutils.
//
// # Error Kinds
//
// Failures are reported as *Error values tagged with one of four kinds:
//
//	ArgumentError    malformed or missing command-line input
//	SourceOpenError  a named input could not be opened
//	ReadError        reading or decoding an opened input failed
//	WriteError       writing to the output failed
//
// Use errors.Is with ErrArgument, ErrSourceOpen, ErrRead or ErrWrite, or
// KindOf, to classify an error without matching on its message.
package textproc
