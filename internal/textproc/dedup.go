// SPDX-License-Identifier: MPL-2.0

package textproc

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
)

// DefaultCountWidth is the column width of the run-length prefix.
const DefaultCountWidth = 4

// DedupOptions configures Dedup.
type DedupOptions struct {
	// Count prefixes each emitted line with its run length.
	Count bool
	// CountWidth is the right-justified width of the run-length prefix.
	// Zero means DefaultCountWidth.
	CountWidth int
	// Repeated emits only runs longer than one line.
	Repeated bool
	// Unique emits only runs of exactly one line.
	Unique bool
	// IgnoreCase compares lines with full Unicode case folding, so "STRASSE"
	// and "straße" are one run.
	IgnoreCase bool
}

// Dedup copies r to w, collapsing each run of adjacent equal lines into its
// first line. Lines are equal when they match after trailing white space,
// including the "\r\n" or "\n" terminator, is removed. Emitted lines keep their original text and terminator.
//
// Only the line being compared and the first line of the current run are
// held in memory. An empty input produces no output.
func Dedup(w io.Writer, r io.Reader, opts DedupOptions) error {
	br := bufio.NewReader(r)
	bw := bufio.NewWriter(w)

	width := opts.CountWidth
	if width <= 0 {
		width = DefaultCountWidth
	}

	var (
		held    string
		holding bool
		run     int
	)

	same := sameLine
	if opts.IgnoreCase {
		fold := cases.Fold()
		same = func(a, b string) bool {
			return fold.String(trimTrailingSpace(a)) == fold.String(trimTrailingSpace(b))
		}
	}

	flush := func() error {
		if opts.Repeated && run < 2 {
			return nil
		}
		if opts.Unique && run > 1 {
			return nil
		}
		var err error
		if opts.Count {
			_, err = fmt.Fprintf(bw, "%*d %s", width, run, held)
		} else {
			_, err = bw.WriteString(held)
		}
		if err != nil {
			return NewError(WriteError, "", err)
		}
		return nil
	}

	for {
		line, readErr := br.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			if err := bw.Flush(); err != nil {
				return NewError(WriteError, "", err)
			}
			return NewError(ReadError, "", readErr)
		}

		if line != "" {
			if holding && same(held, line) {
				run++
			} else {
				if holding {
					if err := flush(); err != nil {
						return err
					}
				}
				held, run, holding = line, 1, true
			}
		}

		if readErr != nil {
			break
		}
	}

	if holding {
		if err := flush(); err != nil {
			return err
		}
	}

	if err := bw.Flush(); err != nil {
		return NewError(WriteError, "", err)
	}
	return nil
}

// sameLine reports trim-equality of a and b.
func sameLine(a, b string) bool {
	return trimTrailingSpace(a) == trimTrailingSpace(b)
}

func trimTrailingSpace(s string) string {
	return strings.TrimRightFunc(s, unicode.IsSpace)
}
