// SPDX-License-Identifier: MPL-2.0

package textproc

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// DefaultNumberWidth is the right-justified width of cat line numbers.
const DefaultNumberWidth = 6

// CatOptions configures Cat. NumberAll takes precedence over NumberNonBlank.
type CatOptions struct {
	NumberAll      bool
	NumberNonBlank bool
	// NumberWidth is the line number column width; zero means DefaultNumberWidth.
	NumberWidth int
}

// Cat copies r to w line by line. Every output line ends with "\n"; a
// trailing "\r\n" is normalised and a missing final terminator is added.
// With numbering enabled each line is written as "<number>\t<text>", the
// number right-justified in NumberWidth columns. Under NumberNonBlank, empty
// lines are written bare and do not advance the counter.
func Cat(w io.Writer, r io.Reader, opts CatOptions) error {
	br := bufio.NewReader(r)
	bw := bufio.NewWriter(w)

	width := opts.NumberWidth
	if width <= 0 {
		width = DefaultNumberWidth
	}

	n := 0
	for {
		raw, readErr := br.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			if err := bw.Flush(); err != nil {
				return NewError(WriteError, "", err)
			}
			return NewError(ReadError, "", readErr)
		}
		if raw == "" {
			break
		}

		line := strings.TrimSuffix(strings.TrimSuffix(raw, "\n"), "\r")

		var err error
		switch {
		case opts.NumberAll, opts.NumberNonBlank && line != "":
			n++
			_, err = fmt.Fprintf(bw, "%*d\t%s\n", width, n, line)
		default:
			_, err = fmt.Fprintln(bw, line)
		}
		if err != nil {
			return NewError(WriteError, "", err)
		}

		if readErr != nil {
			break
		}
	}

	if err := bw.Flush(); err != nil {
		return NewError(WriteError, "", err)
	}
	return nil
}
