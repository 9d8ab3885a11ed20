// SPDX-License-Identifier: MPL-2.0

package textproc

import (
	"bufio"
	"errors"
	"io"
)

// DefaultHeadLines is the number of lines head prints when no count is given.
const DefaultHeadLines = 10

type (
	// HeadOptions selects how much of the input Head copies. When Bytes is
	// positive it takes precedence and Lines is ignored.
	HeadOptions struct {
		Lines int
		Bytes int64
	}

	// writeTracker records write failures so copy errors can be classified.
	writeTracker struct {
		w   io.Writer
		err error
	}
)

func (t *writeTracker) Write(p []byte) (int, error) {
	n, err := t.w.Write(p)
	if err != nil {
		t.err = err
	}
	return n, err
}

// Head copies the first opts.Lines lines of r to w, terminators included,
// or exactly the first opts.Bytes bytes when Bytes is positive. Shorter
// inputs are copied whole and unmodified.
func Head(w io.Writer, r io.Reader, opts HeadOptions) error {
	if opts.Bytes > 0 {
		return headBytes(w, r, opts.Bytes)
	}
	return headLines(w, r, opts.Lines)
}

func headBytes(w io.Writer, r io.Reader, n int64) error {
	tw := &writeTracker{w: w}
	_, err := io.CopyN(tw, r, n)
	switch {
	case err == nil, errors.Is(err, io.EOF):
		return nil
	case tw.err != nil:
		return NewError(WriteError, "", tw.err)
	default:
		return NewError(ReadError, "", err)
	}
}

func headLines(w io.Writer, r io.Reader, n int) error {
	br := bufio.NewReader(r)
	for range n {
		line, err := br.ReadString('\n')
		if line != "" {
			if _, werr := io.WriteString(w, line); werr != nil {
				return NewError(WriteError, "", werr)
			}
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return NewError(ReadError, "", err)
		}
	}
	return nil
}
