// SPDX-License-Identifier: MPL-2.0

package textproc

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"unicode"
	"unicode/utf8"
)

const (
	// InvalidUTF8Reject fails the count on the first invalid byte sequence.
	InvalidUTF8Reject InvalidUTF8Policy = "reject"
	// InvalidUTF8Replace counts each invalid byte as one U+FFFD character.
	InvalidUTF8Replace InvalidUTF8Policy = "replace"
)

// ErrInvalidUTF8Policy is wrapped by InvalidUTF8PolicyError.
var ErrInvalidUTF8Policy = errors.New("invalid UTF-8 policy")

type (
	// InvalidUTF8Policy selects how the counter treats byte sequences that
	// are not valid UTF-8. The zero value behaves like InvalidUTF8Reject.
	InvalidUTF8Policy string

	// InvalidUTF8PolicyError is returned when a policy value is not recognized.
	InvalidUTF8PolicyError struct {
		Value InvalidUTF8Policy
	}

	// CountOptions configures Count.
	CountOptions struct {
		InvalidUTF8 InvalidUTF8Policy
	}

	// CountResult holds the counts for one stream. All fields are non-negative.
	CountResult struct {
		Bytes int64
		Chars int64
		Lines int64
		Words int64
	}
)

// Error implements the error interface.
func (e *InvalidUTF8PolicyError) Error() string {
	return fmt.Sprintf("invalid UTF-8 policy %q (valid: reject, replace)", e.Value)
}

// Unwrap returns ErrInvalidUTF8Policy for errors.Is.
func (e *InvalidUTF8PolicyError) Unwrap() error { return ErrInvalidUTF8Policy }

// Validate returns an error if the policy is not one of the known values.
// The empty policy is valid.
func (p InvalidUTF8Policy) Validate() error {
	switch p {
	case "", InvalidUTF8Reject, InvalidUTF8Replace:
		return nil
	default:
		return &InvalidUTF8PolicyError{Value: p}
	}
}

// Add returns the field-wise sum of c and o.
func (c CountResult) Add(o CountResult) CountResult {
	return CountResult{
		Bytes: c.Bytes + o.Bytes,
		Chars: c.Chars + o.Chars,
		Lines: c.Lines + o.Lines,
		Words: c.Words + o.Words,
	}
}

// Count consumes r to the end and returns its byte, character, line and
// word counts. The input is streamed; memory use does not grow with its size.
//
// A final line without a terminating newline still counts as a line.
// Words are maximal runs of characters for which unicode.IsSpace is false.
func Count(r io.Reader, opts CountOptions) (CountResult, error) {
	var res CountResult
	br := bufio.NewReader(r)
	inWord := false
	last := rune(-1)

	for {
		ru, size, err := br.ReadRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return CountResult{}, NewError(ReadError, "", err)
		}

		if ru == utf8.RuneError && size == 1 && opts.InvalidUTF8 != InvalidUTF8Replace {
			return CountResult{}, NewError(ReadError, "",
				fmt.Errorf("%w at byte offset %d", ErrInvalidUTF8, res.Bytes))
		}

		res.Bytes += int64(size)
		res.Chars++
		last = ru

		if ru == '\n' {
			res.Lines++
		}

		if unicode.IsSpace(ru) {
			inWord = false
		} else if !inWord {
			inWord = true
			res.Words++
		}
	}

	if res.Bytes > 0 && last != '\n' {
		res.Lines++
	}

	return res, nil
}
