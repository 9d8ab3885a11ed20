// SPDX-License-Identifier: MPL-2.0

package textproc

import (
	"errors"
	"fmt"
)

const (
	// KindUnknown is the zero Kind; it never appears on an *Error built by this package.
	KindUnknown Kind = iota
	// ArgumentError marks malformed or missing command-line input.
	ArgumentError
	// SourceOpenError marks an input that could not be opened.
	SourceOpenError
	// ReadError marks a failure while consuming an opened input,
	// including invalid text encoding.
	ReadError
	// WriteError marks a failure writing to the output destination.
	WriteError
)

var (
	// ErrArgument is the sentinel matched by errors.Is for ArgumentError.
	ErrArgument = errors.New("invalid argument")
	// ErrSourceOpen is the sentinel matched by errors.Is for SourceOpenError.
	ErrSourceOpen = errors.New("cannot open source")
	// ErrRead is the sentinel matched by errors.Is for ReadError.
	ErrRead = errors.New("read failed")
	// ErrWrite is the sentinel matched by errors.Is for WriteError.
	ErrWrite = errors.New("write failed")
	// ErrInvalidUTF8 is wrapped by the ReadError returned when a counter
	// configured with InvalidUTF8Reject meets an invalid byte sequence.
	ErrInvalidUTF8 = errors.New("invalid UTF-8")
)

type (
	// Kind classifies an *Error.
	Kind int

	// Error is a classified failure. Source names the input involved
	// ("-" for standard input) and may be empty when no source applies.
	Error struct {
		Kind   Kind
		Source string
		Err    error
	}
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case ArgumentError:
		return "ArgumentError"
	case SourceOpenError:
		return "SourceOpenError"
	case ReadError:
		return "ReadError"
	case WriteError:
		return "WriteError"
	default:
		return "Unknown"
	}
}

// sentinel returns the package sentinel for the kind.
func (k Kind) sentinel() error {
	switch k {
	case ArgumentError:
		return ErrArgument
	case SourceOpenError:
		return ErrSourceOpen
	case ReadError:
		return ErrRead
	case WriteError:
		return ErrWrite
	default:
		return nil
	}
}

// NewError builds an *Error. It returns nil when err is nil.
func NewError(kind Kind, source string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Source: source, Err: err}
}

// Argumentf builds an ArgumentError from a format string.
func Argumentf(format string, args ...any) error {
	return &Error{Kind: ArgumentError, Err: fmt.Errorf(format, args...)}
}

// Error renders "<source>: <cause>", or just the cause when no source is set.
func (e *Error) Error() string {
	if e.Source == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %s", e.Source, e.Err.Error())
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is the sentinel for e's kind.
func (e *Error) Is(target error) bool {
	s := e.Kind.sentinel()
	return s != nil && target == s
}

// KindOf returns the Kind of the first *Error in err's chain, or KindUnknown.
func KindOf(err error) Kind {
	var te *Error
	if errors.As(err, &te) {
		return te.Kind
	}
	return KindUnknown
}
