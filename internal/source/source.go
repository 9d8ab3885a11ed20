// SPDX-License-Identifier: MPL-2.0

// Package source resolves textutils input operands into readable streams.
//
// The operand "-" denotes standard input; any other operand is a file path,
// resolved against the working directory when relative. Each source is
// opened, consumed and closed before the next one is opened.
package source

import (
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/invowk/textutils/internal/textproc"
)

// StdinName is the operand that selects standard input.
const StdinName = "-"

type (
	// Source is one opened input.
	Source interface {
		io.Reader
		// Name returns the operand that selected this source ("-" for stdin).
		Name() string
		// IsStdin reports whether the source is standard input.
		IsStdin() bool
		// Close releases the source. Closing standard input is a no-op.
		Close() error
	}

	// StandardInput wraps the process (or handler) standard input.
	StandardInput struct {
		r io.Reader
	}

	// OpenedFile is a named file opened for reading.
	OpenedFile struct {
		name string
		f    *os.File
	}

	// Visitor processes one source. index is 0-based; total is the number
	// of operands being processed.
	Visitor func(src Source, index, total int) error

	// OpenErrorHandler receives per-source open failures. The error is a
	// textproc SourceOpenError naming the operand.
	OpenErrorHandler func(name string, err error)
)

// NewStandardInput wraps r as a Source named "-".
func NewStandardInput(r io.Reader) *StandardInput {
	return &StandardInput{r: r}
}

func (s *StandardInput) Read(p []byte) (int, error) { return s.r.Read(p) }

// Name returns "-".
func (s *StandardInput) Name() string { return StdinName }

// IsStdin returns true.
func (s *StandardInput) IsStdin() bool { return true }

// Close does nothing; standard input outlives any single invocation.
func (s *StandardInput) Close() error { return nil }

func (f *OpenedFile) Read(p []byte) (int, error) { return f.f.Read(p) }

// Name returns the operand the file was opened from.
func (f *OpenedFile) Name() string { return f.name }

// IsStdin returns false.
func (f *OpenedFile) IsStdin() bool { return false }

// Close closes the underlying file.
func (f *OpenedFile) Close() error { return f.f.Close() }

// Names returns args, or a single "-" when args is empty.
func Names(args []string) []string {
	if len(args) == 0 {
		return []string{StdinName}
	}
	return args
}

// Open opens the operand name. Relative paths are resolved against workDir
// (the process working directory when workDir is empty).
func Open(name string, stdin io.Reader, workDir string) (Source, error) {
	if name == StdinName {
		return NewStandardInput(stdin), nil
	}

	path := name
	if !filepath.IsAbs(path) && workDir != "" {
		path = filepath.Join(workDir, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, textproc.NewError(textproc.SourceOpenError, name, unwrapPathError(err))
	}
	return &OpenedFile{name: name, f: f}, nil
}

// Each opens and visits every operand in order. Open failures are passed to
// onOpenError and processing continues with the next operand. The first
// error returned by visit stops processing and is returned; a close failure
// is returned when visit itself succeeded.
func Each(names []string, stdin io.Reader, workDir string, visit Visitor, onOpenError OpenErrorHandler) error {
	total := len(names)
	for i, name := range names {
		src, err := Open(name, stdin, workDir)
		if err != nil {
			if onOpenError != nil {
				onOpenError(name, err)
			}
			continue
		}
		if err := visitAndClose(src, i, total, visit); err != nil {
			return err
		}
	}
	return nil
}

// visitAndClose runs visit and aggregates the close error via named return.
func visitAndClose(src Source, index, total int, visit Visitor) (err error) {
	defer func() {
		if closeErr := src.Close(); closeErr != nil && err == nil {
			err = textproc.NewError(textproc.ReadError, src.Name(), closeErr)
		}
	}()
	return visit(src, index, total)
}

// unwrapPathError drops the *fs.PathError wrapper so messages read
// "<name>: <reason>" without repeating the path.
func unwrapPathError(err error) error {
	var pe *os.PathError
	if errors.As(err, &pe) {
		return pe.Err
	}
	return err
}
