// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestActionableError_Error(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  *ActionableError
		want string
	}{
		{
			name: "operation only",
			err:  &ActionableError{Operation: "open input"},
			want: "failed to open input",
		},
		{
			name: "with resource",
			err:  &ActionableError{Operation: "open input", Resource: "a.txt"},
			want: "failed to open input: a.txt",
		},
		{
			name: "with cause",
			err:  &ActionableError{Operation: "open input", Resource: "a.txt", Cause: errors.New("no such file")},
			want: "failed to open input: a.txt: no such file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestActionableError_Format(t *testing.T) {
	t.Parallel()

	root := errors.New("root cause")
	err := &ActionableError{
		Operation:   "load configuration",
		Suggestions: []string{"check syntax", "run config dump"},
		Cause:       fmt.Errorf("parse: %w", root),
	}

	short := err.Format(false)
	if !strings.Contains(short, "\n  • check syntax\n  • run config dump") {
		t.Errorf("Format(false) missing suggestions: %q", short)
	}
	if strings.Contains(short, "Error chain") {
		t.Errorf("Format(false) should not include the chain: %q", short)
	}

	long := err.Format(true)
	if !strings.Contains(long, "1. parse: root cause") || !strings.Contains(long, "2. root cause") {
		t.Errorf("Format(true) missing chain: %q", long)
	}
}

func TestErrorContext_Build(t *testing.T) {
	t.Parallel()

	if NewErrorContext().WithResource("x").Build() != nil {
		t.Error("Build() without operation should return nil")
	}
	if NewErrorContext().BuildError() != nil {
		t.Error("BuildError() without operation should return a nil interface")
	}

	cause := errors.New("bad")
	err := NewErrorContext().
		WithOperation("run script").
		WithResource("build.sh").
		WithSuggestion("one").
		WithSuggestion("two").
		WithIssue(ScriptExecutionFailedId).
		Wrap(cause).
		BuildError()

	var ae *ActionableError
	if !errors.As(err, &ae) {
		t.Fatalf("BuildError() = %T, want *ActionableError", err)
	}
	if ae.Resource != "build.sh" || len(ae.Suggestions) != 2 || ae.Issue != ScriptExecutionFailedId {
		t.Errorf("unexpected fields: %+v", ae)
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is should reach the cause")
	}
}

func TestIdOf(t *testing.T) {
	t.Parallel()

	if IdOf(errors.New("plain")) != 0 {
		t.Error("IdOf(plain) should be zero")
	}

	inner := NewErrorContext().WithOperation("inner").WithIssue(InvalidEncodingId).BuildError()
	outer := NewErrorContext().WithOperation("outer").Wrap(inner).BuildError()
	if got := IdOf(fmt.Errorf("wrapped: %w", outer)); got != InvalidEncodingId {
		t.Errorf("IdOf() = %d, want %d", got, InvalidEncodingId)
	}
}
