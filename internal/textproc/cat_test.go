// SPDX-License-Identifier: MPL-2.0

package textproc

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestCat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		opts  CatOptions
		want  string
	}{
		{"plain copy", "a\nb\n", CatOptions{}, "a\nb\n"},
		{"adds missing final newline", "a\nb", CatOptions{}, "a\nb\n"},
		{"normalises crlf", "a\r\nb\r\n", CatOptions{}, "a\nb\n"},
		{"empty input", "", CatOptions{NumberAll: true}, ""},
		{
			"number all",
			"one\n\nthree\n",
			CatOptions{NumberAll: true},
			"     1\tone\n     2\t\n     3\tthree\n",
		},
		{
			"number nonblank",
			"one\n\nthree\n",
			CatOptions{NumberNonBlank: true},
			"     1\tone\n\n     2\tthree\n",
		},
		{
			"number all wins",
			"one\n\nthree\n",
			CatOptions{NumberAll: true, NumberNonBlank: true},
			"     1\tone\n     2\t\n     3\tthree\n",
		},
		{
			"whitespace-only line is not blank",
			" \n",
			CatOptions{NumberNonBlank: true},
			"     1\t \n",
		},
		{"custom width", "x\n", CatOptions{NumberAll: true, NumberWidth: 3}, "  1\tx\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var out bytes.Buffer
			if err := Cat(&out, strings.NewReader(tt.input), tt.opts); err != nil {
				t.Fatalf("Cat() returned error: %v", err)
			}
			if got := out.String(); got != tt.want {
				t.Errorf("Cat(%q, %+v) = %q, want %q", tt.input, tt.opts, got, tt.want)
			}
		})
	}
}

func TestCat_Errors(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	err := Cat(&out, &failingReader{data: []byte("a\nb"), err: errors.New("eio")}, CatOptions{})
	if KindOf(err) != ReadError {
		t.Errorf("KindOf(err) = %s, want ReadError", KindOf(err))
	}

	w := &failingWriter{err: errors.New("epipe")}
	err = Cat(w, strings.NewReader("a\n"), CatOptions{})
	if KindOf(err) != WriteError {
		t.Errorf("KindOf(err) = %s, want WriteError", KindOf(err))
	}
}
