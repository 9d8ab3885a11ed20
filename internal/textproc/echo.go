// SPDX-License-Identifier: MPL-2.0

package textproc

import (
	"io"
	"strings"
)

// Echo writes args separated by single spaces, followed by "\n" when
// newline is true.
func Echo(w io.Writer, args []string, newline bool) error {
	text := strings.Join(args, " ")
	if newline {
		text += "\n"
	}
	if _, err := io.WriteString(w, text); err != nil {
		return NewError(WriteError, "", err)
	}
	return nil
}
