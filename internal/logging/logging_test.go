// SPDX-License-Identifier: MPL-2.0

package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestNew_Levels(t *testing.T) {
	t.Parallel()

	var quiet bytes.Buffer
	l := New(&quiet, false)
	l.Debug("hidden")
	l.Warn("shown", "path", "a.txt")
	if strings.Contains(quiet.String(), "hidden") {
		t.Errorf("debug line emitted when not verbose: %q", quiet.String())
	}
	if !strings.Contains(quiet.String(), "shown") || !strings.Contains(quiet.String(), "path=a.txt") {
		t.Errorf("warn line missing: %q", quiet.String())
	}
	if !strings.Contains(quiet.String(), Prefix) {
		t.Errorf("prefix missing: %q", quiet.String())
	}

	var loud bytes.Buffer
	New(&loud, true).Debug("visible")
	if !strings.Contains(loud.String(), "visible") {
		t.Errorf("debug line missing when verbose: %q", loud.String())
	}
}

func TestInstall(t *testing.T) {
	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })

	var buf bytes.Buffer
	Install(&buf, true)
	slog.Debug("through slog", "n", 3)
	if !strings.Contains(buf.String(), "through slog") {
		t.Errorf("slog default not routed to charm logger: %q", buf.String())
	}
}
