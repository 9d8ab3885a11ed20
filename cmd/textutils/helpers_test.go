// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/invowk/textutils/internal/config"
)

type (
	// staticProvider serves a fixed configuration without touching disk.
	staticProvider struct {
		cfg  *config.Config
		path string
		err  error
	}

	// cliResult captures one in-process run of the command tree.
	cliResult struct {
		stdout string
		stderr string
		err    error
	}
)

func (p staticProvider) Load(context.Context, config.LoadOptions) (*config.Config, error) {
	if p.err != nil {
		return nil, p.err
	}
	return p.cfg, nil
}

func (p staticProvider) Resolve(context.Context, config.LoadOptions) (config.Result, error) {
	if p.err != nil {
		return config.Result{}, p.err
	}
	return config.Result{Config: p.cfg, Path: p.path}, nil
}

// runCLI executes args against a fresh command tree using cfg (defaults
// when nil), stdin, and dir as the directory for relative operands.
func runCLI(t *testing.T, cfg *config.Config, dir, stdin string, args ...string) cliResult {
	t.Helper()

	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	var stdout, stderr bytes.Buffer
	app := NewApp(Dependencies{
		Config: staticProvider{cfg: cfg},
		Stdin:  strings.NewReader(stdin),
		Stdout: &stdout,
		Stderr: &stderr,
	})

	rootCmd := NewRootCommand(app)
	rootCmd.SilenceErrors = true
	rootCmd.SetArgs(args)

	ctx := t.Context()
	if dir != "" {
		ctx = contextWithWorkDir(ctx, dir)
	}
	err := rootCmd.ExecuteContext(ctx)

	return cliResult{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}
	return path
}
