// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/invowk/textutils/internal/issue"
	"github.com/invowk/textutils/internal/textproc"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, ConfigFileName+"."+ConfigFileExt)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestDefaultConfig_IsValid(t *testing.T) {
	t.Parallel()

	if valid, errs := DefaultConfig().IsValid(); !valid {
		t.Errorf("DefaultConfig().IsValid() = false, %v", errs)
	}
}

func TestConfig_IsValid_CollectsFieldErrors(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.UI.ColorScheme = "neon"
	cfg.Wc.ColumnWidth = 0
	cfg.Head.Lines = -1
	cfg.Cat.NumberWidth = MaxColumnWidth + 1

	valid, errs := cfg.IsValid()
	if valid || len(errs) != 1 {
		t.Fatalf("IsValid() = %v, %v", valid, errs)
	}

	var invalid *InvalidConfigError
	if !errors.As(errs[0], &invalid) {
		t.Fatalf("error = %T, want *InvalidConfigError", errs[0])
	}
	if len(invalid.FieldErrors) != 4 {
		t.Errorf("FieldErrors = %v, want 4 entries", invalid.FieldErrors)
	}
	for _, sentinel := range []error{ErrInvalidColorScheme, ErrInvalidColumnWidth, ErrInvalidLineCount} {
		found := false
		for _, fe := range invalid.FieldErrors {
			if errors.Is(fe, sentinel) {
				found = true
			}
		}
		if !found {
			t.Errorf("no field error matches %v", sentinel)
		}
	}
	if !errors.Is(errs[0], ErrInvalidConfig) {
		t.Error("InvalidConfigError should match ErrInvalidConfig")
	}
}

func TestColorScheme_GlamourStyle(t *testing.T) {
	t.Parallel()

	tests := map[ColorScheme]string{
		ColorSchemeAuto:  "auto",
		ColorSchemeDark:  "dark",
		ColorSchemeLight: "light",
	}
	for scheme, want := range tests {
		if got := scheme.GlamourStyle(); got != want {
			t.Errorf("%s.GlamourStyle() = %q, want %q", scheme, got, want)
		}
	}
}

func TestLoad_DefaultsWhenNoFile(t *testing.T) {
	t.Parallel()

	res, err := NewProvider().Resolve(t.Context(), LoadOptions{ConfigDirPath: t.TempDir()})
	if err != nil {
		t.Fatalf("Resolve() returned error: %v", err)
	}
	if res.Path != "" {
		t.Errorf("Path = %q, want empty", res.Path)
	}
	if !reflect.DeepEqual(res.Config, DefaultConfig()) {
		t.Errorf("Config = %+v, want defaults", res.Config)
	}
}

func TestLoad_MergesFileOverDefaults(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeConfig(t, dir, `
wc: invalid_utf8: "replace"
head: lines: 3
sh: builtins_only: true
`)

	res, err := NewProvider().Resolve(t.Context(), LoadOptions{ConfigDirPath: dir})
	if err != nil {
		t.Fatalf("Resolve() returned error: %v", err)
	}
	if res.Path != path {
		t.Errorf("Path = %q, want %q", res.Path, path)
	}

	cfg := res.Config
	if cfg.Wc.InvalidUTF8 != textproc.InvalidUTF8Replace || cfg.Head.Lines != 3 || !cfg.Sh.BuiltinsOnly {
		t.Errorf("file values not applied: %+v", cfg)
	}
	if cfg.Wc.ColumnWidth != 8 || cfg.Uniq.CountWidth != textproc.DefaultCountWidth {
		t.Errorf("omitted keys should keep defaults: %+v", cfg)
	}
}

func TestLoad_ExplicitPath(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, t.TempDir(), `cat: number_width: 3`)
	cfg, err := NewProvider().Load(t.Context(), LoadOptions{ConfigFilePath: path})
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if cfg.Cat.NumberWidth != 3 {
		t.Errorf("Cat.NumberWidth = %d, want 3", cfg.Cat.NumberWidth)
	}
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"syntax", `wc: {`, "config.cue"},
		{"out of range", `wc: column_width: 0`, "wc.column_width"},
		{"unknown policy", `wc: invalid_utf8: "skip"`, "wc.invalid_utf8"},
		{"unknown section", `tail: lines: 2`, "tail"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()
			writeConfig(t, dir, tt.content)

			_, err := NewProvider().Load(t.Context(), LoadOptions{ConfigDirPath: dir})
			if err == nil {
				t.Fatal("Load() should fail")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q should mention %q", err.Error(), tt.want)
			}
			if issue.IdOf(err) != issue.ConfigLoadFailedId {
				t.Errorf("error should link the config issue page: %v", err)
			}
		})
	}
}

func TestLoad_MissingExplicitPath(t *testing.T) {
	t.Parallel()

	_, err := NewProvider().Load(t.Context(), LoadOptions{ConfigFilePath: filepath.Join(t.TempDir(), "nope.cue")})
	var ae *issue.ActionableError
	if !errors.As(err, &ae) {
		t.Fatalf("error = %v, want *issue.ActionableError", err)
	}
	if !strings.Contains(ae.Error(), "config file not found") {
		t.Errorf("error = %q", ae.Error())
	}
}

func TestLoad_TooLarge(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeConfig(t, dir, "// "+strings.Repeat("x", 1<<20)+"\n")

	_, err := NewProvider().Load(t.Context(), LoadOptions{ConfigDirPath: dir})
	if err == nil || !strings.Contains(err.Error(), "exceeds maximum") {
		t.Errorf("error = %v, want size limit failure", err)
	}
}

func TestLoad_Canceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(t.Context())
	cancel()
	if _, err := NewProvider().Load(ctx, LoadOptions{ConfigDirPath: t.TempDir()}); !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	// Not parallel: t.Setenv.
	t.Setenv("TEXTUTILS_HEAD_LINES", "20")
	t.Setenv("TEXTUTILS_UI_VERBOSE", "true")

	cfg, err := NewProvider().Load(t.Context(), LoadOptions{ConfigDirPath: t.TempDir()})
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if cfg.Head.Lines != 20 || !cfg.UI.Verbose {
		t.Errorf("env overrides not applied: %+v", cfg)
	}
}

func TestLoad_InvalidEnvironmentOverride(t *testing.T) {
	// Not parallel: t.Setenv.
	t.Setenv("TEXTUTILS_UNIQ_COUNT_WIDTH", "0")

	_, err := NewProvider().Load(t.Context(), LoadOptions{ConfigDirPath: t.TempDir()})
	if !errors.Is(err, ErrInvalidColumnWidth) {
		t.Errorf("error = %v, want ErrInvalidColumnWidth", err)
	}
}

func TestGenerateCUE_LoadsBack(t *testing.T) {
	t.Parallel()

	want := DefaultConfig()
	want.UI.ColorScheme = ColorSchemeLight
	want.Wc.ColumnWidth = 5
	want.Head.Lines = 7

	dir := t.TempDir()
	writeConfig(t, dir, GenerateCUE(want))

	got, err := NewProvider().Load(t.Context(), LoadOptions{ConfigDirPath: dir})
	if err != nil {
		t.Fatalf("generated CUE failed to load: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("loaded %+v, want %+v", got, want)
	}
}

func TestCreateDefaultConfig(t *testing.T) {
	// Not parallel: mutates the package-level config directory override.
	dir := filepath.Join(t.TempDir(), "nested")
	SetConfigDirOverride(dir)
	t.Cleanup(func() { SetConfigDirOverride("") })

	path, err := CreateDefaultConfig()
	if err != nil {
		t.Fatalf("CreateDefaultConfig() returned error: %v", err)
	}
	if path != filepath.Join(dir, "config.cue") {
		t.Errorf("path = %q", path)
	}

	if err := os.WriteFile(path, []byte("head: lines: 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := CreateDefaultConfig(); err != nil {
		t.Fatalf("second CreateDefaultConfig() returned error: %v", err)
	}
	data, _ := os.ReadFile(path)
	if string(data) != "head: lines: 2\n" {
		t.Errorf("existing config was overwritten: %q", data)
	}
}

func TestGenerateTOML(t *testing.T) {
	t.Parallel()

	out, err := GenerateTOML(DefaultConfig())
	if err != nil {
		t.Fatalf("GenerateTOML() returned error: %v", err)
	}
	for _, want := range []string{"[ui]", "[head]", "lines = 10", "count_width = 4", "builtins_only = false"} {
		if !strings.Contains(out, want) {
			t.Errorf("GenerateTOML() missing %q:\n%s", want, out)
		}
	}
}
