// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"

	"github.com/invowk/textutils/internal/textproc"
)

const (
	// ColorSchemeAuto detects the terminal color scheme automatically.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces dark color scheme.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces light color scheme.
	ColorSchemeLight ColorScheme = "light"

	// MaxColumnWidth bounds every configurable column width.
	MaxColumnWidth = 32
)

var (
	// ErrInvalidColorScheme is returned when a ColorScheme value is not recognized.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
	// ErrInvalidColumnWidth is returned when a ColumnWidth is out of range.
	ErrInvalidColumnWidth = errors.New("invalid column width")
	// ErrInvalidLineCount is returned when a LineCount is not positive.
	ErrInvalidLineCount = errors.New("invalid line count")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// ColorScheme specifies the terminal color scheme preference.
	ColorScheme string

	// InvalidColorSchemeError is returned when a ColorScheme value is not recognized.
	// It wraps ErrInvalidColorScheme for errors.Is() compatibility.
	InvalidColorSchemeError struct {
		Value ColorScheme
	}

	// ColumnWidth is the width of a right-justified numeric output column.
	ColumnWidth int

	// InvalidColumnWidthError is returned when a ColumnWidth is outside 1..MaxColumnWidth.
	InvalidColumnWidthError struct {
		Field string
		Value ColumnWidth
	}

	// LineCount is a strictly positive number of lines.
	LineCount int

	// InvalidLineCountError is returned when a LineCount is not positive.
	InvalidLineCountError struct {
		Value LineCount
	}

	// InvalidConfigError is returned when a Config has invalid fields.
	// It wraps ErrInvalidConfig for errors.Is() compatibility and collects
	// field-level validation errors from all sections.
	InvalidConfigError struct {
		FieldErrors []error
	}

	// Config holds the application configuration.
	Config struct {
		UI   UIConfig   `json:"ui" mapstructure:"ui" toml:"ui"`
		Wc   WcConfig   `json:"wc" mapstructure:"wc" toml:"wc"`
		Head HeadConfig `json:"head" mapstructure:"head" toml:"head"`
		Uniq UniqConfig `json:"uniq" mapstructure:"uniq" toml:"uniq"`
		Cat  CatConfig  `json:"cat" mapstructure:"cat" toml:"cat"`
		Sh   ShConfig   `json:"sh" mapstructure:"sh" toml:"sh"`
	}

	// UIConfig configures diagnostics output.
	UIConfig struct {
		// ColorScheme selects the glamour style used for issue help.
		ColorScheme ColorScheme `json:"color_scheme" mapstructure:"color_scheme" toml:"color_scheme"`
		// Verbose enables debug logging and issue help on failures.
		Verbose bool `json:"verbose" mapstructure:"verbose" toml:"verbose"`
	}

	// WcConfig configures the counter.
	WcConfig struct {
		ColumnWidth ColumnWidth                `json:"column_width" mapstructure:"column_width" toml:"column_width"`
		InvalidUTF8 textproc.InvalidUTF8Policy `json:"invalid_utf8" mapstructure:"invalid_utf8" toml:"invalid_utf8"`
	}

	// HeadConfig configures head.
	HeadConfig struct {
		// Lines is the default for --lines.
		Lines LineCount `json:"lines" mapstructure:"lines" toml:"lines"`
	}

	// UniqConfig configures uniq.
	UniqConfig struct {
		CountWidth ColumnWidth `json:"count_width" mapstructure:"count_width" toml:"count_width"`
	}

	// CatConfig configures cat.
	CatConfig struct {
		NumberWidth ColumnWidth `json:"number_width" mapstructure:"number_width" toml:"number_width"`
	}

	// ShConfig configures the embedded shell.
	ShConfig struct {
		// BuiltinsOnly refuses to run host binaries for commands that are not
		// textutils builtins.
		BuiltinsOnly bool `json:"builtins_only" mapstructure:"builtins_only" toml:"builtins_only"`
	}
)

// Error implements the error interface.
func (e *InvalidColorSchemeError) Error() string {
	return fmt.Sprintf("invalid color scheme %q (valid: auto, dark, light)", e.Value)
}

// Unwrap returns ErrInvalidColorScheme for errors.Is() compatibility.
func (e *InvalidColorSchemeError) Unwrap() error { return ErrInvalidColorScheme }

// String returns the string representation of the ColorScheme.
func (cs ColorScheme) String() string { return string(cs) }

// IsValid returns whether the ColorScheme is one of the defined color schemes,
// and a list of validation errors if it is not.
func (cs ColorScheme) IsValid() (bool, []error) {
	switch cs {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
		return true, nil
	default:
		return false, []error{&InvalidColorSchemeError{Value: cs}}
	}
}

// GlamourStyle maps the scheme to a glamour standard style name.
func (cs ColorScheme) GlamourStyle() string {
	switch cs {
	case ColorSchemeLight:
		return "light"
	case ColorSchemeDark:
		return "dark"
	default:
		return "auto"
	}
}

// Error implements the error interface.
func (e *InvalidColumnWidthError) Error() string {
	return fmt.Sprintf("%s: invalid column width %d (must be 1-%d)", e.Field, e.Value, MaxColumnWidth)
}

// Unwrap returns ErrInvalidColumnWidth for errors.Is() compatibility.
func (e *InvalidColumnWidthError) Unwrap() error { return ErrInvalidColumnWidth }

// validate checks the width against its bounds, naming field in the error.
func (w ColumnWidth) validate(field string) error {
	if w < 1 || w > MaxColumnWidth {
		return &InvalidColumnWidthError{Field: field, Value: w}
	}
	return nil
}

// Error implements the error interface.
func (e *InvalidLineCountError) Error() string {
	return fmt.Sprintf("invalid line count %d (must be positive)", e.Value)
}

// Unwrap returns ErrInvalidLineCount for errors.Is() compatibility.
func (e *InvalidLineCountError) Unwrap() error { return ErrInvalidLineCount }

// IsValid returns whether the LineCount is positive.
func (n LineCount) IsValid() (bool, []error) {
	if n < 1 {
		return false, []error{&InvalidLineCountError{Value: n}}
	}
	return true, nil
}

// Error implements the error interface for InvalidConfigError.
func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid config: %d field error(s): %v", len(e.FieldErrors), errors.Join(e.FieldErrors...))
}

// Unwrap returns ErrInvalidConfig followed by the field errors, so
// errors.Is matches both the config sentinel and each field sentinel.
func (e *InvalidConfigError) Unwrap() []error {
	return append([]error{ErrInvalidConfig}, e.FieldErrors...)
}

// IsValid returns whether every section of the Config has valid values.
// CUE validates files against the schema; this also covers values that
// arrive through environment overrides.
func (c Config) IsValid() (bool, []error) {
	var errs []error
	if valid, fieldErrs := c.UI.ColorScheme.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if err := c.Wc.ColumnWidth.validate("wc.column_width"); err != nil {
		errs = append(errs, err)
	}
	if err := c.Wc.InvalidUTF8.Validate(); err != nil {
		errs = append(errs, err)
	}
	if valid, fieldErrs := c.Head.Lines.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if err := c.Uniq.CountWidth.validate("uniq.count_width"); err != nil {
		errs = append(errs, err)
	}
	if err := c.Cat.NumberWidth.validate("cat.number_width"); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return false, []error{&InvalidConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		UI: UIConfig{
			ColorScheme: ColorSchemeAuto,
			Verbose:     false,
		},
		Wc: WcConfig{
			ColumnWidth: 8,
			InvalidUTF8: textproc.InvalidUTF8Reject,
		},
		Head: HeadConfig{
			Lines: textproc.DefaultHeadLines,
		},
		Uniq: UniqConfig{
			CountWidth: textproc.DefaultCountWidth,
		},
		Cat: CatConfig{
			NumberWidth: textproc.DefaultNumberWidth,
		},
		Sh: ShConfig{
			BuiltinsOnly: false,
		},
	}
}
