// SPDX-License-Identifier: MPL-2.0

// Package config handles textutils configuration using Viper with CUE as the file format.
//
// Configuration is loaded from ~/.config/textutils/config.cue (or the XDG
// equivalent on Linux, ~/Library/Application Support/textutils/config.cue on
// macOS, %APPDATA%\textutils\config.cue on Windows), falling back to
// ./config.cue and then to built-in defaults. Every key can also be set from
// the environment as TEXTUTILS_<SECTION>_<KEY>, e.g. TEXTUTILS_HEAD_LINES=20.
//
// The file is validated against an embedded CUE schema (config_schema.cue)
// before it is merged over the defaults.
package config
