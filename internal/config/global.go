// SPDX-License-Identifier: MPL-2.0

package config

// configDirOverride allows tests to override the config directory.
// os.UserHomeDir() doesn't reliably respect HOME on every platform.
var configDirOverride string

// SetConfigDirOverride sets a custom config directory path; "" restores
// the platform default. This is primarily intended for testing.
func SetConfigDirOverride(dir string) {
	configDirOverride = dir
}
