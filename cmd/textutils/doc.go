// SPDX-License-Identifier: MPL-2.0

// Package cmd contains the textutils command tree: one cobra command per
// text utility, the embedded POSIX shell, and configuration commands.
//
// Every command is built by a factory taking the App, so the same utility
// can run from the root command, from a busybox-style symlink, or as an
// in-process builtin of the sh command with its own stdio.
package cmd
