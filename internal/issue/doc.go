// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable errors and a catalog of Markdown help
// pages shown when a textutils command fails.
//
// An ActionableError says which operation failed on which resource and may
// carry suggestions and a catalog Id. The CLI prints the short form by
// default and renders the catalog page with glamour in verbose mode.
package issue
