// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable error handling with user-friendly messages.
//
// ActionableError carries the failed operation, the resource and remediation
// hints. The issue catalog holds Markdown guidance for conditions that abort a
// run; the CLI renders it with glamour below the error.
package issue
