// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable error handling with user-friendly messages.
//
// This package defines error types that include remediation steps and Markdown-formatted
// guidance, improving the user experience when a puzzle input cannot be loaded,
// a rule table cannot be parsed, or a matcher rejects a grammar.
package issue
