// SPDX-License-Identifier: MPL-2.0

// Package types holds small validated value types shared by the CLI and the
// puzzle packages.
package types
