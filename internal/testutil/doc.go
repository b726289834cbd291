// SPDX-License-Identifier: MPL-2.0

// Package testutil provides helpers that fail the test on error, so tests can
// set up config directories and puzzle inputs in one line.
package testutil
