// SPDX-License-Identifier: MPL-2.0

// Package puzzle defines the Solver contract, the registry that looks solvers
// up by name or day, and the concurrent counting shared by grammar puzzles.
package puzzle
