// SPDX-License-Identifier: MPL-2.0

// Package input supplies raw puzzle input text by puzzle name.
//
// A DirLoader reads <dir>/day_<name>.txt and can fall back to downloading the
// input from adventofcode.com, caching it in the same directory. A
// SampleLoader serves the worked examples embedded in the binary, and a
// FileLoader reads one explicit file regardless of the name asked for.
package input
