// SPDX-License-Identifier: MPL-2.0

// Package benchmark holds benchmarks for the hot paths of advent, used for
// PGO profile generation:
//   - rule table parsing
//   - chart and recursive matching, with and without the looping rules
//   - concurrent message counting
//   - CUE config loading
//
// To generate a profile, run:
//
//	go test -run '^$' -bench . -cpuprofile default.pgo ./internal/benchmark
package benchmark
