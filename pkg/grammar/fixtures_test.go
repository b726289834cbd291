// SPDX-License-Identifier: MPL-2.0

package grammar

import (
	"os"
	"path/filepath"
	"testing"
)

// loadInput parses a puzzle input from testdata.
func loadInput(t *testing.T, name string) *Input {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	if err != nil {
		t.Fatalf("failed to read testdata/%s: %v", name, err)
	}
	in, err := ParseInput(string(data))
	if err != nil {
		t.Fatalf("failed to parse testdata/%s: %v", name, err)
	}
	return in
}

// basicTable is the six-rule grammar from basic.txt.
func basicTable() Table {
	return Table{
		0: Sequence(4, 1, 5),
		1: Either([]RuleID{2, 3}, []RuleID{3, 2}),
		2: Either([]RuleID{4, 4}, []RuleID{5, 5}),
		3: Either([]RuleID{4, 5}, []RuleID{5, 4}),
		4: Terminal('a'),
		5: Terminal('b'),
	}
}

// newMatchers builds one matcher per engine for t.
func newMatchers(t *testing.T, table Table) map[Engine]Matcher {
	t.Helper()
	out := make(map[Engine]Matcher)
	for _, engine := range Engines() {
		m, err := NewMatcher(table, engine)
		if err != nil {
			t.Fatalf("NewMatcher(%s) failed: %v", engine, err)
		}
		out[engine] = m
	}
	return out
}
