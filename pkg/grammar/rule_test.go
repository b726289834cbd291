// SPDX-License-Identifier: MPL-2.0

package grammar

import (
	"errors"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPatch_LeavesReceiverUntouched(t *testing.T) {
	t.Parallel()

	in := loadInput(t, "extended.txt")
	before := in.Rules.Clone()

	patched := in.Rules.Patch()

	if diff := cmp.Diff(before, in.Rules); diff != "" {
		t.Errorf("Patch mutated the receiver (-before +after):\n%s", diff)
	}
	if in.Rules.IsPatched() {
		t.Error("original table should not report IsPatched")
	}
	if !patched.IsPatched() {
		t.Error("patched table should report IsPatched")
	}
	if got := patched[8].String(); got != "42 | 42 8" {
		t.Errorf("rule 8 = %q, want %q", got, "42 | 42 8")
	}
	if got := patched[11].String(); got != "42 31 | 42 11 31" {
		t.Errorf("rule 11 = %q, want %q", got, "42 31 | 42 11 31")
	}
}

func TestIsPatched_RequiresExactShapes(t *testing.T) {
	t.Parallel()

	table := loadInput(t, "extended.txt").Rules.Patch()
	table[11] = Either([]RuleID{42, 31}, []RuleID{42, 11, 31}, []RuleID{31})
	if table.IsPatched() {
		t.Error("rule 11 with an extra branch must not be treated as patched")
	}

	table = loadInput(t, "extended.txt").Rules.Patch()
	table[8] = Either([]RuleID{42, 8}, []RuleID{42})
	if table.IsPatched() {
		t.Error("rule 8 with swapped branches must not be treated as patched")
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		table   Table
		wantErr error
	}{
		{name: "valid", table: basicTable()},
		{name: "missing start", table: Table{1: Terminal('a')}, wantErr: ErrUndefinedRule},
		{name: "undefined reference", table: Table{0: Sequence(1, 2), 1: Terminal('a')}, wantErr: ErrUndefinedRule},
		{name: "empty branch", table: Table{0: Either([]RuleID{1}, []RuleID{}), 1: Terminal('a')}, wantErr: ErrEmptyBranch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.table.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Validate() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestUndefinedRuleError_Message(t *testing.T) {
	t.Parallel()

	err := Table{0: Sequence(1, 7), 1: Terminal('a')}.Validate()
	want := "rule 0 references undefined rule 7"
	if err == nil || err.Error() != want {
		t.Errorf("Validate() error = %v, want %q", err, want)
	}
}

func TestRuleReferencesAndEqual(t *testing.T) {
	t.Parallel()

	r := Either([]RuleID{42, 31}, []RuleID{42, 11, 31})
	if got := r.References(); !slices.Equal(got, []RuleID{42, 31, 42, 11, 31}) {
		t.Errorf("References() = %v", got)
	}
	if !r.Equal(r.clone()) {
		t.Error("rule should equal its clone")
	}
	if Terminal('a').Equal(Terminal('b')) {
		t.Error("different literals must not be equal")
	}
	if Sequence(1).Equal(Either([]RuleID{1}, []RuleID{1})) {
		t.Error("different kinds must not be equal")
	}
}

func TestKindString(t *testing.T) {
	t.Parallel()

	for kind, want := range map[Kind]string{
		KindTerminal:    "terminal",
		KindSequence:    "sequence",
		KindAlternation: "alternation",
		Kind(9):         "Kind(9)",
	} {
		if got := kind.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", int(kind), got, want)
		}
	}
}
