// SPDX-License-Identifier: MPL-2.0

package grammar

import (
	"errors"
	"testing"
)

func TestRecursive_BasicGrammar(t *testing.T) {
	t.Parallel()

	m, err := NewRecursive(basicTable())
	if err != nil {
		t.Fatalf("NewRecursive() error = %v", err)
	}

	tests := []struct {
		msg  string
		want bool
	}{
		{"ababbb", true},
		{"abbbab", true},
		{"bababa", false},
		{"aaabbb", false},
		{"aaaabbb", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.msg, func(t *testing.T) {
			t.Parallel()

			if got := m.Accepts(tt.msg); got != tt.want {
				t.Errorf("Accepts(%q) = %v, want %v", tt.msg, got, tt.want)
			}
		})
	}
}

func TestRecursive_MatchLength(t *testing.T) {
	t.Parallel()

	m, err := NewRecursive(basicTable())
	if err != nil {
		t.Fatalf("NewRecursive() error = %v", err)
	}

	tests := []struct {
		name   string
		msg    string
		rule   RuleID
		isEnd  bool
		want   int
		wantOK bool
	}{
		{name: "terminal prefix", msg: "ab", rule: 4, want: 1, wantOK: true},
		{name: "terminal at end", msg: "a", rule: 4, isEnd: true, want: 1, wantOK: true},
		{name: "terminal with trailing characters", msg: "ab", rule: 4, isEnd: true},
		{name: "terminal mismatch", msg: "ba", rule: 4},
		{name: "terminal on empty", msg: "", rule: 4},
		{name: "sequence prefix", msg: "abab", rule: 3, want: 2, wantOK: true},
		{name: "sequence at end rejects leftovers", msg: "abab", rule: 3, isEnd: true},
		{name: "second branch", msg: "abaa", rule: 1, isEnd: true, want: 4, wantOK: true},
		{name: "start on full message", msg: "ababbb", rule: Start, isEnd: true, want: 6, wantOK: true},
		{name: "start with trailing character", msg: "ababbbb", rule: Start, isEnd: true},
		{name: "start without end constraint", msg: "ababbbb", rule: Start, want: 6, wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := m.MatchLength(tt.msg, tt.rule, tt.isEnd)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("MatchLength(%q, %d, %v) = (%d, %v), want (%d, %v)",
					tt.msg, tt.rule, tt.isEnd, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestRecursive_ExtendedGrammar(t *testing.T) {
	t.Parallel()

	in := loadInput(t, "extended.txt")

	plain, err := NewRecursive(in.Rules)
	if err != nil {
		t.Fatalf("NewRecursive() error = %v", err)
	}
	patched, err := NewRecursive(in.Rules.Patch())
	if err != nil {
		t.Fatalf("NewRecursive(patched) error = %v", err)
	}

	if !plain.Accepts("bbabbbbaabaabba") || !patched.Accepts("bbabbbbaabaabba") {
		t.Error("bbabbbbaabaabba should be accepted before and after patching")
	}
	if plain.Accepts("babbbbaabbbbbabbbbbbaabaaabaaa") {
		t.Error("babbbbaabbbbbabbbbbbaabaaabaaa should be rejected before patching")
	}
	if !patched.Accepts("babbbbaabbbbbabbbbbbaabaaabaaa") {
		t.Error("babbbbaabbbbbabbbbbbaabaaabaaa should be accepted after patching")
	}

	if got := Count(plain, in.Messages); got != 3 {
		t.Errorf("unpatched count = %d, want 3", got)
	}
	if got := Count(patched, in.Messages); got != 12 {
		t.Errorf("patched count = %d, want 12", got)
	}
}

func TestRecursive_RepetitionBoundaries(t *testing.T) {
	t.Parallel()

	// 42 matches "a", 31 matches "b"; patched rule 0 accepts a^k b^m with k > m >= 1.
	table := Table{
		0:  Sequence(8, 11),
		8:  Sequence(42),
		11: Sequence(42, 31),
		42: Terminal('a'),
		31: Terminal('b'),
	}.Patch()

	m, err := NewRecursive(table)
	if err != nil {
		t.Fatalf("NewRecursive() error = %v", err)
	}

	tests := []struct {
		msg  string
		want bool
	}{
		{"aab", true},
		{"aaab", true},
		{"aaabb", true},
		{"aaaabbb", true},
		{"aabb", false},
		{"ab", false},
		{"aa", false},
		{"a", false},
		{"", false},
		{"aaba", false},
		{"baab", false},
	}

	for _, tt := range tests {
		t.Run(tt.msg, func(t *testing.T) {
			t.Parallel()

			if got := m.Accepts(tt.msg); got != tt.want {
				t.Errorf("Accepts(%q) = %v, want %v", tt.msg, got, tt.want)
			}
		})
	}
}

func TestRecursive_Idempotent(t *testing.T) {
	t.Parallel()

	in := loadInput(t, "extended.txt")
	m, err := NewRecursive(in.Rules.Patch())
	if err != nil {
		t.Fatalf("NewRecursive() error = %v", err)
	}
	for _, msg := range in.Messages {
		first := m.Accepts(msg)
		for range 3 {
			if m.Accepts(msg) != first {
				t.Fatalf("Accepts(%q) changed between calls", msg)
			}
		}
	}
}

func TestNewRecursive_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		table   Table
		wantErr error
	}{
		{name: "undefined reference", table: Table{0: Sequence(1, 9), 1: Terminal('a')}, wantErr: ErrUndefinedRule},
		{name: "variable length", table: Table{0: Either([]RuleID{1}, []RuleID{1, 1}), 1: Terminal('a')}, wantErr: ErrVariableLength},
		{name: "self reference", table: Table{0: Either([]RuleID{1}, []RuleID{1, 0}), 1: Terminal('a')}, wantErr: ErrUnsupportedRecursion},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m, err := NewRecursive(tt.table)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("NewRecursive() error = %v, want %v", err, tt.wantErr)
			}
			if m != nil {
				t.Error("expected nil matcher on error")
			}
		})
	}
}

func TestRecursive_MatchLengthUnknownRulePanics(t *testing.T) {
	t.Parallel()

	m, err := NewRecursive(basicTable())
	if err != nil {
		t.Fatalf("NewRecursive() error = %v", err)
	}

	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrUndefinedRule) {
			t.Errorf("expected panic with ErrUndefinedRule, got %v", r)
		}
	}()
	m.MatchLength("a", 77, true)
}
