// SPDX-License-Identifier: MPL-2.0

package grammar

import (
	"maps"
	"slices"
	"strconv"
	"strings"
)

// Start is the entry rule every message is matched against.
const Start RuleID = 0

const (
	// KindTerminal matches exactly one literal character.
	KindTerminal Kind = iota
	// KindSequence matches its rule references consecutively.
	KindSequence
	// KindAlternation tries each branch in order; the first success wins.
	KindAlternation
)

const (
	// repeatRule and balancedRule are the two rules rewritten by Patch.
	repeatRule   RuleID = 8
	balancedRule RuleID = 11
	// leadRule and tailRule are the rules repeated by the patched rules.
	leadRule RuleID = 42
	tailRule RuleID = 31
)

type (
	// RuleID identifies a rule within a Table.
	RuleID int

	// Kind is the shape of a Rule.
	Kind int

	// Rule is a tagged variant over terminals, sequences and alternations.
	// A rule with no branches is a terminal matching Literal; a rule with one
	// branch is a sequence; a rule with two or more branches is an alternation.
	Rule struct {
		Literal  rune
		Branches [][]RuleID
	}

	// Table maps rule identifiers to rules for one grammar instance.
	// Tables are treated as immutable once built; Patch returns a copy.
	Table map[RuleID]Rule
)

// Terminal returns a rule matching the single character c.
func Terminal(c rune) Rule {
	return Rule{Literal: c}
}

// Sequence returns a rule matching ids consecutively.
func Sequence(ids ...RuleID) Rule {
	return Rule{Branches: [][]RuleID{ids}}
}

// Either returns an alternation over the given branches.
func Either(branches ...[]RuleID) Rule {
	return Rule{Branches: branches}
}

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindTerminal:
		return "terminal"
	case KindSequence:
		return "sequence"
	case KindAlternation:
		return "alternation"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// String returns the decimal form of the identifier.
func (id RuleID) String() string { return strconv.Itoa(int(id)) }

// Kind reports the shape of the rule.
func (r Rule) Kind() Kind {
	switch len(r.Branches) {
	case 0:
		return KindTerminal
	case 1:
		return KindSequence
	default:
		return KindAlternation
	}
}

// Equal reports whether two rules have the same structure.
func (r Rule) Equal(o Rule) bool {
	if r.Kind() != o.Kind() {
		return false
	}
	if r.Kind() == KindTerminal {
		return r.Literal == o.Literal
	}
	return slices.EqualFunc(r.Branches, o.Branches, slices.Equal[[]RuleID])
}

// References returns every rule id the rule refers to, in order of appearance.
// Duplicates are kept.
func (r Rule) References() []RuleID {
	var refs []RuleID
	for _, branch := range r.Branches {
		refs = append(refs, branch...)
	}
	return refs
}

// String renders the rule body in input syntax.
func (r Rule) String() string {
	if r.Kind() == KindTerminal {
		return `"` + string(r.Literal) + `"`
	}

	var sb strings.Builder
	for i, branch := range r.Branches {
		if i > 0 {
			sb.WriteString(" | ")
		}
		for j, id := range branch {
			if j > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(id.String())
		}
	}
	return sb.String()
}

func (r Rule) clone() Rule {
	c := Rule{Literal: r.Literal}
	if r.Branches != nil {
		c.Branches = make([][]RuleID, len(r.Branches))
		for i, branch := range r.Branches {
			c.Branches[i] = slices.Clone(branch)
		}
	}
	return c
}

// IDs returns the table's rule identifiers in ascending order.
func (t Table) IDs() []RuleID {
	return slices.Sorted(maps.Keys(t))
}

// Clone returns a deep copy of the table.
func (t Table) Clone() Table {
	c := make(Table, len(t))
	for id, rule := range t {
		c[id] = rule.clone()
	}
	return c
}

// Patch returns a copy of the table with rule 8 rewritten to one-or-more
// repetitions of rule 42 and rule 11 rewritten to N repetitions of 42
// followed by N repetitions of 31. The receiver is left untouched.
func (t Table) Patch() Table {
	c := t.Clone()
	c[repeatRule] = patchedRepeat()
	c[balancedRule] = patchedBalanced()
	return c
}

// IsPatched reports whether rules 8 and 11 have exactly the shapes Patch writes.
func (t Table) IsPatched() bool {
	r8, ok := t[repeatRule]
	if !ok || !r8.Equal(patchedRepeat()) {
		return false
	}
	r11, ok := t[balancedRule]
	return ok && r11.Equal(patchedBalanced())
}

// Validate checks that every referenced rule exists and that no sequence or
// alternation branch is empty.
func (t Table) Validate() error {
	if _, ok := t[Start]; !ok {
		return &UndefinedRuleError{ID: Start}
	}
	for _, id := range t.IDs() {
		rule := t[id]
		for _, branch := range rule.Branches {
			if len(branch) == 0 {
				return &EmptyBranchError{Rule: id}
			}
			for _, ref := range branch {
				if _, ok := t[ref]; !ok {
					return &UndefinedRuleError{ID: ref, Referrer: id, HasReferrer: true}
				}
			}
		}
	}
	return nil
}

// String renders the table in input syntax sorted by id.
func (t Table) String() string {
	var sb strings.Builder
	for _, id := range t.IDs() {
		sb.WriteString(id.String())
		sb.WriteString(": ")
		sb.WriteString(t[id].String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

func patchedRepeat() Rule {
	return Either([]RuleID{leadRule}, []RuleID{leadRule, repeatRule})
}

func patchedBalanced() Rule {
	return Either([]RuleID{leadRule, tailRule}, []RuleID{leadRule, balancedRule, tailRule})
}
