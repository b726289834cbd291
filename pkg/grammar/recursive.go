// SPDX-License-Identifier: MPL-2.0

package grammar

import "unicode/utf8"

// minLeadRepeats is the least number of rule 42 matches a patched rule 0
// needs: one for rule 8 and one for rule 11.
const minLeadRepeats = 2

// Recursive matches rules as prefixes of a message, enforcing the end of the
// message only on the last rule of a match chain. It relies on every
// alternation having branches of equal length, which NewRecursive verifies.
//
// When the table carries the patched rules 8 and 11, matching rule 0 uses a
// counted search over repetitions of rules 42 and 31 instead of recursion.
type Recursive struct {
	table      Table
	repetition bool
}

// NewRecursive validates t and returns a matcher for it. It fails when a rule
// reference is undefined, when an alternation's branches expand to different
// lengths, or when the grammar is self-referential in any way other than the
// patched rules 8 and 11.
func NewRecursive(t Table) (*Recursive, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	if _, err := fixedLengths(t); err != nil {
		return nil, err
	}
	return &Recursive{table: t, repetition: t.IsPatched()}, nil
}

// Accepts reports whether rule 0 consumes the whole message.
func (r *Recursive) Accepts(msg string) bool {
	n, ok := r.MatchLength(msg, Start, true)
	return ok && n == len(msg)
}

// MatchLength matches rule id against a prefix of msg and returns the number of
// bytes consumed. When isEnd is set the match must also end exactly at the end
// of msg. It panics with *UndefinedRuleError if id is not in the table.
func (r *Recursive) MatchLength(msg string, id RuleID, isEnd bool) (int, bool) {
	if id == Start && r.repetition {
		return r.matchRepetition(msg, isEnd)
	}

	rule, ok := r.table[id]
	if !ok {
		panic(&UndefinedRuleError{ID: id})
	}

	if rule.Kind() == KindTerminal {
		c, size := utf8.DecodeRuneInString(msg)
		if size == 0 || c != rule.Literal {
			return 0, false
		}
		if isEnd && len(msg) != size {
			return 0, false
		}
		return size, true
	}

	for _, branch := range rule.Branches {
		if n, ok := r.matchSequence(msg, branch, isEnd); ok {
			return n, true
		}
	}
	return 0, false
}

func (r *Recursive) matchSequence(msg string, ids []RuleID, isEnd bool) (int, bool) {
	consumed := 0
	last := len(ids) - 1
	for i, id := range ids {
		n, ok := r.MatchLength(msg[consumed:], id, isEnd && i == last)
		if !ok {
			return 0, false
		}
		consumed += n
	}
	return consumed, true
}

// matchRepetition solves the patched rule 0 = 8 11, which expands to
// k matches of rule 42 followed by m matches of rule 31 with k > m >= 1.
// Each additional 42 raises the allowed number of trailing 31 matches by one.
func (r *Recursive) matchRepetition(msg string, isEnd bool) (int, bool) {
	pos := 0
	leads := 0
	for pos < len(msg) {
		n, ok := r.MatchLength(msg[pos:], leadRule, false)
		if !ok {
			return 0, false
		}
		pos += n
		leads++
		if leads < minLeadRepeats {
			continue
		}

		tail := pos
		for tails := 1; tails < leads && tail < len(msg); tails++ {
			if n, ok := r.MatchLength(msg[tail:], tailRule, isEnd); ok {
				return tail + n, true
			}
			n, ok := r.MatchLength(msg[tail:], tailRule, false)
			if !ok {
				break
			}
			tail += n
		}
	}
	return 0, false
}
