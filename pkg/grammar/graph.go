// SPDX-License-Identifier: MPL-2.0

package grammar

import (
	"errors"
	"fmt"
	"slices"

	"advent-cli/internal/dag"
)

// DependencyGraph returns the rule reference graph of t. An edge from A to B
// means rule B references rule A, so a topological order visits every rule
// after the rules it depends on. Undefined references are skipped.
func DependencyGraph(t Table) *dag.Graph[RuleID] {
	g := dag.New[RuleID]()
	for _, id := range t.IDs() {
		g.AddNode(id)
	}
	for _, id := range t.IDs() {
		for _, ref := range t[id].References() {
			if _, ok := t[ref]; ok {
				g.AddEdge(ref, id)
			}
		}
	}
	return g
}

// Order returns the rule ids of t such that every rule follows the rules it
// references. Self-referential tables return an error wrapping dag.ErrCycle.
func (t Table) Order() ([]RuleID, error) {
	return DependencyGraph(t).TopologicalSort()
}

// fixedLengths computes the number of characters each rule consumes, requiring
// every alternation's branches to agree. When the table carries the patched
// repetition rules, rules 0, 8 and 11 are excluded: their length is decided
// by the repetition loop, and no other rule may depend on them.
func fixedLengths(t Table) (map[RuleID]int, error) {
	analysed := t
	if t.IsPatched() {
		if !t[Start].Equal(Sequence(repeatRule, balancedRule)) {
			return nil, fmt.Errorf("%w: rules 8 and 11 repeat, but rule 0 is %q rather than \"8 11\"",
				ErrUnsupportedRecursion, t[Start].String())
		}
		analysed = t.Clone()
		for _, id := range []RuleID{Start, repeatRule, balancedRule} {
			delete(analysed, id)
		}
		for _, id := range analysed.IDs() {
			refs := analysed[id].References()
			if slices.Contains(refs, repeatRule) || slices.Contains(refs, balancedRule) || slices.Contains(refs, Start) {
				return nil, fmt.Errorf("%w: rule %d depends on a repeating rule", ErrUnsupportedRecursion, id)
			}
		}
	}

	order, err := analysed.Order()
	if err != nil {
		if errors.Is(err, dag.ErrCycle) {
			return nil, fmt.Errorf("%w: %w", ErrUnsupportedRecursion, err)
		}
		return nil, err
	}

	lengths := make(map[RuleID]int, len(order))
	for _, id := range order {
		rule := analysed[id]
		if rule.Kind() == KindTerminal {
			lengths[id] = 1
			continue
		}

		branchLengths := make([]int, len(rule.Branches))
		for i, branch := range rule.Branches {
			for _, ref := range branch {
				branchLengths[i] += lengths[ref]
			}
		}
		for _, n := range branchLengths[1:] {
			if n != branchLengths[0] {
				return nil, &VariableLengthError{Rule: id, Lengths: branchLengths}
			}
		}
		lengths[id] = branchLengths[0]
	}
	return lengths, nil
}
