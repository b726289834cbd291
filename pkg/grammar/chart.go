// SPDX-License-Identifier: MPL-2.0

package grammar

// Chart is an Earley recognizer over a rule table. Unlike Recursive it places
// no restriction on branch lengths or self-reference, so the patched rules
// 8 and 11 are handled like any other rule.
//
// A Chart holds only the read-only table and is safe for concurrent use.
type Chart struct {
	table Table
}

type (
	// item is a dotted rule: branch of rule, with dot references matched,
	// started at input position origin.
	item struct {
		rule   RuleID
		branch int
		dot    int
		origin int
	}

	// itemSet is the chart column for one input position. Items are appended
	// while the column is processed, so it doubles as the worklist.
	itemSet struct {
		items []item
		seen  map[item]struct{}
		// waiting indexes items by the rule expected after their dot, for completion.
		waiting map[RuleID][]item
		// predicted records rules already expanded at this position.
		predicted map[RuleID]struct{}
	}
)

// NewChart validates t and returns a chart matcher for it.
func NewChart(t Table) (*Chart, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &Chart{table: t}, nil
}

// Accepts reports whether rule 0 derives exactly msg.
func (c *Chart) Accepts(msg string) bool {
	input := []rune(msg)
	if len(input) == 0 {
		return false
	}

	start := c.table[Start]
	if start.Kind() == KindTerminal {
		return len(input) == 1 && input[0] == start.Literal
	}

	sets := make([]*itemSet, len(input)+1)
	for i := range sets {
		sets[i] = newItemSet()
	}
	c.predict(sets[0], Start, 0)

	for i, set := range sets {
		for j := 0; j < len(set.items); j++ {
			it := set.items[j]
			branch := c.table[it.rule].Branches[it.branch]

			if it.dot == len(branch) {
				// Every rule consumes at least one character, so origin < i
				// and the origin column is already complete.
				for _, parent := range sets[it.origin].waiting[it.rule] {
					set.add(parent.advance())
				}
				continue
			}

			next := branch[it.dot]
			if rule := c.table[next]; rule.Kind() == KindTerminal {
				if i < len(input) && input[i] == rule.Literal {
					sets[i+1].add(it.advance())
				}
				continue
			}

			set.waiting[next] = append(set.waiting[next], it)
			c.predict(set, next, i)
		}
	}

	final := sets[len(input)]
	for branch, ids := range start.Branches {
		if final.contains(item{rule: Start, branch: branch, dot: len(ids), origin: 0}) {
			return true
		}
	}
	return false
}

func (c *Chart) predict(set *itemSet, id RuleID, pos int) {
	if _, done := set.predicted[id]; done {
		return
	}
	set.predicted[id] = struct{}{}
	for branch := range c.table[id].Branches {
		set.add(item{rule: id, branch: branch, origin: pos})
	}
}

func (it item) advance() item {
	it.dot++
	return it
}

func newItemSet() *itemSet {
	return &itemSet{
		seen:      make(map[item]struct{}),
		waiting:   make(map[RuleID][]item),
		predicted: make(map[RuleID]struct{}),
	}
}

func (s *itemSet) add(it item) {
	if _, ok := s.seen[it]; ok {
		return
	}
	s.seen[it] = struct{}{}
	s.items = append(s.items, it)
}

func (s *itemSet) contains(it item) bool {
	_, ok := s.seen[it]
	return ok
}
