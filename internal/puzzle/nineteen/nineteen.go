// SPDX-License-Identifier: MPL-2.0

// Package nineteen solves "Monster Messages": count the messages that fully
// match rule 0, first as given and then with rules 8 and 11 replaced by their
// self-referential forms.
package nineteen

import (
	"context"
	"fmt"
	"time"

	"advent-cli/internal/puzzle"
	"advent-cli/pkg/grammar"
	"advent-cli/pkg/types"

	"github.com/charmbracelet/log"
)

const (
	name  = "nineteen"
	day   = types.Day(19)
	title = "Monster Messages"
)

// Solver implements puzzle.Solver for day 19.
type Solver struct{}

var _ puzzle.Solver = (*Solver)(nil)

func New() *Solver { return &Solver{} }

func (*Solver) Name() string   { return name }
func (*Solver) Day() types.Day { return day }
func (*Solver) Title() string  { return title }

// Solve parses text and counts accepted messages for each requested part.
// Part two patches rules 8 and 11 on a copy of the table.
func (*Solver) Solve(ctx context.Context, text string, opts puzzle.Options) ([]puzzle.Answer, error) {
	logger := log.FromContext(ctx)

	parts, err := opts.PartsOrAll()
	if err != nil {
		return nil, err
	}

	in, err := grammar.ParseInput(text)
	if err != nil {
		return nil, err
	}
	logger.Debug("parsed input", "rules", len(in.Rules), "messages", len(in.Messages))

	answers := make([]puzzle.Answer, 0, len(parts))
	for _, part := range parts {
		table := in.Rules
		if part == puzzle.PartTwo {
			table = table.Patch()
			logger.Debug("patched rules 8 and 11")
		}

		start := time.Now()
		n, err := Count(ctx, table, in.Messages, opts)
		if err != nil {
			return nil, fmt.Errorf("part %s: %w", part, err)
		}
		logger.Debug("solved", "part", part.String(), "engine", opts.Engine.String(),
			"accepted", n, "elapsed", time.Since(start))

		answers = append(answers, puzzle.Answer{Part: part, Value: n})
	}
	return answers, nil
}

// Count builds the configured matcher for table and counts accepted messages.
func Count(ctx context.Context, table grammar.Table, messages []string, opts puzzle.Options) (int, error) {
	m, err := grammar.NewMatcher(table, opts.Engine)
	if err != nil {
		return 0, err
	}
	return puzzle.CountAccepted(ctx, m, messages, opts.Workers)
}
