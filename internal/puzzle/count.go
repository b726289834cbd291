// SPDX-License-Identifier: MPL-2.0

package puzzle

import (
	"context"
	"sync/atomic"

	"advent-cli/pkg/grammar"

	"golang.org/x/sync/errgroup"
)

// CountAccepted counts the messages m accepts using at most workers
// goroutines. Matchers are read-only after construction, so one is shared.
func CountAccepted(ctx context.Context, m grammar.Matcher, messages []string, workers int) (int, error) {
	if workers < 1 {
		workers = 1
	}

	var n atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for _, msg := range messages {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if m.Accepts(msg) {
				n.Add(1)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return 0, err
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return int(n.Load()), nil
}

// Verdict is the outcome of matching one message.
type Verdict struct {
	Message  string `json:"message" toml:"message"`
	Accepted bool   `json:"accepted" toml:"accepted"`
}

// Check matches each message in order.
func Check(m grammar.Matcher, messages []string) []Verdict {
	out := make([]Verdict, len(messages))
	for i, msg := range messages {
		out[i] = Verdict{Message: msg, Accepted: m.Accepts(msg)}
	}
	return out
}
