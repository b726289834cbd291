// SPDX-License-Identifier: MPL-2.0

package puzzle

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"advent-cli/pkg/grammar"
	"advent-cli/pkg/types"
)

const (
	PartOne Part = 1
	PartTwo Part = 2
)

// ErrInvalidPart is the sentinel error wrapped by InvalidPartError.
var ErrInvalidPart = errors.New("invalid puzzle part")

type (
	// Part selects which half of a puzzle to solve.
	Part int

	// InvalidPartError is returned when a Part is not 1 or 2.
	InvalidPartError struct {
		Value Part
	}

	// Options tunes a single Solve call.
	Options struct {
		Engine grammar.Engine
		// Workers bounds concurrent matching; values below 1 mean 1.
		Workers int
		// Parts lists the parts to solve; empty means both.
		Parts []Part
	}

	// Answer is the result of one part.
	Answer struct {
		Part  Part `json:"part" toml:"part"`
		Value int  `json:"value" toml:"value"`
	}

	// Result groups the answers of one solve run.
	Result struct {
		Puzzle  string   `json:"puzzle" toml:"puzzle"`
		Day     int      `json:"day" toml:"day"`
		Title   string   `json:"title" toml:"title"`
		Engine  string   `json:"engine" toml:"engine"`
		Answers []Answer `json:"answers" toml:"answers"`
	}

	// Solver solves one day's puzzle from its raw input text.
	Solver interface {
		Name() string
		Day() types.Day
		Title() string
		Solve(ctx context.Context, text string, opts Options) ([]Answer, error)
	}
)

// Validate returns an error if p is not PartOne or PartTwo.
func (p Part) Validate() error {
	if p != PartOne && p != PartTwo {
		return &InvalidPartError{Value: p}
	}
	return nil
}

func (p Part) String() string {
	switch p {
	case PartOne:
		return "one"
	case PartTwo:
		return "two"
	default:
		return "Part(" + strconv.Itoa(int(p)) + ")"
	}
}

func (e *InvalidPartError) Error() string {
	return fmt.Sprintf("invalid part %d: must be 1 or 2", int(e.Value))
}

func (e *InvalidPartError) Unwrap() error { return ErrInvalidPart }

// PartsOrAll returns o.Parts, or both parts when none were requested.
func (o Options) PartsOrAll() ([]Part, error) {
	if len(o.Parts) == 0 {
		return []Part{PartOne, PartTwo}, nil
	}
	for _, p := range o.Parts {
		if err := p.Validate(); err != nil {
			return nil, err
		}
	}
	return o.Parts, nil
}

// Solve runs s on text and wraps the answers in a Result.
func Solve(ctx context.Context, s Solver, text string, opts Options) (*Result, error) {
	answers, err := s.Solve(ctx, text, opts)
	if err != nil {
		return nil, err
	}
	return &Result{
		Puzzle:  s.Name(),
		Day:     int(s.Day()),
		Title:   s.Title(),
		Engine:  opts.Engine.String(),
		Answers: answers,
	}, nil
}
