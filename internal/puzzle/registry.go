// SPDX-License-Identifier: MPL-2.0

package puzzle

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"advent-cli/pkg/types"
)

var (
	// ErrPuzzleNotFound is the sentinel error wrapped by NotFoundError.
	ErrPuzzleNotFound = errors.New("puzzle not found")
	// ErrDuplicatePuzzle is returned when a name or day is registered twice.
	ErrDuplicatePuzzle = errors.New("duplicate puzzle")
)

type (
	// Registry holds solvers ordered by day.
	Registry struct {
		solvers []Solver
	}

	// NotFoundError is returned by Get for an unknown name or day.
	NotFoundError struct {
		Query string
	}
)

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("puzzle %q not found", e.Query)
}

func (e *NotFoundError) Unwrap() error { return ErrPuzzleNotFound }

// NewRegistry registers solvers, panicking on duplicates since the set is
// fixed at build time.
func NewRegistry(solvers ...Solver) *Registry {
	r := &Registry{}
	for _, s := range solvers {
		if err := r.Register(s); err != nil {
			panic(err)
		}
	}
	return r
}

// Register adds s unless its name or day is already taken.
func (r *Registry) Register(s Solver) error {
	for _, existing := range r.solvers {
		if strings.EqualFold(existing.Name(), s.Name()) || existing.Day() == s.Day() {
			return fmt.Errorf("%w: %s (day %d)", ErrDuplicatePuzzle, s.Name(), s.Day())
		}
	}
	r.solvers = append(r.solvers, s)
	slices.SortFunc(r.solvers, func(a, b Solver) int { return int(a.Day()) - int(b.Day()) })
	return nil
}

// Get finds a solver by name ("nineteen") or day number ("19").
func (r *Registry) Get(query string) (Solver, error) {
	q := strings.TrimSpace(query)
	if day, err := types.ParseDay(q); err == nil {
		for _, s := range r.solvers {
			if s.Day() == day {
				return s, nil
			}
		}
		return nil, &NotFoundError{Query: query}
	}
	for _, s := range r.solvers {
		if strings.EqualFold(s.Name(), q) {
			return s, nil
		}
	}
	return nil, &NotFoundError{Query: query}
}

// DayOf returns the day registered under name.
func (r *Registry) DayOf(name string) (types.Day, bool) {
	s, err := r.Get(name)
	if err != nil {
		return 0, false
	}
	return s.Day(), true
}

// List returns the solvers ordered by day.
func (r *Registry) List() []Solver {
	return slices.Clone(r.solvers)
}
