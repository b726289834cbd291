// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	FirstDay Day = 1
	LastDay  Day = 25
)

// ErrInvalidDay is the sentinel error wrapped by InvalidDayError.
var ErrInvalidDay = errors.New("invalid puzzle day")

type (
	// Day is an Advent of Code puzzle day, 1 through 25.
	// The zero value means "unset" and is not valid.
	Day int

	// InvalidDayError is returned when a Day is outside 1-25 or a string
	// does not parse as one.
	InvalidDayError struct {
		Value string
	}
)

// ParseDay parses a decimal day number such as "19" or "07".
func ParseDay(s string) (Day, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, &InvalidDayError{Value: s}
	}
	d := Day(n)
	if err := d.Validate(); err != nil {
		return 0, err
	}
	return d, nil
}

// Validate returns an error if d is outside 1-25.
func (d Day) Validate() error {
	if d < FirstDay || d > LastDay {
		return &InvalidDayError{Value: strconv.Itoa(int(d))}
	}
	return nil
}

func (d Day) String() string { return strconv.Itoa(int(d)) }

func (e *InvalidDayError) Error() string {
	return fmt.Sprintf("invalid puzzle day %q: must be %d-%d", e.Value, FirstDay, LastDay)
}

// Unwrap returns ErrInvalidDay for errors.Is.
func (e *InvalidDayError) Unwrap() error { return ErrInvalidDay }
