// SPDX-License-Identifier: MPL-2.0

package grammar

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMalformedRule is the sentinel error wrapped by ParseError.
	ErrMalformedRule = errors.New("malformed rule")
	// ErrUndefinedRule is the sentinel error wrapped by UndefinedRuleError.
	ErrUndefinedRule = errors.New("undefined rule")
	// ErrEmptyBranch is the sentinel error wrapped by EmptyBranchError.
	ErrEmptyBranch = errors.New("empty rule branch")
	// ErrVariableLength is the sentinel error wrapped by VariableLengthError.
	ErrVariableLength = errors.New("alternation branches differ in length")
	// ErrUnsupportedRecursion is returned when the recursive matcher is given a
	// self-referential grammar other than the patched rules 8 and 11.
	ErrUnsupportedRecursion = errors.New("unsupported recursive rule")
	// ErrInvalidEngine is the sentinel error wrapped by InvalidEngineError.
	ErrInvalidEngine = errors.New("invalid matcher engine")
)

type (
	// ParseError reports a rule line that could not be parsed.
	// It wraps ErrMalformedRule for errors.Is() compatibility.
	ParseError struct {
		// Line is the 1-based line number within the rule section.
		Line int
		// Text is the offending line.
		Text string
		// Reason describes what is wrong with the line.
		Reason string
		// Cause is the underlying error, if any (e.g. from strconv).
		Cause error
	}

	// UndefinedRuleError reports a reference to a rule id missing from the table.
	UndefinedRuleError struct {
		ID          RuleID
		Referrer    RuleID
		HasReferrer bool
	}

	// EmptyBranchError reports a sequence or alternation branch with no references.
	EmptyBranchError struct {
		Rule RuleID
	}

	// VariableLengthError reports an alternation whose branches expand to
	// different lengths, which the recursive matcher cannot resolve.
	VariableLengthError struct {
		Rule    RuleID
		Lengths []int
	}

	// InvalidEngineError is returned when an Engine value is not recognized.
	InvalidEngineError struct {
		Value Engine
	}
)

// Error implements the error interface.
func (e *ParseError) Error() string {
	msg := fmt.Sprintf("line %d: %q: %s", e.Line, e.Text, e.Reason)
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns ErrMalformedRule together with the underlying cause.
func (e *ParseError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrMalformedRule}
	}
	return []error{ErrMalformedRule, e.Cause}
}

// Error implements the error interface.
func (e *UndefinedRuleError) Error() string {
	if e.HasReferrer {
		return fmt.Sprintf("rule %d references undefined rule %d", e.Referrer, e.ID)
	}
	return fmt.Sprintf("rule %d is not defined", e.ID)
}

// Unwrap returns ErrUndefinedRule.
func (e *UndefinedRuleError) Unwrap() error { return ErrUndefinedRule }

// Error implements the error interface.
func (e *EmptyBranchError) Error() string {
	return fmt.Sprintf("rule %d has an empty branch", e.Rule)
}

// Unwrap returns ErrEmptyBranch.
func (e *EmptyBranchError) Unwrap() error { return ErrEmptyBranch }

// Error implements the error interface.
func (e *VariableLengthError) Error() string {
	parts := make([]string, len(e.Lengths))
	for i, n := range e.Lengths {
		parts[i] = fmt.Sprint(n)
	}
	return fmt.Sprintf("rule %d: alternation branches expand to lengths %s", e.Rule, strings.Join(parts, ", "))
}

// Unwrap returns ErrVariableLength.
func (e *VariableLengthError) Unwrap() error { return ErrVariableLength }

// Error implements the error interface.
func (e *InvalidEngineError) Error() string {
	return fmt.Sprintf("invalid matcher engine %q (valid: %s, %s)", e.Value, EngineChart, EngineRecursive)
}

// Unwrap returns ErrInvalidEngine.
func (e *InvalidEngineError) Unwrap() error { return ErrInvalidEngine }
