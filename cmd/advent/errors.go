// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"

	"advent-cli/internal/config"
	"advent-cli/internal/input"
	"advent-cli/internal/issue"
	"advent-cli/internal/puzzle"
	"advent-cli/pkg/grammar"

	"github.com/charmbracelet/log"
)

// ServiceError is an error that carries optional rendering information for
// the CLI layer. Always create via newServiceError.
type ServiceError struct {
	// Err is the underlying error (must not be nil).
	Err error
	// IssueID is the optional issue catalog ID for rendering help text.
	IssueID issue.Id
	// StyledMessage is the optional pre-rendered styled text.
	StyledMessage string
}

// newServiceError creates a ServiceError with a nil-Err panic guard.
func newServiceError(err error, issueID issue.Id, styledMessage string) *ServiceError {
	if err == nil {
		panic("ServiceError: Err must not be nil")
	}
	return &ServiceError{
		Err:           err,
		IssueID:       issueID,
		StyledMessage: styledMessage,
	}
}

// Error implements the error interface.
func (e *ServiceError) Error() string { return e.Err.Error() }

// Unwrap returns the underlying error for errors.Is/As chains.
func (e *ServiceError) Unwrap() error { return e.Err }

// classifyError maps a failure to the issue catalog entry that explains it,
// or 0 when none applies.
func classifyError(err error) issue.Id {
	var ae *issue.ActionableError
	if errors.As(err, &ae) && ae.IssueID != 0 {
		return ae.IssueID
	}

	switch {
	case errors.Is(err, input.ErrInputNotFound):
		return issue.InputNotFoundId
	case errors.Is(err, input.ErrFetch), errors.Is(err, input.ErrNoSession):
		return issue.FetchFailedId
	case errors.Is(err, grammar.ErrUndefinedRule):
		return issue.UndefinedRuleId
	case errors.Is(err, grammar.ErrMalformedRule), errors.Is(err, grammar.ErrEmptyBranch):
		return issue.RulesParseErrorId
	case errors.Is(err, grammar.ErrVariableLength), errors.Is(err, grammar.ErrUnsupportedRecursion):
		return issue.UnsupportedGrammarId
	case errors.Is(err, grammar.ErrInvalidEngine):
		return issue.InvalidEngineId
	case errors.Is(err, puzzle.ErrPuzzleNotFound):
		return issue.PuzzleNotFoundId
	case errors.Is(err, config.ErrInvalidConfig):
		return issue.ConfigLoadFailedId
	}
	return 0
}

// renderServiceError prints the hints attached to a failure: actionable
// suggestions, the error chain in verbose mode and the catalog entry.
// The error message itself is printed by the caller of Execute.
func renderServiceError(stderr io.Writer, svcErr *ServiceError, verbose bool, scheme config.ColorScheme) {
	if svcErr == nil {
		return
	}

	if svcErr.StyledMessage != "" {
		fmt.Fprint(stderr, svcErr.StyledMessage)
	}

	var ae *issue.ActionableError
	if errors.As(svcErr.Err, &ae) {
		for _, s := range ae.Suggestions {
			fmt.Fprintln(stderr, WarningStyle.Render("  • "+s))
		}
		if verbose && ae.Cause != nil {
			fmt.Fprintln(stderr, SubtitleStyle.Render("Error chain:"))
			depth := 1
			for err := ae.Cause; err != nil; err = errors.Unwrap(err) {
				fmt.Fprintf(stderr, "  %d. %s\n", depth, err.Error())
				depth++
			}
		}
	}

	if svcErr.IssueID == 0 {
		return
	}

	if entry := issue.Get(svcErr.IssueID); entry != nil {
		rendered, err := entry.Render(scheme.GlamourStyle())
		if err != nil {
			log.Warn("failed to render issue catalog entry", "issueID", svcErr.IssueID, "error", err)
			return
		}
		fmt.Fprint(stderr, rendered)
	}
}

// fail renders err for the current session and returns it unchanged so the
// caller can propagate it to Execute. Exit errors carry no hints.
func (app *App) fail(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return err
	}
	s := sessionFrom(ctx)
	svcErr := newServiceError(err, classifyError(err), "")
	renderServiceError(app.stderr, svcErr, s.verbose, s.cfg.UI.ColorScheme)
	return svcErr
}
