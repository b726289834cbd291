// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"

	"advent-cli/internal/config"
	"advent-cli/internal/input"
	"advent-cli/internal/issue"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// inputFlagValues selects where puzzle text comes from.
type inputFlagValues struct {
	path   string
	sample bool
}

func (f *inputFlagValues) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.path, "input", "i", "", "read the puzzle input from this file")
	cmd.Flags().BoolVar(&f.sample, "sample", false, "use the built-in example input")
	cmd.MarkFlagsMutuallyExclusive("input", "sample")
}

// loader picks the input source: the embedded sample, an explicit file, or
// the configured input directory (downloading missing inputs when enabled).
func (app *App) loader(ctx context.Context, flags *inputFlagValues) input.Loader {
	switch {
	case flags.sample:
		return input.SampleLoader{}
	case flags.path != "":
		return &input.FileLoader{Path: flags.path}
	}

	cfg := sessionFrom(ctx).cfg
	dl := &input.DirLoader{Dir: cfg.InputDir, DayOf: app.Puzzles.DayOf}
	if !cfg.Fetch.Enabled {
		return dl
	}

	logger := log.FromContext(ctx)
	sessionFile, err := config.SessionPath(cfg)
	if err != nil {
		logger.Warn("input download disabled", "error", err)
		return dl
	}
	fetcher, err := input.NewFetcher(cfg.Fetch.Year, sessionFile)
	if err != nil {
		logger.Warn("input download disabled", "error", err)
		return dl
	}
	dl.Fetcher = fetcher
	return dl
}

// loadInput reads the named puzzle's text and attaches suggestions when it is
// missing.
func loadInput(ctx context.Context, l input.Loader, name string) (string, error) {
	text, err := l.Load(ctx, name)
	if err == nil {
		return text, nil
	}

	var nf *input.NotFoundError
	if errors.As(err, &nf) {
		ec := issue.NewErrorContext().
			WithOperation("load puzzle input").
			WithSuggestion("Run with --sample to use the built-in example").
			WithIssue(issue.InputNotFoundId).
			Wrap(err)
		if nf.Path != "" {
			ec = ec.WithSuggestion(fmt.Sprintf("Save your input as %s", nf.Path))
		}
		return "", ec.Build()
	}
	return "", err
}
