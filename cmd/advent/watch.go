// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"advent-cli/internal/input"
	"advent-cli/internal/watch"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

func newWatchCommand(app *App) *cobra.Command {
	flags := &solveFlagValues{}

	cmd := &cobra.Command{
		Use:   "watch <puzzle>",
		Short: "Re-solve a puzzle whenever its input changes",
		Long: `Solve a puzzle once, then again every time its input file changes.

The watched file is --input when given, otherwise <input_dir>/day_<name>.txt.
Press Ctrl+C to stop.`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: app.completePuzzles,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return app.fail(ctx, app.runWatch(ctx, args[0], flags))
		},
	}
	flags.register(cmd)
	return cmd
}

// watchTarget returns the directory and pattern that select the input file.
func watchTarget(inputDir, name string, flags *inputFlagValues) (dir, pattern string, err error) {
	switch {
	case flags.sample:
		return "", "", errors.New("--sample input is built in and cannot be watched")
	case flags.path != "":
		return filepath.Dir(flags.path), filepath.Base(flags.path), nil
	}
	return inputDir, input.FileName(name), nil
}

func (app *App) runWatch(ctx context.Context, query string, flags *solveFlagValues) error {
	s := sessionFrom(ctx)
	solver, err := app.lookupPuzzle(query)
	if err != nil {
		return err
	}

	dir, pattern, err := watchTarget(s.cfg.InputDir, solver.Name(), &flags.input)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create watch directory: %w", err)
	}

	solve := func(ctx context.Context) error {
		return app.runSolve(ctx, app.stdout, solver.Name(), flags)
	}
	// The first run may fail on a missing input; keep watching for it.
	if err := solve(ctx); err != nil {
		_ = app.fail(ctx, err)
	}

	logger := log.FromContext(ctx)
	w, err := watch.New(watch.Config{
		Dir:         dir,
		Patterns:    []string{pattern},
		Debounce:    s.cfg.Watch.Debounce,
		ClearScreen: s.cfg.Watch.ClearScreen,
		Stdout:      app.stdout,
		Logger:      logger,
		OnChange: func(ctx context.Context, changed []string) error {
			logger.Info("input changed, solving again", "paths", changed)
			if err := solve(ctx); err != nil {
				return app.fail(ctx, err)
			}
			return nil
		},
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(app.stderr, SubtitleStyle.Render(fmt.Sprintf("watching %s in %s (Ctrl+C to stop)", pattern, w.Dir())))
	return w.Run(ctx)
}
