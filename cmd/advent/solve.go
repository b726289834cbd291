// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"io"

	"advent-cli/internal/config"
	"advent-cli/internal/issue"
	"advent-cli/internal/puzzle"
	"advent-cli/pkg/grammar"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// solveFlagValues tunes how a puzzle is solved and printed.
type solveFlagValues struct {
	input   inputFlagValues
	engine  string
	part    int
	workers int
	format  string
}

func (f *solveFlagValues) register(cmd *cobra.Command) {
	f.input.register(cmd)
	cmd.Flags().StringVarP(&f.engine, "engine", "e", "", "matcher engine: chart or recursive (default from config)")
	cmd.Flags().IntVarP(&f.part, "part", "p", 0, "solve only this part (1 or 2)")
	cmd.Flags().IntVarP(&f.workers, "workers", "w", 0, "concurrent matching workers (default from config)")
	cmd.Flags().StringVarP(&f.format, "format", "f", "", "output format: text, json or toml (default from config)")
}

// settings resolves flag values against the loaded config.
func (f *solveFlagValues) settings(cfg *config.Config) (puzzle.Options, config.OutputFormat, error) {
	opts := puzzle.Options{Engine: cfg.Engine, Workers: cfg.Workers}
	if f.engine != "" {
		opts.Engine = grammar.Engine(f.engine)
	}
	if err := opts.Engine.Validate(); err != nil {
		return opts, "", err
	}
	if f.workers > 0 {
		opts.Workers = f.workers
	}
	if f.part != 0 {
		p := puzzle.Part(f.part)
		if err := p.Validate(); err != nil {
			return opts, "", err
		}
		opts.Parts = []puzzle.Part{p}
	}

	format := cfg.Output.Format
	if f.format != "" {
		format = config.OutputFormat(f.format)
	}
	if err := format.Validate(); err != nil {
		return opts, "", err
	}
	return opts, format, nil
}

func newSolveCommand(app *App) *cobra.Command {
	flags := &solveFlagValues{}

	cmd := &cobra.Command{
		Use:   "solve <puzzle>",
		Short: "Solve a puzzle and print its answers",
		Long: `Solve a puzzle and print its answers.

The puzzle is named by its day number or its name. Input is read from
<input_dir>/day_<name>.txt unless --input or --sample is given.`,
		Example: `  advent solve 19
  advent solve nineteen --sample --engine recursive
  advent solve 19 --part 2 --format json`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: app.completePuzzles,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return app.fail(ctx, app.runSolve(ctx, app.stdout, args[0], flags))
		},
	}
	flags.register(cmd)
	return cmd
}

// runSolve looks up the puzzle, loads its input and prints the answers.
func (app *App) runSolve(ctx context.Context, w io.Writer, query string, flags *solveFlagValues) error {
	cfg := sessionFrom(ctx).cfg
	opts, format, err := flags.settings(cfg)
	if err != nil {
		return err
	}

	solver, err := app.lookupPuzzle(query)
	if err != nil {
		return err
	}

	text, err := loadInput(ctx, app.loader(ctx, &flags.input), solver.Name())
	if err != nil {
		return err
	}

	log.FromContext(ctx).Debug("solving", "puzzle", solver.Name(), "engine", opts.Engine, "workers", opts.Workers)
	res, err := puzzle.Solve(ctx, solver, text, opts)
	if err != nil {
		return fmt.Errorf("solve %s: %w", solver.Name(), err)
	}
	return writeResult(w, res, format)
}

func (app *App) lookupPuzzle(query string) (puzzle.Solver, error) {
	s, err := app.Puzzles.Get(query)
	if err != nil {
		return nil, issue.NewErrorContext().
			WithOperation("find puzzle").
			WithSuggestion("Run 'advent list' to see the registered puzzles").
			WithIssue(issue.PuzzleNotFoundId).
			Wrap(err).
			Build()
	}
	return s, nil
}

// completePuzzles offers registered puzzle names for shell completion.
func (app *App) completePuzzles(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	names := make([]string, 0, len(app.Puzzles.List()))
	for _, s := range app.Puzzles.List() {
		names = append(names, s.Name()+"\t"+s.Title())
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}
