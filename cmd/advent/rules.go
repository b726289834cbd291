// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"advent-cli/internal/dag"
	"advent-cli/internal/issue"
	"advent-cli/internal/puzzle"
	"advent-cli/pkg/grammar"
	"advent-cli/pkg/types"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// rulesFlagValues are shared by the rules subcommands.
type rulesFlagValues struct {
	input   inputFlagValues
	puzzle  string
	patched bool
}

func (f *rulesFlagValues) register(cmd *cobra.Command) {
	f.input.register(cmd)
	cmd.Flags().StringVar(&f.puzzle, "puzzle", "nineteen", "puzzle whose input holds the rule table")
	cmd.Flags().BoolVar(&f.patched, "patched", false, "replace rules 8 and 11 with their looping forms")
}

func newRulesCommand(app *App) *cobra.Command {
	rulesCmd := &cobra.Command{
		Use:   "rules",
		Short: "Inspect and test message rule tables",
		Long: `Inspect and test message rule tables.

A rule table is the section of a puzzle input before the first blank
line. Each line defines one rule: a quoted character, a sequence of rule
ids, or alternatives separated by '|'.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	rulesCmd.AddCommand(newRulesCheckCommand(app), newRulesShowCommand(app))
	return rulesCmd
}

func newRulesCheckCommand(app *App) *cobra.Command {
	flags := &rulesFlagValues{}
	var engine, format string

	cmd := &cobra.Command{
		Use:   "check [message...]",
		Short: "Print whether rule 0 accepts each message",
		Long: `Print whether rule 0 accepts each message.

Messages given as arguments are checked against the rule table of the
input; without arguments the input's own messages are checked. The
command exits with status 2 when any message is rejected.`,
		Example: `  advent rules check --sample
  advent rules check --sample --patched bbabbbbaabaabba
  advent rules check -i rules.txt --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return app.fail(ctx, app.runRulesCheck(ctx, app.stdout, flags, &solveFlagValues{engine: engine, format: format}, args))
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVarP(&engine, "engine", "e", "", "matcher engine: chart or recursive (default from config)")
	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: text, json or toml (default from config)")
	return cmd
}

func newRulesShowCommand(app *App) *cobra.Command {
	flags := &rulesFlagValues{}
	var graph bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the rule table in canonical form",
		Long: `Print the rule table sorted by rule id.

With --graph, the evaluation order (every rule after the rules it
references) is printed instead; tables with looping rules report the
rules that take part in the cycle.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			return app.fail(ctx, app.runRulesShow(ctx, app.stdout, flags, graph))
		},
	}
	flags.register(cmd)
	cmd.Flags().BoolVar(&graph, "graph", false, "print the rule evaluation order")
	return cmd
}

// readRules loads the puzzle input and applies --patched.
func (app *App) readRules(ctx context.Context, flags *rulesFlagValues) (*grammar.Input, error) {
	solver, err := app.lookupPuzzle(flags.puzzle)
	if err != nil {
		return nil, err
	}
	text, err := loadInput(ctx, app.loader(ctx, &flags.input), solver.Name())
	if err != nil {
		return nil, err
	}

	in, err := grammar.ParseInput(text)
	if err != nil {
		return nil, issue.NewErrorContext().
			WithOperation("parse rule table").
			WithSuggestion("Rules look like `4: \"a\"`, `0: 4 1 5` or `1: 2 3 | 3 2`").
			WithIssue(issue.RulesParseErrorId).
			Wrap(err).
			Build()
	}
	if flags.patched {
		in.Rules = in.Rules.Patch()
	}
	return in, nil
}

func (app *App) runRulesCheck(ctx context.Context, w io.Writer, flags *rulesFlagValues, out *solveFlagValues, messages []string) error {
	opts, format, err := out.settings(sessionFrom(ctx).cfg)
	if err != nil {
		return err
	}

	in, err := app.readRules(ctx, flags)
	if err != nil {
		return err
	}
	if len(messages) == 0 {
		messages = in.Messages
	}

	m, err := grammar.NewMatcher(in.Rules, opts.Engine)
	if err != nil {
		return err
	}
	log.FromContext(ctx).Debug("checking messages", "engine", opts.Engine, "messages", len(messages), "patched", in.Rules.IsPatched())

	rep := &checkReport{
		Engine:   opts.Engine.String(),
		Patched:  in.Rules.IsPatched(),
		Total:    len(messages),
		Verdicts: puzzle.Check(m, messages),
	}
	for _, v := range rep.Verdicts {
		if v.Accepted {
			rep.Accepted++
		}
	}
	if err := writeCheckReport(w, rep, format); err != nil {
		return err
	}

	if rejected := rep.Total - rep.Accepted; rejected > 0 {
		return &ExitError{
			Code: types.ExitRejected,
			Err:  fmt.Errorf("%d of %d messages rejected", rejected, rep.Total),
		}
	}
	return nil
}

func (app *App) runRulesShow(ctx context.Context, w io.Writer, flags *rulesFlagValues, graph bool) error {
	in, err := app.readRules(ctx, flags)
	if err != nil {
		return err
	}

	if !graph {
		_, err := io.WriteString(w, in.Rules.String())
		return err
	}

	order, err := in.Rules.Order()
	var cycle *dag.CycleError[grammar.RuleID]
	switch {
	case errors.As(err, &cycle):
		fmt.Fprintln(w, WarningStyle.Render(cycle.Error()))
		return nil
	case err != nil:
		return err
	}

	ids := make([]string, len(order))
	for i, id := range order {
		ids[i] = id.String()
	}
	fmt.Fprintf(w, "%s %s\n", KeyStyle.Render("order:"), strings.Join(ids, " "))
	return nil
}
