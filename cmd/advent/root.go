// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"advent-cli/internal/config"
	"advent-cli/pkg/types"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// rootFlagValues holds the persistent flags shared by every subcommand.
type rootFlagValues struct {
	verbose    bool
	configPath string
}

// NewRootCommand builds the advent command tree around app.
func NewRootCommand(app *App) *cobra.Command {
	flags := &rootFlagValues{}

	rootCmd := &cobra.Command{
		Use:   "advent",
		Short: "Solve Advent of Code puzzles",
		Long: TitleStyle.Render("advent") + SubtitleStyle.Render(" - Advent of Code puzzle runner") + `

advent loads puzzle inputs from an input directory (or downloads them),
solves both parts and prints the answers. The message rule tooling
under 'advent rules' checks and inspects grammar rule tables directly.

` + SubtitleStyle.Render("Examples:") + `
  advent list                       List registered puzzles
  advent solve 19 --sample          Solve day 19 on the built-in sample
  advent solve nineteen --part 2    Solve only part two
  advent rules check input.txt      Print the verdict for every message
  advent watch nineteen             Re-solve whenever the input changes`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return app.startSession(cmd, flags)
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "config file (default is $XDG_CONFIG_HOME/advent/config.cue)")

	rootCmd.AddCommand(
		newSolveCommand(app),
		newListCommand(app),
		newRulesCommand(app),
		newWatchCommand(app),
		newConfigCommand(app),
		newCompletionCommand(),
	)
	return rootCmd
}

// startSession loads configuration, builds the logger and stores both in the
// command context.
func (app *App) startSession(cmd *cobra.Command, flags *rootFlagValues) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	opts := config.LoadOptions{ConfigFilePath: flags.configPath}
	cfg, err := app.Config.Load(ctx, opts)
	if err != nil {
		renderServiceError(app.stderr, newServiceError(err, classifyError(err), ""), flags.verbose, config.ColorSchemeAuto)
		return err
	}

	verbose := flags.verbose || cfg.UI.Verbose
	logger := app.newLogger(verbose)
	if path, resolveErr := config.Resolve(opts); resolveErr == nil && path != "" {
		logger.Debug("loaded config", "path", path)
	}

	ctx = withSession(ctx, &session{cfg: cfg, configPath: flags.configPath, verbose: verbose})
	cmd.SetContext(log.WithContext(ctx, logger))
	return nil
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute runs the CLI. It is called by main.main().
func Execute() {
	app := NewApp(Dependencies{})
	if err := fang.Execute(
		context.Background(),
		NewRootCommand(app),
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(int(exitErr.Code))
		}
		os.Exit(int(types.ExitFailure))
	}
}
