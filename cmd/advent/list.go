// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"

	"advent-cli/internal/config"
	"advent-cli/internal/input"

	"github.com/spf13/cobra"
)

func newListCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List registered puzzles",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return listPuzzles(app.stdout, app, sessionFrom(cmd.Context()).cfg)
		},
	}
}

// listPuzzles prints one line per puzzle with the input path it reads.
func listPuzzles(w io.Writer, app *App, cfg *config.Config) error {
	dl := &input.DirLoader{Dir: cfg.InputDir}
	samples := make(map[string]bool)
	for _, name := range input.Samples() {
		samples[name] = true
	}

	fmt.Fprintln(w, TitleStyle.Render("Puzzles"))
	for _, s := range app.Puzzles.List() {
		line := fmt.Sprintf("  %2d  %-10s %s  %s", int(s.Day()), KeyStyle.Render(s.Name()), s.Title(), SubtitleStyle.Render(dl.Path(s.Name())))
		if samples[s.Name()] {
			line += SubtitleStyle.Render(" (sample)")
		}
		fmt.Fprintln(w, line)
	}
	return nil
}
