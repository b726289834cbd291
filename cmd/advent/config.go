// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"io"

	"advent-cli/internal/config"

	"github.com/spf13/cobra"
)

// newConfigCommand creates the `advent config` command tree.
func newConfigCommand(app *App) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage advent configuration",
		Long: `Manage advent configuration.

Configuration is stored in:
  - Linux: ~/.config/advent/config.cue
  - macOS: ~/Library/Application Support/advent/config.cue
  - Windows: %APPDATA%\advent\config.cue

Every key can be overridden with an ADVENT_ environment variable,
for example ADVENT_ENGINE=recursive or ADVENT_OUTPUT_FORMAT=json.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return showConfig(cmd.Context(), app.stdout)
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := configPath(cmd.Context())
			if err != nil {
				return app.fail(cmd.Context(), err)
			}
			fmt.Fprintln(app.stdout, path)
			return nil
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.fail(cmd.Context(), initConfig(app.stdout))
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "dump",
		Short: "Output the effective configuration as CUE",
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprint(app.stdout, config.GenerateCUE(sessionFrom(cmd.Context()).cfg))
			return nil
		},
	})

	return cfgCmd
}

// configPath returns the file that was loaded, or where `config init` would
// write one.
func configPath(ctx context.Context) (string, error) {
	opts := config.LoadOptions{ConfigFilePath: sessionFrom(ctx).configPath}
	path, err := config.Resolve(opts)
	if err != nil {
		return "", err
	}
	if path != "" {
		return path, nil
	}
	return config.DefaultPath(opts)
}

func showConfig(ctx context.Context, w io.Writer) error {
	s := sessionFrom(ctx)
	cfg := s.cfg

	fmt.Fprintln(w, TitleStyle.Render("Current Configuration"))
	fmt.Fprintln(w)

	path, err := config.Resolve(config.LoadOptions{ConfigFilePath: s.configPath})
	if err != nil || path == "" {
		fmt.Fprintf(w, "%s: %s\n", KeyStyle.Render("Config file"), SubtitleStyle.Render("(using defaults)"))
	} else {
		fmt.Fprintf(w, "%s: %s\n", KeyStyle.Render("Config file"), path)
	}
	fmt.Fprintln(w)

	rows := []struct{ key, value string }{
		{"input_dir", cfg.InputDir},
		{"engine", cfg.Engine.String()},
		{"workers", fmt.Sprint(cfg.Workers)},
		{"output.format", cfg.Output.Format.String()},
		{"ui.verbose", fmt.Sprint(cfg.UI.Verbose)},
		{"ui.color_scheme", cfg.UI.ColorScheme.String()},
		{"fetch.enabled", fmt.Sprint(cfg.Fetch.Enabled)},
		{"fetch.year", fmt.Sprint(cfg.Fetch.Year)},
		{"watch.debounce", cfg.Watch.Debounce.String()},
		{"watch.clear_screen", fmt.Sprint(cfg.Watch.ClearScreen)},
	}
	for _, r := range rows {
		fmt.Fprintf(w, "%s: %s\n", KeyStyle.Render(r.key), AcceptStyle.Render(r.value))
	}
	return nil
}

func initConfig(w io.Writer) error {
	path, err := config.DefaultPath(config.LoadOptions{})
	if err != nil {
		return err
	}

	created, err := config.WriteDefault(path)
	if err != nil {
		return err
	}
	if !created {
		fmt.Fprintf(w, "Config file already exists at %s\n", path)
		return nil
	}
	fmt.Fprintf(w, "Created default config file at %s\n", path)
	return nil
}
