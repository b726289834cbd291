// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"io"
	"os"

	"advent-cli/internal/config"
	"advent-cli/internal/puzzle"
	"advent-cli/internal/puzzle/nineteen"

	"github.com/charmbracelet/log"
)

type (
	sessionContextKey struct{}

	// App wires CLI services and shared dependencies. It is the composition
	// root for the CLI layer: every Cobra handler receives an App reference.
	App struct {
		Config  ConfigProvider
		Puzzles *puzzle.Registry
		stdout  io.Writer
		stderr  io.Writer
	}

	// Dependencies defines the injection points for building an App. Nil fields
	// are replaced with production defaults by NewApp.
	Dependencies struct {
		Config  ConfigProvider
		Puzzles *puzzle.Registry
		Stdout  io.Writer
		Stderr  io.Writer
	}

	// ConfigProvider loads configuration using explicit options.
	ConfigProvider interface {
		Load(ctx context.Context, opts config.LoadOptions) (*config.Config, error)
	}

	// session is the per-invocation state resolved by the root pre-run.
	session struct {
		cfg        *config.Config
		configPath string
		verbose    bool
	}
)

// NewApp builds an App, filling unset dependencies with production defaults.
func NewApp(deps Dependencies) *App {
	app := &App{
		Config:  deps.Config,
		Puzzles: deps.Puzzles,
		stdout:  deps.Stdout,
		stderr:  deps.Stderr,
	}
	if app.Config == nil {
		app.Config = config.NewProvider()
	}
	if app.Puzzles == nil {
		app.Puzzles = DefaultRegistry()
	}
	if app.stdout == nil {
		app.stdout = os.Stdout
	}
	if app.stderr == nil {
		app.stderr = os.Stderr
	}
	return app
}

// DefaultRegistry returns every puzzle compiled into the binary.
func DefaultRegistry() *puzzle.Registry {
	return puzzle.NewRegistry(nineteen.New())
}

func (app *App) newLogger(verbose bool) *log.Logger {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(app.stderr, log.Options{
		Prefix: "advent",
		Level:  level,
	})
}

func withSession(ctx context.Context, s *session) context.Context {
	return context.WithValue(ctx, sessionContextKey{}, s)
}

// sessionFrom returns the session stored by the root pre-run, or a default
// session when a command runs without one.
func sessionFrom(ctx context.Context) *session {
	if s, ok := ctx.Value(sessionContextKey{}).(*session); ok && s != nil {
		return s
	}
	return &session{cfg: config.DefaultConfig()}
}
