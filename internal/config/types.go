// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"advent-cli/pkg/grammar"
)

const (
	// ColorSchemeAuto detects the terminal color scheme automatically.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces dark color scheme.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces light color scheme.
	ColorSchemeLight ColorScheme = "light"

	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
	FormatTOML OutputFormat = "toml"

	// firstEventYear is the first Advent of Code.
	firstEventYear = 2015
)

var (
	// ErrInvalidColorScheme is returned when a ColorScheme value is not recognized.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
	// ErrInvalidOutputFormat is returned when an OutputFormat value is not recognized.
	ErrInvalidOutputFormat = errors.New("invalid output format")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// ColorScheme specifies the terminal color scheme preference.
	ColorScheme string

	// OutputFormat selects how answers are printed.
	OutputFormat string

	// InvalidColorSchemeError is returned when a ColorScheme value is not recognized.
	InvalidColorSchemeError struct {
		Value ColorScheme
	}

	// InvalidOutputFormatError is returned when an OutputFormat value is not recognized.
	InvalidOutputFormatError struct {
		Value OutputFormat
	}

	// InvalidConfigError collects field-level validation errors.
	// It wraps ErrInvalidConfig for errors.Is().
	InvalidConfigError struct {
		FieldErrors []error
	}

	// Config holds the application configuration.
	Config struct {
		// InputDir is searched for day_<puzzle>.txt files.
		InputDir string `json:"input_dir" mapstructure:"input_dir"`
		// Engine selects the matcher used by solve, check and watch.
		Engine grammar.Engine `json:"engine" mapstructure:"engine"`
		// Workers bounds concurrent message matching.
		Workers int          `json:"workers" mapstructure:"workers"`
		Output  OutputConfig `json:"output" mapstructure:"output"`
		UI      UIConfig     `json:"ui" mapstructure:"ui"`
		Fetch   FetchConfig  `json:"fetch" mapstructure:"fetch"`
		Watch   WatchConfig  `json:"watch" mapstructure:"watch"`
	}

	// OutputConfig controls answer rendering.
	OutputConfig struct {
		Format OutputFormat `json:"format" mapstructure:"format"`
	}

	// UIConfig configures the user interface.
	UIConfig struct {
		// Verbose enables debug logging.
		Verbose bool `json:"verbose" mapstructure:"verbose"`
		// ColorScheme sets the glamour style used to render issues.
		ColorScheme ColorScheme `json:"color_scheme" mapstructure:"color_scheme"`
	}

	// FetchConfig configures downloading of missing inputs.
	FetchConfig struct {
		Enabled bool `json:"enabled" mapstructure:"enabled"`
		// Year is the event year inputs are downloaded from.
		Year int `json:"year" mapstructure:"year"`
		// SessionFile holds the adventofcode.com session cookie.
		// Empty means <config dir>/session.
		SessionFile string `json:"session_file" mapstructure:"session_file"`
	}

	// WatchConfig configures `advent watch`.
	WatchConfig struct {
		Debounce    time.Duration `json:"debounce" mapstructure:"debounce"`
		ClearScreen bool          `json:"clear_screen" mapstructure:"clear_screen"`
	}
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		InputDir: "inputs",
		Engine:   grammar.EngineChart,
		Workers:  1,
		Output:   OutputConfig{Format: FormatText},
		UI:       UIConfig{ColorScheme: ColorSchemeAuto},
		Fetch:    FetchConfig{Year: 2020},
		Watch:    WatchConfig{Debounce: 300 * time.Millisecond},
	}
}

// Validate reports every invalid field at once.
func (c *Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.InputDir) == "" {
		errs = append(errs, errors.New("input_dir: must not be empty"))
	}
	if err := c.Engine.Validate(); err != nil {
		errs = append(errs, err)
	}
	if c.Workers < 1 {
		errs = append(errs, fmt.Errorf("workers: %d is less than 1", c.Workers))
	}
	if err := c.Output.Format.Validate(); err != nil {
		errs = append(errs, err)
	}
	if err := c.UI.ColorScheme.Validate(); err != nil {
		errs = append(errs, err)
	}
	if c.Fetch.Year < firstEventYear {
		errs = append(errs, fmt.Errorf("fetch.year: %d is before %d", c.Fetch.Year, firstEventYear))
	}
	if c.Watch.Debounce < 0 {
		errs = append(errs, fmt.Errorf("watch.debounce: %s is negative", c.Watch.Debounce))
	}
	if len(errs) > 0 {
		return &InvalidConfigError{FieldErrors: errs}
	}
	return nil
}

// Validate returns an error if the ColorScheme is not recognized.
func (cs ColorScheme) Validate() error {
	switch cs {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
		return nil
	default:
		return &InvalidColorSchemeError{Value: cs}
	}
}

// GlamourStyle maps the scheme to a glamour standard style name.
func (cs ColorScheme) GlamourStyle() string {
	switch cs {
	case ColorSchemeDark, ColorSchemeLight:
		return string(cs)
	default:
		return "auto"
	}
}

func (cs ColorScheme) String() string { return string(cs) }

// Validate returns an error if the OutputFormat is not recognized.
func (f OutputFormat) Validate() error {
	switch f {
	case FormatText, FormatJSON, FormatTOML:
		return nil
	default:
		return &InvalidOutputFormatError{Value: f}
	}
}

func (f OutputFormat) String() string { return string(f) }

func (e *InvalidColorSchemeError) Error() string {
	return fmt.Sprintf("invalid color scheme %q (valid: auto, dark, light)", e.Value)
}

func (e *InvalidColorSchemeError) Unwrap() error { return ErrInvalidColorScheme }

func (e *InvalidOutputFormatError) Error() string {
	return fmt.Sprintf("invalid output format %q (valid: text, json, toml)", e.Value)
}

func (e *InvalidOutputFormatError) Unwrap() error { return ErrInvalidOutputFormat }

func (e *InvalidConfigError) Error() string {
	msgs := make([]string, len(e.FieldErrors))
	for i, err := range e.FieldErrors {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("invalid config: %d field error(s): %s", len(e.FieldErrors), strings.Join(msgs, "; "))
}

// Unwrap returns the sentinel and every field error so errors.Is can reach both.
func (e *InvalidConfigError) Unwrap() []error {
	return append([]error{ErrInvalidConfig}, e.FieldErrors...)
}
