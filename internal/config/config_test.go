// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"advent-cli/internal/issue"
	"advent-cli/pkg/grammar"

	"github.com/google/go-cmp/cmp"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()

	path := filepath.Join(dir, ConfigFileName+"."+ConfigFileExt)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoad_DefaultsWhenNoFile(t *testing.T) {
	t.Parallel()

	cfg, err := NewProvider().Load(t.Context(), LoadOptions{ConfigDirPath: t.TempDir()})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if diff := cmp.Diff(DefaultConfig(), cfg); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_FromConfigDir(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeConfig(t, dir, `
input_dir: "puzzles"
engine: "recursive"
workers: 4
output: format: "json"
ui: {
	verbose: true
	color_scheme: "light"
}
fetch: {
	enabled: true
	year: 2021
}
watch: debounce: "2s"
`)

	cfg, resolved, err := loadWithOptions(t.Context(), LoadOptions{ConfigDirPath: dir})
	if err != nil {
		t.Fatalf("loadWithOptions() error = %v", err)
	}
	if resolved != filepath.Join(dir, "config.cue") {
		t.Errorf("resolved = %q", resolved)
	}

	want := DefaultConfig()
	want.InputDir = "puzzles"
	want.Engine = grammar.EngineRecursive
	want.Workers = 4
	want.Output.Format = FormatJSON
	want.UI = UIConfig{Verbose: true, ColorScheme: ColorSchemeLight}
	want.Fetch.Enabled = true
	want.Fetch.Year = 2021
	want.Watch.Debounce = 2 * time.Second

	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_ExplicitFile(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, t.TempDir(), `engine: "recursive"`)

	cfg, err := NewProvider().Load(t.Context(), LoadOptions{ConfigFilePath: path})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Engine != grammar.EngineRecursive {
		t.Errorf("Engine = %q, want recursive", cfg.Engine)
	}
	if cfg.InputDir != "inputs" {
		t.Errorf("InputDir = %q, want default", cfg.InputDir)
	}
}

func TestLoad_ExplicitFileMissing(t *testing.T) {
	t.Parallel()

	missing := filepath.Join(t.TempDir(), "nope.cue")
	_, err := NewProvider().Load(t.Context(), LoadOptions{ConfigFilePath: missing})
	if err == nil {
		t.Fatal("Load() expected error for missing file")
	}

	var ae *issue.ActionableError
	if !errors.As(err, &ae) {
		t.Fatalf("error should be *issue.ActionableError, got %T", err)
	}
	if ae.Resource != missing {
		t.Errorf("Resource = %q, want %q", ae.Resource, missing)
	}
	if ae.IssueID != issue.ConfigLoadFailedId {
		t.Errorf("IssueID = %d, want ConfigLoadFailedId", ae.IssueID)
	}
}

func TestLoad_SchemaViolations(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{name: "bad engine", content: `engine: "fast"`, want: "engine"},
		{name: "zero workers", content: `workers: 0`, want: "workers"},
		{name: "bad format", content: `output: format: "yaml"`, want: "output.format"},
		{name: "bad debounce", content: `watch: debounce: "soon"`, want: "watch.debounce"},
		{name: "unknown field", content: `container_engine: "docker"`, want: "container_engine"},
		{name: "syntax error", content: `engine: "chart`, want: "config.cue"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()
			writeConfig(t, dir, tt.content)

			_, err := NewProvider().Load(t.Context(), LoadOptions{ConfigDirPath: dir})
			if err == nil {
				t.Fatalf("Load() expected error for %s", tt.content)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Load() error = %q, want it to contain %q", err, tt.want)
			}
		})
	}
}

func TestLoad_Canceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	_, err := NewProvider().Load(ctx, LoadOptions{ConfigDirPath: t.TempDir()})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Load() error = %v, want context.Canceled", err)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `input_dir: "from-file"`)

	t.Setenv("ADVENT_INPUT_DIR", "from-env")
	t.Setenv("ADVENT_WORKERS", "8")
	t.Setenv("ADVENT_FETCH_YEAR", "2022")

	cfg, err := NewProvider().Load(t.Context(), LoadOptions{ConfigDirPath: dir})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.InputDir != "from-env" {
		t.Errorf("InputDir = %q, want from-env", cfg.InputDir)
	}
	if cfg.Workers != 8 {
		t.Errorf("Workers = %d, want 8", cfg.Workers)
	}
	if cfg.Fetch.Year != 2022 {
		t.Errorf("Fetch.Year = %d, want 2022", cfg.Fetch.Year)
	}
}

func TestLoad_InvalidEnvOverride(t *testing.T) {
	t.Setenv("ADVENT_ENGINE", "regex")

	_, err := NewProvider().Load(t.Context(), LoadOptions{ConfigDirPath: t.TempDir()})
	if !errors.Is(err, grammar.ErrInvalidEngine) {
		t.Fatalf("Load() error = %v, want ErrInvalidEngine", err)
	}
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Load() error should wrap ErrInvalidConfig")
	}
}

func TestResolve(t *testing.T) {
	t.Parallel()

	empty := t.TempDir()
	got, err := Resolve(LoadOptions{ConfigDirPath: empty})
	if err != nil || got != "" {
		t.Errorf("Resolve(empty dir) = %q, %v; want \"\", nil", got, err)
	}

	withFile := t.TempDir()
	path := writeConfig(t, withFile, "")
	if got, _ := Resolve(LoadOptions{ConfigDirPath: withFile}); got != path {
		t.Errorf("Resolve() = %q, want %q", got, path)
	}

	if got, _ := Resolve(LoadOptions{ConfigFilePath: "/x/y.cue", ConfigDirPath: withFile}); got != "/x/y.cue" {
		t.Errorf("explicit file should win, got %q", got)
	}
}

func TestGenerateCUE_RoundTrip(t *testing.T) {
	t.Parallel()

	want := DefaultConfig()
	want.Engine = grammar.EngineRecursive
	want.Fetch.SessionFile = "~/.aoc-session"
	want.Watch.Debounce = 1500 * time.Millisecond
	want.Watch.ClearScreen = true

	dir := t.TempDir()
	writeConfig(t, dir, GenerateCUE(want))

	got, err := NewProvider().Load(t.Context(), LoadOptions{ConfigDirPath: dir})
	if err != nil {
		t.Fatalf("Load(GenerateCUE()) error = %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteDefault(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "config.cue")

	written, err := WriteDefault(path)
	if err != nil || !written {
		t.Fatalf("WriteDefault() = %v, %v; want true, nil", written, err)
	}
	if err := os.WriteFile(path, []byte(`engine: "recursive"`), 0o644); err != nil {
		t.Fatal(err)
	}
	written, err = WriteDefault(path)
	if err != nil || written {
		t.Fatalf("second WriteDefault() = %v, %v; want false, nil", written, err)
	}
	data, _ := os.ReadFile(path)
	if string(data) != `engine: "recursive"` {
		t.Error("WriteDefault() overwrote an existing file")
	}
}

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   time.Duration
		want string
	}{
		{0, "0ms"},
		{300 * time.Millisecond, "300ms"},
		{1500 * time.Millisecond, "1500ms"},
		{2 * time.Second, "2s"},
		{90 * time.Second, "90s"},
		{3 * time.Minute, "3m"},
	}
	for _, tt := range tests {
		if got := formatDuration(tt.in); got != tt.want {
			t.Errorf("formatDuration(%s) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSessionPath(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Fetch.SessionFile = "/etc/aoc/session"
	got, err := SessionPath(cfg)
	if err != nil || got != "/etc/aoc/session" {
		t.Errorf("SessionPath() = %q, %v", got, err)
	}
}
