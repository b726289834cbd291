// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"advent-cli/internal/config"
	"advent-cli/internal/testutil"
	"advent-cli/pkg/grammar"
)

func TestConfigPathAndInit(t *testing.T) {
	dir := testutil.IsolateConfig(t)
	want := filepath.Join(dir, "config.cue")

	stdout, _, err := execute(t, nil, "config", "path")
	if err != nil {
		t.Fatalf("config path: %v", err)
	}
	if got := strings.TrimSpace(stdout); got != want {
		t.Errorf("config path = %q, want %q", got, want)
	}

	stdout, _, err = execute(t, nil, "config", "init")
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	if !strings.Contains(stdout, "Created default config file at "+want) {
		t.Errorf("init output = %q", stdout)
	}
	data, err := os.ReadFile(want)
	if err != nil {
		t.Fatalf("config not written: %v", err)
	}
	if string(data) != config.GenerateCUE(config.DefaultConfig()) {
		t.Errorf("written config differs from defaults:\n%s", data)
	}

	stdout, _, err = execute(t, nil, "config", "init")
	if err != nil {
		t.Fatalf("second config init: %v", err)
	}
	if !strings.Contains(stdout, "already exists") {
		t.Errorf("second init output = %q", stdout)
	}
}

func TestConfigShowAndDump(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	cfg.Engine = grammar.EngineRecursive
	cfg.Workers = 4
	cfg.Watch.Debounce = 2 * time.Second

	stdout, _, err := execute(t, cfg, "config", "show")
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	for _, want := range []string{"Current Configuration", "engine: recursive", "workers: 4", "watch.debounce: 2s"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("show output missing %q:\n%s", want, stdout)
		}
	}

	stdout, _, err = execute(t, cfg, "config", "dump")
	if err != nil {
		t.Fatalf("config dump: %v", err)
	}
	if stdout != config.GenerateCUE(cfg) {
		t.Errorf("dump = %q, want GenerateCUE output", stdout)
	}
}

func TestList(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	cfg.InputDir = "puzzles"
	stdout, _, err := execute(t, cfg, "list")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for _, want := range []string{"19", "nineteen", "Monster Messages", filepath.Join("puzzles", "day_nineteen.txt"), "(sample)"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("list output missing %q:\n%s", want, stdout)
		}
	}
}

func TestCompletion(t *testing.T) {
	t.Parallel()

	stdout, _, err := execute(t, nil, "completion", "bash")
	if err != nil {
		t.Fatalf("completion: %v", err)
	}
	if !strings.Contains(stdout, "advent") {
		t.Error("bash completion does not mention the command")
	}

	if _, _, err := execute(t, nil, "completion", "tcsh"); err == nil {
		t.Error("completion accepted an unknown shell")
	}
}
