// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"advent-cli/internal/config"
	"advent-cli/internal/input"
)

// MustMkdirAll creates a directory along with any necessary parents.
func MustMkdirAll(t testing.TB, path string) {
	t.Helper()
	if err := os.MkdirAll(path, 0o755); err != nil {
		t.Fatalf("failed to create directory %s: %v", path, err)
	}
}

// MustWriteFile writes content to path, creating parent directories.
func MustWriteFile(t testing.TB, path, content string) string {
	t.Helper()
	MustMkdirAll(t, filepath.Dir(path))
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

// WriteInput stores text as the input file for puzzle name under dir and
// returns its path.
func WriteInput(t testing.TB, dir, name, text string) string {
	t.Helper()
	return MustWriteFile(t, filepath.Join(dir, input.FileName(name)), text)
}

// IsolateConfig points config lookups at a fresh temporary directory for the
// duration of the test and returns it. Tests calling it must not run in parallel.
func IsolateConfig(t testing.TB) string {
	t.Helper()
	dir := t.TempDir()
	config.SetConfigDirOverride(dir)
	t.Cleanup(config.Reset)
	return dir
}

// SetHomeDir sets HOME, or USERPROFILE on Windows, for the duration of the test.
func SetHomeDir(t *testing.T, dir string) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Setenv("USERPROFILE", dir)
		return
	}
	t.Setenv("HOME", dir)
}
