// SPDX-License-Identifier: MPL-2.0

package input

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"advent-cli/pkg/types"

	"github.com/charmbracelet/log"
)

// ErrInputNotFound is the sentinel error wrapped by NotFoundError.
var ErrInputNotFound = errors.New("puzzle input not found")

type (
	// Loader supplies raw input text by symbolic puzzle name.
	Loader interface {
		Load(ctx context.Context, name string) (string, error)
	}

	// NotFoundError is returned when no input exists for a puzzle.
	NotFoundError struct {
		Name string
		// Path is the location searched, if any.
		Path string
	}

	// DirLoader reads <Dir>/day_<name>.txt.
	DirLoader struct {
		Dir string
		// Fetcher, when set, downloads inputs missing from Dir and caches them there.
		Fetcher *Fetcher
		// DayOf maps a puzzle name to its day for Fetcher.
		DayOf func(name string) (types.Day, bool)
	}

	// FileLoader reads Path for every name.
	FileLoader struct {
		Path string
	}
)

func (e *NotFoundError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("no input for puzzle %q", e.Name)
	}
	return fmt.Sprintf("no input for puzzle %q at %s", e.Name, e.Path)
}

func (e *NotFoundError) Unwrap() error { return ErrInputNotFound }

// FileName returns the input file name for a puzzle.
func FileName(name string) string {
	return "day_" + name + ".txt"
}

// Path returns where l looks for the named puzzle.
func (l *DirLoader) Path(name string) string {
	return filepath.Join(l.Dir, FileName(name))
}

// Load reads the input file, fetching and caching it when it is missing and
// a Fetcher is configured.
func (l *DirLoader) Load(ctx context.Context, name string) (string, error) {
	path := l.Path(name)

	data, err := os.ReadFile(path)
	if err == nil {
		log.FromContext(ctx).Debug("loaded input", "path", path, "bytes", len(data))
		return string(data), nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("read input %s: %w", path, err)
	}
	if l.Fetcher == nil || l.DayOf == nil {
		return "", &NotFoundError{Name: name, Path: path}
	}

	day, ok := l.DayOf(name)
	if !ok {
		return "", &NotFoundError{Name: name, Path: path}
	}

	text, err := l.Fetcher.Fetch(ctx, day)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(l.Dir, 0o755); err != nil {
		return "", fmt.Errorf("create input directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return "", fmt.Errorf("cache input %s: %w", path, err)
	}
	log.FromContext(ctx).Info("cached downloaded input", "path", path)

	return text, nil
}

// Load reads l.Path; name only labels the error.
func (l *FileLoader) Load(ctx context.Context, name string) (string, error) {
	data, err := os.ReadFile(l.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", &NotFoundError{Name: name, Path: l.Path}
	}
	if err != nil {
		return "", fmt.Errorf("read input %s: %w", l.Path, err)
	}
	log.FromContext(ctx).Debug("loaded input", "path", l.Path, "bytes", len(data))
	return string(data), nil
}
