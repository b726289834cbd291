// SPDX-License-Identifier: MPL-2.0

package input

import (
	"context"
	"embed"
	"errors"
	"io/fs"
	"path"
	"slices"
	"strings"
)

//go:embed samples/*.txt
var samples embed.FS

// SampleLoader serves the worked examples embedded in the binary.
type SampleLoader struct{}

// Load returns the embedded sample for name.
func (SampleLoader) Load(_ context.Context, name string) (string, error) {
	data, err := samples.ReadFile(path.Join("samples", name+".txt"))
	if errors.Is(err, fs.ErrNotExist) {
		return "", &NotFoundError{Name: name}
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Samples lists the puzzle names that have an embedded sample.
func Samples() []string {
	entries, err := samples.ReadDir("samples")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".txt"))
	}
	slices.Sort(names)
	return names
}
