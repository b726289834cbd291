// SPDX-License-Identifier: MPL-2.0

package input

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"advent-cli/pkg/types"
)

func dayOf(name string) (types.Day, bool) {
	if name == "nineteen" {
		return 19, true
	}
	return 0, false
}

func TestDirLoader_Load(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "day_nineteen.txt"), []byte("0: \"a\"\n\na\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	l := &DirLoader{Dir: dir}
	got, err := l.Load(t.Context(), "nineteen")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got != "0: \"a\"\n\na\n" {
		t.Errorf("Load() = %q", got)
	}
}

func TestDirLoader_Missing(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	l := &DirLoader{Dir: dir}

	_, err := l.Load(t.Context(), "nineteen")
	if !errors.Is(err, ErrInputNotFound) {
		t.Fatalf("Load() error = %v, want ErrInputNotFound", err)
	}
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("error should be *NotFoundError, got %T", err)
	}
	if nf.Path != filepath.Join(dir, "day_nineteen.txt") {
		t.Errorf("Path = %q", nf.Path)
	}
}

func TestDirLoader_FetchesAndCaches(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		if r.URL.Path != "/2020/day/19/input" {
			http.NotFound(w, r)
			return
		}
		c, err := r.Cookie("session")
		if err != nil || c.Value != "secret" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		_, _ = w.Write([]byte("0: \"b\"\n\nb\n"))
	}))
	t.Cleanup(srv.Close)

	dir := filepath.Join(t.TempDir(), "inputs")
	l := &DirLoader{
		Dir:     dir,
		Fetcher: &Fetcher{BaseURL: srv.URL, Year: 2020, Session: "secret", Client: srv.Client()},
		DayOf:   dayOf,
	}

	for range 2 {
		got, err := l.Load(t.Context(), "nineteen")
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if got != "0: \"b\"\n\nb\n" {
			t.Errorf("Load() = %q", got)
		}
	}
	if n := hits.Load(); n != 1 {
		t.Errorf("server hit %d times, want 1 (second load should use cache)", n)
	}
	if _, err := os.Stat(filepath.Join(dir, "day_nineteen.txt")); err != nil {
		t.Errorf("input was not cached: %v", err)
	}
}

func TestDirLoader_UnknownDayNotFetched(t *testing.T) {
	t.Parallel()

	l := &DirLoader{Dir: t.TempDir(), Fetcher: &Fetcher{Year: 2020}, DayOf: dayOf}
	_, err := l.Load(t.Context(), "twenty")
	if !errors.Is(err, ErrInputNotFound) {
		t.Errorf("Load() error = %v, want ErrInputNotFound", err)
	}
}

func TestFileLoader(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "mine.txt")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := (&FileLoader{Path: path}).Load(t.Context(), "anything")
	if err != nil || got != "x" {
		t.Errorf("Load() = %q, %v", got, err)
	}

	_, err = (&FileLoader{Path: path + ".missing"}).Load(t.Context(), "nineteen")
	if !errors.Is(err, ErrInputNotFound) {
		t.Errorf("Load(missing) error = %v, want ErrInputNotFound", err)
	}
	if !strings.Contains(err.Error(), `no input for puzzle "nineteen" at `) {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestSampleLoader(t *testing.T) {
	t.Parallel()

	got, err := SampleLoader{}.Load(t.Context(), "nineteen")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !strings.HasPrefix(got, "42: 9 14 | 10 1") {
		t.Errorf("sample does not start with the rule table: %q", got[:min(len(got), 40)])
	}

	_, err = SampleLoader{}.Load(t.Context(), "twenty")
	if !errors.Is(err, ErrInputNotFound) {
		t.Errorf("Load(unknown) error = %v, want ErrInputNotFound", err)
	}
	if err.Error() != `no input for puzzle "twenty"` {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestSamples(t *testing.T) {
	t.Parallel()

	names := Samples()
	if len(names) == 0 || names[0] != "nineteen" {
		t.Errorf("Samples() = %v, want [nineteen]", names)
	}
}
