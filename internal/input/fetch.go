// SPDX-License-Identifier: MPL-2.0

package input

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"advent-cli/pkg/types"

	"github.com/charmbracelet/log"
)

const (
	// DefaultBaseURL is the Advent of Code site.
	DefaultBaseURL = "https://adventofcode.com"

	// maxInputSize bounds a downloaded input.
	maxInputSize = 1 << 20

	defaultTimeout = 30 * time.Second
)

var (
	// ErrFetch is the sentinel error wrapped by FetchError.
	ErrFetch = errors.New("fetch puzzle input")
	// ErrNoSession is returned when the session cookie file is missing or empty.
	ErrNoSession = errors.New("no adventofcode.com session cookie")
)

type (
	// Fetcher downloads puzzle inputs with a session cookie.
	Fetcher struct {
		// BaseURL defaults to DefaultBaseURL.
		BaseURL string
		Year    int
		Session string
		// Client defaults to an http.Client with a 30s timeout.
		Client *http.Client
	}

	// FetchError reports a failed download.
	FetchError struct {
		URL    string
		Status int
		Cause  error
	}
)

// NewFetcher builds a Fetcher reading the session cookie from sessionFile.
func NewFetcher(year int, sessionFile string) (*Fetcher, error) {
	data, err := os.ReadFile(sessionFile)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoSession, err)
	}
	session := strings.TrimSpace(string(data))
	if session == "" {
		return nil, fmt.Errorf("%w: %s is empty", ErrNoSession, sessionFile)
	}
	return &Fetcher{Year: year, Session: session}, nil
}

func (e *FetchError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("fetch %s: %v", e.URL, e.Cause)
	}
	return fmt.Sprintf("fetch %s: unexpected status %d %s", e.URL, e.Status, http.StatusText(e.Status))
}

func (e *FetchError) Unwrap() []error {
	if e.Cause != nil {
		return []error{ErrFetch, e.Cause}
	}
	return []error{ErrFetch}
}

// URL returns the input URL for day.
func (f *Fetcher) URL(day types.Day) string {
	base := f.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	return fmt.Sprintf("%s/%d/day/%d/input", strings.TrimRight(base, "/"), f.Year, day)
}

// Fetch downloads the input for day.
func (f *Fetcher) Fetch(ctx context.Context, day types.Day) (string, error) {
	if err := day.Validate(); err != nil {
		return "", err
	}

	url := f.URL(day)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", &FetchError{URL: url, Cause: err}
	}
	req.AddCookie(&http.Cookie{Name: "session", Value: f.Session})
	req.Header.Set("User-Agent", "advent-cli")

	client := f.Client
	if client == nil {
		client = &http.Client{Timeout: defaultTimeout}
	}

	log.FromContext(ctx).Debug("downloading input", "url", url)

	res, err := client.Do(req)
	if err != nil {
		return "", &FetchError{URL: url, Cause: err}
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return "", &FetchError{URL: url, Status: res.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(res.Body, maxInputSize+1))
	if err != nil {
		return "", &FetchError{URL: url, Cause: err}
	}
	if len(body) > maxInputSize {
		return "", &FetchError{URL: url, Cause: fmt.Errorf("response exceeds %d bytes", maxInputSize)}
	}
	return string(body), nil
}
