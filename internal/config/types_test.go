// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"testing"
)

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() = %v", err)
	}

	cfg := DefaultConfig()
	cfg.InputDir = "  "
	cfg.Workers = 0
	cfg.Output.Format = "yaml"
	cfg.UI.ColorScheme = "neon"
	cfg.Fetch.Year = 1999

	err := cfg.Validate()
	var cfgErr *InvalidConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("Validate() error = %v, want *InvalidConfigError", err)
	}
	if len(cfgErr.FieldErrors) != 5 {
		t.Errorf("got %d field errors, want 5: %v", len(cfgErr.FieldErrors), cfgErr.FieldErrors)
	}
	for _, sentinel := range []error{ErrInvalidConfig, ErrInvalidOutputFormat, ErrInvalidColorScheme} {
		if !errors.Is(err, sentinel) {
			t.Errorf("Validate() error should wrap %v", sentinel)
		}
	}
}

func TestColorScheme(t *testing.T) {
	t.Parallel()

	tests := []struct {
		scheme  ColorScheme
		style   string
		wantErr bool
	}{
		{ColorSchemeAuto, "auto", false},
		{ColorSchemeDark, "dark", false},
		{ColorSchemeLight, "light", false},
		{"", "auto", true},
		{"sepia", "auto", true},
	}
	for _, tt := range tests {
		if err := tt.scheme.Validate(); (err != nil) != tt.wantErr {
			t.Errorf("ColorScheme(%q).Validate() = %v, wantErr %v", tt.scheme, err, tt.wantErr)
		}
		if got := tt.scheme.GlamourStyle(); got != tt.style {
			t.Errorf("ColorScheme(%q).GlamourStyle() = %q, want %q", tt.scheme, got, tt.style)
		}
	}
}

func TestOutputFormat_Validate(t *testing.T) {
	t.Parallel()

	for _, f := range []OutputFormat{FormatText, FormatJSON, FormatTOML} {
		if err := f.Validate(); err != nil {
			t.Errorf("%q.Validate() = %v", f, err)
		}
	}
	err := OutputFormat("xml").Validate()
	if !errors.Is(err, ErrInvalidOutputFormat) {
		t.Errorf("xml.Validate() = %v, want ErrInvalidOutputFormat", err)
	}
	if err.Error() != `invalid output format "xml" (valid: text, json, toml)` {
		t.Errorf("Error() = %q", err.Error())
	}
}
