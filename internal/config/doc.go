// SPDX-License-Identifier: MPL-2.0

// Package config handles application configuration using Viper with CUE as the file format.
//
// Configuration is loaded from the file named by --config, else from
// ~/.config/advent/config.cue (XDG equivalent on Linux,
// ~/Library/Application Support/advent/config.cue on macOS,
// %APPDATA%\advent\config.cue on Windows), else from ./config.cue. Missing files
// fall back to defaults. Every key can be overridden from the environment with
// the ADVENT_ prefix, dots replaced by underscores (ADVENT_INPUT_DIR,
// ADVENT_FETCH_YEAR).
//
// Files are validated against the embedded config_schema.cue so typos and bad
// values are reported with their CUE path.
package config
