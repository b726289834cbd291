// SPDX-License-Identifier: MPL-2.0

// Package cmd contains the advent CLI: solving registered puzzles, inspecting
// and checking message rule tables, watching inputs and managing configuration.
//
// Every command receives an *App carrying the config provider, the puzzle
// registry and output writers. The root command's pre-run loads configuration
// once, builds the charmbracelet logger and stores both in the command context.
package cmd
