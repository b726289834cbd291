// SPDX-License-Identifier: MPL-2.0

// Package grammar parses message-rule tables and decides whether candidate
// messages are fully accepted by rule 0.
//
// A rule table is written one rule per line:
//
//	0: 4 1 5
//	1: 2 3 | 3 2
//	4: "a"
//
// Two matchers are provided. Chart is a general Earley recognizer that handles
// arbitrary self-reference. Recursive is the fixed-length prefix matcher driven
// by an end-of-message constraint; it additionally recognizes the patched
// repetition rules 8 and 11 (see Table.Patch) and solves them with a counted
// loop instead of recursion.
//
// # Usage
//
//	in, err := grammar.ParseInput(text)
//	if err != nil {
//	    return err
//	}
//	m, err := grammar.NewMatcher(in.Rules.Patch(), grammar.EngineChart)
//	if err != nil {
//	    return err
//	}
//	ok := m.Accepts("babbbbaabbbbbabbbbbbaabaaabaaa")
package grammar
