// SPDX-License-Identifier: MPL-2.0

package grammar

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// alternationSeparator splits the branches of a rule body.
const alternationSeparator = "|"

// Input is a parsed puzzle input: the rule table followed by candidate messages.
type Input struct {
	Rules    Table
	Messages []string
}

// ParseInput splits text at the first blank line into a rule table and the
// candidate messages that follow. Blank lines in the message section are skipped.
func ParseInput(text string) (*Input, error) {
	lines := splitLines(text)

	// Leading blank lines are not a section break.
	for len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}

	split := len(lines)
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			split = i
			break
		}
	}

	rules, err := parseRuleLines(lines[:split])
	if err != nil {
		return nil, err
	}

	var messages []string
	for _, line := range lines[split:] {
		if msg := strings.TrimSpace(line); msg != "" {
			messages = append(messages, msg)
		}
	}

	return &Input{Rules: rules, Messages: messages}, nil
}

// ParseTable parses rule definitions, one "<id>: <body>" per line.
// Blank lines are ignored.
func ParseTable(text string) (Table, error) {
	return parseRuleLines(splitLines(text))
}

func parseRuleLines(lines []string) (Table, error) {
	table := make(Table, len(lines))
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		id, rule, err := parseRuleLine(line)
		if err != nil {
			err.Line = i + 1
			return nil, err
		}
		if _, dup := table[id]; dup {
			return nil, &ParseError{Line: i + 1, Text: line, Reason: "duplicate rule id " + id.String()}
		}
		table[id] = rule
	}
	if len(table) == 0 {
		return nil, &ParseError{Line: 1, Reason: "no rules defined"}
	}
	return table, nil
}

func parseRuleLine(line string) (RuleID, Rule, *ParseError) {
	idText, body, ok := strings.Cut(line, ":")
	if !ok {
		return 0, Rule{}, &ParseError{Text: line, Reason: "missing ':' separator"}
	}

	id, err := parseID(strings.TrimSpace(idText))
	if err != nil {
		return 0, Rule{}, &ParseError{Text: line, Reason: "invalid rule id", Cause: err}
	}

	rule, perr := parseBody(body)
	if perr != nil {
		perr.Text = line
		return 0, Rule{}, perr
	}
	return id, rule, nil
}

// ParseRule parses a single rule body such as `"a"`, `4 1 5` or `2 3 | 3 2`.
func ParseRule(body string) (Rule, error) {
	rule, err := parseBody(body)
	if err != nil {
		err.Text = body
		return Rule{}, err
	}
	return rule, nil
}

func parseBody(body string) (Rule, *ParseError) {
	fields := strings.Fields(body)
	if len(fields) == 0 {
		return Rule{}, &ParseError{Reason: "empty rule body"}
	}

	if strings.HasPrefix(fields[0], `"`) {
		if len(fields) != 1 {
			return Rule{}, &ParseError{Reason: "terminal must be a single quoted character"}
		}
		c, ok := parseLiteral(fields[0])
		if !ok {
			return Rule{}, &ParseError{Reason: "terminal must be a single quoted character"}
		}
		return Terminal(c), nil
	}

	var (
		branches [][]RuleID
		current  []RuleID
	)
	for _, field := range fields {
		if field == alternationSeparator {
			if len(current) == 0 {
				return Rule{}, &ParseError{Reason: "empty alternation branch"}
			}
			branches = append(branches, current)
			current = nil
			continue
		}
		id, err := parseID(field)
		if err != nil {
			return Rule{}, &ParseError{Reason: "invalid rule reference", Cause: err}
		}
		current = append(current, id)
	}
	if len(current) == 0 {
		return Rule{}, &ParseError{Reason: "empty alternation branch"}
	}
	branches = append(branches, current)

	return Rule{Branches: branches}, nil
}

// parseLiteral accepts exactly one character between double quotes.
func parseLiteral(field string) (rune, bool) {
	if len(field) < 3 || !strings.HasPrefix(field, `"`) || !strings.HasSuffix(field, `"`) {
		return 0, false
	}
	inner := field[1 : len(field)-1]
	c, size := utf8.DecodeRuneInString(inner)
	if c == utf8.RuneError || size != len(inner) {
		return 0, false
	}
	return c, true
}

func parseID(s string) (RuleID, error) {
	n, err := strconv.ParseUint(s, 10, 31)
	if err != nil {
		return 0, err
	}
	return RuleID(n), nil
}

func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}
