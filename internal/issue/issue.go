// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"maps"

	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/slices"
)

type Id int

const (
	InputNotFoundId Id = iota + 1
	RulesParseErrorId
	UndefinedRuleId
	UnsupportedGrammarId
	PuzzleNotFoundId
	ConfigLoadFailedId
	InvalidEngineId
	FetchFailedId
)

type MarkdownMsg string

type HttpLink string

type Issue struct {
	id       Id          // ID used to lookup the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	docLinks []HttpLink  // puzzle or project documentation
	extLinks []HttpLink  // external links that might be useful for the user
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

func (i *Issue) ExtLinks() []HttpLink {
	return slices.Clone(i.extLinks)
}

func (i *Issue) Render(stylePath string) (string, error) {
	extraMd := ""
	if len(i.docLinks) > 0 || len(i.extLinks) > 0 {
		extraMd += "\n\n"
		extraMd += "## See also:\n"
		for _, link := range i.docLinks {
			extraMd += "- [" + string(link) + "](" + string(link) + ")\n"
		}
		for _, link := range i.extLinks {
			extraMd += "- [" + string(link) + "](" + string(link) + ")\n"
		}
	}
	return render(string(i.mdMsg)+extraMd, stylePath)
}

var (
	render = glamour.Render

	inputNotFoundIssue = &Issue{
		id: InputNotFoundId,
		mdMsg: `
# No puzzle input found!

We looked for the puzzle input but couldn't find it.

## Search locations (in order of precedence):
1. The file passed with ` + "`--input`" + `
2. ` + "`<input_dir>/day_<puzzle>.txt`" + ` (input_dir defaults to ` + "`inputs`" + `)

## Things you can try:
- Save your puzzle input as ` + "`inputs/day_nineteen.txt`" + `
- Point to a file directly:
~~~
$ advent solve nineteen --input ./my-input.txt
~~~
- Run against the built-in sample:
~~~
$ advent solve nineteen --sample
~~~
- Enable downloading in your config file:
~~~cue
fetch: {
  enabled: true
  session_file: "~/.config/advent/session"
}
~~~`,
		extLinks: []HttpLink{"https://adventofcode.com/2020/day/19"},
	}

	rulesParseErrorIssue = &Issue{
		id: RulesParseErrorId,
		mdMsg: `
# Failed to parse the rule table!

Every line before the first blank line must define one rule.

## Rule syntax:
~~~
0: 4 1 5
1: 2 3 | 3 2
4: "a"
~~~

## Things you can try:
- Check that each line starts with a numeric id followed by ` + "`:`" + `
- Terminals are a single character in double quotes
- Separate alternatives with a bare ` + "`|`" + `
- Make sure a blank line separates the rules from the messages`,
	}

	undefinedRuleIssue = &Issue{
		id: UndefinedRuleId,
		mdMsg: `
# A rule refers to an undefined rule!

Every id used in a rule body must be defined in the table, and rule 0 must exist.

## Things you can try:
- Check the input was copied completely
- Run ` + "`advent rules show`" + ` to list the parsed rules`,
	}

	unsupportedGrammarIssue = &Issue{
		id: UnsupportedGrammarId,
		mdMsg: `
# The recursive engine cannot match this grammar!

The recursive engine requires every alternative of a rule to match the same
number of characters, and only understands self-reference in the patched
rules 8 and 11.

## Things you can try:
- Use the chart engine, which handles any rule table:
~~~
$ advent solve nineteen --engine chart
~~~
- Set it permanently in your config file:
~~~cue
engine: "chart"
~~~`,
	}

	puzzleNotFoundIssue = &Issue{
		id: PuzzleNotFoundId,
		mdMsg: `
# Puzzle not found!

The requested puzzle is not registered.

## Things you can try:
- List the available puzzles:
~~~
$ advent list
~~~
- Puzzles can be selected by name (` + "`nineteen`" + `) or day number (` + "`19`" + `)`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

Your advent configuration file could not be loaded.

## Config file location:
- Linux: ~/.config/advent/config.cue
- macOS: ~/Library/Application Support/advent/config.cue
- Windows: %APPDATA%\advent\config.cue

## Things you can try:
- Check the CUE syntax of your config file
- Reset to defaults by deleting the file and running:
~~~
$ advent config init
~~~
- Show the effective configuration:
~~~
$ advent config show
~~~`,
	}

	invalidEngineIssue = &Issue{
		id: InvalidEngineId,
		mdMsg: `
# Invalid matcher engine!

The engine must be one of:
- ` + "`chart`" + ` - general Earley recognizer (default)
- ` + "`recursive`" + ` - fixed-length prefix matcher with the rule 8/11 repetition loop`,
	}

	fetchFailedIssue = &Issue{
		id: FetchFailedId,
		mdMsg: `
# Failed to download the puzzle input!

## Things you can try:
- Check that your session cookie is still valid (it expires after a while)
- Check your network connection
- Download the input in a browser and save it to your input directory`,
		extLinks: []HttpLink{"https://adventofcode.com"},
	}

	issues = map[Id]*Issue{
		inputNotFoundIssue.Id():      inputNotFoundIssue,
		rulesParseErrorIssue.Id():    rulesParseErrorIssue,
		undefinedRuleIssue.Id():      undefinedRuleIssue,
		unsupportedGrammarIssue.Id(): unsupportedGrammarIssue,
		puzzleNotFoundIssue.Id():     puzzleNotFoundIssue,
		configLoadFailedIssue.Id():   configLoadFailedIssue,
		invalidEngineIssue.Id():      invalidEngineIssue,
		fetchFailedIssue.Id():        fetchFailedIssue,
	}
)

// Values returns every registered issue ordered by id.
func Values() []*Issue {
	out := make([]*Issue, 0, len(issues))
	for v := range maps.Values(issues) {
		out = append(out, v)
	}
	slices.SortFunc(out, func(a, b *Issue) int { return int(a.id) - int(b.id) })
	return out
}

func Get(id Id) *Issue {
	return issues[id]
}
