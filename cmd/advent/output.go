// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"advent-cli/internal/config"
	"advent-cli/internal/puzzle"

	"github.com/pelletier/go-toml/v2"
)

// checkReport is the structured form of `rules check` output.
type checkReport struct {
	Engine   string           `json:"engine" toml:"engine"`
	Patched  bool             `json:"patched" toml:"patched"`
	Accepted int              `json:"accepted" toml:"accepted"`
	Total    int              `json:"total" toml:"total"`
	Verdicts []puzzle.Verdict `json:"verdicts" toml:"verdicts"`
}

func writeResult(w io.Writer, res *puzzle.Result, format config.OutputFormat) error {
	switch format {
	case config.FormatJSON:
		return writeJSON(w, res)
	case config.FormatTOML:
		return toml.NewEncoder(w).Encode(res)
	}

	fmt.Fprintf(w, "%s %s\n",
		TitleStyle.Render(fmt.Sprintf("Day %d: %s", res.Day, res.Title)),
		SubtitleStyle.Render("("+res.Engine+")"))
	for _, a := range res.Answers {
		fmt.Fprintf(w, "Part %s: %s\n", a.Part, AcceptStyle.Render(fmt.Sprint(a.Value)))
	}
	return nil
}

func writeCheckReport(w io.Writer, rep *checkReport, format config.OutputFormat) error {
	switch format {
	case config.FormatJSON:
		return writeJSON(w, rep)
	case config.FormatTOML:
		return toml.NewEncoder(w).Encode(rep)
	}

	for _, v := range rep.Verdicts {
		if v.Accepted {
			fmt.Fprintf(w, "%s %s\n", AcceptStyle.Render("✓"), v.Message)
		} else {
			fmt.Fprintf(w, "%s %s\n", RejectStyle.Render("✗"), v.Message)
		}
	}
	fmt.Fprintln(w, SubtitleStyle.Render(fmt.Sprintf("%d of %d messages accepted", rep.Accepted, rep.Total)))
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
