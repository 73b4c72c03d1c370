package cli

import (
	"fmt"
	"io"
	"strings"

	strengthService "github.com/jwalitptl/passcheck/internal/service/strength"
	"github.com/jwalitptl/passcheck/pkg/strength"
)

const barWidth = 20

func renderResult(w io.Writer, res strength.Result) {
	filled := res.Percent * barWidth / 100
	fmt.Fprintf(w, "[%s%s] %3d%%  %s\n",
		strings.Repeat("#", filled), strings.Repeat("-", barWidth-filled), res.Percent, res.Tier.Label)
	fmt.Fprintln(w)

	passed := make(map[strength.Name]bool, len(res.Passed))
	for _, n := range res.Passed {
		passed[n] = true
	}
	for _, r := range strength.Requirements() {
		mark := "✗"
		if passed[r.Name] {
			mark = "✓"
		}
		fmt.Fprintf(w, "  %s %s\n", mark, r.Description)
	}
	fmt.Fprintln(w)

	if res.Satisfied() {
		fmt.Fprintln(w, "Great job! Your password meets all requirements.")
		return
	}
	fmt.Fprintln(w, "Suggestions:")
	for _, s := range res.Suggestions {
		fmt.Fprintf(w, "  - %s\n", s)
	}
}

func renderCatalog(w io.Writer, cat strengthService.Catalog) {
	fmt.Fprintln(w, "Requirements:")
	for _, r := range cat.Requirements {
		fmt.Fprintf(w, "  %d. %-10s %s\n", r.Order, r.Name, r.Description)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Tiers:")
	for _, t := range cat.Tiers {
		fmt.Fprintf(w, "  score >= %d  %-12s %s\n", t.MinScore, t.Label, t.Color)
	}
}
