package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/kommerzienrat/tmdb-rename/internal/match"
	"github.com/kommerzienrat/tmdb-rename/internal/scanner"
)

func typeIcon(t scanner.MediaType) string {
	switch t {
	case scanner.MediaMovie:
		return "🎬"
	case scanner.MediaSeries:
		return "📺"
	case scanner.MediaCollection:
		return "📦"
	default:
		return "❓"
	}
}

// showResults prints the scan overview table and the status summary.
func showResults(results []*scanner.Result) {
	byStatus := make(map[match.Status]int)
	for _, r := range results {
		byStatus[r.Status]++
	}

	fmt.Printf("\nScan results: %d folders\n", len(results))
	order := []match.Status{
		match.StatusAutomatic, match.StatusUncertain, match.StatusManual,
		match.StatusNone, match.StatusSkip, match.StatusDone, match.StatusRenamed,
	}
	for _, st := range order {
		if n := byStatus[st]; n > 0 {
			fmt.Printf("  %s %s: %d\n", st.Icon(), st, n)
		}
	}
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "  #\tSt\tType\tFolder\tMatch")
	for i, r := range results {
		var matchStr string
		switch {
		case r.Selected != nil:
			matchStr = fmt.Sprintf("%s (%s)", truncate(r.Selected.Title, 24), r.Selected.Year)
		case r.Status == match.StatusRenamed:
			matchStr = "renamed"
		case r.Err != "":
			matchStr = "[" + truncate(r.Err, 24) + "]"
		case len(r.Matches) > 0:
			matchStr = fmt.Sprintf("[%d matches]", len(r.Matches))
		default:
			matchStr = "-"
		}
		fmt.Fprintf(w, "  %d\t%s\t%s\t%s\t%s\n",
			i+1, r.Status.Icon(), typeIcon(r.Type), truncate(r.FolderName, 40), matchStr)
	}
	w.Flush()
}
