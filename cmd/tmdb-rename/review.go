package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/kommerzienrat/tmdb-rename/internal/catalog"
	"github.com/kommerzienrat/tmdb-rename/internal/match"
	"github.com/kommerzienrat/tmdb-rename/internal/renamer"
	"github.com/kommerzienrat/tmdb-rename/internal/scanner"
)

var stdin = bufio.NewReader(os.Stdin)

func prompt(label string) string {
	fmt.Print(label)
	line, err := stdin.ReadString('\n')
	if err != nil {
		return "q"
	}
	return strings.ToLower(strings.TrimSpace(line))
}

// interactiveReview drives the human-decision loop over scan results until
// the user quits. Collections promote their confirmed entries to standalone
// results, so the slice may grow.
func interactiveReview(ctx context.Context, client catalog.Client, ranker *match.Ranker, logger *slog.Logger, results []*scanner.Result) []*scanner.Result {
	for {
		var toReview, ready, done []int
		for i, r := range results {
			switch {
			case r.Status == match.StatusAutomatic && r.Selected != nil:
				ready = append(ready, i)
			case r.Status == match.StatusRenamed || r.Status == match.StatusDone:
				done = append(done, i)
			case r.Status == match.StatusUncertain || r.Status == match.StatusNone ||
				(r.Status == match.StatusManual && r.Selected == nil):
				toReview = append(toReview, i)
			}
		}

		mode := "[DRY RUN]"
		if flagExecute {
			mode = "[EXECUTE]"
		}
		fmt.Printf(`
Review: %d ready, %d to review, %d done

  <Enter>  Handle uncertain items (%d)
  x        Rename %d now %s
  1,3,5-7  Review specific entries
  a        Review all
  l        Show list
  q        Quit

`, len(ready), len(toReview), len(done), len(toReview), len(ready), mode)

		choice := prompt("Choice: ")

		var indices []int
		switch choice {
		case "q":
			return results
		case "l":
			showResults(results)
			continue
		case "x":
			executor := renamer.NewExecutor(client, logger, !flagExecute)
			printTally(executor.Execute(ctx, results))
			showResults(results)
			continue
		case "", "auto":
			indices = toReview
		case "a":
			for i, r := range results {
				if r.Status != match.StatusRenamed {
					indices = append(indices, i)
				}
			}
		default:
			parsed, err := parseIndices(choice, len(results))
			if err != nil {
				fmt.Println("invalid selection")
				continue
			}
			indices = parsed
		}

		if len(indices) == 0 {
			fmt.Println("nothing to review")
			continue
		}

		for _, idx := range indices {
			result := results[idx]
			if result.Status == match.StatusDone || result.Status == match.StatusRenamed {
				continue
			}
			if result.IsCollection() {
				results = append(results, reviewCollection(ctx, ranker, result)...)
				continue
			}
			reviewOne(ctx, ranker, result, idx, len(results))
		}
		showResults(results)
	}
}

// parseIndices understands "1,3,5-7" style selections (1-based input).
func parseIndices(input string, n int) ([]int, error) {
	var indices []int
	for _, part := range strings.Fields(strings.ReplaceAll(input, ",", " ")) {
		if lo, hi, ok := strings.Cut(part, "-"); ok {
			start, err1 := strconv.Atoi(lo)
			end, err2 := strconv.Atoi(hi)
			if err1 != nil || err2 != nil {
				return nil, fmt.Errorf("bad range %q", part)
			}
			for i := start - 1; i < end; i++ {
				indices = append(indices, i)
			}
			continue
		}
		i, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("bad index %q", part)
		}
		indices = append(indices, i-1)
	}
	valid := indices[:0]
	for _, i := range indices {
		if i >= 0 && i < n {
			valid = append(valid, i)
		}
	}
	return valid, nil
}

func printMatches(matches []match.Candidate, year string, limit int) {
	for j, m := range matches {
		if j >= limit {
			break
		}
		marker := " "
		if year != "" && m.Year == year {
			marker = "✓"
		}
		imdbInfo := ""
		if m.IMDBID != "" {
			imdbInfo = " [" + m.IMDBID + "]"
		}
		fmt.Printf("  %s %d. %s (%s)%s  ~%.0f%%\n",
			marker, j+1, m.Title, m.Year, imdbInfo, m.Similarity*100)
	}
}

// reviewOne lets the user pick a match, enter a manual id or skip.
func reviewOne(ctx context.Context, ranker *match.Ranker, result *scanner.Result, idx, total int) {
	fmt.Printf("\n[%d/%d] %s\n", idx+1, total, truncate(result.FolderName, 60))
	if result.Title != "" {
		year := result.Year
		if year == "" {
			year = "?"
		}
		fmt.Printf("Detected: %s (%s)\n", result.Title, year)
	}

	if len(result.Matches) == 0 {
		fmt.Println("No matches. m = manual id, anything else = skip")
		if prompt("Choice: ") == "m" {
			if m := manualLookup(ctx, ranker); m != nil {
				result.Selected = m
				result.Status = match.StatusManual
				return
			}
		}
		result.Status = match.StatusSkip
		return
	}

	fmt.Println("\nMatches:")
	printMatches(result.Matches, result.Year, 8)
	fmt.Println("\n  0 = skip | m = manual id")

	for {
		sel := prompt("Choice [1]: ")
		switch sel {
		case "0":
			result.Status = match.StatusSkip
			return
		case "m":
			if m := manualLookup(ctx, ranker); m != nil {
				result.Selected = m
				result.Status = match.StatusManual
			}
			return
		default:
			num := 1
			if sel != "" {
				n, err := strconv.Atoi(sel)
				if err != nil {
					fmt.Println("invalid")
					continue
				}
				num = n
			}
			if num < 1 || num > len(result.Matches) {
				fmt.Println("invalid")
				continue
			}
			result.Selected = &result.Matches[num-1]
			result.Status = match.StatusAutomatic
			return
		}
	}
}

func manualLookup(ctx context.Context, ranker *match.Ranker) *match.Candidate {
	id := prompt("ID (tt... or TMDB id): ")
	m, err := ranker.Lookup(ctx, id)
	if err != nil {
		fmt.Println("invalid id:", err)
		return nil
	}
	if m == nil {
		fmt.Println("not found")
		return nil
	}
	fmt.Printf("✓ %s (%s) [%s]\n", m.Title, m.Year, m.IMDBID)
	return m
}

// reviewCollection walks the per-movie entries of a collection folder and
// returns the confirmed ones as standalone results ready for renaming. The
// collection result itself always ends up skipped; selection state lives on
// the entries.
func reviewCollection(ctx context.Context, ranker *match.Ranker, result *scanner.Result) []*scanner.Result {
	fmt.Printf("\nCOLLECTION: %s\n", truncate(result.FolderName, 60))
	if len(result.Collection) == 0 {
		fmt.Println("no entries found")
		return nil
	}

	autoCount := 0
	for i := range result.Collection {
		entry := &result.Collection[i]
		source := filepath.Base(entry.VideoPath)
		if entry.FolderPath != "" {
			source = filepath.Base(entry.FolderPath)
		}
		title := entry.Title
		if title == "" {
			title = "(not detected)"
		}
		matchStr := "(no matches)"
		if entry.Selected != nil {
			matchStr = fmt.Sprintf("-> %s (%s)", entry.Selected.Title, entry.Selected.Year)
		} else if len(entry.Matches) > 0 {
			matchStr = fmt.Sprintf("-> [%d matches]", len(entry.Matches))
		}
		fmt.Printf("  %s %2d. [%5.1fGB] %s\n        %s (%s) %s\n",
			entry.Status.Icon(), i+1, float64(entry.Size)/(1<<30),
			truncate(source, 50), title, entry.Year, matchStr)
		if entry.Status == match.StatusAutomatic {
			autoCount++
		}
	}

	fmt.Printf(`
  %d of %d automatic

  <Enter>  Accept automatic entries, review the rest
  a        Review every movie
  0        Skip collection
  q        Back

`, autoCount, len(result.Collection))

	var reviewAll bool
	switch prompt("Choice: ") {
	case "q":
		return nil
	case "0":
		result.Status = match.StatusSkip
		return nil
	case "a":
		reviewAll = true
	}

	for i := range result.Collection {
		entry := &result.Collection[i]
		if !reviewAll && entry.Status == match.StatusAutomatic {
			continue
		}
		reviewEntry(ctx, ranker, entry)
	}

	var promoted []*scanner.Result
	for i := range result.Collection {
		entry := &result.Collection[i]
		if !entry.Status.Selectable() || entry.Selected == nil {
			continue
		}
		path := entry.VideoPath
		if entry.FolderPath != "" {
			path = entry.FolderPath
		}
		promoted = append(promoted, &scanner.Result{
			Path:       path,
			FolderName: filepath.Base(path),
			Type:       scanner.MediaMovie,
			Title:      entry.Title,
			Year:       entry.Year,
			Matches:    entry.Matches,
			Selected:   entry.Selected,
			Status:     entry.Status,
		})
	}
	if len(promoted) > 0 {
		fmt.Printf("%d movies prepared\n", len(promoted))
	}

	result.Status = match.StatusSkip
	return promoted
}

func reviewEntry(ctx context.Context, ranker *match.Ranker, entry *scanner.CollectionEntry) {
	source := filepath.Base(entry.VideoPath)
	if entry.FolderPath != "" {
		source = filepath.Base(entry.FolderPath)
	}
	fmt.Printf("\n%s\n", truncate(source, 55))

	if len(entry.Matches) == 0 {
		fmt.Println("No matches. m = manual id, anything else = skip")
		if prompt("Choice: ") == "m" {
			if m := manualLookup(ctx, ranker); m != nil {
				entry.Selected = m
				entry.Status = match.StatusManual
				return
			}
		}
		entry.Status = match.StatusSkip
		return
	}

	printMatches(entry.Matches, entry.Year, 6)
	fmt.Println("\n  0 = skip | m = manual id")

	for {
		sel := prompt("Choice [1]: ")
		switch sel {
		case "0":
			entry.Status = match.StatusSkip
			return
		case "m":
			if m := manualLookup(ctx, ranker); m != nil {
				entry.Selected = m
				entry.Status = match.StatusManual
			}
			return
		default:
			num := 1
			if sel != "" {
				n, err := strconv.Atoi(sel)
				if err != nil {
					fmt.Println("invalid")
					continue
				}
				num = n
			}
			if num < 1 || num > len(entry.Matches) {
				fmt.Println("invalid")
				continue
			}
			entry.Selected = &entry.Matches[num-1]
			entry.Status = match.StatusAutomatic
			return
		}
	}
}
