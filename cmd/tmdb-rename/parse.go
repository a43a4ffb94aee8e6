package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kommerzienrat/tmdb-rename/internal/match"
	"github.com/kommerzienrat/tmdb-rename/internal/namer"
)

var parseJSON bool

// parsedName is the JSON-friendly result of analyzing one name.
type parsedName struct {
	Input      string `json:"input"`
	Title      string `json:"title"`
	Year       string `json:"year,omitempty"`
	Season     int    `json:"season,omitempty"`
	Episode    int    `json:"episode,omitempty"`
	Cryptic    bool   `json:"cryptic"`
	Collection bool   `json:"collection"`
	Canonical  bool   `json:"canonical"`
}

var parseCmd = &cobra.Command{
	Use:   "parse <name>...",
	Short: "Analyze folder/file names without touching TMDB",
	Long: `Runs the name analyzer on the given names and shows the extracted
title, year and episode numbering plus the derived search queries. Useful for
checking why a folder was identified the way it was.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, name := range args {
			p := analyzeName(name)
			if parseJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				if err := enc.Encode(p); err != nil {
					return err
				}
				continue
			}
			printParsed(name, p)
		}
		return nil
	},
}

func analyzeName(name string) parsedName {
	p := parsedName{
		Input:      name,
		Cryptic:    namer.IsCryptic(name),
		Collection: namer.MatchesCollectionPhrase(name),
		Canonical:  namer.IsCanonical(name),
	}
	p.Title, p.Year = namer.ExtractTitleYear(name)
	if ep := namer.ParseEpisode(name); ep != nil {
		p.Season = ep.Season
		p.Episode = ep.Episode
	}
	return p
}

func printParsed(name string, p parsedName) {
	fmt.Printf("%s\n", name)
	if p.Canonical {
		fmt.Println("  already canonical")
		return
	}
	title := p.Title
	if title == "" {
		title = "(none)"
	}
	year := p.Year
	if year == "" {
		year = "-"
	}
	fmt.Printf("  title: %s\n  year:  %s\n", title, year)
	if p.Season != 0 || p.Episode != 0 {
		fmt.Printf("  episode: S%02dE%02d\n", p.Season, p.Episode)
	}
	if p.Cryptic {
		fmt.Println("  cryptic: prefers parent folder name")
	}
	if p.Collection {
		fmt.Println("  collection phrase detected")
	}
	if p.Title != "" {
		fmt.Println("  queries:")
		for _, v := range match.GenerateVariants(p.Title, p.Year) {
			if v.Year != "" {
				fmt.Printf("    %q (%s)\n", v.Query, v.Year)
			} else {
				fmt.Printf("    %q\n", v.Query)
			}
		}
	}
	fmt.Println()
}

func init() {
	parseCmd.Flags().BoolVar(&parseJSON, "json", false, "Output as JSON")
	rootCmd.AddCommand(parseCmd)
}
