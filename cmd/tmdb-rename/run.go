package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/kommerzienrat/tmdb-rename/internal/catalog"
	"github.com/kommerzienrat/tmdb-rename/internal/config"
	"github.com/kommerzienrat/tmdb-rename/internal/match"
	"github.com/kommerzienrat/tmdb-rename/internal/renamer"
	"github.com/kommerzienrat/tmdb-rename/internal/scanner"
)

func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// logLevel resolves the effective log level: the --log-level flag outranks
// the config file.
func logLevel(cfg *config.Config) slog.Level {
	if flagLogLevel != "" {
		return parseLogLevel(flagLogLevel)
	}
	return parseLogLevel(cfg.LogLevel)
}

func run(ctx context.Context, paths []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel(cfg),
	}))
	slog.SetDefault(logger)

	token := config.ResolveToken(flagToken)
	if token == "" {
		printTokenHelp()
		return errors.New("no TMDB access token")
	}
	if !config.ValidToken(token) {
		return fmt.Errorf("invalid token format (expected JWT \"eyJ…\" or 32-hex v3 key, got %q…)", truncate(token, 20))
	}

	client := catalog.NewTMDB(token,
		catalog.WithLanguage(cfg.Catalog.Language),
		catalog.WithRetryBackoff(time.Duration(cfg.Catalog.RetryBackoffSeconds)*time.Second),
	)

	fmt.Print("Checking API connection... ")
	if err := client.Verify(ctx); err != nil {
		fmt.Println("failed")
		return fmt.Errorf("TMDB API unreachable (check the token at themoviedb.org/settings/api): %w", err)
	}
	fmt.Println("ok")

	dirs, err := collectDirs(paths)
	if err != nil {
		return err
	}

	ranker := match.NewRanker(client, logger)
	sc := scanner.New(ranker, logger,
		scanner.WithMinVideoSize(cfg.MinVideoSize()),
		scanner.WithMaxDepth(cfg.Library.MaxDepth),
	)

	fmt.Printf("\nScanning %d folders...\n", len(dirs))
	results := sc.ScanAll(ctx, dirs, func(i int, folder string) {
		fmt.Printf("  [%d/%d] %s\n", i+1, len(dirs), truncate(filepath.Base(folder), 60))
	})

	showResults(results)

	if flagNoInteractive {
		executor := renamer.NewExecutor(client, logger, !flagExecute)
		tally := executor.Execute(ctx, results)
		printTally(tally)
	} else {
		results = interactiveReview(ctx, client, ranker, logger, results)
	}

	if !flagExecute {
		ready := 0
		for _, r := range results {
			if r.Status.Selectable() && r.Selected != nil {
				ready++
			}
		}
		if ready > 0 {
			fmt.Printf("\nDry run. Use -x to rename (%d ready).\n", ready)
		}
	}
	return nil
}

// collectDirs expands the path arguments to the folders to scan: with
// --single each path itself, otherwise each path's non-hidden
// subdirectories. The list is deduplicated and sorted.
func collectDirs(paths []string) ([]string, error) {
	seen := make(map[string]bool)
	var dirs []string
	add := func(d string) {
		if !seen[d] {
			seen[d] = true
			dirs = append(dirs, d)
		}
	}

	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return nil, fmt.Errorf("resolve %s: %w", p, err)
		}
		info, err := os.Stat(abs)
		if err != nil {
			fmt.Printf("warning: not found: %s\n", p)
			continue
		}
		if !info.IsDir() {
			fmt.Printf("warning: not a directory: %s\n", p)
			continue
		}

		if flagSingle {
			add(abs)
			continue
		}
		entries, err := os.ReadDir(abs)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", abs, err)
		}
		for _, entry := range entries {
			if entry.IsDir() && !strings.HasPrefix(entry.Name(), ".") {
				add(filepath.Join(abs, entry.Name()))
			}
		}
	}

	if len(dirs) == 0 {
		return nil, errors.New("no directories to scan")
	}
	sort.Strings(dirs)
	return dirs, nil
}

func printTally(t renamer.Tally) {
	fmt.Printf("\nResult: %d renamed, %d skipped, %d failed\n", t.Renamed, t.Skipped, t.Failed)
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-2]) + ".."
}

func printTokenHelp() {
	fmt.Print(`
No TMDB access token found.

How to get one:
  1. Register at https://www.themoviedb.org/
  2. Settings -> API -> API Read Access Token (v4 auth)
  3. Copy the token (starts with "eyJ...")

How to configure it:
  export TMDB_ACCESS_TOKEN="eyJ..."        (recommended)
  echo "eyJ..." > ~/.tmdb_token && chmod 600 ~/.tmdb_token
  tmdb-rename /path -t "eyJ..."

`)
}
