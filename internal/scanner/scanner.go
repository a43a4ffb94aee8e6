// Package scanner walks a media library, finds qualifying video files and
// builds one identification outcome per top-level folder.
package scanner

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/kommerzienrat/tmdb-rename/internal/catalog"
	"github.com/kommerzienrat/tmdb-rename/internal/match"
	"github.com/kommerzienrat/tmdb-rename/internal/namer"
)

const (
	// DefaultMaxDepth bounds the recursive walk below a scanned folder.
	DefaultMaxDepth = 5

	// DefaultMinVideoSize filters out trailers and samples that pass the
	// extension filter (100 MiB).
	DefaultMinVideoSize = 100 << 20

	// mainFeatureSize: a movie item above 1 GiB is assumed to be a feature
	// film rather than an extra.
	mainFeatureSize = 1 << 30
)

// ignoreDirs are directory names (lowercase) that never hold main features.
var ignoreDirs = map[string]bool{
	"sample": true, "samples": true, "proof": true, "extra": true,
	"extras": true, "behind the scenes": true, "deleted scenes": true,
	"featurettes": true, "interviews": true, "trailers": true, "subs": true,
	"subtitles": true, "sub": true, "cover": true, "covers": true,
	"bonus": true, "specials": true,
}

// Scanner discovers and identifies library folders.
type Scanner struct {
	ranker       *match.Ranker
	minVideoSize int64
	maxDepth     int
	logger       *slog.Logger
}

// Option configures a Scanner.
type Option func(*Scanner)

// WithMinVideoSize overrides the minimum qualifying file size in bytes.
func WithMinVideoSize(bytes int64) Option {
	return func(s *Scanner) {
		s.minVideoSize = bytes
	}
}

// WithMaxDepth overrides the walk depth ceiling.
func WithMaxDepth(depth int) Option {
	return func(s *Scanner) {
		s.maxDepth = depth
	}
}

// New creates a Scanner. A nil logger falls back to slog.Default.
func New(ranker *match.Ranker, logger *slog.Logger, opts ...Option) *Scanner {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Scanner{
		ranker:       ranker,
		minVideoSize: DefaultMinVideoSize,
		maxDepth:     DefaultMaxDepth,
		logger:       logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Scan identifies one top-level folder. It never fails: problems end up in
// the result's status and error text so one bad folder cannot abort a batch.
func (s *Scanner) Scan(ctx context.Context, folder string) *Result {
	folderName := filepath.Base(folder)

	// Already canonical: no catalog work at all.
	if namer.IsCanonical(folderName) {
		return &Result{
			Path:       folder,
			FolderName: folderName,
			Type:       MediaMovie,
			Status:     match.StatusDone,
		}
	}

	items := s.findVideos(folder)
	mediaType := s.detectType(folderName, items)
	title, year := namer.ExtractTitleYear(folderName)

	result := &Result{
		Path:       folder,
		FolderName: folderName,
		Type:       mediaType,
		Title:      title,
		Year:       year,
		Items:      items,
	}

	if len(items) == 0 {
		result.Status = match.StatusNone
		result.Err = "no videos"
		return result
	}

	if mediaType == MediaCollection {
		result.Status = match.StatusManual
		result.Err = fmt.Sprintf("collection (%d films)", len(items))
		result.Collection = s.collectionEntries(ctx, items)
		return result
	}

	if title == "" {
		result.Status = match.StatusNone
		result.Err = "no title"
		return result
	}

	kind := catalog.KindMovie
	if mediaType == MediaSeries {
		kind = catalog.KindTV
	}

	result.Matches = s.ranker.Rank(ctx, title, year, kind)
	result.Status = match.Classify(result.Matches, year)
	switch result.Status {
	case match.StatusAutomatic:
		result.Selected = &result.Matches[0]
	case match.StatusNone:
		result.Err = "no matches"
	}
	return result
}

// ScanAll scans folders in order. The per-folder progress callback may be nil.
func (s *Scanner) ScanAll(ctx context.Context, folders []string, progress func(i int, folder string)) []*Result {
	results := make([]*Result, 0, len(folders))
	for i, folder := range folders {
		if progress != nil {
			progress(i, folder)
		}
		results = append(results, s.Scan(ctx, folder))
	}
	return results
}

// findVideos collects qualifying video files below root, largest first.
func (s *Scanner) findVideos(root string) []Item {
	var items []Item

	var walk func(dir string, depth int)
	walk = func(dir string, depth int) {
		if depth > s.maxDepth || ignoreDirs[strings.ToLower(filepath.Base(dir))] {
			return
		}
		entries, err := os.ReadDir(dir)
		if err != nil {
			s.logger.Debug("skipping unreadable directory", "dir", dir, "error", err)
			return
		}
		for _, entry := range entries {
			if entry.IsDir() {
				walk(filepath.Join(dir, entry.Name()), depth+1)
				continue
			}
			ext := strings.ToLower(filepath.Ext(entry.Name()))
			if !namer.VideoExtensions[ext] {
				continue
			}
			info, err := entry.Info()
			if err != nil || info.Size() < s.minVideoSize {
				continue
			}

			item := Item{
				Path:    filepath.Join(dir, entry.Name()),
				Size:    info.Size(),
				Episode: namer.ParseEpisode(entry.Name()),
			}
			item.Type = MediaMovie
			if item.Episode != nil {
				item.Type = MediaSeries
			}
			if dir != root {
				item.ParentDir = dir
			}
			item.Title, item.Year = namer.ExtractTitleYear(item.NameSource())
			items = append(items, item)
		}
	}
	walk(root, 0)

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Size > items[j].Size
	})
	return items
}

// detectType classifies a folder from its name and discovered items.
func (s *Scanner) detectType(folderName string, items []Item) MediaType {
	if len(items) == 0 {
		return MediaUnknown
	}

	if isCollection(folderName, items) {
		return MediaCollection
	}

	episodes := 0
	var largestMovie *Item
	for i := range items {
		if items[i].Type == MediaSeries {
			episodes++
		} else if largestMovie == nil {
			largestMovie = &items[i]
		}
	}
	if episodes >= 2 {
		return MediaSeries
	}
	if largestMovie != nil && largestMovie.Size > mainFeatureSize {
		return MediaMovie
	}
	if namer.HasSeasonCue(folderName) {
		return MediaSeries
	}
	return items[0].Type
}

// isCollection applies the anthology heuristics: an explicit collection
// phrase in the folder name, or several items that cannot plausibly be one
// movie with extras (distinct years, distinct titles, or multiple large
// non-episode files).
func isCollection(folderName string, items []Item) bool {
	if namer.MatchesCollectionPhrase(folderName) {
		return true
	}
	if len(items) < 2 {
		return false
	}

	years := make(map[string]bool)
	titles := make(map[string]bool)
	bigMovies := 0
	for _, item := range items {
		if item.Year != "" {
			years[item.Year] = true
		}
		if item.Title != "" {
			titles[namer.NormalizeTitle(item.Title)] = true
		}
		if item.Size > mainFeatureSize && item.Episode == nil {
			bigMovies++
		}
	}
	return len(years) >= 2 || len(titles) >= 2 || bigMovies >= 2
}

// collectionEntries runs per-item identification for a collection folder.
// Every entry is matched as a movie regardless of folder classification.
func (s *Scanner) collectionEntries(ctx context.Context, items []Item) []CollectionEntry {
	entries := make([]CollectionEntry, 0, len(items))
	for _, item := range items {
		entry := CollectionEntry{
			FolderPath: item.ParentDir,
			VideoPath:  item.Path,
			Size:       item.Size,
			Title:      item.Title,
			Year:       item.Year,
		}
		if entry.Title != "" {
			entry.Matches = s.ranker.Rank(ctx, entry.Title, entry.Year, catalog.KindMovie)
		}
		entry.Status = match.Classify(entry.Matches, entry.Year)
		if entry.Status == match.StatusAutomatic {
			entry.Selected = &entry.Matches[0]
		}
		entries = append(entries, entry)
	}
	return entries
}
