package scanner

import (
	"path/filepath"
	"strings"

	"github.com/kommerzienrat/tmdb-rename/internal/match"
	"github.com/kommerzienrat/tmdb-rename/internal/namer"
)

// MediaType classifies a discovered video or folder.
type MediaType int

const (
	MediaUnknown MediaType = iota
	MediaMovie
	MediaSeries
	MediaCollection
)

func (t MediaType) String() string {
	switch t {
	case MediaMovie:
		return "movie"
	case MediaSeries:
		return "series"
	case MediaCollection:
		return "collection"
	default:
		return "unknown"
	}
}

// Item is one qualifying video file discovered during a scan.
type Item struct {
	Path    string
	Size    int64
	Type    MediaType
	Episode *namer.Episode
	Title   string // extracted; empty when undetermined
	Year    string
	// ParentDir is the enclosing grouping folder when the file sits in a
	// subdirectory of the scan root; empty otherwise. Used to locate sibling
	// subtitle files and as the identification name source.
	ParentDir string
}

// SizeGB returns the file size in gibibytes.
func (i Item) SizeGB() float64 {
	return float64(i.Size) / (1 << 30)
}

// NameSource returns the name used for title extraction: the parent folder
// name when one exists, else the file's own stem.
func (i Item) NameSource() string {
	if i.ParentDir != "" {
		return filepath.Base(i.ParentDir)
	}
	base := filepath.Base(i.Path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// CollectionEntry is one independently identified movie inside a collection
// folder.
type CollectionEntry struct {
	FolderPath string // empty for a loose file
	VideoPath  string
	Size       int64
	Title      string
	Year       string
	Matches    []match.Candidate
	Selected   *match.Candidate
	Status     match.Status
}

// Result is the outcome for one scanned top-level folder.
type Result struct {
	Path       string
	FolderName string
	Type       MediaType
	Title      string
	Year       string
	Items      []Item
	Matches    []match.Candidate
	Selected   *match.Candidate
	Status     match.Status
	NewName    string
	Err        string
	// Collection holds the per-movie entries when Type is MediaCollection.
	// A collection result never carries its own selection.
	Collection []CollectionEntry
}

// IsCollection reports whether this outcome needs per-entry identification.
func (r *Result) IsCollection() bool {
	return r.Type == MediaCollection
}
