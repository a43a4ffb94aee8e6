package renamer

import (
	"context"
	"log/slog"
	"os"

	"github.com/kommerzienrat/tmdb-rename/internal/catalog"
	"github.com/kommerzienrat/tmdb-rename/internal/match"
	"github.com/kommerzienrat/tmdb-rename/internal/namer"
	"github.com/kommerzienrat/tmdb-rename/internal/scanner"
)

// Executor applies the rename transactions for a batch of confirmed
// outcomes. One folder's failure never aborts the batch; each folder gets
// its own transaction and its own rollback.
type Executor struct {
	client catalog.Client
	logger *slog.Logger
	dryRun bool
}

// Tally summarizes one execution pass.
type Tally struct {
	Renamed int
	Skipped int
	Failed  int
}

// NewExecutor creates an Executor. With dryRun set, names are computed and
// reported but the filesystem is never touched.
func NewExecutor(client catalog.Client, logger *slog.Logger, dryRun bool) *Executor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Executor{client: client, logger: logger, dryRun: dryRun}
}

// Execute renames every outcome whose status carries a confirmed selection.
// Outcomes in any other state are counted as skipped. Successful renames
// transition the outcome to StatusRenamed.
func (e *Executor) Execute(ctx context.Context, results []*scanner.Result) Tally {
	var tally Tally

	for _, result := range results {
		if !result.Status.Selectable() || result.Selected == nil {
			tally.Skipped++
			continue
		}

		newName, ok := e.prepare(ctx, result)
		if !ok {
			tally.Failed++
			continue
		}
		result.NewName = newName

		if e.dryRun {
			e.logger.Info("would rename",
				"folder", result.FolderName, "to", newName)
			tally.Renamed++
			continue
		}

		if err := e.renameOne(result, newName); err != nil {
			result.Err = err.Error()
			e.logger.Error("rename failed",
				"folder", result.FolderName, "error", err)
			tally.Failed++
			continue
		}

		result.Status = match.StatusRenamed
		tally.Renamed++
	}
	return tally
}

// prepare resolves the IMDb id if still missing, validates it and computes
// the sanitized canonical name. Failures land in the outcome's error text.
func (e *Executor) prepare(ctx context.Context, result *scanner.Result) (string, bool) {
	selected := result.Selected

	if selected.IMDBID == "" {
		e.logger.Info("resolving IMDb id",
			"title", selected.Title, "catalog_id", selected.ID)
		imdbID, err := e.client.ExternalID(ctx, selected.ID, selected.Kind)
		if err != nil {
			e.logger.Debug("external id lookup failed",
				"id", selected.ID, "error", err)
		}
		selected.IMDBID = imdbID
	}
	if selected.IMDBID == "" {
		result.Err = "no IMDb id found"
		return "", false
	}
	if !namer.ValidIMDBID(selected.IMDBID) {
		result.Err = "invalid IMDb id: " + selected.IMDBID
		return "", false
	}

	title := selected.Title
	if title == "" {
		title = selected.OriginalTitle
	}
	year := selected.Year
	if year == "" {
		year = "0000"
	}

	newName, err := namer.BuildCanonical(title, year, selected.IMDBID)
	if err != nil {
		result.Err = err.Error()
		return "", false
	}
	return newName, true
}

func (e *Executor) renameOne(result *scanner.Result, newName string) error {
	tx := NewTransaction(e.logger)

	info, err := os.Lstat(result.Path)
	if err != nil {
		return ErrSourceMissing
	}

	if info.IsDir() {
		renamed, err := tx.RenameFolder(result.Path, newName, result.Selected.ID)
		if err != nil {
			return err
		}
		e.logger.Info("renamed folder",
			"folder", result.FolderName, "to", newName, "files", renamed)
		return nil
	}

	if err := tx.MoveLooseFile(result.Path, newName); err != nil {
		return err
	}
	e.logger.Info("created folder and moved file",
		"file", result.FolderName, "to", newName)
	return nil
}
