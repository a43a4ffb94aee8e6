// Package renamer mutates library folders to their canonical names as
// rollback-capable transactions. Every filesystem rename is recorded in a
// step log before it is attempted; any failure replays the log in reverse so
// the library is never left half-renamed.
package renamer

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// step is one recorded filesystem rename.
type step struct {
	from string
	to   string
	done bool
}

// Transaction owns the step log for one in-flight folder operation. It must
// not be shared across folders: rollback state is scoped to a single
// operation. Every exit path drains the log via commit or Rollback.
type Transaction struct {
	steps  []step
	logger *slog.Logger
}

// NewTransaction creates an empty transaction. A nil logger falls back to
// slog.Default.
func NewTransaction(logger *slog.Logger) *Transaction {
	if logger == nil {
		logger = slog.Default()
	}
	return &Transaction{logger: logger}
}

// rename performs one guarded os.Rename. Preconditions: the source exists,
// the destination is free (unless both resolve to the identical path) and
// both sides share a filesystem.
func (t *Transaction) rename(src, dst string) error {
	if _, err := os.Lstat(src); err != nil {
		return fmt.Errorf("%w: %s", ErrSourceMissing, filepath.Base(src))
	}
	if _, err := os.Lstat(dst); err == nil {
		rsrc, err1 := filepath.EvalSymlinks(src)
		rdst, err2 := filepath.EvalSymlinks(dst)
		if err1 != nil || err2 != nil || rsrc != rdst {
			return fmt.Errorf("%w: %s", ErrDestinationExists, filepath.Base(dst))
		}
	}
	if !sameFilesystem(src, dst) {
		return fmt.Errorf("%w: %s", ErrCrossDevice, filepath.Base(src))
	}
	if err := os.Rename(src, dst); err != nil {
		return classify(err, filepath.Base(src))
	}
	return nil
}

// do logs a step, then attempts it. The log entry exists before the rename
// runs so rollback can always see what was in flight.
func (t *Transaction) do(src, dst string) error {
	t.steps = append(t.steps, step{from: src, to: dst})
	if err := t.rename(src, dst); err != nil {
		return err
	}
	t.steps[len(t.steps)-1].done = true
	return nil
}

// Rollback restores every completed step in reverse order. Best effort:
// individual restore failures are logged, never raised, and every remaining
// step is still attempted. The log is cleared afterwards.
func (t *Transaction) Rollback() {
	for i := len(t.steps) - 1; i >= 0; i-- {
		s := t.steps[i]
		if !s.done {
			continue
		}
		if _, err := os.Lstat(s.to); err != nil {
			continue
		}
		if err := os.Rename(s.to, s.from); err != nil {
			t.logger.Error("rollback step failed",
				"from", s.to, "to", s.from, "error", err)
		} else {
			t.logger.Info("rolled back", "path", s.from)
		}
	}
	t.steps = nil
}

// commit discards the step log after a fully successful transaction.
func (t *Transaction) commit() {
	t.steps = nil
}

// RenameFolder renames a folder to newName in place and then renames its
// direct member files to match. catalogID goes into the temporary name so
// interrupted runs are attributable. Returns the number of member files
// renamed. On any error the whole transaction has been rolled back.
func (t *Transaction) RenameFolder(folder, newName string, catalogID int64) (int, error) {
	renamed, err := t.renameFolder(folder, newName, catalogID)
	if err != nil {
		t.Rollback()
		return 0, err
	}
	t.commit()
	return renamed, nil
}

func (t *Transaction) renameFolder(folder, newName string, catalogID int64) (int, error) {
	parent := filepath.Dir(folder)
	target := filepath.Join(parent, newName)

	if !sameFilesystem(folder, target) {
		return 0, fmt.Errorf("%w: %s", ErrCrossDevice, filepath.Base(folder))
	}

	working := folder
	if filepath.Base(folder) != newName {
		if _, err := os.Lstat(target); err == nil {
			return 0, fmt.Errorf("%w: %s", ErrDestinationExists, newName)
		}
		// Two-hop rename through a unique temporary sibling: if the process
		// dies between the hops a .tmp_* directory remains, detectable, and
		// nothing at the final name was clobbered mid-flight.
		temp := filepath.Join(parent, fmt.Sprintf(".tmp_%d_%d", time.Now().UnixMilli(), catalogID))
		if err := t.do(folder, temp); err != nil {
			return 0, err
		}
		if err := t.do(temp, target); err != nil {
			return 0, err
		}
		working = target
	}

	return t.renameMembers(working, newName)
}

// renameMembers renames the direct child files of the folder to the
// canonical name, keeping extensions and subtitle language suffixes. A child
// whose target name is already taken is skipped, not overwritten.
func (t *Transaction) renameMembers(folder, newName string) (int, error) {
	entries, err := os.ReadDir(folder)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrRenameFailed, filepath.Base(folder), err)
	}

	renamed := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))

		var fileName string
		switch {
		case RenameExtensions[ext]:
			fileName = newName + ext
		case SubtitleExtensions[ext]:
			fileName = newName + SubtitleSuffix(entry.Name()) + ext
		default:
			continue
		}
		if entry.Name() == fileName {
			continue
		}

		target := filepath.Join(folder, fileName)
		if _, err := os.Lstat(target); err == nil {
			continue
		}
		if err := t.do(filepath.Join(folder, entry.Name()), target); err != nil {
			return renamed, err
		}
		renamed++
	}
	return renamed, nil
}

// MoveLooseFile handles a lone video at the scan root: a folder is created
// at the target name and the file moves into it. Folder creation is not a
// logged step; an empty leftover folder after a failed move is not data loss.
func (t *Transaction) MoveLooseFile(file, newName string) error {
	if err := t.moveLooseFile(file, newName); err != nil {
		t.Rollback()
		return err
	}
	t.commit()
	return nil
}

func (t *Transaction) moveLooseFile(file, newName string) error {
	dir := filepath.Join(filepath.Dir(file), newName)
	if _, err := os.Lstat(dir); err == nil {
		return fmt.Errorf("%w: %s", ErrDestinationExists, newName)
	}
	if !sameFilesystem(file, dir) {
		return fmt.Errorf("%w: %s", ErrCrossDevice, filepath.Base(file))
	}
	if err := os.Mkdir(dir, 0o755); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrRenameFailed, newName, err)
	}
	return t.do(file, filepath.Join(dir, newName+filepath.Ext(file)))
}
