package renamer

import (
	"errors"
	"fmt"
	"os"
	"syscall"
)

var (
	// ErrSourceMissing indicates the rename source no longer exists.
	ErrSourceMissing = errors.New("source missing")

	// ErrDestinationExists indicates the rename target is already taken.
	ErrDestinationExists = errors.New("destination already exists")

	// ErrCrossDevice indicates source and destination sit on different
	// filesystems. Moves across devices are rejected outright: copy+delete
	// is not atomic and this is a rename tool.
	ErrCrossDevice = errors.New("cross-filesystem moves are not allowed")

	// ErrAccessDenied indicates the OS refused the rename.
	ErrAccessDenied = errors.New("access denied")

	// ErrRenameFailed wraps any other OS-level rename failure.
	ErrRenameFailed = errors.New("rename failed")
)

// classify maps an os.Rename failure onto the package's error kinds so
// callers can show a human-readable cause.
func classify(err error, name string) error {
	switch {
	case errors.Is(err, syscall.EXDEV):
		return fmt.Errorf("%w: %s", ErrCrossDevice, name)
	case errors.Is(err, syscall.EACCES), errors.Is(err, syscall.EPERM), errors.Is(err, os.ErrPermission):
		return fmt.Errorf("%w: %s", ErrAccessDenied, name)
	default:
		return fmt.Errorf("%w: %s: %v", ErrRenameFailed, name, err)
	}
}
