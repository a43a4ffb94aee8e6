//go:build unix

package renamer

import (
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"
)

// deviceID returns the device id for path, falling back to its parent when
// the path does not exist yet (rename targets).
func deviceID(path string) (uint64, error) {
	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		if !os.IsNotExist(err) {
			return 0, err
		}
		if err := unix.Stat(filepath.Dir(path), &st); err != nil {
			return 0, err
		}
	}
	return uint64(st.Dev), nil
}

// sameFilesystem reports whether both paths reside on the same device. Any
// stat failure counts as "not the same": the transaction then refuses the
// move instead of risking a cross-device rename.
func sameFilesystem(a, b string) bool {
	da, err := deviceID(a)
	if err != nil {
		return false
	}
	db, err := deviceID(b)
	if err != nil {
		return false
	}
	return da == db
}
