//go:build !unix

package renamer

// sameFilesystem has no portable device-id check here; os.Rename itself
// fails with a link error when the move would cross volumes, and classify
// maps that to ErrCrossDevice.
func sameFilesystem(a, b string) bool {
	return true
}
