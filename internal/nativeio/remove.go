//go:build !windows

package nativeio

import "os"

// removeWithRetry removes name. Non-Windows filesystems allow unlinking a
// file that's still open elsewhere, so there's nothing to retry against.
func removeWithRetry(name string) error {
	return os.Remove(name)
}
