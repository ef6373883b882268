//go:build !windows && !plan9 && !js

package nativeio

import (
	"os"
	"syscall"
)

// isCircularSymlinkError checks if the current error code is because of
// a circular symlink.
func isCircularSymlinkError(err error) bool {
	pathErr, ok := err.(*os.PathError)
	if !ok {
		return false
	}
	errno, ok := pathErr.Err.(syscall.Errno)
	return ok && errno == syscall.ELOOP
}
