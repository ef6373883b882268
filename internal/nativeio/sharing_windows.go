//go:build windows

package nativeio

import (
	"os"
	"syscall"
)

func isSharingViolation(err error) bool {
	pathErr, ok := err.(*os.PathError)
	if !ok {
		return false
	}
	errno, ok := pathErr.Err.(syscall.Errno)
	return ok && errno == errorSharingViolation
}
