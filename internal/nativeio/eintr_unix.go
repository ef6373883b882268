//go:build !windows

package nativeio

import (
	"errors"
	"syscall"
)

// isEINTR reports whether err is (or wraps) EINTR, the "syscall was
// interrupted by a signal, just try again" condition every native I/O
// loop in this package retries transparently rather than surfacing.
func isEINTR(err error) bool {
	return errors.Is(err, syscall.EINTR)
}
