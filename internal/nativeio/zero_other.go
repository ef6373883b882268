//go:build !linux && !darwin && !windows

package nativeio

import "os"

// punchHole has no portable fallback on these platforms; ZeroRange
// degrades to zero-by-writing.
func punchHole(fd *os.File, offset, length int64) error {
	return errNotSupported
}

// Preallocate is a no-op where the platform exposes no preallocation
// syscall this layer targets; Truncate still grows the file, just
// without the fragmentation benefit.
func (h *Handle) Preallocate(size int64) error { return nil }
