//go:build linux

package nativeio

import (
	"os"
	"syscall"
)

// openWithFlags opens path, adding O_DIRECT when the caller asked for
// unbuffered I/O. Direct I/O imposes alignment requirements on buffers
// and offsets that callers of Read/Write must honor themselves; this
// layer only threads the flag through to the open(2) call.
func openWithFlags(path string, osFlags int, portable OpenFlags, perm os.FileMode) (*os.File, error) {
	if portable&FlagDirect != 0 {
		osFlags |= syscall.O_DIRECT
	}
	return os.OpenFile(path, osFlags, perm)
}
