//go:build windows

package lockfile

import (
	"os"

	"golang.org/x/sys/windows"
)

// lockRange takes or releases a mandatory byte-range lock via LockFileEx,
// which unlike POSIX locks is scoped to the handle, matching the
// per-Handle semantics Registry promises callers on every platform.
func lockRange(f *os.File, offset, length int64, mode Mode, acquire bool) error {
	h := windows.Handle(f.Fd())
	var ol windows.Overlapped
	ol.Offset = uint32(offset)
	ol.OffsetHigh = uint32(offset >> 32)

	lenLow := uint32(length)
	lenHigh := uint32(length >> 32)

	if !acquire {
		return windows.UnlockFileEx(h, 0, lenLow, lenHigh, &ol)
	}

	var flags uint32
	if mode == Exclusive {
		flags |= windows.LOCKFILE_EXCLUSIVE_LOCK
	}
	return windows.LockFileEx(h, flags, 0, lenLow, lenHigh, &ol)
}
