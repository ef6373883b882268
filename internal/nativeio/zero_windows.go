//go:build windows

package nativeio

import (
	"os"
	"unsafe"

	"golang.org/x/sys/windows"
)

// fileZeroDataInformation mirrors FILE_ZERO_DATA_INFORMATION for the
// FSCTL_SET_ZERO_DATA control code.
type fileZeroDataInformation struct {
	FileOffset      int64
	BeyondFinalZero int64
}

const fsctlSetZeroData = 0x980C8

// punchHole issues FSCTL_SET_ZERO_DATA against a sparse-enabled file,
// NTFS's equivalent of fallocate's hole-punching mode.
func punchHole(fd *os.File, offset, length int64) error {
	h := windows.Handle(fd.Fd())
	var bytesReturned uint32
	in := fileZeroDataInformation{FileOffset: offset, BeyondFinalZero: offset + length}
	return windows.DeviceIoControl(h, fsctlSetZeroData,
		(*byte)(unsafe.Pointer(&in)), uint32(unsafe.Sizeof(in)), nil, 0, &bytesReturned, nil)
}

// Preallocate is a no-op on Windows: it reserves no space and does not
// change the file; growing a file goes through Truncate.
func (h *Handle) Preallocate(size int64) error { return nil }
