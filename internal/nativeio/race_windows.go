//go:build windows

package nativeio

import (
	"os"

	"golang.org/x/sys/windows"
)

// statDevIno uses BY_HANDLE_FILE_INFORMATION's volume serial number and
// file index, Windows's closest equivalent to a POSIX (dev, ino) pair.
// It opens its own handle rather than reusing an existing one so it works
// uniformly whether called at open time or during re-verification.
func statDevIno(path string, followSymlink bool) (dev, ino uint64, err error) {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return 0, 0, err
	}
	attrs := uint32(windows.FILE_FLAG_BACKUP_SEMANTICS)
	if !followSymlink {
		attrs |= windows.FILE_FLAG_OPEN_REPARSE_POINT
	}
	h, err := windows.CreateFile(p, 0, windows.FILE_SHARE_READ|windows.FILE_SHARE_WRITE|windows.FILE_SHARE_DELETE,
		nil, windows.OPEN_EXISTING, attrs, 0)
	if err != nil {
		return 0, 0, err
	}
	defer windows.CloseHandle(h)

	var info windows.ByHandleFileInformation
	if err := windows.GetFileInformationByHandle(h, &info); err != nil {
		return 0, 0, err
	}
	dev = uint64(info.VolumeSerialNumber)
	ino = uint64(info.FileIndexHigh)<<32 | uint64(info.FileIndexLow)
	return dev, ino, nil
}

// procPath uses GetFinalPathNameByHandle, the Windows equivalent of
// /proc/self/fd for re-deriving a descriptor's current path after a
// rename.
func procPath(fd *os.File) (string, error) {
	h := windows.Handle(fd.Fd())
	buf := make([]uint16, windows.MAX_PATH)
	n, err := windows.GetFinalPathNameByHandle(h, &buf[0], uint32(len(buf)), 0)
	if err != nil {
		return "", err
	}
	return windows.UTF16ToString(buf[:n]), nil
}
