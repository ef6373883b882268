//go:build windows

package nativeio

import (
	"time"

	"golang.org/x/sys/windows"
)

// statHandle uses GetFileInformationByHandle alone: its CreationTime
// field supplies the birth time (and Ctime), since Windows exposes
// creation time natively, unlike Linux pre-statx.
func statHandle(h *Handle) (Stat, error) {
	wh := windows.Handle(h.fd.Fd())
	var info windows.ByHandleFileInformation
	if err := windows.GetFileInformationByHandle(wh, &info); err != nil {
		return Stat{}, err
	}
	typ := TypeFile
	if info.FileAttributes&windows.FILE_ATTRIBUTE_DIRECTORY != 0 {
		typ = TypeDirectory
	}
	reparse := info.FileAttributes&windows.FILE_ATTRIBUTE_REPARSE_POINT != 0
	if reparse {
		typ = TypeSymlink
	}
	s := Stat{
		Dev:           uint64(info.VolumeSerialNumber),
		Ino:           uint64(info.FileIndexHigh)<<32 | uint64(info.FileIndexLow),
		Type:          typ,
		Nlink:         uint64(info.NumberOfLinks),
		Mtime:         time.Unix(0, info.LastWriteTime.Nanoseconds()),
		Atime:         time.Unix(0, info.LastAccessTime.Nanoseconds()),
		Ctime:         time.Unix(0, info.CreationTime.Nanoseconds()),
		Birthtime:     time.Unix(0, info.CreationTime.Nanoseconds()),
		HaveBirthtime: true,
		Size:          int64(info.FileSizeHigh)<<32 | int64(info.FileSizeLow),
		ReparsePoint:  reparse,
	}
	s.AllocatedSize = s.Size
	return s, nil
}
