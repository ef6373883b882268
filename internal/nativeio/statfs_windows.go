//go:build windows

package nativeio

import (
	"path/filepath"

	"golang.org/x/sys/windows"
)

// statfsPath uses GetDiskFreeSpaceEx for the quota numbers and
// GetVolumeInformation for the filesystem type name, the Windows
// equivalents of statfs(2)'s two halves.
func statfsPath(path string) (StatfsResult, error) {
	root := filepath.VolumeName(path) + `\`
	p, err := windows.UTF16PtrFromString(root)
	if err != nil {
		return StatfsResult{}, err
	}

	var freeBytesAvail, totalBytes, totalFreeBytes uint64
	if err := windows.GetDiskFreeSpaceEx(p, &freeBytesAvail, &totalBytes, &totalFreeBytes); err != nil {
		return StatfsResult{}, err
	}

	const bsize = 4096
	res := StatfsResult{
		Bsize:       bsize,
		Blocks:      int64(totalBytes / bsize),
		Bfree:       int64(totalFreeBytes / bsize),
		Bavail:      int64(freeBytesAvail / bsize),
		Mntonname:   root,
		Mntfromname: root,
	}

	var fsNameBuf [windows.MAX_PATH + 1]uint16
	var volNameBuf [windows.MAX_PATH + 1]uint16
	var flags uint32
	if err := windows.GetVolumeInformation(p, &volNameBuf[0], uint32(len(volNameBuf)),
		nil, nil, &flags, &fsNameBuf[0], uint32(len(fsNameBuf))); err == nil {
		res.Fstypename = windows.UTF16ToString(fsNameBuf[:])
		// Per-fstype table first, as a baseline for anything the volume's
		// own feature flags (below) don't speak to directly.
		applyFstypeCapabilities(&res)
		res.ReadOnly = flags&windows.FILE_READ_ONLY_VOLUME != 0
		res.ACLs = flags&windows.FILE_PERSISTENT_ACLS != 0
		res.Xattr = flags&windows.FILE_SUPPORTS_EXTENDED_ATTRIBUTES != 0
		res.Extents = flags&windows.FILE_SUPPORTS_SPARSE_FILES != 0
		res.Compression = flags&windows.FILE_VOLUME_IS_COMPRESSED != 0
		res.FileCompression = flags&windows.FILE_FILE_COMPRESSION != 0
	}
	return res, nil
}
