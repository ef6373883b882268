package nativeio

import (
	"os"

	"github.com/afio-go/afio/fpath"
)

// osFlags translates the portable OpenFlags bitmask into the stdlib's
// os.O_* flags, the same mapping job the teacher's local.go did inline at
// the top of its Put/Update paths, pulled out here since open is now its
// own operation rather than bundled into a cloud-object write.
func osFlags(flags OpenFlags) int {
	var f int
	switch {
	case flags&FlagRead != 0 && flags&FlagWrite != 0:
		f = os.O_RDWR
	case flags&FlagWrite != 0:
		f = os.O_WRONLY
	default:
		f = os.O_RDONLY
	}
	if flags&FlagAppend != 0 {
		f |= os.O_APPEND
	}
	if flags&FlagTruncate != 0 {
		f |= os.O_TRUNC
	}
	if flags&FlagCreateOnlyIfNotExist != 0 {
		f |= os.O_CREATE | os.O_EXCL
	} else if flags&FlagCreate != 0 {
		f |= os.O_CREATE
	}
	return f
}

// OpenFile opens path as a regular file.
func OpenFile(path string, flags OpenFlags, perm os.FileMode) (*Handle, error) {
	f := osFlags(flags)
	fd, err := openWithFlags(path, f, flags, perm)
	if err != nil {
		return nil, err
	}
	return newHandle(fd, KindFile, path, flags)
}

// OpenDirectory opens path as a directory handle, used both for direct
// enumeration/statfs operations and as a parent directory anchor for
// *at-relative resolution elsewhere in this package.
func OpenDirectory(path string, flags OpenFlags) (*Handle, error) {
	if flags&(FlagCreate|FlagCreateOnlyIfNotExist) != 0 {
		mode := os.FileMode(0o777)
		if flags&FlagCreateOnlyIfNotExist != 0 {
			if err := os.Mkdir(path, mode); err != nil {
				return nil, err
			}
		} else {
			if err := os.MkdirAll(path, mode); err != nil {
				return nil, err
			}
		}
	}
	fd, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return newHandle(fd, KindDirectory, path, flags)
}

func newHandle(fd *os.File, kind Kind, path string, flags OpenFlags) (*Handle, error) {
	dev, ino, err := statDevIno(path, kind == KindSymlink)
	if err != nil {
		_ = fd.Close()
		return nil, err
	}
	h := &Handle{
		fd:            fd,
		kind:          kind,
		path:          fpath.New(path),
		dev:           dev,
		ino:           ino,
		flags:         flags,
		deleteOnClose: flags&FlagDeleteOnClose != 0,
		syncOnClose:   flags&FlagSyncOnClose != 0,
		noRaceCheck:   flags&FlagNoRaceProtection != 0,
	}
	applyAccessHints(h, flags)
	if flags&FlagTemporaryFile != 0 {
		markTemporaryHint(path)
	}
	return h, nil
}
