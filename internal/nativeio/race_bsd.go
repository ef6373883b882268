//go:build darwin || freebsd || netbsd || openbsd || dragonfly

package nativeio

import (
	"os"
	"syscall"
	"unsafe"

	"golang.org/x/sys/unix"
)

func statDevIno(path string, followSymlink bool) (dev, ino uint64, err error) {
	var st syscall.Stat_t
	if followSymlink {
		err = syscall.Stat(path, &st)
	} else {
		err = syscall.Lstat(path, &st)
	}
	if err != nil {
		return 0, 0, err
	}
	return uint64(st.Dev), uint64(st.Ino), nil
}

// procPath uses fcntl(F_GETPATH) on BSD-family kernels, the closest
// equivalent to Linux's /proc/self/fd for re-deriving a descriptor's
// current path.
func procPath(fd *os.File) (string, error) {
	buf := make([]byte, 1024)
	_, _, errno := unix.Syscall(unix.SYS_FCNTL, fd.Fd(), unix.F_GETPATH, uintptr(unsafe.Pointer(&buf[0])))
	if errno != 0 {
		return "", errno
	}
	n := 0
	for n < len(buf) && buf[n] != 0 {
		n++
	}
	return string(buf[:n]), nil
}
