//go:build !windows

package nativeio

import (
	"os"
	"syscall"
)

// fillPlatformLstat adds the dev/ino/uid/gid/nlink fields os.FileInfo
// doesn't expose portably but every POSIX Sys() result carries.
func fillPlatformLstat(s *Stat, fi os.FileInfo) {
	st, ok := fi.Sys().(*syscall.Stat_t)
	if !ok {
		return
	}
	s.Dev = uint64(st.Dev)
	s.Ino = uint64(st.Ino)
	s.Nlink = uint64(st.Nlink)
	s.UID = st.Uid
	s.GID = st.Gid
}
