//go:build !linux

package nativeio

import "os"

// openWithFlags ignores FlagDirect on platforms with no portable
// equivalent of O_DIRECT reachable through a plain open(2) call (Windows
// direct I/O requires FILE_FLAG_NO_BUFFERING at CreateFile time via a
// separate code path this layer doesn't special-case; Darwin uses
// fcntl(F_NOCACHE) post-open instead, applied in applyAccessHints; the
// other BSDs and remaining platforms get no direct-I/O request at all).
func openWithFlags(path string, osFlags int, portable OpenFlags, perm os.FileMode) (*os.File, error) {
	return os.OpenFile(path, osFlags, perm)
}
