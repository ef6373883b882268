//go:build !linux && !darwin && !freebsd && !solaris

package nativeio

import "os"

// seekExtents has no SEEK_DATA/SEEK_HOLE equivalent wired on this
// platform; always errors so the caller reports a single whole-file
// extent.
func seekExtents(fd *os.File, size int64) ([]Extent, error) {
	return nil, errNotSupported
}
