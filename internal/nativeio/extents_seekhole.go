//go:build linux || darwin || freebsd || solaris

package nativeio

import (
	"io"
	"os"

	"golang.org/x/sys/unix"
)

// seekExtents walks SEEK_DATA/SEEK_HOLE to find every allocated range in
// [0, size). Kernels lacking sparse-file support on the target
// filesystem (or that never report holes) make this degenerate to a
// single extent spanning the whole file, which seekExtents's caller
// already returns as a safe fallback when this errors.
func seekExtents(fd *os.File, size int64) ([]Extent, error) {
	var extents []Extent
	pos := int64(0)
	for pos < size {
		dataStart, err := unix.Seek(int(fd.Fd()), pos, unix.SEEK_DATA)
		if err != nil {
			if err == unix.ENXIO {
				break // no more data after pos
			}
			return nil, err
		}
		holeStart, err := unix.Seek(int(fd.Fd()), dataStart, unix.SEEK_HOLE)
		if err != nil {
			if err == unix.ENXIO {
				holeStart = size
			} else {
				return nil, err
			}
		}
		if holeStart > size {
			holeStart = size
		}
		extents = append(extents, Extent{Offset: dataStart, Length: holeStart - dataStart})
		pos = holeStart
	}
	// Restore the offset SEEK_DATA/SEEK_HOLE perturbed; callers address
	// this handle by explicit offset everywhere, but leaving the fd's
	// implicit position at EOF is still surprising state to hand back.
	if _, err := fd.Seek(0, io.SeekStart); err != nil {
		return extents, err
	}
	return extents, nil
}
