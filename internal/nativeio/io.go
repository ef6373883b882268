package nativeio

import (
	"errors"
	"io"
)

// ErrTruncatedIO is returned when a scatter/gather read or write
// transfers fewer bytes than requested without an underlying error —
// e.g. a short read at end-of-file on a regular file, which on POSIX
// isn't itself an error condition but is one this dispatcher's callers
// need to be able to distinguish from a full transfer (spec §6's
// truncated_io kind).
var ErrTruncatedIO = errors.New("truncated i/o: fewer bytes transferred than requested")

// Buffer is one (offset-relative) span of a scatter/gather request.
type Buffer struct {
	Data []byte
}

// Read performs a scatter read: bufs are filled in order starting at
// offset, as if by a single preadv(2). Interrupted syscalls (EINTR) are
// retried transparently; a short read with no error returns
// ErrTruncatedIO alongside the partial byte count.
func (h *Handle) Read(offset int64, bufs []Buffer) (n int64, err error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.verifyIdentity(); err != nil {
		return 0, err
	}
	for _, b := range bufs {
		if len(b.Data) == 0 {
			continue
		}
		read, rerr := readFullAt(h.fd, b.Data, offset+n)
		n += int64(read)
		if rerr != nil {
			if rerr == io.EOF || rerr == io.ErrUnexpectedEOF {
				return n, ErrTruncatedIO
			}
			return n, rerr
		}
		if read < len(b.Data) {
			return n, ErrTruncatedIO
		}
	}
	return n, nil
}

func readFullAt(fd interface {
	ReadAt(p []byte, off int64) (int, error)
}, p []byte, off int64) (int, error) {
	total := 0
	for total < len(p) {
		n, err := fd.ReadAt(p[total:], off+int64(total))
		total += n
		if err != nil {
			if err == io.EOF {
				return total, io.EOF
			}
			if isEINTR(err) {
				continue
			}
			return total, err
		}
		if n == 0 {
			return total, io.ErrUnexpectedEOF
		}
	}
	return total, nil
}

// Write performs a scatter write: bufs are written in order starting at
// offset, as if by a single pwritev(2). When the handle was opened with
// FlagAppend, offset is ignored and every buffer is appended in order,
// matching POSIX O_APPEND semantics (each write()'s position is
// determined atomically at write time, not by the caller's requested
// offset).
func (h *Handle) Write(offset int64, bufs []Buffer) (n int64, err error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.verifyIdentity(); err != nil {
		return 0, err
	}
	append_ := h.flags&FlagAppend != 0
	for _, b := range bufs {
		if len(b.Data) == 0 {
			continue
		}
		var written int
		var werr error
		if append_ {
			written, werr = h.fd.Write(b.Data)
		} else {
			written, werr = writeFullAt(h.fd, b.Data, offset+n)
		}
		n += int64(written)
		if werr != nil {
			return n, werr
		}
		if written < len(b.Data) {
			return n, ErrTruncatedIO
		}
	}
	h.MarkWrite()
	if h.flags&FlagAlwaysSync != 0 {
		if serr := h.fd.Sync(); serr != nil {
			return n, serr
		}
		h.markSynced()
	}
	return n, nil
}

func writeFullAt(fd interface {
	WriteAt(p []byte, off int64) (int, error)
}, p []byte, off int64) (int, error) {
	total := 0
	for total < len(p) {
		n, err := fd.WriteAt(p[total:], off+int64(total))
		total += n
		if err != nil {
			if isEINTR(err) {
				continue
			}
			return total, err
		}
	}
	return total, nil
}

// Truncate sets the handle's size, following POSIX ftruncate(2)
// semantics: growing creates a sparse hole, shrinking discards trailing
// data.
func (h *Handle) Truncate(size int64) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.verifyIdentity(); err != nil {
		return err
	}
	if err := h.fd.Truncate(size); err != nil {
		return err
	}
	h.MarkWrite()
	return nil
}

// Sync flushes the handle's data (and metadata, on platforms where
// fsync(2) doesn't separate the two) to stable storage.
func (h *Handle) Sync() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.fd.Sync(); err != nil {
		return err
	}
	h.markSynced()
	return nil
}
