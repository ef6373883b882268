package afio

import (
	"errors"
	"io/fs"
	"os"
)

// classify maps a raw platform/stdlib error to the portable Kind
// taxonomy of spec §7. It only recognizes the sentinel errors every
// platform's os/io/fs packages already normalize to (ErrNotExist,
// ErrExist, ErrPermission); finer-grained errno classification (ENOSPC,
// ENOTEMPTY, ENOTDIR, EXDEV, ...) happens at the syscall boundary inside
// internal/nativeio, close to where the errno is actually available,
// rather than by re-parsing an *os.PathError's string form here.
func classify(err error) Kind {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return KindNotFound
	case errors.Is(err, fs.ErrExist):
		return KindAlreadyExists
	case errors.Is(err, fs.ErrPermission):
		return KindAccessDenied
	case errors.Is(err, os.ErrClosed):
		return KindBadHandle
	}
	return KindIOFailure
}
