package nativeio

import (
	"errors"
	"os"
)

// ErrCircularSymlink is returned by ReadLink when the platform reports
// ELOOP, distinguishing "this path chases its own tail"
// from an ordinary not-found or access error (spec §7's not_a_link/loop
// distinction).
var ErrCircularSymlink = errors.New("nativeio: circular symlink")

// CreateSymlink creates a symlink at path whose target is linkTarget
// (the literal string stored in the link, not resolved against anything).
func CreateSymlink(path, linkTarget string) error {
	return os.Symlink(linkTarget, path)
}

// ReadLink returns the symlink's literal stored target.
func (h *Handle) ReadLink() (string, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.verifyIdentity(); err != nil {
		return "", err
	}
	target, err := os.Readlink(h.path.String())
	if err != nil {
		if isCircularSymlinkError(err) {
			return "", ErrCircularSymlink
		}
		return "", err
	}
	return target, nil
}
