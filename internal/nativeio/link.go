package nativeio

import (
	"os"
	"strings"

	"github.com/afio-go/afio/fpath"
	"github.com/google/uuid"
)

func pathFromString(s string) fpath.Path { return fpath.New(s) }

// Link creates a new hard link at newPath pointing at the handle's
// current path.
func (h *Handle) Link(newPath string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.verifyIdentity(); err != nil {
		return err
	}
	return os.Link(h.path.String(), newPath)
}

// Unlink removes the handle's path. On platforms where removing a file
// still open elsewhere is refused (Windows without FILE_SHARE_DELETE),
// it instead renames the entry to a uuid-suffixed sentinel under the
// delete-pending prefix and marks the handle for removal at Close, so the
// name disappears from enumeration immediately even though the inode
// isn't freed until every handle releases it.
func (h *Handle) Unlink() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.verifyIdentity(); err != nil {
		return err
	}
	if err := removeWithRetry(h.path.String()); err == nil {
		return nil
	} else if !isSharingViolation(err) {
		return err
	}
	return h.renameToPendingDelete()
}

func (h *Handle) renameToPendingDelete() error {
	dir := h.path.Dir().String()
	sentinel := dir + string(os.PathSeparator) + deletePendingPrefix + strings.ReplaceAll(uuid.NewString(), "-", "")
	if err := os.Rename(h.path.String(), sentinel); err != nil {
		return err
	}
	h.path = pathFromString(sentinel)
	h.deleteOnClose = true
	return nil
}

// Relink atomically renames the handle's path to newPath, replacing
// whatever previously existed there (POSIX rename(2) semantics; on
// Windows this requires the target not be open elsewhere without
// FILE_SHARE_DELETE, which this layer doesn't work around since an
// atomic replace-in-place is the operation being requested, not a
// same-semantics emulation of it).
func (h *Handle) Relink(newPath string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.verifyIdentity(); err != nil {
		return err
	}
	if err := os.Rename(h.path.String(), newPath); err != nil {
		return err
	}
	h.path = pathFromString(newPath)
	return nil
}
