//go:build !windows && !plan9

package nativeio

import (
	"sync/atomic"

	"github.com/pkg/xattr"
)

const temporaryHintXattr = "user.afio.temporary_file"

var xattrSupported int32 = 1

// markTemporaryHint stamps a best-effort xattr on a FlagTemporaryFile
// handle so an external tool inspecting the filesystem (a backup agent, a
// dedup scanner) can recognize it as disposable without reading this
// dispatcher's in-process state. Failure is silent and permanent: most
// filesystems either support xattrs or consistently don't, so one
// not-supported response disables every further attempt for the process
// lifetime, the same circuit-breaker the teacher's own getXattr/setXattr
// pair uses.
func markTemporaryHint(path string) {
	if atomic.LoadInt32(&xattrSupported) == 0 {
		return
	}
	if err := xattr.LSet(path, temporaryHintXattr, []byte("1")); err != nil {
		if xerr, ok := err.(*xattr.Error); ok && notSupportedXattrErr(xerr) {
			atomic.StoreInt32(&xattrSupported, 0)
		}
	}
}

func clearTemporaryHint(path string) {
	if atomic.LoadInt32(&xattrSupported) == 0 {
		return
	}
	_ = xattr.LRemove(path, temporaryHintXattr)
}
