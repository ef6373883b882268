package afio

import "github.com/afio-go/afio/internal/lockfile"

// LockHandle is a held byte-range lock obtained via Dispatcher.Lock. It
// must be released via Dispatcher.Unlock.
type LockHandle struct {
	h *lockfile.Handle
}

// Lock submits a byte-range lock-acquisition operation against target's
// sidecar lock file (spec §4.H). The Future's value is a *LockHandle.
func (d *Dispatcher) Lock(pre *Future, target string, req LockRequest, asFlags AsyncOpFlags) *Future {
	return d.Submit(pre, OpKindLock, asFlags, func() (any, error) {
		mode := lockfile.Shared
		if req.Type == LockWrite {
			mode = lockfile.Exclusive
		}
		h, err := d.locks.Acquire(target, req.Offset, req.Length, mode)
		if err != nil {
			return nil, translate("lock", target, err)
		}
		return &LockHandle{h: h}, nil
	})
}

// Unlock submits a lock-release operation for a previously acquired
// LockHandle.
func (d *Dispatcher) Unlock(pre *Future, lh *LockHandle, asFlags AsyncOpFlags) *Future {
	return d.Submit(pre, OpKindUnlock, asFlags, func() (any, error) {
		return nil, translate("unlock", "", lh.h.Release())
	})
}
