//go:build !linux && !darwin && !freebsd && !netbsd && !openbsd && !dragonfly && !windows

package nativeio

// statHandle falls back to os.FileInfo's portable subset on platforms
// without a syscall.Stat_t-shaped Sys() result (plan9, js/wasm); fields
// with no portable source are left zero.
func statHandle(h *Handle) (Stat, error) {
	fi, err := h.fd.Stat()
	if err != nil {
		return Stat{}, err
	}
	typ := TypeFile
	if fi.IsDir() {
		typ = TypeDirectory
	}
	return Stat{
		Type:  typ,
		Perms: uint32(fi.Mode().Perm()),
		Size:  fi.Size(),
		Mtime: fi.ModTime(),
	}, nil
}
