//go:build !windows && !darwin

package fpath

import "path/filepath"

// canonicalize returns the absolute form of s. Most POSIX kernels have no
// per-process path-length ceiling worth routing around, so the canonical
// form is simply the absolute path.
func canonicalize(s string) (string, error) {
	return filepath.Abs(s)
}
