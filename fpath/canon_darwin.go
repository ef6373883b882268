//go:build darwin

package fpath

import (
	"path/filepath"

	"golang.org/x/text/unicode/norm"
)

// canonicalize returns the absolute form of s with NFC normalization
// applied, matching HFS+/APFS's habit of storing filenames as NFD: two
// paths that the kernel treats as identical must canonicalize to the same
// afio Path so directory-cache and race checks agree with it.
func canonicalize(s string) (string, error) {
	abs, err := filepath.Abs(s)
	if err != nil {
		return "", err
	}
	return norm.NFC.String(abs), nil
}
