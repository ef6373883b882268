//go:build windows

package fpath

import (
	"path/filepath"
	"strings"
)

// longPathPrefix is prepended so that syscalls bypass MAX_PATH.
const longPathPrefix = `\\?\`

// canonicalize returns the absolute, backslash-normalized, long-path-
// prefixed form of s, the form every Windows-family kernel API in
// internal/nativeio expects so it isn't subject to the legacy MAX_PATH
// limit.
func canonicalize(s string) (string, error) {
	abs, err := filepath.Abs(s)
	if err != nil {
		return "", err
	}
	if strings.HasPrefix(abs, longPathPrefix) {
		return abs, nil
	}
	if strings.HasPrefix(abs, `\\`) {
		// UNC path: \\server\share -> \\?\UNC\server\share
		return longPathPrefix + `UNC` + abs[1:], nil
	}
	return longPathPrefix + abs, nil
}
