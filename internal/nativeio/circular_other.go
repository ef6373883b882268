//go:build windows || plan9 || js

package nativeio

// isCircularSymlinkError: Windows reparse-point resolution reports loops
// via a distinct error this layer doesn't special-case yet; plan9 has no
// symlinks at all.
func isCircularSymlinkError(err error) bool { return false }
