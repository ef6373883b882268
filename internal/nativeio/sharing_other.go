//go:build !windows

package nativeio

// isSharingViolation is always false outside Windows: POSIX unlink never
// refuses because another handle has the file open.
func isSharingViolation(err error) bool { return false }
