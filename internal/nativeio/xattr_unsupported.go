//go:build windows || plan9

package nativeio

// markTemporaryHint/clearTemporaryHint are no-ops where pkg/xattr has no
// backing syscall (Windows has alternate-data-stream metadata instead,
// plan9 has none at all reachable from this layer).
func markTemporaryHint(path string) {}
func clearTemporaryHint(path string) {}
