//go:build windows

package nativeio

// isEINTR is always false on Windows, which has no signal-interruption
// analogue for synchronous file I/O.
func isEINTR(err error) bool { return false }
