//go:build !linux && !darwin

package nativeio

// applyAccessHints is a no-op where the platform exposes no advisory
// access-pattern syscall reachable from this layer (Windows hints would
// need to be passed to CreateFile itself; everything else in the pack
// lacks a portable equivalent).
func applyAccessHints(h *Handle, flags OpenFlags) {}
