package nativeio

import "errors"

// errNotSupported is returned by platform shims with no native primitive
// for the requested operation, signaling the caller to fall back to a
// portable emulation rather than failing outright.
var errNotSupported = errors.New("nativeio: not supported on this platform")
