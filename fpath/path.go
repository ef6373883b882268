// Package fpath implements the immutable path value of spec.md §4.B: a
// platform-native path with a direct form (as supplied) and a canonical
// form suitable for passing to kernel APIs that bypass per-process prefix
// length limits.
package fpath

import (
	"path/filepath"
	"strings"
)

// Path is an immutable, ordered sequence of path components in
// platform-native encoding. Comparisons are exact: no case folding.
type Path struct {
	direct string
}

// New wraps s as a Path with minimal validation, preserving it exactly as
// supplied. Use Canonical to obtain the normalized, kernel-safe form.
func New(s string) Path {
	return Path{direct: s}
}

// String returns the direct form, as supplied.
func (p Path) String() string { return p.direct }

// IsAbs reports whether the path is absolute.
func (p Path) IsAbs() bool { return filepath.IsAbs(p.direct) }

// Dir returns the parent path.
func (p Path) Dir() Path { return Path{direct: filepath.Dir(p.direct)} }

// Base returns the final path component.
func (p Path) Base() string { return filepath.Base(p.direct) }

// Join returns p with an additional relative component appended.
func (p Path) Join(component string) Path {
	return Path{direct: filepath.Join(p.direct, component)}
}

// Equal does exact, non-folding comparison of the direct forms.
func (p Path) Equal(other Path) bool { return p.direct == other.direct }

// Canonical returns the platform-native long/volume-qualified form of p,
// suitable for syscalls that need to bypass prefix-length limits (e.g. the
// Windows `\\?\` long-path prefix). Normalization is pure and reentrant: it
// may consult the OS to resolve volume identifiers but never mutates any
// global state.
func (p Path) Canonical() (Path, error) {
	norm, err := canonicalize(p.direct)
	if err != nil {
		return Path{}, err
	}
	return Path{direct: norm}, nil
}

// HasSuffixFold reports whether the base name ends with suffix. The match
// is exact and case-sensitive on every platform, Windows included; no case
// folding is done.
func (p Path) HasSuffixFold(suffix string) bool {
	return strings.HasSuffix(p.Base(), suffix)
}
