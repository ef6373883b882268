//go:build windows

package nativeio

import "os"

// fillPlatformLstat has no Windows fields to add beyond what os.FileInfo
// already exposes portably; the by-handle volume/index identity is only
// obtainable by opening the entry, which Enumerate's gap-fill path
// deliberately avoids per entry for performance.
func fillPlatformLstat(s *Stat, fi os.FileInfo) {}
