package nativeio

import "strings"

// StatfsResult describes volume properties for the filesystem backing a
// handle (spec §3 StatfsResult / §6 statfs).
type StatfsResult struct {
	Bsize           int64
	Blocks          int64
	Bfree           int64
	Bavail          int64
	Files           int64
	Ffree           int64
	Namemax         int64
	Fstypename      string
	Mntfromname     string
	Mntonname       string
	ReadOnly        bool
	NoExec          bool
	NoSuid          bool
	ACLs            bool
	Xattr           bool
	Compression     bool
	Extents         bool
	FileCompression bool
}

// fstypeCapability records what a given filesystem type is known to
// support, independent of how it happens to be mounted right now. Keyed by
// the lowercased name statfs/mtab/GetVolumeInformation reports.
type fstypeCapability struct {
	acls, xattr, extents, compression, fileCompression bool
}

// fstypeCapabilities is deliberately conservative: an fstype absent from
// this table reports every capability as false rather than guessing.
var fstypeCapabilities = map[string]fstypeCapability{
	"ext4":    {acls: true, xattr: true, extents: true},
	"ext3":    {acls: true, xattr: true},
	"xfs":     {acls: true, xattr: true, extents: true},
	"btrfs":   {acls: true, xattr: true, extents: true, compression: true},
	"zfs":     {acls: true, xattr: true, compression: true},
	"apfs":    {acls: true, xattr: true, compression: true},
	"hfs":     {acls: true, xattr: true},
	"ntfs":    {acls: true, xattr: true, compression: true, fileCompression: true},
	"refs":    {acls: true, xattr: true, compression: true},
	"tmpfs":   {xattr: true},
	"overlay": {xattr: true},
}

// applyFstypeCapabilities fills in res's ACLs/Xattr/Extents/Compression/
// FileCompression fields from its already-resolved Fstypename (spec §3/§4.G
// "derived from per-fstype knowledge plus mount options"). Mount-option-only
// flags (NoExec/NoSuid/ReadOnly) are set by the platform-specific resolver
// instead, since the fstype alone says nothing about them.
func applyFstypeCapabilities(res *StatfsResult) {
	c, ok := fstypeCapabilities[strings.ToLower(res.Fstypename)]
	if !ok {
		return
	}
	res.ACLs = c.acls
	res.Xattr = c.xattr
	res.Extents = c.extents
	res.Compression = c.compression
	res.FileCompression = c.fileCompression
}

// Statfs queries the volume backing the handle's path, augmenting the
// native statfs(2)/GetDiskFreeSpaceEx result with the mount-point and
// filesystem-type name resolved via /etc/mtab (falling back to
// gopsutil's partition scan when mtab parsing turns up nothing, e.g.
// inside a container with a synthetic mount table).
func (h *Handle) Statfs() (StatfsResult, error) {
	h.mu.Lock()
	path := h.path.String()
	h.mu.Unlock()
	return statfsPath(path)
}
