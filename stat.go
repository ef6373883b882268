package afio

import "time"

// EntityType is the kind of filesystem object a Stat or DirectoryEntry
// describes.
type EntityType int

const (
	TypeUnknown EntityType = iota
	TypeFile
	TypeDirectory
	TypeSymlink
	TypeOther
)

// Stat carries the subset of metadata a caller requested via
// MetadataFlags; implementations may over-report additional fields but
// never fabricate ones the platform cannot supply.
type Stat struct {
	Dev           uint64
	Ino           uint64
	Type          EntityType
	Perms         uint32
	Nlink         uint64
	UID           uint32
	GID           uint32
	Rdev          uint64
	Atime         time.Time
	Mtime         time.Time
	Ctime         time.Time
	Birthtime     time.Time
	Size          int64
	AllocatedSize int64
	Blocks        int64
	Blksize       int64
	Flags         uint32
	Gen           uint64
	Sparse        bool
	Compressed    bool
	ReparsePoint  bool

	// Have records which fields above are authoritative, mirroring the
	// caller's MetadataFlags request (plus whatever was over-reported).
	Have MetadataFlags
}

// DirectoryEntry is one entry returned by directory enumeration.
type DirectoryEntry struct {
	Name string
	Stat Stat
	Have MetadataFlags
}

// EnumerateResult is the result of one paginated Enumerate call (spec
// §4.G): a page of entries plus whether more remain for a subsequent
// restart=false call to fetch.
type EnumerateResult struct {
	Entries       []DirectoryEntry
	MoreAvailable bool
}

// StatfsResult describes volume properties (spec §3 StatfsResult).
type StatfsResult struct {
	Bsize       int64
	Iosize      int64
	Blocks      int64
	Bfree       int64
	Bavail      int64
	Files       int64
	Ffree       int64
	Owner       uint32
	Fsid        string
	Namemax     int64
	Fstypename  string
	Mntfromname string
	Mntonname   string

	ReadOnly    bool
	NoExec      bool
	NoSuid      bool
	ACLs        bool
	Xattr       bool
	Compression bool
	Extents     bool
	FileCompression bool

	Have FsMetadataFlags
}

// Extent is a contiguous allocated range within a file.
type Extent struct {
	Offset int64
	Length int64
}

// ExtentList is an ordered, non-overlapping, coalesced-where-adjacent list
// of extents.
type ExtentList []Extent

// IoBuffer is one (base, length) span of a scatter/gather IoRequest.
type IoBuffer struct {
	Base   []byte
	Length int
}

// IoRequest describes a scatter/gather read or write.
type IoRequest struct {
	Offset  int64
	Buffers []IoBuffer
}

// LockRequest describes a byte-range lock request.
type LockRequest struct {
	Offset int64
	Length int64
	Type   LockType
}
