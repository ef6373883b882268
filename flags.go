package afio

// OpenFlags is the recognized open-flag set (spec §6).
type OpenFlags uint32

const (
	FlagRead OpenFlags = 1 << iota
	FlagWrite
	FlagAppend
	FlagTruncate
	FlagCreate
	FlagCreateOnlyIfNotExist
	FlagCreateCompressed
	FlagAlwaysSync
	FlagSyncOnClose
	FlagDirect
	FlagLockable
	FlagDeleteOnClose
	FlagTemporaryFile
	FlagSequential
	FlagRandom
	FlagHoldParentOpen
	FlagNoRaceProtection
	FlagUniqueDirectoryHandle
	FlagNoSparse

	// internal sub-flags, reserved for implementations
	flagInternalDir
	flagInternalLink
	flagInternalShareDelete
	flagInternalParentOpenNested
)

// Has reports whether all bits of want are set in f.
func (f OpenFlags) Has(want OpenFlags) bool { return f&want == want }

// AsyncOpFlags controls how a submitted operation's task is scheduled
// relative to its precondition (spec §4.F).
type AsyncOpFlags uint32

const (
	// OpNone runs the task queued through the thread source, in arrival order.
	OpNone AsyncOpFlags = 0
	// OpImmediate runs the per-kind implementation synchronously on the
	// thread that completes the precondition.
	OpImmediate AsyncOpFlags = 1 << (iota - 1)
	// OpDetachedFuture is a recognized flag value that Submit, Barrier and
	// Completion do not read: they publish their Future themselves whether
	// or not it is set. Explicit publishing is done with Future.Publish.
	OpDetachedFuture
)

// MetadataFlags is a bitmask over the Stat fields a caller wants populated
// (spec §6 "Metadata request set"). Implementations may over-report.
type MetadataFlags uint32

const (
	MetaDev MetadataFlags = 1 << iota
	MetaIno
	MetaType
	MetaPerms
	MetaNlink
	MetaUID
	MetaGID
	MetaRdev
	MetaAtime
	MetaMtime
	MetaCtime
	MetaSize
	MetaAllocated
	MetaBlocks
	MetaBlksize
	MetaFlags
	MetaGen
	MetaBirthtime
	MetaSparse
	MetaCompressed
	MetaReparsePoint

	MetaAll MetadataFlags = (1 << iota) - 1
)

// Has reports whether all bits of want are set in f.
func (f MetadataFlags) Has(want MetadataFlags) bool { return f&want == want }

// FsMetadataFlags is a bitmask over the StatfsResult fields a caller wants
// populated (spec §6 "Filesystem metadata request set").
type FsMetadataFlags uint32

const (
	FsMetaBsize FsMetadataFlags = 1 << iota
	FsMetaIosize
	FsMetaBlocks
	FsMetaBfree
	FsMetaBavail
	FsMetaFiles
	FsMetaFfree
	FsMetaOwner
	FsMetaFsid
	FsMetaNamemax
	FsMetaFstypename
	FsMetaMntfromname
	FsMetaMntonname
	FsMetaFlags

	FsMetaAll FsMetadataFlags = (1 << iota) - 1
)

// Has reports whether all bits of want are set in f.
func (f FsMetadataFlags) Has(want FsMetadataFlags) bool { return f&want == want }

// LockType is the kind of byte-range lock a LockRequest asks for.
type LockType int

const (
	LockRead LockType = iota
	LockWrite
	LockUnlock
)

// EnumerateFilter selects which caller-visible filtering a directory
// enumeration applies (spec §4.G "filtering"). The zero value applies no
// filtering.
type EnumerateFilter uint32

const (
	// FilterHideDeletePending hides entries whose name carries this
	// process's own delete-pending rename sentinel (spec §6 "Persisted
	// artifacts"), left behind by the Windows delete-on-close fallback.
	FilterHideDeletePending EnumerateFilter = 1 << iota
)

// Has reports whether all bits of want are set in f.
func (f EnumerateFilter) Has(want EnumerateFilter) bool { return f&want == want }

// Direction distinguishes a read IoRequest from a write IoRequest.
type Direction int

const (
	DirRead Direction = iota
	DirWrite
)
