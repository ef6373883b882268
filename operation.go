package afio

// OpKind identifies which dispatcher operation produced a Future, for
// diagnostics and metrics labeling (spec §4.E "operation record").
type OpKind string

const (
	OpKindOpen       OpKind = "open"
	OpKindClose      OpKind = "close"
	OpKindRead       OpKind = "read"
	OpKindWrite      OpKind = "write"
	OpKindTruncate   OpKind = "truncate"
	OpKindZeroRange  OpKind = "zero_range"
	OpKindSync       OpKind = "sync"
	OpKindExtents    OpKind = "extents"
	OpKindEnumerate  OpKind = "enumerate"
	OpKindStat       OpKind = "stat"
	OpKindStatfs     OpKind = "statfs"
	OpKindLock       OpKind = "lock"
	OpKindUnlock     OpKind = "unlock"
	OpKindLink       OpKind = "link"
	OpKindUnlink     OpKind = "unlink"
	OpKindRelink     OpKind = "relink"
	OpKindBarrier    OpKind = "barrier"
	OpKindCompletion OpKind = "completion"
)

// FilterFunc post-processes an operation's (value, error) pair before it is
// published to the op's Future, e.g. the read/write buffer filters of spec
// §4.F ("post-op filters"). Filters run on the same goroutine that would
// otherwise publish the result.
type FilterFunc func(kind OpKind, value any, err error) (any, error)
