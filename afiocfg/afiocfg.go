// Package afiocfg is the dispatcher's ambient configuration surface,
// modeled on the teacher's own options-struct-plus-struct-tag config
// layer (fs/config/configstruct): every tunable is a field on Options
// with a default, rather than package-level flags or environment lookups
// scattered through the codebase.
package afiocfg

import "time"

// Options configures a Dispatcher at construction time.
type Options struct {
	// Workers is the thread source's worker count (spec §4.A). When zero,
	// ResolvedWorkers uses four times the CPU count it is given, at least 4.
	Workers int `config:"workers" default:"0"`

	// DirCacheShardSize bounds the per-shard capacity of the directory
	// handle cache (spec §4.D).
	DirCacheShardSize int `config:"dir_cache_shard_size" default:"64"`

	// LockIdleExpiry names an idle expiry for unreferenced sidecar lock
	// descriptors (spec §4.H). NewFromOptions does not read it, and the
	// lock registry has no idle expiry.
	LockIdleExpiry time.Duration `config:"lock_idle_expiry" default:"30s"`

	// FollowSymlinksInStat names whether Stat follows a final symlink
	// component. NewFromOptions does not read it; Stat behaviour does not
	// depend on it.
	FollowSymlinksInStat bool `config:"follow_symlinks_in_stat" default:"false"`
}

// Default returns an Options populated with every field's struct-tag
// default, the same pattern the teacher's configstruct.Reload applies
// against a live options struct.
func Default() Options {
	return Options{
		Workers:              0,
		DirCacheShardSize:    64,
		LockIdleExpiry:       30 * time.Second,
		FollowSymlinksInStat: false,
	}
}

// resolvedWorkers returns the effective worker count, substituting a
// sensible default when the caller left Workers at its zero value.
func (o Options) resolvedWorkers(numCPU int) int {
	if o.Workers > 0 {
		return o.Workers
	}
	n := numCPU * 4
	if n < 4 {
		n = 4
	}
	return n
}

// ResolvedWorkers is the exported form of resolvedWorkers, taking the
// caller's runtime.NumCPU() so this package doesn't import runtime just
// for one call site.
func (o Options) ResolvedWorkers(numCPU int) int { return o.resolvedWorkers(numCPU) }
