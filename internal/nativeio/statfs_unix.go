//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package nativeio

import (
	"syscall"

	"github.com/artyom/mtab"
	"github.com/shirou/gopsutil/v3/disk"
)

// statfsPath mirrors the teacher's About(): a syscall.Statfs_t read for
// the quota numbers, here additionally resolving which mount entry and
// filesystem type the path lives under.
func statfsPath(path string) (StatfsResult, error) {
	var s syscall.Statfs_t
	if err := syscall.Statfs(path, &s); err != nil {
		return StatfsResult{}, err
	}
	bs := int64(s.Bsize) // nolint: unconvert
	res := StatfsResult{
		Bsize:  bs,
		Blocks: int64(s.Blocks),
		Bfree:  int64(s.Bfree),
		Bavail: int64(s.Bavail),
		Files:  int64(s.Files),
		Ffree:  int64(s.Ffree),
	}
	resolveMount(path, &res)
	applyFstypeCapabilities(&res)
	return res, nil
}

// resolveMount finds the longest-prefix-matching mount entry for path,
// via /etc/mtab first (artyom/mtab), falling back to gopsutil's
// partition listing when mtab is absent/empty — the case inside many
// container runtimes, which bind-mount over /etc/mtab or omit it.
func resolveMount(path string, res *StatfsResult) {
	entries, err := mtab.Entries("")
	if err == nil {
		best := -1
		for _, e := range entries {
			if len(e.Dir) > best && hasPrefixDir(path, e.Dir) {
				best = len(e.Dir)
				res.Mntonname = e.Dir
				res.Mntfromname = e.Device
				res.Fstypename = e.Type
				res.ReadOnly = containsOpt(e.Opts, "ro")
				res.NoExec = containsOpt(e.Opts, "noexec")
				res.NoSuid = containsOpt(e.Opts, "nosuid")
			}
		}
		if res.Mntonname != "" {
			return
		}
	}

	parts, err := disk.Partitions(true)
	if err != nil {
		return
	}
	best := -1
	for _, p := range parts {
		if len(p.Mountpoint) > best && hasPrefixDir(path, p.Mountpoint) {
			best = len(p.Mountpoint)
			res.Mntonname = p.Mountpoint
			res.Mntfromname = p.Device
			res.Fstypename = p.Fstype
			res.ReadOnly = containsOpt(p.Opts, "ro")
			res.NoExec = containsOpt(p.Opts, "noexec")
			res.NoSuid = containsOpt(p.Opts, "nosuid")
		}
	}
}

func hasPrefixDir(path, dir string) bool {
	if dir == "/" {
		return true
	}
	if len(path) < len(dir) {
		return false
	}
	if path[:len(dir)] != dir {
		return false
	}
	return len(path) == len(dir) || path[len(dir)] == '/'
}

func containsOpt(opts []string, want string) bool {
	for _, o := range opts {
		if o == want {
			return true
		}
	}
	return false
}
