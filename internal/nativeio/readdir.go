package nativeio

import "os"

// readdirnames lists a directory handle's entries, seeking back to the
// start first since this handle may be enumerated more than once over its
// lifetime (os.File.Readdirnames otherwise resumes from wherever the
// previous call left off).
func readdirnames(fd *os.File) ([]string, error) {
	if _, err := fd.Seek(0, 0); err != nil {
		return nil, err
	}
	return fd.Readdirnames(-1)
}

// lstatPath gap-fills metadata for one directory entry by name, following
// the teacher's own doSingleStat: plain os.Lstat, since a full directory
// scan already paid for readdir and only needs per-entry detail a bare
// name doesn't carry.
func lstatPath(path string) (Stat, error) {
	fi, err := os.Lstat(path)
	if err != nil {
		return Stat{}, err
	}
	typ := TypeFile
	switch {
	case fi.IsDir():
		typ = TypeDirectory
	case fi.Mode()&os.ModeSymlink != 0:
		typ = TypeSymlink
	}
	s := Stat{
		Type:  typ,
		Perms: uint32(fi.Mode().Perm()),
		Size:  fi.Size(),
		Mtime: fi.ModTime(),
	}
	fillPlatformLstat(&s, fi)
	return s, nil
}
