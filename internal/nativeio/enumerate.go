package nativeio

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// deletePendingPrefix marks a sentinel name a rename-before-unlink left
// behind: this layer's own delete-on-close Windows fallback
// renames a file to this prefix plus a uuid before removing it, so a
// concurrent enumerate that raced the rename must hide it rather than
// surface a file that's already semantically gone.
const deletePendingPrefix = ".afiod-"

// EnumerateFilter selects caller-visible filtering for Enumerate (spec
// §4.G "filtering"). The zero value applies no filtering: every name
// physically present in the directory is returned, including this
// process's own in-flight delete-pending sentinels.
type EnumerateFilter uint32

const (
	// FilterHideDeletePending hides entries carrying deletePendingPrefix.
	FilterHideDeletePending EnumerateFilter = 1 << iota
)

func (f EnumerateFilter) has(want EnumerateFilter) bool { return f&want == want }

// Entry is one directory entry returned by Enumerate, optionally with
// gap-filled metadata from a follow-up lstat.
type Entry struct {
	Name string
	Stat Stat
	Have bool // whether Stat was actually populated
}

// maxParallelStats bounds the goroutines Enumerate spawns to gap-fill
// metadata the initial listing didn't already carry (Go's os.ReadDir
// satisfies most platforms' getdents in one batch without per-entry
// stats, but callers that asked for metadata still need it).
const maxParallelStats = 32

// Enumerate lists the handle's directory contents, paginated per spec
// §4.G's (handle, max_items, restart, glob, wanted_metadata, filtering) ->
// (entries, more_available) operation. restart=true (or this being the
// first call against h) takes a fresh snapshot of the directory — applying
// glob and filter once — and resets the handle's pagination cursor;
// restart=false continues from wherever the previous call left off. A
// caller drains a listing by looping with restart=false until
// moreAvailable is false. maxItems<=0 means "no bound": the whole
// remaining snapshot is returned in one page.
//
// If glob is non-empty and contains no wildcard metacharacters, this
// takes a literal fast path — a single lstat of dir+"/"+glob instead of a
// full directory scan — and always returns it complete in one page
// (restart/maxItems don't apply to a lookup that can match at most one
// name).
func (h *Handle) Enumerate(ctx context.Context, maxItems int, restart bool, glob string, withMetadata bool, filter EnumerateFilter) ([]Entry, bool, error) {
	h.mu.Lock()
	dirPath := h.path.String()
	h.mu.Unlock()

	if glob != "" && !containsMeta(glob) {
		entries, err := h.literalLookup(dirPath, glob, withMetadata, filter)
		return entries, false, err
	}

	h.mu.Lock()
	needsSnapshot := restart || h.enumNames == nil
	h.mu.Unlock()

	if needsSnapshot {
		names, err := loadDirectorySnapshot(h.fd, glob, filter)
		if err != nil {
			return nil, false, err
		}
		h.mu.Lock()
		h.enumNames = names
		h.enumPos = 0
		h.mu.Unlock()
	}

	h.mu.Lock()
	names := h.enumNames
	pos := h.enumPos
	end := len(names)
	if maxItems > 0 && pos+maxItems < end {
		end = pos + maxItems
	}
	page := append([]string(nil), names[pos:end]...)
	h.enumPos = end
	more := h.enumPos < len(h.enumNames)
	h.mu.Unlock()

	if !withMetadata {
		entries := make([]Entry, len(page))
		for i, name := range page {
			entries[i] = Entry{Name: name}
		}
		return entries, more, nil
	}
	entries, err := h.gapFillStats(ctx, dirPath, page)
	return entries, more, err
}

// loadDirectorySnapshot reads, filters, globs and sorts the directory's
// current name list, the one-shot scan a restart=true call performs
// before pagination begins.
func loadDirectorySnapshot(fd *os.File, glob string, filter EnumerateFilter) ([]string, error) {
	names, err := readdirnames(fd)
	if err != nil {
		return nil, err
	}

	filtered := names[:0]
	for _, name := range names {
		if name == "." || name == ".." {
			continue
		}
		if filter.has(FilterHideDeletePending) && strings.HasPrefix(name, deletePendingPrefix) {
			continue
		}
		if glob != "" {
			matched, merr := filepath.Match(glob, name)
			if merr != nil {
				return nil, merr
			}
			if !matched {
				continue
			}
		}
		filtered = append(filtered, name)
	}
	sort.Strings(filtered)
	return filtered, nil
}

func (h *Handle) literalLookup(dirPath, name string, withMetadata bool, filter EnumerateFilter) ([]Entry, error) {
	full := filepath.Join(dirPath, name)
	if filter.has(FilterHideDeletePending) && strings.HasPrefix(name, deletePendingPrefix) {
		return nil, nil
	}
	if _, err := os.Lstat(full); err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	if !withMetadata {
		return []Entry{{Name: name}}, nil
	}
	return h.gapFillStats(context.Background(), dirPath, []string{name})
}

// gapFillStats lstats each entry concurrently, bounded by a semaphore,
// mirroring the teacher's doParallelStat worker-pool pattern but
// expressed with errgroup/semaphore instead of a bespoke channel+WaitGroup
// pair.
func (h *Handle) gapFillStats(ctx context.Context, dirPath string, names []string) ([]Entry, error) {
	entries := make([]Entry, len(names))
	sem := semaphore.NewWeighted(maxParallelStats)
	g, ctx := errgroup.WithContext(ctx)

	for i, name := range names {
		i, name := i, name
		if err := sem.Acquire(ctx, 1); err != nil {
			break
		}
		g.Go(func() error {
			defer sem.Release(1)
			st, err := lstatPath(filepath.Join(dirPath, name))
			if err != nil {
				if os.IsNotExist(err) {
					entries[i] = Entry{Name: name}
					return nil
				}
				return err
			}
			entries[i] = Entry{Name: name, Stat: st, Have: true}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return entries, nil
}

func containsMeta(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[")
}
