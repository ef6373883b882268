package nativeio

import "os"

// Extent is a contiguous allocated range within a file.
type Extent struct {
	Offset int64
	Length int64
}

// Extents enumerates the allocated ranges of the handle's file by walking
// SEEK_DATA/SEEK_HOLE where the platform's lseek supports those whences,
// coalescing adjacent ranges. Where the platform has no hole-sparse
// introspection, the whole file is reported as a single extent — a
// correct if conservative answer, since "has data everywhere" is always
// true of any range with no reported holes.
func (h *Handle) Extents() ([]Extent, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.verifyIdentity(); err != nil {
		return nil, err
	}
	size, err := fileSize(h.fd)
	if err != nil {
		return nil, err
	}
	if size == 0 {
		return nil, nil
	}
	raw, err := seekExtents(h.fd, size)
	if err != nil {
		return []Extent{{Offset: 0, Length: size}}, nil
	}
	return coalesce(raw), nil
}

func fileSize(fd *os.File) (int64, error) {
	fi, err := fd.Stat()
	if err != nil {
		return 0, err
	}
	return fi.Size(), nil
}

func coalesce(extents []Extent) []Extent {
	if len(extents) == 0 {
		return extents
	}
	out := make([]Extent, 0, len(extents))
	cur := extents[0]
	for _, e := range extents[1:] {
		if cur.Offset+cur.Length == e.Offset {
			cur.Length += e.Length
			continue
		}
		out = append(out, cur)
		cur = e
	}
	return append(out, cur)
}
