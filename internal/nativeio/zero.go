package nativeio

// ZeroRange deallocates [offset, offset+length) from the handle's backing
// store where the platform supports punching a hole, falling back to
// writing zeroes when it doesn't. Either way, subsequent reads of the
// range observe zero bytes (spec §6 zero_range).
func (h *Handle) ZeroRange(offset, length int64) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.verifyIdentity(); err != nil {
		return err
	}
	if err := punchHole(h.fd, offset, length); err == nil {
		h.MarkWrite()
		return nil
	}
	if err := zeroByWriting(h.fd, offset, length); err != nil {
		return err
	}
	h.MarkWrite()
	return nil
}

const zeroBufSize = 1 << 20

func zeroByWriting(fd interface {
	WriteAt(p []byte, off int64) (int, error)
}, offset, length int64) error {
	buf := make([]byte, zeroBufSize)
	for length > 0 {
		n := int64(len(buf))
		if n > length {
			n = length
		}
		if _, err := fd.WriteAt(buf[:n], offset); err != nil {
			return err
		}
		offset += n
		length -= n
	}
	return nil
}
