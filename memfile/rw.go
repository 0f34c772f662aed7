package memfile

import (
	"fmt"

	"github.com/joshuapare/memfile/internal/buf"
)

// Read copies length bytes starting at offset out of the mapping. The range
// must lie inside the current mapping and must not start at the reserved
// offset 0. No allocation bookkeeping is consulted: the mapping is treated
// as a flat byte array, so reading a range that is not inside a live
// allocation returns whatever bytes happen to be there.
func (f *File) Read(offset, length uint64) ([]byte, error) {
	if f == nil || f.data == nil {
		return nil, ErrClosed
	}
	if offset == 0 {
		return nil, fmt.Errorf("read at reserved offset 0: %w", ErrOutOfBounds)
	}
	src, ok := buf.Slice(f.data, offset, length)
	if !ok {
		return nil, fmt.Errorf("read [%d, +%d) beyond %d mapped bytes: %w",
			offset, length, len(f.data), ErrOutOfBounds)
	}
	out := make([]byte, length)
	copy(out, src)
	return out, nil
}

// Write copies b into the mapping at offset, with the same bounds rules as
// Read. The write lands in the shared mapping immediately; durability
// requires Sync or SyncDirty.
func (f *File) Write(offset uint64, b []byte) error {
	if f == nil || f.data == nil {
		return ErrClosed
	}
	if offset == 0 {
		return fmt.Errorf("write at reserved offset 0: %w", ErrOutOfBounds)
	}
	dst, ok := buf.Slice(f.data, offset, uint64(len(b)))
	if !ok {
		return fmt.Errorf("write [%d, +%d) beyond %d mapped bytes: %w",
			offset, len(b), len(f.data), ErrOutOfBounds)
	}
	copy(dst, b)
	f.dirty.Add(int64(offset), int64(len(b)))
	return nil
}

// Ptr returns the mapped bytes from offset to the end of the mapping, or
// nil when offset is 0 or past the mapping.
//
// The slice aliases the mapping and is valid only until the next Alloc,
// Free, or Coalesce on the same handle (and any Refresh): Alloc and Refresh
// may remap the file and move the base address. Read and Write re-resolve
// the base on every call
// and are the safe long-term interface.
func (f *File) Ptr(offset uint64) []byte {
	if f == nil || f.data == nil || offset == 0 || offset >= uint64(len(f.data)) {
		return nil
	}
	return f.data[offset:]
}
