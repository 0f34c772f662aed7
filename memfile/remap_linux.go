//go:build linux

package memfile

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// remap grows the file to newSize and resizes the mapping in place, letting
// the kernel move it when the adjacent address space is taken. The base
// address may change; callers must hold offsets, not pointers, across this.
func (f *File) remap(newSize int64) error {
	if err := f.f.Truncate(newSize); err != nil {
		return fmt.Errorf("memfile: truncate to %d: %w", newSize, err)
	}
	data, err := unix.Mremap(f.data, int(newSize), unix.MREMAP_MAYMOVE)
	if err != nil {
		return fmt.Errorf("memfile: mremap to %d: %w", newSize, err)
	}
	f.data = data
	f.size = newSize
	return nil
}
