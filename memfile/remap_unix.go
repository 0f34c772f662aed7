//go:build darwin || freebsd

package memfile

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// remap grows the file to newSize and re-establishes the mapping. Without an
// mremap syscall this is unmap, truncate, map again; the base address may
// change, so callers must hold offsets, not pointers, across this.
func (f *File) remap(newSize int64) error {
	if f.data != nil {
		if err := unix.Munmap(f.data); err != nil {
			return fmt.Errorf("memfile: munmap before grow: %w", err)
		}
		f.data = nil
	}

	if err := f.f.Truncate(newSize); err != nil {
		// Try to remap the old size to recover.
		data, _ := unix.Mmap(int(f.f.Fd()), 0, int(f.size),
			unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
		f.data = data
		return fmt.Errorf("memfile: truncate to %d: %w", newSize, err)
	}

	data, err := unix.Mmap(int(f.f.Fd()), 0, int(newSize),
		unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		oldData, _ := unix.Mmap(int(f.f.Fd()), 0, int(f.size),
			unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
		f.data = oldData
		return fmt.Errorf("memfile: mmap after grow: %w", err)
	}

	f.data = data
	f.size = newSize
	return nil
}
