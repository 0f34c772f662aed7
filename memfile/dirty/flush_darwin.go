//go:build darwin

package dirty

import (
	"golang.org/x/sys/unix"
)

// flushRanges flushes dirty ranges to disk.
//
// On macOS, msync() requires the address to match the original mmap()
// address, so sub-slices cannot be passed. Flush the entire mapped region;
// the kernel only writes pages that are actually dirty.
func (t *Tracker) flushRanges(data []byte) error {
	return unix.Msync(data, unix.MS_SYNC)
}
