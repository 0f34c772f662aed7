//go:build linux || darwin || freebsd

package memfile

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// Advisory whole-file locks over the backing descriptor. The allocator never
// takes these itself: the unit of synchronization is a caller's transaction,
// and only the caller knows where that boundary is. The convention is an
// exclusive lock around any sequence containing Alloc, Free, Coalesce, or
// Write, and a shared lock around pure read sequences.

// LockShared acquires a shared advisory lock, blocking until granted.
// Multiple processes may hold it concurrently.
func (f *File) LockShared() error { return f.flock(unix.LOCK_SH) }

// LockExclusive acquires an exclusive advisory lock, blocking until granted.
func (f *File) LockExclusive() error { return f.flock(unix.LOCK_EX) }

// Unlock releases whichever advisory lock is held.
func (f *File) Unlock() error { return f.flock(unix.LOCK_UN) }

func (f *File) flock(how int) error {
	if f == nil || f.f == nil {
		return ErrClosed
	}
	if err := unix.Flock(int(f.f.Fd()), how); err != nil {
		return fmt.Errorf("memfile: flock: %w", err)
	}
	return nil
}
