//go:build linux || darwin || freebsd

package memfile

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"

	"github.com/joshuapare/memfile/internal/format"
	"github.com/joshuapare/memfile/memfile/dirty"
)

// Open maps the memory file at path RW so the allocator can mutate in place.
//
// An existing non-empty file is mapped at its current size and its header is
// validated; ErrBadFormat is returned when the magic or version is wrong. An
// absent or empty file is created at initialSize (at least one page) and
// initialized. A freshly created file is unlinked again when any later step
// of the open fails, so a retry starts clean.
func Open(path string, initialSize uint64) (*File, error) {
	st, err := os.Stat(path)
	if err == nil && st.Size() > 0 {
		return openExisting(path, st.Size())
	}
	return create(path, initialSize)
}

func openExisting(path string, size int64) (*File, error) {
	fd, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, err
	}

	data, err := unix.Mmap(int(fd.Fd()), 0, int(size),
		unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		_ = fd.Close()
		return nil, fmt.Errorf("memfile: mmap %s: %w", path, err)
	}

	if _, err := format.ParseHeader(data); err != nil {
		_ = unix.Munmap(data)
		_ = fd.Close()
		return nil, fmt.Errorf("open %s: %w", path, ErrBadFormat)
	}

	return &File{
		f:     fd,
		path:  path,
		data:  data,
		size:  size,
		dirty: dirty.NewTracker(),
	}, nil
}

func create(path string, initialSize uint64) (*File, error) {
	fd, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return nil, err
	}
	fail := func(err error) (*File, error) {
		_ = fd.Close()
		_ = os.Remove(path)
		return nil, err
	}

	if initialSize < format.MinFileSize {
		initialSize = format.MinFileSize
	}
	if err := fd.Truncate(int64(initialSize)); err != nil {
		return fail(fmt.Errorf("memfile: truncate %s: %w", path, err))
	}

	data, err := unix.Mmap(int(fd.Fd()), 0, int(initialSize),
		unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		return fail(fmt.Errorf("memfile: mmap %s: %w", path, err))
	}

	format.InitHeader(data, initialSize)

	f := &File{
		f:     fd,
		path:  path,
		data:  data,
		size:  int64(initialSize),
		dirty: dirty.NewTracker(),
	}
	f.dirty.Add(0, format.HeaderSize)
	return f, nil
}

// Close syncs the mapping, unmaps it, and closes the descriptor. It is
// idempotent; the second call is a no-op.
func (f *File) Close() error {
	if f == nil || f.f == nil {
		return nil
	}
	syncErr := f.Sync()
	if f.data != nil {
		_ = unix.Munmap(f.data)
		f.data = nil
	}
	err := f.f.Close()
	f.f = nil
	if syncErr != nil {
		return syncErr
	}
	return err
}

// Sync flushes the entire mapping to disk with msync(MS_SYNC). It is a no-op
// on a closed handle.
func (f *File) Sync() error {
	if f == nil || f.data == nil {
		return nil
	}
	if err := unix.Msync(f.data, unix.MS_SYNC); err != nil {
		return fmt.Errorf("memfile: msync: %w", err)
	}
	f.dirty.Reset()
	return nil
}

// SyncDirty flushes only the pages touched since the last sync. Cheaper than
// Sync when mutations were sparse; equivalent durability for the bytes that
// were actually written.
func (f *File) SyncDirty() error {
	if f == nil || f.data == nil {
		return nil
	}
	return f.dirty.Flush(f.data)
}

// Refresh re-checks the backing file's size and extends the mapping when
// another process grew the file underneath this handle. A no-op when the
// on-disk size still matches the mapping.
func (f *File) Refresh() error {
	if f == nil || f.f == nil || f.data == nil {
		return ErrClosed
	}
	st, err := f.f.Stat()
	if err != nil {
		return err
	}
	if st.Size() <= f.size {
		return nil
	}
	return f.remap(st.Size())
}
