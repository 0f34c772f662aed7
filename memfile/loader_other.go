//go:build !linux && !darwin && !freebsd

package memfile

import (
	"fmt"
	"io"
	"os"

	"github.com/joshuapare/memfile/internal/format"
	"github.com/joshuapare/memfile/memfile/dirty"
)

// Open loads the memory file into a heap buffer on platforms without a
// usable shared mapping. Offsets and on-disk bytes are identical to the
// mmap build; durability runs through explicit file writes in Sync.
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

	data := make([]byte, size)
	if _, err := io.ReadFull(fd, data); err != nil {
		_ = fd.Close()
		return nil, fmt.Errorf("memfile: read %s: %w", path, err)
	}

	if _, err := format.ParseHeader(data); err != nil {
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

	data := make([]byte, initialSize)
	format.InitHeader(data, initialSize)
	if _, err := fd.WriteAt(data[:format.HeaderSize], 0); err != nil {
		return fail(fmt.Errorf("memfile: write header %s: %w", path, err))
	}

	return &File{
		f:     fd,
		path:  path,
		data:  data,
		size:  int64(initialSize),
		dirty: dirty.NewTracker(),
	}, nil
}

// Close syncs the buffer back to the file and closes the descriptor. It is
// idempotent; the second call is a no-op.
func (f *File) Close() error {
	if f == nil || f.f == nil {
		return nil
	}
	syncErr := f.Sync()
	f.data = nil
	err := f.f.Close()
	f.f = nil
	if syncErr != nil {
		return syncErr
	}
	return err
}

// Sync writes the whole buffer back to the file and fsyncs it. A no-op on a
// closed handle.
func (f *File) Sync() error {
	if f == nil || f.data == nil || f.f == nil {
		return nil
	}
	if _, err := f.f.WriteAt(f.data, 0); err != nil {
		return fmt.Errorf("memfile: write back: %w", err)
	}
	if err := f.f.Sync(); err != nil {
		return fmt.Errorf("memfile: fsync: %w", err)
	}
	f.dirty.Reset()
	return nil
}

// SyncDirty writes back only the page runs touched since the last sync.
func (f *File) SyncDirty() error {
	if f == nil || f.data == nil || f.f == nil {
		return nil
	}
	for _, r := range f.dirty.Coalesced() {
		start := r.Off
		if start >= f.size {
			continue
		}
		end := r.Off + r.Len
		if end > f.size {
			end = f.size
		}
		if _, err := f.f.WriteAt(f.data[start:end], start); err != nil {
			return fmt.Errorf("memfile: write back [%d, %d): %w", start, end, err)
		}
	}
	if err := f.f.Sync(); err != nil {
		return fmt.Errorf("memfile: fsync: %w", err)
	}
	f.dirty.Reset()
	return nil
}

// Refresh re-reads the file when it grew on disk underneath this handle.
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
	data := make([]byte, st.Size())
	if _, err := f.f.ReadAt(data, 0); err != nil {
		return fmt.Errorf("memfile: reread: %w", err)
	}
	f.data = data
	f.size = st.Size()
	return nil
}

// remap grows the buffer and the backing file to newSize. The new bytes are
// zero, matching what ftruncate produces on the mmap build.
func (f *File) remap(newSize int64) error {
	if err := f.f.Truncate(newSize); err != nil {
		return fmt.Errorf("memfile: truncate to %d: %w", newSize, err)
	}
	data := make([]byte, newSize)
	copy(data, f.data)
	f.data = data
	f.size = newSize
	return nil
}

// Advisory locks need flock, which this platform does not expose.

func (f *File) LockShared() error    { return ErrUnsupported }
func (f *File) LockExclusive() error { return ErrUnsupported }
func (f *File) Unlock() error        { return ErrUnsupported }
