package memfile

import (
	"os"

	"github.com/joshuapare/memfile/memfile/dirty"
)

// File is an open memory file, backed by mmap (unix) or a byte slice
// (other platforms).
//
// A File owns its mapping exclusively. At most one goroutine may mutate it
// at a time; see the package documentation for the cross-process rules.
type File struct {
	f     *os.File
	path  string
	data  []byte
	size  int64
	dirty *dirty.Tracker
}

// Bytes returns the raw mapping. The slice is only valid until the next
// mutating operation on f.
func (f *File) Bytes() []byte { return f.data }

// Size returns the current mapped size in bytes.
func (f *File) Size() int64 { return f.size }

// Path returns the path the file was opened with.
func (f *File) Path() string { return f.path }

// FD returns the backing descriptor, or -1 when closed.
func (f *File) FD() int {
	if f == nil || f.f == nil {
		return -1
	}
	return int(f.f.Fd())
}
