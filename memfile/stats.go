package memfile

import "github.com/joshuapare/memfile/internal/format"

// Stats is a point-in-time snapshot of the allocator state. The first three
// fields mirror the header verbatim; FreeBlocks and FreeBytes come from a
// free-list walk.
type Stats struct {
	FileSize     uint64
	Allocated    uint64
	FreeListHead uint64
	FreeBlocks   int
	FreeBytes    uint64
}

// Stats reads the header and walks the free list. Zero value on a closed
// handle.
func (f *File) Stats() Stats {
	if f == nil || f.data == nil {
		return Stats{}
	}
	s := Stats{
		FileSize:     format.FileSize(f.data),
		Allocated:    format.Allocated(f.data),
		FreeListHead: format.FreeListHead(f.data),
	}
	for off := s.FreeListHead; off != 0; {
		node := format.ReadFreeNode(f.data, off)
		s.FreeBlocks++
		s.FreeBytes += node.Size
		off = node.Next
	}
	return s
}
