package memfile

import (
	"github.com/joshuapare/memfile/internal/buf"
	"github.com/joshuapare/memfile/internal/format"
)

// Alloc reserves size bytes and returns the offset of the first payload
// byte, or 0 when growing the file failed (out of space). The returned
// offset sits 8 bytes past the block's allocation header and stays valid
// across remaps.
//
// The free list is searched first-fit. A block whose remainder is at least
// format.SplitThreshold (24 bytes) is split; any smaller remainder is
// consumed whole, and the block's full size is recorded in the allocation
// header so a later Free returns all of it.
func (f *File) Alloc(size uint64) uint64 {
	if f == nil || f.data == nil {
		return 0
	}

	total, ok := buf.AddU64(size, format.AllocHeaderSize)
	if !ok {
		return 0
	}
	total = format.RoundUpBlock(total)
	if total < format.MinBlockSize {
		total = format.MinBlockSize
	}

	var prev uint64
	off := format.FreeListHead(f.data)
	for off != 0 {
		node := format.ReadFreeNode(f.data, off)
		if node.Size >= total {
			if node.Size-total >= format.SplitThreshold {
				// Split: carve the tail into a new free node.
				tail := off + total
				format.PutFreeNode(f.data, tail, format.FreeNode{
					Size: node.Size - total,
					Next: node.Next,
				})
				f.dirty.Add(int64(tail), format.FreeNodeSize)
				f.relinkFree(prev, tail)
			} else {
				// Consume the whole block.
				total = node.Size
				f.relinkFree(prev, node.Next)
			}
			format.PutAllocSize(f.data, off, total)
			f.dirty.Add(int64(off), format.AllocHeaderSize)
			return off + format.AllocHeaderSize
		}
		prev = off
		off = node.Next
	}

	// No suitable free block: bump from the high-water mark.
	if err := f.ensureSpace(total); err != nil {
		return 0
	}
	off = format.Allocated(f.data)
	format.PutAllocSize(f.data, off, total)
	format.SetAllocated(f.data, off+total)
	f.dirty.Add(0, format.HeaderSize)
	f.dirty.Add(int64(off), format.AllocHeaderSize)
	return off + format.AllocHeaderSize
}

// relinkFree points the predecessor of a free-list node (or the list head
// when there is none) at next.
func (f *File) relinkFree(prev, next uint64) {
	if prev == 0 {
		format.SetFreeListHead(f.data, next)
		f.dirty.Add(0, format.HeaderSize)
		return
	}
	format.PutU64(f.data, int(prev)+format.FreeNextOffset, next)
	f.dirty.Add(int64(prev), format.FreeNodeSize)
}

// Free returns the allocation at offset to the free list. A 0 offset is a
// no-op. Freeing is O(1): the block's header becomes a free node and the
// block is prepended to the list. Double frees and stray offsets are not
// detected and corrupt the list.
func (f *File) Free(offset uint64) {
	if f == nil || f.data == nil || offset == 0 {
		return
	}
	h := offset - format.AllocHeaderSize
	format.PutFreeNode(f.data, h, format.FreeNode{
		Size: format.AllocSize(f.data, h),
		Next: format.FreeListHead(f.data),
	})
	format.SetFreeListHead(f.data, h)
	f.dirty.Add(int64(h), format.FreeNodeSize)
	f.dirty.Add(0, format.HeaderSize)
}

// ensureSpace makes room for needed more bytes past the high-water mark,
// growing the file when the current size does not cover it. Growth doubles
// the mapping, or jumps straight past the request plus slack when doubling
// is not enough. The mapping base may move.
func (f *File) ensureSpace(needed uint64) error {
	allocated := format.Allocated(f.data)
	end, ok := buf.AddU64(allocated, needed)
	if !ok {
		return ErrOutOfBounds
	}
	if end <= format.FileSize(f.data) {
		return nil
	}

	newSize := uint64(f.size) * 2
	if floor := end + format.GrowSlack; newSize < floor {
		newSize = floor
	}
	if err := f.remap(int64(newSize)); err != nil {
		return err
	}
	format.SetFileSize(f.data, newSize)
	f.dirty.Add(0, format.HeaderSize)
	return nil
}
