package memfile

import (
	"sort"

	"github.com/joshuapare/memfile/internal/format"
)

// freeBlock is an out-of-mapping copy of one free-list node, used while
// rebuilding the list.
type freeBlock struct {
	off  uint64
	size uint64
}

// Coalesce merges every run of adjacent free blocks into a single block and
// rewrites the free list in ascending offset order. Allocation and free
// leave the list in insertion order, so fragmentation accumulates until a
// caller decides a sweep is worth it.
//
// Coalesce never shrinks the file or moves the high-water mark, even when
// the last free block touches it.
func (f *File) Coalesce() {
	if f == nil || f.data == nil {
		return
	}
	head := format.FreeListHead(f.data)
	if head == 0 {
		return
	}

	blocks := make([]freeBlock, 0, 16)
	for off := head; off != 0; {
		node := format.ReadFreeNode(f.data, off)
		blocks = append(blocks, freeBlock{off: off, size: node.Size})
		off = node.Next
	}
	if len(blocks) < 2 {
		return
	}

	sort.Slice(blocks, func(i, j int) bool { return blocks[i].off < blocks[j].off })

	// Sweep in offset order, folding each block that starts exactly where
	// the previous one ends into it.
	merged := blocks[:1]
	for _, b := range blocks[1:] {
		last := &merged[len(merged)-1]
		if last.off+last.size == b.off {
			last.size += b.size
		} else {
			merged = append(merged, b)
		}
	}

	format.SetFreeListHead(f.data, merged[0].off)
	f.dirty.Add(0, format.HeaderSize)
	for i, b := range merged {
		var next uint64
		if i+1 < len(merged) {
			next = merged[i+1].off
		}
		format.PutFreeNode(f.data, b.off, format.FreeNode{Size: b.size, Next: next})
		f.dirty.Add(int64(b.off), format.FreeNodeSize)
	}
}
