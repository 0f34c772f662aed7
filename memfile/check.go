package memfile

import (
	"fmt"

	"github.com/joshuapare/memfile/internal/buf"
	"github.com/joshuapare/memfile/internal/format"
)

// Verify walks the header and free list and reports the first format
// invariant violation found, or nil when the structures are sound. It never
// mutates. Misuse the allocator cannot detect up front (a double free, a
// stray offset handed to Free) surfaces here as a corrupt list.
func (f *File) Verify() error {
	if f == nil || f.data == nil {
		return ErrClosed
	}
	hdr, err := format.ParseHeader(f.data)
	if err != nil {
		return err
	}

	mapped := uint64(len(f.data))
	if hdr.Allocated < format.HeaderSize {
		return fmt.Errorf("high-water mark %d below header: %w", hdr.Allocated, ErrCorrupt)
	}
	if hdr.Allocated > hdr.FileSize {
		return fmt.Errorf("high-water mark %d past file size %d: %w",
			hdr.Allocated, hdr.FileSize, ErrCorrupt)
	}
	if hdr.FileSize > mapped {
		return fmt.Errorf("file size %d past %d mapped bytes: %w",
			hdr.FileSize, mapped, ErrCorrupt)
	}

	// The list can hold at most one node per minimum-sized block below the
	// high-water mark; anything longer must be a cycle.
	maxNodes := int(hdr.Allocated / format.MinBlockSize)
	seen := 0
	for off := hdr.FreeListHead; off != 0; {
		seen++
		if seen > maxNodes {
			return fmt.Errorf("free list exceeds %d nodes, cycle suspected: %w",
				maxNodes, ErrCorrupt)
		}
		if off < format.HeaderSize || !format.Aligned(off) {
			return fmt.Errorf("free node at bad offset %d: %w", off, ErrCorrupt)
		}
		if !buf.InRange(hdr.Allocated, off, format.FreeNodeSize) {
			return fmt.Errorf("free node at %d crosses high-water mark %d: %w",
				off, hdr.Allocated, ErrCorrupt)
		}
		node := format.ReadFreeNode(f.data, off)
		if node.Size < format.MinBlockSize || !format.Aligned(node.Size) {
			return fmt.Errorf("free node at %d has bad size %d: %w",
				off, node.Size, ErrCorrupt)
		}
		if !buf.InRange(hdr.Allocated, off, node.Size) {
			return fmt.Errorf("free block [%d, +%d) crosses high-water mark %d: %w",
				off, node.Size, hdr.Allocated, ErrCorrupt)
		}
		off = node.Next
	}
	return nil
}
