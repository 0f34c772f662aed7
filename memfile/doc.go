// Package memfile implements a persistent arena allocator backed by a single
// memory-mapped file.
//
// The file is self-describing: a 32-byte header at offset 0 carries the
// allocator state (high-water mark and free-list head), and free blocks carry
// their own intrusive list nodes. Reopening a file reconstitutes the full
// allocator without any external index.
//
// Allocations are addressed by 64-bit byte offsets from the start of the
// file, never by pointers: any allocation may grow the file and move the
// mapping, which invalidates raw addresses but leaves offsets intact. Offset
// 0 is the "none" sentinel and doubles as the out-of-space result of Alloc.
//
// A File is not safe for concurrent mutation. Cooperating processes can
// serialize mutating sessions with the advisory LockShared/LockExclusive
// surface; the allocator never takes these locks itself.
package memfile
