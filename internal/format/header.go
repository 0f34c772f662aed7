package format

import "fmt"

// Header captures the file header at offset 0. The header doubles as the
// allocator state: reopening a file and re-reading these five fields fully
// reconstitutes the allocator.
type Header struct {
	FileSize     uint64
	Allocated    uint64
	FreeListHead uint64
}

// ParseHeader validates the magic and version and extracts the mutable fields.
func ParseHeader(b []byte) (Header, error) {
	if len(b) < HeaderSize {
		return Header{}, fmt.Errorf("header: %w", ErrTruncated)
	}
	if ReadU32(b, MagicOffset) != Magic {
		return Header{}, fmt.Errorf("header: %w", ErrBadMagic)
	}
	if v := ReadU32(b, VersionOffset); v != Version {
		return Header{}, fmt.Errorf("header: version %d: %w", v, ErrBadVersion)
	}
	return Header{
		FileSize:     ReadU64(b, FileSizeOffset),
		Allocated:    ReadU64(b, AllocatedOffset),
		FreeListHead: ReadU64(b, FreeListHeadOffset),
	}, nil
}

// InitHeader writes a fresh header for a file of the given size: magic,
// current version, no free blocks, high-water mark right past the header.
func InitHeader(b []byte, fileSize uint64) {
	PutU32(b, MagicOffset, Magic)
	PutU32(b, VersionOffset, Version)
	PutU64(b, FileSizeOffset, fileSize)
	PutU64(b, AllocatedOffset, HeaderSize)
	PutU64(b, FreeListHeadOffset, 0)
}

// Field accessors. Callers hold the full mapping and mutate fields in place;
// these keep the offsets in one spot.

func FileSize(b []byte) uint64     { return ReadU64(b, FileSizeOffset) }
func Allocated(b []byte) uint64    { return ReadU64(b, AllocatedOffset) }
func FreeListHead(b []byte) uint64 { return ReadU64(b, FreeListHeadOffset) }

func SetFileSize(b []byte, v uint64)     { PutU64(b, FileSizeOffset, v) }
func SetAllocated(b []byte, v uint64)    { PutU64(b, AllocatedOffset, v) }
func SetFreeListHead(b []byte, v uint64) { PutU64(b, FreeListHeadOffset, v) }
