package memfile

import "errors"

var (
	// ErrBadFormat indicates the file exists but is not a memory file (wrong
	// magic) or carries a version this package does not implement.
	ErrBadFormat = errors.New("memfile: not a memory file")

	// ErrOutOfBounds indicates a read or write range escapes the current
	// mapping, or addresses the reserved offset 0.
	ErrOutOfBounds = errors.New("memfile: range outside mapping")

	// ErrClosed indicates an operation on a closed handle.
	ErrClosed = errors.New("memfile: handle closed")

	// ErrCorrupt is returned by Verify when the header or free list violates
	// a format invariant.
	ErrCorrupt = errors.New("memfile: corrupt state")

	// ErrUnsupported indicates the operation has no implementation on this
	// platform (advisory locks outside unix).
	ErrUnsupported = errors.New("memfile: not supported on this platform")
)
