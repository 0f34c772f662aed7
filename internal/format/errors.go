package format

import "errors"

var (
	// ErrBadMagic indicates the file does not start with the MEMF signature.
	ErrBadMagic = errors.New("format: magic mismatch")
	// ErrBadVersion indicates a format version this package does not implement.
	ErrBadVersion = errors.New("format: unsupported version")
	// ErrTruncated indicates the buffer lacked the bytes required for a structure.
	ErrTruncated = errors.New("format: truncated buffer")
)
