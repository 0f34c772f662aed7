// Package buf provides overflow-safe arithmetic and bounds checks for working
// with offsets into a memory-mapped buffer.
package buf

import "math"

// AddU64 adds a and b, returning ok = false when the result would overflow.
func AddU64(a, b uint64) (sum uint64, ok bool) {
	if b > math.MaxUint64-a {
		return 0, false
	}
	return a + b, true
}

// InRange reports whether the range [off, off+n) lies inside a buffer of
// size bytes, with overflow safety.
func InRange(size, off, n uint64) bool {
	end, ok := AddU64(off, n)
	return ok && end <= size
}

// Slice returns the sub-slice [off:off+n] if it fits within len(b).
func Slice(b []byte, off, n uint64) ([]byte, bool) {
	if !InRange(uint64(len(b)), off, n) {
		return nil, false
	}
	return b[off : off+n], true
}
