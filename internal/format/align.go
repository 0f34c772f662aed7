package format

// RoundUpBlock rounds n up to the next multiple of BlockAlignment.
func RoundUpBlock(n uint64) uint64 {
	return (n + BlockAlignmentMask) &^ uint64(BlockAlignmentMask)
}

// Aligned reports whether n is a multiple of BlockAlignment.
func Aligned(n uint64) bool {
	return n&BlockAlignmentMask == 0
}
