//go:build linux || darwin || freebsd

package memfile

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGrowDoublesOrJumpsPastRequest(t *testing.T) {
	f := openFresh(t)
	require.Equal(t, uint64(4096), f.Stats().FileSize)

	// Fill the first page with 1008-byte blocks, then force a grow.
	var offs []uint64
	for f.Stats().Allocated+1008 <= 4096 {
		p := f.Alloc(1000)
		require.NotZero(t, p)
		require.NoError(t, f.Write(p, []byte(fmt.Sprintf("block-%d", len(offs)))))
		offs = append(offs, p)
	}
	allocatedBefore := f.Stats().Allocated

	p := f.Alloc(1000)
	require.NotZero(t, p)
	offs = append(offs, p)

	st := f.Stats()
	require.GreaterOrEqual(t, st.FileSize, uint64(8192))
	require.Equal(t, st.FileSize, allocatedBefore+1008+4096,
		"doubling was not enough, so growth jumps past the request plus slack")
	require.Equal(t, st.FileSize, uint64(f.Size()), "header and mapping agree")

	// Offsets handed out before the remap stay valid and readable.
	for i, off := range offs[:len(offs)-1] {
		want := []byte(fmt.Sprintf("block-%d", i))
		got, err := f.Read(off, uint64(len(want)))
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
}

func TestGrowJumpsPastOversizedRequest(t *testing.T) {
	f := openFresh(t)

	// A single request whose end plus slack exceeds the doubled file.
	p := f.Alloc(5000)
	require.NotZero(t, p)

	st := f.Stats()
	require.Equal(t, uint64(32+5008+4096), st.FileSize,
		"8192 would not cover 32+5008 plus slack, so the jump path wins")
	require.NoError(t, f.Verify())
}

func TestGrowDoublesWhenThatCovers(t *testing.T) {
	f, err := Open(filepath.Join(t.TempDir(), "arena"), 16384)
	require.NoError(t, err)
	defer f.Close()

	// Push the high-water mark close to the file end, then grow with a
	// small request: doubling covers it comfortably.
	for f.Stats().Allocated+1008 <= 16384 {
		require.NotZero(t, f.Alloc(1000))
	}
	require.NotZero(t, f.Alloc(1000))

	require.Equal(t, uint64(32768), f.Stats().FileSize)
	require.NoError(t, f.Verify())
}

func TestGrowKeepsFileSizeMonotonic(t *testing.T) {
	f := openFresh(t)

	prev := f.Stats().FileSize
	for i := 0; i < 40; i++ {
		require.NotZero(t, f.Alloc(1000))
		st := f.Stats()
		require.GreaterOrEqual(t, st.FileSize, prev)
		prev = st.FileSize
	}
}
