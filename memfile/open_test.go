//go:build linux || darwin || freebsd

package memfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/memfile/internal/format"
)

func TestOpenCreatesAndRoundsToPage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "t1")

	f, err := Open(path, 64)
	require.NoError(t, err)
	defer f.Close()

	st := f.Stats()
	require.Equal(t, uint64(4096), st.FileSize)
	require.Equal(t, uint64(format.HeaderSize), st.Allocated)
	require.Equal(t, uint64(0), st.FreeListHead)
	require.Equal(t, int64(4096), f.Size())
}

func TestOpenPersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "t1")

	f, err := Open(path, 64)
	require.NoError(t, err)
	before := f.Stats()
	require.NoError(t, f.Close())

	f, err = Open(path, 64)
	require.NoError(t, err)
	defer f.Close()
	require.Equal(t, before, f.Stats())
}

func TestOpenKeepsExplicitInitialSize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "big")

	f, err := Open(path, 1<<20)
	require.NoError(t, err)
	defer f.Close()

	require.Equal(t, uint64(1<<20), f.Stats().FileSize)
}

func TestOpenRejectsForeignFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "foreign")
	require.NoError(t, os.WriteFile(path, make([]byte, 4096), 0o644))

	_, err := Open(path, 4096)
	require.ErrorIs(t, err, ErrBadFormat)

	// The existing file must survive the failed open.
	_, statErr := os.Stat(path)
	require.NoError(t, statErr)
}

func TestOpenRejectsFutureVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "v2")

	f, err := Open(path, 4096)
	require.NoError(t, err)
	format.PutU32(f.Bytes(), format.VersionOffset, format.Version+1)
	require.NoError(t, f.Close())

	_, err = Open(path, 4096)
	require.ErrorIs(t, err, ErrBadFormat)
}

func TestOpenTreatsEmptyFileAsFresh(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	f, err := Open(path, 64)
	require.NoError(t, err)
	defer f.Close()

	require.Equal(t, uint64(4096), f.Stats().FileSize)
}

func TestCloseIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "t1")

	f, err := Open(path, 64)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	require.NoError(t, f.Close())

	// Operations on the closed handle degrade, not crash.
	require.Equal(t, uint64(0), f.Alloc(8))
	require.Equal(t, Stats{}, f.Stats())
	require.NoError(t, f.Sync())
	_, err = f.Read(40, 8)
	require.ErrorIs(t, err, ErrClosed)
	require.ErrorIs(t, f.LockShared(), ErrClosed)
}
