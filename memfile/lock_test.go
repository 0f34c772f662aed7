//go:build linux || darwin || freebsd

package memfile

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"golang.org/x/sys/unix"
)

func TestLockLifecycle(t *testing.T) {
	f := openFresh(t)

	require.NoError(t, f.LockShared())
	require.NoError(t, f.Unlock())
	require.NoError(t, f.LockExclusive())
	require.NoError(t, f.Unlock())

	// Upgrading in place is legal for flock; the kernel converts the lock.
	require.NoError(t, f.LockShared())
	require.NoError(t, f.LockExclusive())
	require.NoError(t, f.Unlock())
}

func TestSharedLocksCoexistExclusiveDoesNot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "locked")

	a, err := Open(path, 4096)
	require.NoError(t, err)
	defer a.Close()
	b, err := Open(path, 4096)
	require.NoError(t, err)
	defer b.Close()

	require.NoError(t, a.LockShared())
	require.NoError(t, b.LockShared())

	// A second exclusive would block; probe non-blocking through the raw fd.
	err = unix.Flock(b.FD(), unix.LOCK_EX|unix.LOCK_NB)
	require.ErrorIs(t, err, unix.EWOULDBLOCK)

	require.NoError(t, a.Unlock())
	require.NoError(t, b.Unlock())

	require.NoError(t, a.LockExclusive())
	err = unix.Flock(b.FD(), unix.LOCK_SH|unix.LOCK_NB)
	require.ErrorIs(t, err, unix.EWOULDBLOCK)
	require.NoError(t, a.Unlock())
}

func TestLocksAreAdvisory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "advisory")

	a, err := Open(path, 4096)
	require.NoError(t, err)
	defer a.Close()
	b, err := Open(path, 4096)
	require.NoError(t, err)
	defer b.Close()

	// A mutator on one handle proceeds even while the other holds the
	// exclusive lock; nothing is enforced.
	require.NoError(t, a.LockExclusive())
	require.NotZero(t, b.Alloc(64))
	require.NoError(t, a.Unlock())
}
