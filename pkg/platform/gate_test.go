package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGate(goos string, euid int, sudo bool) *Gate {
	return &Gate{
		goos:      goos,
		euid:      func() int { return euid },
		available: func(name string) bool { return sudo && name == "sudo" },
	}
}

func TestGate_Verify(t *testing.T) {
	t.Run("LinuxAsRoot", func(t *testing.T) {
		hint, err := newTestGate("linux", 0, false).Verify()

		require.NoError(t, err)
		assert.True(t, hint.Root)
		assert.False(t, hint.SudoAvailable)
		assert.True(t, hint.Elevated())
	})

	t.Run("LinuxWithSudo", func(t *testing.T) {
		hint, err := newTestGate("linux", 1000, true).Verify()

		require.NoError(t, err)
		assert.False(t, hint.Root)
		assert.True(t, hint.SudoAvailable)
		assert.True(t, hint.Elevated())
	})

	t.Run("LinuxUnprivileged", func(t *testing.T) {
		hint, err := newTestGate("linux", 1000, false).Verify()

		require.NoError(t, err)
		assert.False(t, hint.Elevated())
	})

	t.Run("UnsupportedOS", func(t *testing.T) {
		for _, goos := range []string{"darwin", "windows", "freebsd"} {
			_, err := newTestGate(goos, 0, true).Verify()

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrUnsupportedPlatform)
			assert.Contains(t, err.Error(), goos)
		}
	})
}
