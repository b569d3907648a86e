package distro

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeOSRelease(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "os-release")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestIdentifier_Identify(t *testing.T) {
	t.Run("Ubuntu", func(t *testing.T) {
		path := writeOSRelease(t, `NAME="Ubuntu"
VERSION="22.04.3 LTS (Jammy Jellyfish)"
ID=ubuntu
ID_LIKE=debian
PRETTY_NAME="Ubuntu 22.04.3 LTS"
`)

		info := NewIdentifierWithPath(path).Identify()

		assert.Equal(t, "ubuntu", info.ID)
		assert.Equal(t, []string{"debian"}, info.IDLike)
		assert.Equal(t, "Ubuntu", info.DisplayName)
		assert.False(t, info.Unknown())
	})

	t.Run("CentOSWithMultipleIDLike", func(t *testing.T) {
		path := writeOSRelease(t, `NAME="CentOS Stream"
ID="centos"
ID_LIKE="rhel fedora"
`)

		info := NewIdentifierWithPath(path).Identify()

		assert.Equal(t, "centos", info.ID)
		assert.Equal(t, []string{"rhel", "fedora"}, info.IDLike)
	})

	t.Run("UppercaseIDIsLowered", func(t *testing.T) {
		path := writeOSRelease(t, "ID=Debian\nID_LIKE=DEBIAN\n")

		info := NewIdentifierWithPath(path).Identify()

		assert.Equal(t, "debian", info.ID)
		assert.Equal(t, []string{"debian"}, info.IDLike)
	})

	t.Run("LinesWithoutEqualsAreIgnored", func(t *testing.T) {
		path := writeOSRelease(t, "garbage line\nID=arch\nanother garbage line\n")

		info := NewIdentifierWithPath(path).Identify()

		assert.Equal(t, "arch", info.ID)
	})

	t.Run("ValueKeepsEverythingAfterFirstEquals", func(t *testing.T) {
		path := writeOSRelease(t, `PRETTY_NAME="Odd = Name"
ID=opensuse-leap
`)

		info := NewIdentifierWithPath(path).Identify()

		assert.Equal(t, "opensuse-leap", info.ID)
	})

	t.Run("MissingFile", func(t *testing.T) {
		info := NewIdentifierWithPath(filepath.Join(t.TempDir(), "nope")).Identify()

		assert.True(t, info.Unknown())
		assert.Empty(t, info.ID)
		assert.Empty(t, info.IDLike)
		assert.Equal(t, "Unknown", info.DisplayName)
	})

	t.Run("EmptyFile", func(t *testing.T) {
		info := NewIdentifierWithPath(writeOSRelease(t, "")).Identify()

		assert.True(t, info.Unknown())
		assert.Equal(t, "Unknown", info.DisplayName)
	})
}

func TestInfo_LikeAny(t *testing.T) {
	info := Info{ID: "linuxmint", IDLike: []string{"ubuntu", "debian"}}

	assert.True(t, info.LikeAny("debian"))
	assert.True(t, info.LikeAny("ubuntu", "debian"))
	assert.False(t, info.LikeAny("rhel", "fedora"))
	assert.False(t, Info{}.LikeAny("debian"))
}
