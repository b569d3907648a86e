package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "18.x", cfg.Channel)
	assert.Equal(t, "http", cfg.SetupMode)
	assert.Equal(t, []string{"nodejs"}, cfg.Packages)
	assert.Equal(t, []string{"nodejs", "npm"}, cfg.FallbackPackages)
	assert.Equal(t, []string{"apt", "yum", "dnf", "zypper", "pacman"}, cfg.FallbackManagers)
	assert.False(t, cfg.SkipSetup)
	require.NoError(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	t.Run("MissingFileYieldsDefaults", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))

		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("OverridesMergeOntoDefaults", func(t *testing.T) {
		path := writeConfig(t, `
channel: 20.x
setup_mode: grpc
skip_setup: true
`)

		cfg, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, "20.x", cfg.Channel)
		assert.Equal(t, "grpc", cfg.SetupMode)
		assert.True(t, cfg.SkipSetup)
		// untouched keys keep their defaults
		assert.Equal(t, []string{"nodejs"}, cfg.Packages)
	})

	t.Run("RestrictedManagerOrder", func(t *testing.T) {
		path := writeConfig(t, "fallback_managers: [dnf, apt]\n")

		cfg, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, []string{"dnf", "apt"}, cfg.FallbackManagers)
	})

	t.Run("MalformedYAML", func(t *testing.T) {
		_, err := Load(writeConfig(t, "channel: [unterminated"))
		assert.Error(t, err)
	})

	t.Run("InvalidChannel", func(t *testing.T) {
		_, err := Load(writeConfig(t, "channel: latest\n"))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "channel")
	})

	t.Run("UnknownManager", func(t *testing.T) {
		_, err := Load(writeConfig(t, "fallback_managers: [apt, brew]\n"))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "brew")
	})
}

func TestConfig_ScriptURLs(t *testing.T) {
	t.Run("DerivedFromChannel", func(t *testing.T) {
		cfg := Default()
		cfg.Channel = "20.x"

		assert.Equal(t, "https://deb.nodesource.com/setup_20.x", cfg.DebianScriptURL())
		assert.Equal(t, "https://rpm.nodesource.com/setup_20.x", cfg.RedHatScriptURL())
	})

	t.Run("ExplicitOverrideWins", func(t *testing.T) {
		cfg := Default()
		cfg.DebScriptURL = "https://mirror.internal/setup_deb"
		cfg.RPMScriptURL = "https://mirror.internal/setup_rpm"

		assert.Equal(t, "https://mirror.internal/setup_deb", cfg.DebianScriptURL())
		assert.Equal(t, "https://mirror.internal/setup_rpm", cfg.RedHatScriptURL())
	})
}
