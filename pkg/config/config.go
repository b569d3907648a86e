// Package config provides configuration parsing and validation for nodeup.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v3"
)

// ConfigFileName is the default name for the nodeup configuration file
const ConfigFileName = ".nodeup.yaml"

// DefaultChannel is the NodeSource setup-script channel installed by default
const DefaultChannel = "18.x"

// DefaultSetupMode is the mode token passed to the downstream setup routine
const DefaultSetupMode = "http"

// channelPattern matches NodeSource channel names like "18.x" or "20.x"
var channelPattern = regexp.MustCompile(`^\d+\.x$`)

// knownManagers is the full set of package managers the fallback path knows
// how to drive, in default priority order
var knownManagers = []string{"apt", "yum", "dnf", "zypper", "pacman"}

// Config represents the .nodeup.yaml structure
type Config struct {
	// Channel selects the NodeSource setup-script channel, e.g. "18.x"
	Channel string `yaml:"channel,omitempty"`
	// DebScriptURL overrides the Debian-family vendor setup script URL
	DebScriptURL string `yaml:"deb_script_url,omitempty"`
	// RPMScriptURL overrides the RedHat-family vendor setup script URL
	RPMScriptURL string `yaml:"rpm_script_url,omitempty"`
	// SetupMode is the mode token handed to the downstream setup routine
	SetupMode string `yaml:"setup_mode,omitempty"`
	// Packages are installed by the Debian/RedHat strategies
	Packages []string `yaml:"packages,omitempty"`
	// FallbackPackages are installed by the fallback strategy
	FallbackPackages []string `yaml:"fallback_packages,omitempty"`
	// FallbackManagers reorders or restricts the fallback manager priority
	FallbackManagers []string `yaml:"fallback_managers,omitempty"`
	// SetupCommand is the downstream setup routine invoked after the runtime
	// is confirmed present; the mode token is appended as its final argument.
	// Empty means there is nothing to hand off to.
	SetupCommand []string `yaml:"setup_command,omitempty"`
	// SkipSetup disables the downstream setup invocation after success
	SkipSetup bool `yaml:"skip_setup,omitempty"`
}

// KnownManagers returns the package managers the fallback path can drive,
// in default priority order
func KnownManagers() []string {
	return slices.Clone(knownManagers)
}

// Default returns the configuration used when no config file exists
func Default() *Config {
	return &Config{
		Channel:          DefaultChannel,
		SetupMode:        DefaultSetupMode,
		Packages:         []string{"nodejs"},
		FallbackPackages: []string{"nodejs", "npm"},
		FallbackManagers: slices.Clone(knownManagers),
	}
}

// Load loads the nodeup configuration from file. An empty path searches the
// working directory and then the home directory; a missing file yields the
// defaults, not an error.
func Load(configPath string) (*Config, error) {
	if configPath == "" {
		configPath = findConfigFile()
		if configPath == "" {
			return Default(), nil
		}
	}

	data, err := os.ReadFile(filepath.Clean(configPath))
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", configPath, err)
	}

	return cfg, nil
}

// findConfigFile returns the first existing default config location
func findConfigFile() string {
	if _, err := os.Stat(ConfigFileName); err == nil {
		return ConfigFileName
	}

	home, err := homedir.Dir()
	if err != nil {
		return ""
	}
	homePath := filepath.Join(home, ConfigFileName)
	if _, err := os.Stat(homePath); err == nil {
		return homePath
	}

	return ""
}

// Validate checks the configuration for values no strategy could act on
func (c *Config) Validate() error {
	if !channelPattern.MatchString(c.Channel) {
		return fmt.Errorf("channel %q does not match the MAJOR.x form", c.Channel)
	}
	if len(c.Packages) == 0 {
		return fmt.Errorf("packages must not be empty")
	}
	if len(c.FallbackPackages) == 0 {
		return fmt.Errorf("fallback_packages must not be empty")
	}
	if len(c.FallbackManagers) == 0 {
		return fmt.Errorf("fallback_managers must not be empty")
	}
	for _, mgr := range c.FallbackManagers {
		if !slices.Contains(knownManagers, mgr) {
			return fmt.Errorf("unknown fallback manager %q (known: %s)",
				mgr, strings.Join(knownManagers, ", "))
		}
	}
	return nil
}

// DebianScriptURL returns the vendor setup-script URL for Debian-family hosts
func (c *Config) DebianScriptURL() string {
	if c.DebScriptURL != "" {
		return c.DebScriptURL
	}
	return fmt.Sprintf("https://deb.nodesource.com/setup_%s", c.Channel)
}

// RedHatScriptURL returns the vendor setup-script URL for RedHat-family hosts
func (c *Config) RedHatScriptURL() string {
	if c.RPMScriptURL != "" {
		return c.RPMScriptURL
	}
	return fmt.Sprintf("https://rpm.nodesource.com/setup_%s", c.Channel)
}
