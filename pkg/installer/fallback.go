package installer

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/blairham/nodeup/pkg/config"
	"github.com/blairham/nodeup/pkg/runner"
)

// managerInstallArgs maps each supported package manager to its install
// argument set. The iteration order comes from the config's priority list,
// not from this map.
var managerInstallArgs = map[string][]string{
	"apt":    {"install", "-y"},
	"yum":    {"install", "-y"},
	"dnf":    {"install", "-y"},
	"zypper": {"install", "-y"},
	"pacman": {"-S", "--noconfirm"},
}

// FallbackStrategy installs Node.js from the distribution's default
// repositories, trying package managers in priority order until one
// succeeds. It is also the route for distros that fail identification.
type FallbackStrategy struct {
	runner runner.CommandRunner
	cfg    *config.Config
}

// Kind returns KindFallback
func (s *FallbackStrategy) Kind() Kind {
	return KindFallback
}

// Execute attempts each configured package manager in order. The first
// success wins and the remaining managers are left untried; a missing
// executable or non-zero exit silently moves on to the next candidate.
func (s *FallbackStrategy) Execute() bool {
	fmt.Printf("🔧 Installing Node.js from distribution repositories...\n")

	for _, mgr := range s.cfg.FallbackManagers {
		args, known := managerInstallArgs[mgr]
		if !known {
			// config validation rejects unknown managers up front
			continue
		}

		argv := append(append([]string{mgr}, args...), s.cfg.FallbackPackages...)
		if runElevated(s.runner, argv...) {
			fmt.Printf("✅ Node.js installed successfully (via %s)\n", mgr)
			return true
		}
		log.Debug("fallback manager did not succeed", "manager", mgr)
	}

	fmt.Printf("❌ All fallback package managers failed\n")
	return false
}
