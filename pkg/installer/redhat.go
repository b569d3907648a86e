package installer

import (
	"fmt"

	"github.com/blairham/nodeup/pkg/config"
	"github.com/blairham/nodeup/pkg/runner"
)

// RedHatStrategy installs Node.js on RHEL/CentOS/Fedora hosts from the
// NodeSource repository. Same shape as the Debian strategy with the
// RHEL-family package manager and vendor script URL substituted.
type RedHatStrategy struct {
	runner runner.CommandRunner
	cfg    *config.Config
}

// Kind returns KindRedHat
func (s *RedHatStrategy) Kind() Kind {
	return KindRedHat
}

// Execute ensures the transfer tool is present, runs the vendor setup script
// with elevated privileges, and installs the target packages
func (s *RedHatStrategy) Execute() bool {
	fmt.Printf("🔧 Installing Node.js on a RHEL/CentOS/Fedora system...\n")

	if !runElevated(s.runner, "yum", "install", "-y", "curl") {
		fmt.Printf("❌ Failed to install prerequisite tools\n")
		return false
	}

	script, ok := fetchSetupScript(s.runner, s.cfg.RedHatScriptURL())
	if !ok {
		return false
	}

	if !runSetupScript(s.runner, script) {
		return false
	}

	argv := append([]string{"yum", "install", "-y"}, s.cfg.Packages...)
	if !runElevated(s.runner, argv...) {
		fmt.Printf("❌ Failed to install %v\n", s.cfg.Packages)
		return false
	}

	fmt.Printf("✅ Node.js installed successfully\n")
	return true
}
