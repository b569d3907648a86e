package installer

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/blairham/nodeup/pkg/config"
	"github.com/blairham/nodeup/pkg/runner"
)

// DebianStrategy installs Node.js on Debian/Ubuntu hosts from the NodeSource
// repository. Any step's non-zero exit aborts the strategy; no rollback is
// attempted.
type DebianStrategy struct {
	runner runner.CommandRunner
	cfg    *config.Config
}

// Kind returns KindDebian
func (s *DebianStrategy) Kind() Kind {
	return KindDebian
}

// Execute refreshes the package index, ensures the transfer and key tools are
// present, runs the vendor setup script with elevated privileges, and
// installs the target packages
func (s *DebianStrategy) Execute() bool {
	fmt.Printf("🔧 Installing Node.js on a Debian/Ubuntu system...\n")

	if !runElevated(s.runner, "apt", "update") {
		fmt.Printf("❌ Failed to refresh the apt package index\n")
		return false
	}

	if !runElevated(s.runner, "apt", "install", "-y", "curl", "gnupg") {
		fmt.Printf("❌ Failed to install prerequisite tools\n")
		return false
	}

	script, ok := fetchSetupScript(s.runner, s.cfg.DebianScriptURL())
	if !ok {
		return false
	}

	if !runSetupScript(s.runner, script) {
		return false
	}

	argv := append([]string{"apt", "install", "-y"}, s.cfg.Packages...)
	if !runElevated(s.runner, argv...) {
		fmt.Printf("❌ Failed to install %v\n", s.cfg.Packages)
		return false
	}

	fmt.Printf("✅ Node.js installed successfully\n")
	return true
}

// fetchSetupScript downloads the vendor setup script over a secure transfer
// and returns its content. The script is fetched exactly once.
func fetchSetupScript(r runner.CommandRunner, url string) (string, bool) {
	fmt.Printf("⬇️  Fetching NodeSource setup script from %s\n", url)

	result, err := r.Run([]string{"curl", "-fsSL", url}, true)
	if err != nil || !result.Succeeded() {
		log.Debug("setup script fetch failed", "url", url, "code", result.ExitCode, "err", err)
		fmt.Printf("❌ Failed to fetch the setup script\n")
		return "", false
	}

	return result.Stdout, true
}

// runSetupScript executes the fetched script content verbatim with elevated
// privileges and an inherited environment. Trusting the script is a
// deliberate boundary inherited from the vendor's distribution mechanism.
func runSetupScript(r runner.CommandRunner, script string) bool {
	result, err := r.Run([]string{"sudo", "-E", "bash", "-c", script}, false)
	if err != nil || !result.Succeeded() {
		fmt.Printf("❌ NodeSource setup script failed\n")
		return false
	}
	return true
}
