// Package noderuntime probes the host for a usable Node.js runtime.
package noderuntime

import (
	"strings"

	"github.com/charmbracelet/log"

	"github.com/blairham/nodeup/pkg/constants"
	"github.com/blairham/nodeup/pkg/runner"
)

// Presence describes the outcome of a single runtime probe. It is never
// cached: presence can change between the pre-check and the post-install
// verification as a direct result of installation actions.
type Presence struct {
	// Version is the trimmed output of the version query, e.g. "v18.19.0";
	// empty when the runtime is absent
	Version string
	// Installed is true when the runtime responded to the version query
	Installed bool
}

// Checker probes whether the Node.js runtime responds to a version query
type Checker struct {
	runner     runner.CommandRunner
	executable string
}

// NewChecker creates a presence checker for the node executable
func NewChecker(r runner.CommandRunner) *Checker {
	return &Checker{runner: r, executable: constants.NodeExecutable}
}

// Check probes the runtime. A probe is not an assertion: a missing executable
// or a non-zero exit maps to an absent Presence and is never surfaced as an
// error.
func (c *Checker) Check() Presence {
	result, err := c.runner.Run([]string{c.executable, "--version"}, true)
	if err != nil || !result.Succeeded() {
		log.Debug("runtime probe failed", "executable", c.executable, "err", err)
		return Presence{}
	}

	return Presence{
		Installed: true,
		Version:   strings.TrimSpace(result.Stdout),
	}
}
