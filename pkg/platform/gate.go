// Package platform verifies that the host can run the bootstrap pipeline.
// Only Linux is supported; every installation strategy assumes Linux process
// and package-manager conventions.
package platform

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/blairham/nodeup/pkg/constants"
	"github.com/blairham/nodeup/pkg/runner"
)

// ErrUnsupportedPlatform indicates the host OS family cannot run any of the
// installation strategies. This is a hard stop, not a fallback path.
var ErrUnsupportedPlatform = errors.New("unsupported platform")

// PrivilegeHint describes the privilege level available to spawned commands
type PrivilegeHint struct {
	// Root is true when the process runs with an effective UID of 0
	Root bool
	// SudoAvailable is true when a sudo binary can be resolved on PATH
	SudoAvailable bool
}

// Elevated reports whether privileged commands can be expected to work.
// Absence of privilege is a warning, not a failure: individual strategy
// commands request elevation themselves.
func (h PrivilegeHint) Elevated() bool {
	return h.Root || h.SudoAvailable
}

// Gate checks host OS support and privilege level
type Gate struct {
	goos      string
	euid      func() int
	available func(string) bool
}

// NewGate creates a gate for the real host
func NewGate() *Gate {
	return &Gate{
		goos:      runtime.GOOS,
		euid:      os.Geteuid,
		available: runner.IsAvailable,
	}
}

// Verify fails when the host OS family is unsupported and otherwise reports
// the privilege hint for the current process
func (g *Gate) Verify() (PrivilegeHint, error) {
	if g.goos != constants.LinuxOS {
		return PrivilegeHint{}, fmt.Errorf("%w: %s (this tool only supports Linux)", ErrUnsupportedPlatform, g.goos)
	}

	return PrivilegeHint{
		Root:          g.euid() == 0,
		SudoAvailable: g.available("sudo"),
	}, nil
}
