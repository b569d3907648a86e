// Package installer selects and drives the installation strategy for the
// Node.js runtime: distribution matching, strategy dispatch, ordered fallback
// across package managers, and post-install verification.
package installer

import (
	"github.com/blairham/nodeup/pkg/config"
	"github.com/blairham/nodeup/pkg/distro"
	"github.com/blairham/nodeup/pkg/runner"
)

// Kind identifies an installation strategy variant
type Kind int

// Strategy variants
const (
	// KindDebian drives the apt-based NodeSource installation
	KindDebian Kind = iota
	// KindRedHat drives the yum-based NodeSource installation
	KindRedHat
	// KindFallback tries distribution-default repositories across several
	// package managers in priority order
	KindFallback
)

// String returns the strategy name used in output and the run journal
func (k Kind) String() string {
	switch k {
	case KindDebian:
		return "debian"
	case KindRedHat:
		return "redhat"
	case KindFallback:
		return "fallback"
	default:
		return "unknown"
	}
}

// selectionRule matches a distro family to a strategy kind
type selectionRule struct {
	ids  []string
	like []string
	kind Kind
}

// selectionTable is evaluated top to bottom, first match wins. Anything it
// does not match, including an unidentifiable distro, routes to fallback.
var selectionTable = []selectionRule{
	{ids: []string{"debian", "ubuntu"}, like: []string{"debian", "ubuntu"}, kind: KindDebian},
	{ids: []string{"rhel", "centos", "fedora"}, like: []string{"rhel", "fedora"}, kind: KindRedHat},
}

// Select maps a distribution to its installation strategy kind. It is total
// and deterministic: every Info maps to exactly one Kind.
func Select(info distro.Info) Kind {
	for _, rule := range selectionTable {
		for _, id := range rule.ids {
			if info.ID == id {
				return rule.kind
			}
		}
		if info.LikeAny(rule.like...) {
			return rule.kind
		}
	}
	return KindFallback
}

// Strategy performs the privileged commands that install the runtime. The
// only in-memory effect is the returned success flag; package-manager state
// after a partial run is whatever the package manager leaves behind.
type Strategy interface {
	Kind() Kind
	Execute() bool
}

// NewStrategy constructs the strategy for a kind
func NewStrategy(kind Kind, r runner.CommandRunner, cfg *config.Config) Strategy {
	switch kind {
	case KindDebian:
		return &DebianStrategy{runner: r, cfg: cfg}
	case KindRedHat:
		return &RedHatStrategy{runner: r, cfg: cfg}
	default:
		return &FallbackStrategy{runner: r, cfg: cfg}
	}
}

// runElevated executes argv behind the privilege-elevation wrapper with the
// child inheriting the process streams
func runElevated(r runner.CommandRunner, argv ...string) bool {
	result, err := r.Run(append([]string{"sudo"}, argv...), false)
	return err == nil && result.Succeeded()
}
