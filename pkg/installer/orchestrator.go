package installer

import (
	"errors"
	"fmt"

	"github.com/blairham/nodeup/pkg/config"
	"github.com/blairham/nodeup/pkg/distro"
	"github.com/blairham/nodeup/pkg/noderuntime"
	"github.com/blairham/nodeup/pkg/platform"
	"github.com/blairham/nodeup/pkg/runner"
)

// Sentinel errors for the expected failure kinds. They are classified in the
// Outcome and never surfaced as stack traces.
var (
	// ErrStrategyFailed indicates the selected install path's commands failed
	ErrStrategyFailed = errors.New("installation strategy failed")
	// ErrVerificationFailed indicates the install reported success but the
	// runtime still cannot be found. Always fatal, never retried.
	ErrVerificationFailed = errors.New("post-install verification failed")
)

// FailureKind classifies why a bootstrap run failed
type FailureKind int

// Failure classifications
const (
	FailureNone FailureKind = iota
	FailureUnsupportedPlatform
	FailureStrategy
	FailureVerification
	FailureSetup
)

// String returns the classification name used in output and the run journal
func (k FailureKind) String() string {
	switch k {
	case FailureNone:
		return "none"
	case FailureUnsupportedPlatform:
		return "unsupported-platform"
	case FailureStrategy:
		return "strategy"
	case FailureVerification:
		return "verification"
	case FailureSetup:
		return "setup"
	default:
		return "unknown"
	}
}

// Outcome is the final state of a bootstrap run. Printing the summary is a
// presentation concern layered on top of this value.
type Outcome struct {
	// Err holds the classified failure, nil on success
	Err error
	// Version is the runtime version found at the last presence check
	Version string
	// Distro is the identified host distribution (zero when the pipeline
	// stopped before identification)
	Distro distro.Info
	// Privilege is the hint computed by the platform gate
	Privilege platform.PrivilegeHint
	// Strategy is the selected strategy kind, meaningful when StrategyRan
	Strategy Kind
	// Failure classifies the failure, FailureNone on success
	Failure FailureKind
	// Success is true when the runtime is present at the end of the run
	Success bool
	// AlreadyInstalled is true when the pre-check short-circuited the run
	AlreadyInstalled bool
	// StrategyRan is true when an installation strategy was executed
	StrategyRan bool
	// SetupInvoked is true when the downstream setup routine was called
	SetupInvoked bool
}

// ExitCode maps the outcome to the process exit code
func (o Outcome) ExitCode() int {
	if o.Success {
		return 0
	}
	return 1
}

// PlatformGate verifies host support and privilege level
type PlatformGate interface {
	Verify() (platform.PrivilegeHint, error)
}

// PresenceChecker probes for the runtime
type PresenceChecker interface {
	Check() noderuntime.Presence
}

// DistroIdentifier identifies the host distribution
type DistroIdentifier interface {
	Identify() distro.Info
}

// SetupFunc is the downstream collaborator invoked once the runtime is
// confirmed present. Its effects are out of scope for the bootstrap core.
type SetupFunc func(mode string) error

// Orchestrator composes the gate, presence checker, identifier, and
// strategies into the end-to-end bootstrap pipeline. The pipeline is strictly
// linear and non-retrying: no state is revisited, and the only built-in
// retry is the fallback strategy's manager iteration.
type Orchestrator struct {
	Gate        PlatformGate
	Checker     PresenceChecker
	Identifier  DistroIdentifier
	NewStrategy func(Kind) Strategy
	// Setup is invoked with the configured mode token on success; nil
	// disables the invocation
	Setup SetupFunc

	cfg *config.Config
}

// NewOrchestrator wires the real collaborators for a bootstrap run.
// Strategies execute through strategyRunner so a dry-run runner can replace
// it while presence probes keep using the real one.
func NewOrchestrator(cfg *config.Config, probeRunner, strategyRunner runner.CommandRunner) *Orchestrator {
	return &Orchestrator{
		Gate:       platform.NewGate(),
		Checker:    noderuntime.NewChecker(probeRunner),
		Identifier: distro.NewIdentifier(),
		NewStrategy: func(kind Kind) Strategy {
			return NewStrategy(kind, strategyRunner, cfg)
		},
		cfg: cfg,
	}
}

// Run executes the pipeline: platform gate, presence pre-check with
// idempotent short-circuit, distro identification, strategy selection and
// execution, and post-install verification.
func (o *Orchestrator) Run() Outcome {
	var out Outcome

	hint, err := o.Gate.Verify()
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		out.Failure = FailureUnsupportedPlatform
		out.Err = err
		return out
	}
	out.Privilege = hint
	if !hint.Elevated() {
		fmt.Printf("⚠️  No elevation available; privileged install commands may fail\n")
	}

	fmt.Printf("🔍 Checking Node.js environment...\n")
	presence := o.Checker.Check()
	if presence.Installed {
		fmt.Printf("✅ Node.js already installed, version: %s\n", presence.Version)
		out.AlreadyInstalled = true
		out.Version = presence.Version
		out.Success = true
		return o.finish(out)
	}
	fmt.Printf("❌ Node.js is not installed\n")

	fmt.Printf("🚀 Starting Node.js installation...\n")
	info := o.Identifier.Identify()
	if info.Unknown() {
		fmt.Printf("⚠️  Could not identify the Linux distribution, using the fallback strategy\n")
	} else {
		fmt.Printf("Detected system: %s (id: %s)\n", info.DisplayName, info.ID)
	}

	kind := Select(info)
	out.Distro = info
	out.Strategy = kind
	out.StrategyRan = true

	if !o.NewStrategy(kind).Execute() {
		out.Failure = FailureStrategy
		out.Err = fmt.Errorf("%w: %s", ErrStrategyFailed, kind)
		return out
	}

	verified := o.Checker.Check()
	if !verified.Installed {
		fmt.Printf("❌ Installation reported success but Node.js still cannot be found\n")
		out.Failure = FailureVerification
		out.Err = ErrVerificationFailed
		return out
	}

	fmt.Printf("🎉 Node.js environment ready, version: %s\n", verified.Version)
	out.Version = verified.Version
	out.Success = true
	return o.finish(out)
}

// finish invokes the downstream setup collaborator on success
func (o *Orchestrator) finish(out Outcome) Outcome {
	if o.cfg.SkipSetup || o.Setup == nil {
		return out
	}

	if err := o.Setup(o.cfg.SetupMode); err != nil {
		out.Success = false
		out.Failure = FailureSetup
		out.Err = fmt.Errorf("downstream setup failed: %w", err)
		return out
	}
	out.SetupInvoked = true
	return out
}
