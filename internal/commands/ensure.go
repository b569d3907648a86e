package commands

import (
	"fmt"
	"slices"

	"github.com/jessevdk/go-flags"
	"github.com/mitchellh/cli"

	"github.com/blairham/nodeup/pkg/config"
	"github.com/blairham/nodeup/pkg/distro"
	"github.com/blairham/nodeup/pkg/installer"
	"github.com/blairham/nodeup/pkg/noderuntime"
	"github.com/blairham/nodeup/pkg/platform"
	"github.com/blairham/nodeup/pkg/runner"
	"github.com/blairham/nodeup/pkg/state"
)

// EnsureCommand handles the ensure command functionality
type EnsureCommand struct{}

// EnsureOptions holds command-line options for the ensure command
type EnsureOptions struct {
	Config    string `short:"c" long:"config"     description:"Path to config file"`
	Channel   string `          long:"channel"    description:"NodeSource channel to install, e.g. 18.x"`
	SkipSetup bool   `          long:"skip-setup" description:"Do not invoke the downstream setup after success"`
	DryRun    bool   `          long:"dry-run"    description:"Print the installation command plan without executing it"`
	Verbose   bool   `short:"v" long:"verbose"    description:"Verbose output"`
	Help      bool   `short:"h" long:"help"       description:"Show this help message"`
}

// Help returns the help text for the ensure command
func (c *EnsureCommand) Help() string {
	var opts EnsureOptions
	parser := flags.NewParser(&opts, flags.Default)
	parser.Usage = OptionsUsage

	formatter := &HelpFormatter{
		Command:     "ensure",
		Description: "Make sure the Node.js runtime is present, installing it if necessary.",
		Examples: []Example{
			{Command: "nodeup ensure", Description: "Install Node.js if missing, then run the setup handoff"},
			{Command: "nodeup ensure --channel 20.x", Description: "Install from the 20.x NodeSource channel"},
			{Command: "nodeup ensure --dry-run", Description: "Show what would be executed"},
		},
		Notes: []string{
			"Linux only. The strategy is chosen from /etc/os-release: Debian/Ubuntu",
			"and RHEL/CentOS/Fedora families use the NodeSource repositories; every",
			"other distribution falls back to its default package repositories.",
			"",
			"Exit codes:",
			"  0: Node.js present (already installed or installed now)",
			"  1: Unsupported platform, installation failure, or verification failure",
		},
	}

	return formatter.FormatHelp(parser)
}

// Synopsis returns a short description of the ensure command
func (c *EnsureCommand) Synopsis() string {
	return "Install the Node.js runtime if it is missing"
}

// Run executes the ensure command with the given arguments
func (c *EnsureCommand) Run(args []string) int {
	var opts EnsureOptions
	helpShown, err := parseArgsWithHelp(&opts, args)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return 2
	}
	if helpShown {
		return 0
	}
	applyVerbosity(opts.Verbose)

	cfg, err := loadConfig(opts.Config, opts.Channel, opts.SkipSetup)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return 2
	}

	probe := runner.NewExecRunner()
	if opts.DryRun {
		return c.runDryRun(cfg, probe)
	}

	orchestrator := installer.NewOrchestrator(cfg, probe, probe)
	orchestrator.Setup = makeSetup(cfg, probe)

	out := orchestrator.Run()
	recordRun(out)
	printOutcomeSummary(out)
	return out.ExitCode()
}

// runDryRun prints the command plan a real run would execute. Nothing is
// installed and nothing is journaled.
func (c *EnsureCommand) runDryRun(cfg *config.Config, probe runner.CommandRunner) int {
	gate := platform.NewGate()
	if _, err := gate.Verify(); err != nil {
		fmt.Printf("❌ %v\n", err)
		return 1
	}

	presence := noderuntime.NewChecker(probe).Check()
	if presence.Installed {
		fmt.Printf("✅ Node.js already installed, version: %s — nothing to do\n", presence.Version)
		return 0
	}

	info := distro.NewIdentifier().Identify()
	kind := installer.Select(info)
	fmt.Printf("Detected system: %s (id: %s)\n", info.DisplayName, info.ID)
	fmt.Printf("Selected strategy: %s\n", kind)

	installer.NewStrategy(kind, runner.NewDryRunner(), cfg).Execute()
	return 0
}

// makeSetup builds the downstream setup collaborator from the configured
// command, or nil when there is nothing to hand off to
func makeSetup(cfg *config.Config, r runner.CommandRunner) installer.SetupFunc {
	if len(cfg.SetupCommand) == 0 {
		return nil
	}
	return func(mode string) error {
		argv := append(slices.Clone(cfg.SetupCommand), mode)
		result, err := r.Run(argv, false)
		if err != nil {
			return err
		}
		if !result.Succeeded() {
			return fmt.Errorf("setup command exited with status %d", result.ExitCode)
		}
		return nil
	}
}

// recordRun appends the outcome to the run journal. Journal failures are
// warnings only; the bootstrap result stands regardless.
func recordRun(out installer.Outcome) {
	// nothing worth journaling happened before the platform gate
	if out.Failure == installer.FailureUnsupportedPlatform {
		return
	}

	journal, err := state.NewJournal(state.DefaultDir())
	if err != nil {
		fmt.Printf("⚠️  Warning: cannot open run journal: %v\n", err)
		return
	}
	defer func() {
		if closeErr := journal.Close(); closeErr != nil {
			fmt.Printf("⚠️  Warning: failed to close run journal: %v\n", closeErr)
		}
	}()

	strategy := "none"
	if out.StrategyRan {
		strategy = out.Strategy.String()
	}
	outcome := "success"
	if !out.Success {
		outcome = "failure:" + out.Failure.String()
	}

	entry := state.Entry{
		DistroID: out.Distro.ID,
		Strategy: strategy,
		Outcome:  outcome,
		Version:  out.Version,
	}
	if err := journal.Record(entry); err != nil {
		fmt.Printf("⚠️  Warning: %v\n", err)
	}
}

// EnsureCommandFactory creates a new ensure command instance
func EnsureCommandFactory() (cli.Command, error) {
	return &EnsureCommand{}, nil
}
