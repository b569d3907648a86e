package commands

import (
	"fmt"

	"github.com/jessevdk/go-flags"
	"github.com/mitchellh/cli"

	"github.com/blairham/nodeup/pkg/config"
	"github.com/blairham/nodeup/pkg/constants"
	"github.com/blairham/nodeup/pkg/noderuntime"
	"github.com/blairham/nodeup/pkg/platform"
	"github.com/blairham/nodeup/pkg/runner"
	"github.com/blairham/nodeup/pkg/state"
)

// DoctorCommand handles the doctor command functionality
type DoctorCommand struct{}

// DoctorOptions holds command-line options for the doctor command
type DoctorOptions struct {
	Verbose bool `short:"v" long:"verbose" description:"Verbose output"`
	Help    bool `short:"h" long:"help"    description:"Show this help message"`
}

// Help returns the help text for the doctor command
func (c *DoctorCommand) Help() string {
	var opts DoctorOptions
	parser := flags.NewParser(&opts, flags.Default)
	parser.Usage = OptionsUsage

	formatter := &HelpFormatter{
		Command:     "doctor",
		Description: "Check host readiness for the Node.js bootstrap.",
		Examples: []Example{
			{Command: "nodeup doctor", Description: "Check platform, privileges, and package managers"},
			{Command: "nodeup doctor --verbose", Description: "Show detailed diagnostic information"},
		},
		Notes: []string{
			"Checks that the platform is supported, whether privilege elevation is",
			"available, which package managers are on PATH, and whether node/npm",
			"respond to version queries.",
			"",
			"Exit codes:",
			"  0: No problems found",
			"  1: Problems found",
		},
	}

	return formatter.FormatHelp(parser)
}

// Synopsis returns a short description of the doctor command
func (c *DoctorCommand) Synopsis() string {
	return "Check host readiness for the bootstrap"
}

// Run executes the doctor command with the given arguments
func (c *DoctorCommand) Run(args []string) int {
	var opts DoctorOptions
	helpShown, err := parseArgsWithHelp(&opts, args)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return 2
	}
	if helpShown {
		return 0
	}
	applyVerbosity(opts.Verbose)

	fmt.Printf("🔍 Running nodeup host health check...\n\n")

	var problems []string
	var warnings []string

	problems, warnings = c.checkPlatform(problems, warnings, opts.Verbose)
	warnings = c.checkRuntime(warnings, opts.Verbose)
	problems = c.checkPackageManagers(problems, opts.Verbose)
	warnings = c.checkJournal(warnings, opts.Verbose)

	return printResults(problems, warnings)
}

// checkPlatform verifies OS support and privilege availability
func (c *DoctorCommand) checkPlatform(problems, warnings []string, verbose bool) ([]string, []string) {
	hint, err := platform.NewGate().Verify()
	if err != nil {
		problems = append(problems, err.Error())
		return problems, warnings
	}

	if verbose {
		fmt.Printf("  ✓ Platform supported\n")
	}
	if !hint.Elevated() {
		warnings = append(warnings, "no privilege elevation available (not root, sudo not found)")
	} else if verbose {
		fmt.Printf("  ✓ Privilege elevation available (root=%v, sudo=%v)\n", hint.Root, hint.SudoAvailable)
	}
	return problems, warnings
}

// checkRuntime probes node and npm. Absence is informational: installing the
// runtime is exactly what ensure is for, and npm is never required.
func (c *DoctorCommand) checkRuntime(warnings []string, verbose bool) []string {
	r := runner.NewExecRunner()
	presence := noderuntime.NewChecker(r).Check()
	if presence.Installed {
		if verbose {
			fmt.Printf("  ✓ node responds, version %s\n", presence.Version)
		}
	} else {
		warnings = append(warnings, "node is not installed (run 'nodeup ensure')")
	}

	if runner.IsAvailable(constants.NpmExecutable) {
		if verbose {
			fmt.Printf("  ✓ npm found on PATH\n")
		}
	} else {
		warnings = append(warnings, "npm not found on PATH")
	}
	return warnings
}

// checkPackageManagers reports which fallback-capable managers exist on PATH
func (c *DoctorCommand) checkPackageManagers(problems []string, verbose bool) []string {
	var available []string
	for _, mgr := range config.KnownManagers() {
		if runner.IsAvailable(mgr) {
			available = append(available, mgr)
		}
	}

	if len(available) == 0 {
		problems = append(problems, "no supported package manager found on PATH")
		return problems
	}
	if verbose {
		fmt.Printf("  ✓ Package managers available: %v\n", available)
	}
	return problems
}

// checkJournal verifies the run journal can be opened
func (c *DoctorCommand) checkJournal(warnings []string, verbose bool) []string {
	journal, err := state.NewJournal(state.DefaultDir())
	if err != nil {
		warnings = append(warnings, fmt.Sprintf("run journal unavailable: %v", err))
		return warnings
	}
	if closeErr := journal.Close(); closeErr != nil {
		warnings = append(warnings, fmt.Sprintf("run journal close failed: %v", closeErr))
		return warnings
	}
	if verbose {
		fmt.Printf("  ✓ Run journal writable at %s\n", state.DefaultDir())
	}
	return warnings
}

// printResults prints the final results and returns the exit code
func printResults(problems, warnings []string) int {
	fmt.Printf("\n📋 Health Check Results:\n")

	if len(problems) == 0 && len(warnings) == 0 {
		fmt.Printf("✅ All checks passed! This host is ready for the bootstrap.\n")
		return 0
	}

	if len(warnings) > 0 {
		fmt.Printf("\n⚠️  Warnings:\n")
		for _, warning := range warnings {
			fmt.Printf("  • %s\n", warning)
		}
	}

	if len(problems) > 0 {
		fmt.Printf("\n❌ Problems found:\n")
		for _, problem := range problems {
			fmt.Printf("  • %s\n", problem)
		}
		return 1
	}

	fmt.Printf("\nNo critical problems found, but please review the warnings above.\n")
	return 0
}

// DoctorCommandFactory creates a new doctor command instance
func DoctorCommandFactory() (cli.Command, error) {
	return &DoctorCommand{}, nil
}
