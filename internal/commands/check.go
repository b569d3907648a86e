package commands

import (
	"fmt"

	"github.com/jessevdk/go-flags"
	"github.com/mitchellh/cli"

	"github.com/blairham/nodeup/pkg/noderuntime"
	"github.com/blairham/nodeup/pkg/runner"
)

// CheckCommand handles the check command functionality
type CheckCommand struct{}

// CheckOptions holds command-line options for the check command
type CheckOptions struct {
	Verbose bool `short:"v" long:"verbose" description:"Verbose output"`
	Help    bool `short:"h" long:"help"    description:"Show this help message"`
}

// Help returns the help text for the check command
func (c *CheckCommand) Help() string {
	var opts CheckOptions
	parser := flags.NewParser(&opts, flags.Default)
	parser.Usage = OptionsUsage

	formatter := &HelpFormatter{
		Command:     "check",
		Description: "Probe whether the Node.js runtime is installed.",
		Examples: []Example{
			{Command: "nodeup check", Description: "Report runtime presence"},
			{Command: "nodeup check && npm ci", Description: "Gate a follow-up command on presence"},
		},
		Notes: []string{
			"The probe is non-destructive: it only asks node for its version.",
			"",
			"Exit codes:",
			"  0: Node.js is installed",
			"  1: Node.js is not installed",
		},
	}

	return formatter.FormatHelp(parser)
}

// Synopsis returns a short description of the check command
func (c *CheckCommand) Synopsis() string {
	return "Probe whether Node.js is installed"
}

// Run executes the check command with the given arguments
func (c *CheckCommand) Run(args []string) int {
	var opts CheckOptions
	helpShown, err := parseArgsWithHelp(&opts, args)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return 2
	}
	if helpShown {
		return 0
	}
	applyVerbosity(opts.Verbose)

	presence := noderuntime.NewChecker(runner.NewExecRunner()).Check()
	if !presence.Installed {
		fmt.Printf("❌ Node.js is not installed\n")
		return 1
	}

	fmt.Printf("✅ Node.js is installed, version: %s\n", presence.Version)
	if version, parseErr := noderuntime.ParseVersion(presence.Version); parseErr == nil && opts.Verbose {
		fmt.Printf("   major: %d, minor: %d, patch: %d\n", version.Major, version.Minor, version.Patch)
	}
	return 0
}

// CheckCommandFactory creates a new check command instance
func CheckCommandFactory() (cli.Command, error) {
	return &CheckCommand{}, nil
}
