package commands

import (
	"fmt"
	"strings"

	"github.com/jessevdk/go-flags"
	"github.com/mitchellh/cli"

	"github.com/blairham/nodeup/pkg/distro"
	"github.com/blairham/nodeup/pkg/installer"
)

// DetectCommand handles the detect command functionality
type DetectCommand struct{}

// DetectOptions holds command-line options for the detect command
type DetectOptions struct {
	OSRelease string `long:"os-release" description:"Path to the os-release metadata file"`
	Verbose   bool   `short:"v" long:"verbose" description:"Verbose output"`
	Help      bool   `short:"h" long:"help" description:"Show this help message"`
}

// Help returns the help text for the detect command
func (c *DetectCommand) Help() string {
	var opts DetectOptions
	parser := flags.NewParser(&opts, flags.Default)
	parser.Usage = OptionsUsage

	formatter := &HelpFormatter{
		Command:     "detect",
		Description: "Show the identified distribution and the install strategy it maps to.",
		Examples: []Example{
			{Command: "nodeup detect", Description: "Identify the host distribution"},
			{Command: "nodeup detect --os-release ./os-release", Description: "Identify from a custom metadata file"},
		},
		Notes: []string{
			"Identification failure is not an error: an unreadable or malformed",
			"metadata file maps to the fallback strategy.",
		},
	}

	return formatter.FormatHelp(parser)
}

// Synopsis returns a short description of the detect command
func (c *DetectCommand) Synopsis() string {
	return "Show distribution identification and strategy selection"
}

// Run executes the detect command with the given arguments
func (c *DetectCommand) Run(args []string) int {
	var opts DetectOptions
	helpShown, err := parseArgsWithHelp(&opts, args)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return 2
	}
	if helpShown {
		return 0
	}
	applyVerbosity(opts.Verbose)

	identifier := distro.NewIdentifier()
	if opts.OSRelease != "" {
		identifier = distro.NewIdentifierWithPath(opts.OSRelease)
	}

	info := identifier.Identify()
	kind := installer.Select(info)
	fmt.Print(formatDetection(info, kind))
	return 0
}

// formatDetection renders the identification report
func formatDetection(info distro.Info, kind installer.Kind) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Name:       %s\n", info.DisplayName)
	id := info.ID
	if info.Unknown() {
		id = "(unknown)"
	}
	fmt.Fprintf(&b, "ID:         %s\n", id)
	if len(info.IDLike) > 0 {
		fmt.Fprintf(&b, "ID_LIKE:    %s\n", strings.Join(info.IDLike, " "))
	}
	fmt.Fprintf(&b, "Strategy:   %s\n", kind)

	return b.String()
}

// DetectCommandFactory creates a new detect command instance
func DetectCommandFactory() (cli.Command, error) {
	return &DetectCommand{}, nil
}
