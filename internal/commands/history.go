package commands

import (
	"fmt"

	"github.com/jessevdk/go-flags"
	"github.com/mitchellh/cli"

	"github.com/blairham/nodeup/pkg/state"
)

// HistoryCommand handles the history command functionality
type HistoryCommand struct{}

// HistoryOptions holds command-line options for the history command
type HistoryOptions struct {
	Limit int  `short:"n" long:"limit" description:"Maximum number of entries to show" default:"10"`
	Help  bool `short:"h" long:"help"  description:"Show this help message"`
}

// Help returns the help text for the history command
func (c *HistoryCommand) Help() string {
	var opts HistoryOptions
	parser := flags.NewParser(&opts, flags.Default)
	parser.Usage = OptionsUsage

	formatter := &HelpFormatter{
		Command:     "history",
		Description: "Show recent bootstrap runs from the run journal.",
		Examples: []Example{
			{Command: "nodeup history", Description: "Show the last 10 runs"},
			{Command: "nodeup history -n 3", Description: "Show the last 3 runs"},
		},
	}

	return formatter.FormatHelp(parser)
}

// Synopsis returns a short description of the history command
func (c *HistoryCommand) Synopsis() string {
	return "Show recent bootstrap runs"
}

// Run executes the history command with the given arguments
func (c *HistoryCommand) Run(args []string) int {
	var opts HistoryOptions
	helpShown, err := parseArgsWithHelp(&opts, args)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return 2
	}
	if helpShown {
		return 0
	}
	if opts.Limit <= 0 {
		opts.Limit = HistoryDefaultLimit
	}

	journal, err := state.NewJournal(state.DefaultDir())
	if err != nil {
		fmt.Printf("Error: cannot open run journal: %v\n", err)
		return 2
	}
	defer func() {
		if closeErr := journal.Close(); closeErr != nil {
			fmt.Printf("⚠️  Warning: failed to close run journal: %v\n", closeErr)
		}
	}()

	entries, err := journal.Recent(opts.Limit)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return 2
	}
	if len(entries) == 0 {
		fmt.Printf("No bootstrap runs recorded yet.\n")
		return 0
	}

	for _, entry := range entries {
		distroID := entry.DistroID
		if distroID == "" {
			distroID = "(unknown)"
		}
		version := entry.Version
		if version == "" {
			version = "-"
		}
		fmt.Printf("%s  %-10s  %-8s  %-20s  %s\n",
			entry.Timestamp.Format("2006-01-02 15:04:05"),
			distroID, entry.Strategy, entry.Outcome, version)
	}
	return 0
}

// HistoryCommandFactory creates a new history command instance
func HistoryCommandFactory() (cli.Command, error) {
	return &HistoryCommand{}, nil
}
