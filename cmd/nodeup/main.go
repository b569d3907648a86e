// Package main provides the nodeup command-line tool.
// nodeup makes sure the Node.js runtime is present on a Linux host before
// handing off to the downstream service setup.
package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/mitchellh/cli"

	"github.com/blairham/nodeup/internal/commands"
)

// Version information set by GoReleaser
var (
	version = "dev"
	commit  = "none"    //nolint:unused // Set by GoReleaser
	date    = "unknown" //nolint:unused // Set by GoReleaser
	builtBy = "unknown" //nolint:unused // Set by GoReleaser
)

func main() {
	c := cli.NewCLI("nodeup", version)
	c.Args = os.Args[1:]
	c.HelpFunc = customHelpFunc
	c.Commands = map[string]cli.CommandFactory{
		"check":   commands.CheckCommandFactory,
		"detect":  commands.DetectCommandFactory,
		"doctor":  commands.DoctorCommandFactory,
		"ensure":  commands.EnsureCommandFactory,
		"history": commands.HistoryCommandFactory,
		"help":    commands.HelpCommandFactory,
	}

	exitStatus, err := c.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(exitStatus)
}

// customHelpFunc lists the subcommands in alphabetical order
func customHelpFunc(cmdFactories map[string]cli.CommandFactory) string {
	var commandNames []string
	for name := range cmdFactories {
		if name != "help" {
			commandNames = append(commandNames, name)
		}
	}
	sort.Strings(commandNames)

	usageLine := "usage: nodeup [-h] [--version]\n"
	usageLine += "              {"
	usageLine += strings.Join(commandNames, ",")
	usageLine += "}\n              ...\n"

	helpText := usageLine + `
Bootstrap the Node.js runtime on a Linux host.

positional arguments:
  {` + strings.Join(commandNames, ",") + `}
    check      Probe whether Node.js is installed
    detect     Show distribution identification and strategy selection
    doctor     Check host readiness for the bootstrap
    ensure     Install the Node.js runtime if it is missing
    history    Show recent bootstrap runs

optional arguments:
  -h, --help            show this help message and exit
  --version             show program's version number and exit
`

	return helpText
}
