package runner

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// DryRunner prints every command it is asked to run instead of executing it,
// answering success with empty output. Presence probes should keep using a
// real runner; only strategy execution is meant to be replaced by this.
type DryRunner struct {
	Out io.Writer
}

// NewDryRunner creates a dry-run runner printing to stdout
func NewDryRunner() *DryRunner {
	return &DryRunner{Out: os.Stdout}
}

// Run prints the command line and reports success
func (d *DryRunner) Run(argv []string, _ bool) (Result, error) {
	if len(argv) == 0 {
		return Result{}, fmt.Errorf("empty command line")
	}
	fmt.Fprintf(d.Out, "  → would run: %s\n", strings.Join(argv, " "))
	return Result{}, nil
}
