// Package runnertest provides a scripted CommandRunner for tests.
package runnertest

import (
	"fmt"
	"strings"

	"github.com/blairham/nodeup/pkg/runner"
)

// FakeRunner records every command it is asked to run and answers from a
// scripted response table. Unscripted commands succeed with empty output.
type FakeRunner struct {
	// Script, when set, decides the response for every call
	Script func(argv []string) (runner.Result, error)
	// Calls holds every argv passed to Run, in order
	Calls [][]string
}

// Run records the call and answers from the script
func (f *FakeRunner) Run(argv []string, _ bool) (runner.Result, error) {
	f.Calls = append(f.Calls, argv)
	if f.Script != nil {
		return f.Script(argv)
	}
	return runner.Result{}, nil
}

// CommandLines returns every recorded call joined into a single line each
func (f *FakeRunner) CommandLines() []string {
	lines := make([]string, len(f.Calls))
	for i, argv := range f.Calls {
		lines[i] = strings.Join(argv, " ")
	}
	return lines
}

// Executables returns the bare executable name of every recorded call,
// skipping the elevation wrapper when present
func (f *FakeRunner) Executables() []string {
	names := make([]string, 0, len(f.Calls))
	for _, argv := range f.Calls {
		if len(argv) == 0 {
			continue
		}
		name := argv[0]
		if name == "sudo" && len(argv) > 1 {
			name = argv[1]
			if name == "-E" && len(argv) > 2 {
				name = argv[2]
			}
		}
		names = append(names, name)
	}
	return names
}

// NotFound returns the error shape a missing executable produces
func NotFound(name string) error {
	return fmt.Errorf("%w: %s", runner.ErrExecutableNotFound, name)
}
