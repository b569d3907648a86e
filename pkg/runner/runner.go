// Package runner provides external command execution with structured results.
// A non-zero exit status is reported as data, not as an error; only a missing
// or unspawnable executable is surfaced as a failure.
package runner

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/charmbracelet/log"
)

// ErrExecutableNotFound indicates the command's executable could not be
// located or spawned at all.
var ErrExecutableNotFound = errors.New("executable not found")

// Result holds the outcome of a single command execution
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Succeeded reports whether the command exited with status zero
func (r Result) Succeeded() bool {
	return r.ExitCode == 0
}

// CommandRunner defines the interface for executing external commands
type CommandRunner interface {
	// Run executes argv, blocking until the child exits. When capture is
	// true stdout/stderr are collected into the Result; otherwise the
	// child inherits the process streams (needed for interactive sudo).
	Run(argv []string, capture bool) (Result, error)
}

// ExecRunner executes commands using os/exec
type ExecRunner struct {
	logger *log.Logger
}

// NewExecRunner creates a runner backed by the real process table
func NewExecRunner() *ExecRunner {
	return &ExecRunner{logger: log.Default()}
}

// Run executes the given argv and returns its structured result
func (r *ExecRunner) Run(argv []string, capture bool) (Result, error) {
	if len(argv) == 0 {
		return Result{}, fmt.Errorf("empty command line")
	}

	r.logger.Debug("running command", "argv", strings.Join(argv, " "), "capture", capture)

	cmd := exec.Command(argv[0], argv[1:]...) //nolint:gosec // argv comes from static strategy tables
	var stdout, stderr strings.Builder
	if capture {
		cmd.Stdout = &stdout
		cmd.Stderr = &stderr
	} else {
		cmd.Stdin = os.Stdin
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
	}

	err := cmd.Run()
	result := Result{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			r.logger.Debug("command exited non-zero", "argv0", argv[0], "code", result.ExitCode)
			return result, nil
		}
		if errors.Is(err, exec.ErrNotFound) {
			return result, fmt.Errorf("%w: %s", ErrExecutableNotFound, argv[0])
		}
		return result, fmt.Errorf("failed to spawn %s: %w", argv[0], err)
	}

	return result, nil
}

// IsAvailable checks whether an executable can be resolved on PATH
func IsAvailable(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}
