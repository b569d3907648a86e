package commands

import (
	"strings"
	"testing"

	"github.com/blairham/nodeup/pkg/config"
	"github.com/blairham/nodeup/pkg/runner"
	"github.com/blairham/nodeup/pkg/runner/runnertest"
)

func TestEnsureCommand_Help(t *testing.T) {
	cmd := &EnsureCommand{}
	help := cmd.Help()

	expectedStrings := []string{
		"Make sure the Node.js runtime is present",
		"--channel",
		"--dry-run",
		"--skip-setup",
		"Exit codes:",
	}

	for _, expected := range expectedStrings {
		if !strings.Contains(help, expected) {
			t.Errorf("Help output should contain '%s', but got: %s", expected, help)
		}
	}
}

func TestEnsureCommand_Synopsis(t *testing.T) {
	cmd := &EnsureCommand{}

	expected := "Install the Node.js runtime if it is missing"
	if synopsis := cmd.Synopsis(); synopsis != expected {
		t.Errorf("Expected synopsis '%s', got '%s'", expected, synopsis)
	}
}

func TestEnsureCommand_Run_Help(t *testing.T) {
	cmd := &EnsureCommand{}

	if exitCode := cmd.Run([]string{"--help"}); exitCode != 0 {
		t.Errorf("Expected exit code 0 for --help, got %d", exitCode)
	}
}

func TestEnsureCommand_Run_InvalidFlag(t *testing.T) {
	cmd := &EnsureCommand{}

	if exitCode := cmd.Run([]string{"--invalid-flag"}); exitCode == 0 {
		t.Error("Expected non-zero exit code for invalid flag")
	}
}

func TestEnsureCommand_Run_InvalidChannel(t *testing.T) {
	cmd := &EnsureCommand{}

	if exitCode := cmd.Run([]string{"--channel", "latest"}); exitCode != 2 {
		t.Errorf("Expected exit code 2 for invalid channel, got %d", exitCode)
	}
}

func TestMakeSetup(t *testing.T) {
	t.Run("NilWithoutConfiguredCommand", func(t *testing.T) {
		cfg := config.Default()

		if setup := makeSetup(cfg, &runnertest.FakeRunner{}); setup != nil {
			t.Error("Expected nil setup when no setup_command is configured")
		}
	})

	t.Run("AppendsModeToken", func(t *testing.T) {
		cfg := config.Default()
		cfg.SetupCommand = []string{"turf-setup", "--listen"}
		fake := &runnertest.FakeRunner{}

		setup := makeSetup(cfg, fake)
		if setup == nil {
			t.Fatal("Expected a setup function")
		}
		if err := setup("http"); err != nil {
			t.Fatalf("Unexpected setup error: %v", err)
		}

		if len(fake.Calls) != 1 {
			t.Fatalf("Expected one setup invocation, got %d", len(fake.Calls))
		}
		got := strings.Join(fake.Calls[0], " ")
		if got != "turf-setup --listen http" {
			t.Errorf("Unexpected setup argv: %s", got)
		}
	})

	t.Run("NonZeroExitIsAnError", func(t *testing.T) {
		cfg := config.Default()
		cfg.SetupCommand = []string{"turf-setup"}
		fake := &runnertest.FakeRunner{
			Script: func(_ []string) (runner.Result, error) {
				return runner.Result{ExitCode: 7}, nil
			},
		}

		setup := makeSetup(cfg, fake)
		if err := setup("http"); err == nil {
			t.Error("Expected an error for a failing setup command")
		}
	})
}
