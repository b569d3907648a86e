package installer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blairham/nodeup/pkg/runner"
	"github.com/blairham/nodeup/pkg/runner/runnertest"
)

func TestFallbackStrategy_Execute(t *testing.T) {
	t.Run("StopsAtFirstSuccess", func(t *testing.T) {
		// apt and yum are absent, dnf succeeds; zypper and pacman must
		// never be attempted
		fake := &runnertest.FakeRunner{
			Script: func(argv []string) (runner.Result, error) {
				switch argv[1] {
				case "apt", "yum":
					return runner.Result{}, runnertest.NotFound(argv[1])
				case "dnf":
					return runner.Result{}, nil
				default:
					return runner.Result{ExitCode: 1}, nil
				}
			},
		}
		s := &FallbackStrategy{runner: fake, cfg: testConfig()}

		assert.True(t, s.Execute())
		assert.Equal(t, []string{"apt", "yum", "dnf"}, fake.Executables())
	})

	t.Run("NonZeroExitContinuesToNext", func(t *testing.T) {
		fake := &runnertest.FakeRunner{
			Script: func(argv []string) (runner.Result, error) {
				if argv[1] == "pacman" {
					return runner.Result{}, nil
				}
				return runner.Result{ExitCode: 100}, nil
			},
		}
		s := &FallbackStrategy{runner: fake, cfg: testConfig()}

		assert.True(t, s.Execute())
		assert.Equal(t, []string{"apt", "yum", "dnf", "zypper", "pacman"}, fake.Executables())
	})

	t.Run("AllExhaustedFails", func(t *testing.T) {
		fake := &runnertest.FakeRunner{
			Script: func(argv []string) (runner.Result, error) {
				return runner.Result{}, runnertest.NotFound(argv[1])
			},
		}
		s := &FallbackStrategy{runner: fake, cfg: testConfig()}

		assert.False(t, s.Execute())
		assert.Len(t, fake.Calls, 5)
	})

	t.Run("ElevatedInstallInvocation", func(t *testing.T) {
		fake := &runnertest.FakeRunner{}
		s := &FallbackStrategy{runner: fake, cfg: testConfig()}

		require.True(t, s.Execute())
		require.NotEmpty(t, fake.Calls)
		assert.Equal(t, []string{"sudo", "apt", "install", "-y", "nodejs", "npm"}, fake.Calls[0])
	})

	t.Run("PacmanArgumentSet", func(t *testing.T) {
		cfg := testConfig()
		cfg.FallbackManagers = []string{"pacman"}
		fake := &runnertest.FakeRunner{}
		s := &FallbackStrategy{runner: fake, cfg: cfg}

		require.True(t, s.Execute())
		require.Len(t, fake.Calls, 1)
		assert.Equal(t, []string{"sudo", "pacman", "-S", "--noconfirm", "nodejs", "npm"}, fake.Calls[0])
	})

	t.Run("ConfiguredOrderIsHonored", func(t *testing.T) {
		cfg := testConfig()
		cfg.FallbackManagers = []string{"dnf", "apt"}
		fake := &runnertest.FakeRunner{
			Script: func(_ []string) (runner.Result, error) {
				return runner.Result{ExitCode: 1}, nil
			},
		}
		s := &FallbackStrategy{runner: fake, cfg: cfg}

		assert.False(t, s.Execute())
		assert.Equal(t, []string{"dnf", "apt"}, fake.Executables())
	})
}
