package noderuntime

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blairham/nodeup/pkg/runner"
	"github.com/blairham/nodeup/pkg/runner/runnertest"
)

func TestChecker_Check(t *testing.T) {
	t.Run("Installed", func(t *testing.T) {
		fake := &runnertest.FakeRunner{
			Script: func(_ []string) (runner.Result, error) {
				return runner.Result{Stdout: "v18.19.0\n"}, nil
			},
		}

		presence := NewChecker(fake).Check()

		assert.True(t, presence.Installed)
		assert.Equal(t, "v18.19.0", presence.Version)
		require.Len(t, fake.Calls, 1)
		assert.Equal(t, []string{"node", "--version"}, fake.Calls[0])
	})

	t.Run("ExecutableMissing", func(t *testing.T) {
		fake := &runnertest.FakeRunner{
			Script: func(argv []string) (runner.Result, error) {
				return runner.Result{}, runnertest.NotFound(argv[0])
			},
		}

		presence := NewChecker(fake).Check()

		assert.False(t, presence.Installed)
		assert.Empty(t, presence.Version)
	})

	t.Run("NonZeroExit", func(t *testing.T) {
		fake := &runnertest.FakeRunner{
			Script: func(_ []string) (runner.Result, error) {
				return runner.Result{ExitCode: 1, Stderr: "segfault"}, nil
			},
		}

		presence := NewChecker(fake).Check()

		assert.False(t, presence.Installed)
	})

	t.Run("ProbeIsNeverCached", func(t *testing.T) {
		installed := false
		fake := &runnertest.FakeRunner{
			Script: func(_ []string) (runner.Result, error) {
				if installed {
					return runner.Result{Stdout: "v18.19.0\n"}, nil
				}
				return runner.Result{ExitCode: 127}, nil
			},
		}
		checker := NewChecker(fake)

		assert.False(t, checker.Check().Installed)
		installed = true
		assert.True(t, checker.Check().Installed)
		assert.Len(t, fake.Calls, 2)
	})
}

func TestParseVersion(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		tests := []struct {
			raw   string
			major int
			minor int
			patch int
		}{
			{"v18.19.0", 18, 19, 0},
			{"20.11.1", 20, 11, 1},
			{"v0.10.48", 0, 10, 48},
		}

		for _, tt := range tests {
			v, err := ParseVersion(tt.raw)

			require.NoError(t, err, tt.raw)
			assert.Equal(t, tt.major, v.Major)
			assert.Equal(t, tt.minor, v.Minor)
			assert.Equal(t, tt.patch, v.Patch)
			assert.Equal(t, tt.raw, v.Raw)
		}
	})

	t.Run("Invalid", func(t *testing.T) {
		for _, raw := range []string{"", "v18", "v18.19", "not-a-version", "v18.19.0-extra"} {
			_, err := ParseVersion(raw)
			assert.Error(t, err, raw)
		}
	})

	t.Run("String", func(t *testing.T) {
		v, err := ParseVersion("18.19.0")

		require.NoError(t, err)
		assert.Equal(t, "v18.19.0", v.String())
	})
}
