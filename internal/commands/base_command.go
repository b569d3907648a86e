package commands

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/jessevdk/go-flags"

	"github.com/blairham/nodeup/pkg/config"
)

// parseArgsWithHelp parses arguments and handles help display. A nil error
// with helpShown true means help was printed and the command should exit 0.
func parseArgsWithHelp(opts any, args []string) (helpShown bool, err error) {
	parser := flags.NewParser(opts, flags.Default)
	parser.Usage = OptionsUsage

	if _, err := parser.ParseArgs(args); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			return true, nil
		}
		return false, fmt.Errorf("error parsing arguments: %w", err)
	}

	return false, nil
}

// applyVerbosity raises the global log level when verbose output is requested
func applyVerbosity(verbose bool) {
	if verbose {
		log.SetLevel(log.DebugLevel)
	}
}

// loadConfig loads the nodeup configuration and applies flag-level overrides
func loadConfig(path, channel string, skipSetup bool) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if channel != "" {
		cfg.Channel = channel
	}
	if skipSetup {
		cfg.SkipSetup = true
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
