package installer

import (
	"github.com/blairham/nodeup/pkg/config"
)

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.SkipSetup = true
	return cfg
}
