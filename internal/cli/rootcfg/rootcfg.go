// Package rootcfg carries the global flag values shared by every
// subcommand and resolves them against the config file.
package rootcfg

import (
	"github.com/rustyeddy/yieldtrack/config"
)

type RootConfig struct {
	ConfigPath string
	DBPath     string
}

// Resolve loads the config file when one was given, otherwise starts
// from defaults. The --db flag, when set, wins over the file.
func (rc *RootConfig) Resolve() (*config.Config, error) {
	cfg := config.Default()
	if rc.ConfigPath != "" {
		loaded, err := config.LoadFromFile(rc.ConfigPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if rc.DBPath != "" {
		cfg.Store.DBPath = rc.DBPath
	}
	return cfg, nil
}
