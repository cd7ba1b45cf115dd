package config

import (
	"os"

	"github.com/BurntSushi/toml"
	"golang.org/x/xerrors"
)

// FromFile loads config from a toml file, a missing file falls back to the
// defaults
func FromFile(path string) (*PinnerCfg, error) {
	cfg := DefaultPinnerCfg()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, xerrors.Errorf("decode config %s: %w", path, err)
	}

	return cfg, nil
}
