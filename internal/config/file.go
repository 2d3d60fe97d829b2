package config

import (
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
)

// FileConfig is the optional on-disk config an operator may pin settings
// in, read with go-toml/v2 (sourced from the bobmcallan-vire example's use
// of the same library as a direct dependency).
type FileConfig struct {
	LogLevel         string  `toml:"log_level"`
	DefaultChunkLenS float64 `toml:"default_chunk_len_s"`
	DefaultVADPreset string  `toml:"default_vad_preset"`
	WorkerPoolSize   int     `toml:"worker_pool_size"`
}

// LoadFile reads and parses a TOML config file. A missing path is not an
// error: it returns the zero value so callers fall back to flags/env/defaults.
func LoadFile(path string) (FileConfig, error) {
	var cfg FileConfig
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, errors.Wrapf(err, "reading config file %s", path)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parsing config file %s", path)
	}
	return cfg, nil
}
