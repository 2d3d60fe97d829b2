// Package config implements the ambient configuration layer: CLI flag >
// environment variable > TOML config file > built-in default, the same
// precedence azcopy's cmd/root.go applies to its own override chain.
package config

import "os"

// EnvironmentVariable mirrors azcopy's common.EnvironmentVariable: a named,
// documented, optionally-hidden knob read from the process environment.
type EnvironmentVariable struct {
	Name         string
	DefaultValue string
	Description  string
}

func GetEnv(v EnvironmentVariable) string {
	if val := os.Getenv(v.Name); val != "" {
		return val
	}
	return v.DefaultValue
}

var (
	EnvLogLocation = EnvironmentVariable{
		Name:        "SCRIBERR_ENGINE_LOG_LOCATION",
		Description: "Directory engine log files are written to.",
	}
	EnvConcurrency = EnvironmentVariable{
		Name:        "SCRIBERR_ENGINE_CONCURRENCY",
		Description: "Max concurrent in-flight chunk batches; not read by the engine binaries, which run one batch at a time.",
	}
	EnvConfigFile = EnvironmentVariable{
		Name:        "SCRIBERR_ENGINE_CONFIG",
		Description: "Path to an optional TOML config file.",
	}
	EnvBackendCommand = EnvironmentVariable{
		Name:        "SCRIBERR_ENGINE_BACKEND_COMMAND",
		Description: "External model backend executable invoked for recognize/diarize calls.",
	}
)
