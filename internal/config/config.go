// Package config holds the tunable search and logging settings read
// from an optional TOML file, layered under hardcoded defaults.
package config

import (
	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/fillit/solver"
)

// Settings is the full set of values a config file may override.
type Settings struct {
	Search SearchSettings
	Log    LogSettings
}

// SearchSettings mirrors the solver package's tunable Options.
type SearchSettings struct {
	WastedPruneDepth int
	MaxBoardSize     int
}

// LogSettings controls the logging package's verbosity.
type LogSettings struct {
	Level string
}

// Default returns the hardcoded baseline: the solver's own defaults and
// an INFO log level.
func Default() Settings {
	return Settings{
		Search: SearchSettings{
			WastedPruneDepth: solver.DefaultWastedPruneDepth,
			MaxBoardSize:     solver.DefaultMaxBoardSize,
		},
		Log: LogSettings{
			Level: "INFO",
		},
	}
}

// Load reads path as a TOML file and overlays it onto Default(). An
// empty path returns the defaults with no error. A missing or
// unreadable file returns the defaults together with the read/decode
// error, so the caller can decide whether to log and continue (the CLI
// does) or treat it as fatal.
func Load(path string) (Settings, error) {
	settings := Default()
	if path == "" {
		return settings, nil
	}
	_, err := toml.DecodeFile(path, &settings)
	return settings, err
}

// SolverOptions projects the search settings into solver.Option values.
// A nil logger is accepted and simply yields an Option that leaves
// solver logging disabled.
func (s Settings) SolverOptions(logger solver.Logger) []solver.Option {
	return []solver.Option{
		solver.WithWastedPruneDepth(s.Search.WastedPruneDepth),
		solver.WithMaxBoardSize(s.Search.MaxBoardSize),
		solver.WithLogger(logger),
	}
}
