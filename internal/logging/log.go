// Package logging wires up a single stderr-backed logger shared by the
// CLI and solver instrumentation. Kept deliberately minimal: one
// backend, one format, a configurable level.
package logging

import (
	"os"

	logging "github.com/op/go-logging"
)

var format = logging.MustStringFormatter(
	`%{time:15:04:05.000} %{shortfile} %{level:7s}: %{message}`,
)

// New returns a named logger writing to stderr at the given level.
// An unrecognized level string falls back to INFO rather than erroring
// — a malformed config value should degrade logging, not take down the
// CLI.
func New(name, level string) *logging.Logger {
	log := logging.MustGetLogger(name)

	backend := logging.NewLogBackend(os.Stderr, "", 0)
	formatted := logging.NewBackendFormatter(backend, format)
	leveled := logging.AddModuleLevel(formatted)

	lvl, err := logging.LogLevel(level)
	if err != nil {
		lvl = logging.INFO
	}
	leveled.SetLevel(lvl, "")

	logging.SetBackend(leveled)
	return log
}
