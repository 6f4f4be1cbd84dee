// Package cli implements the tourbench command-line interface.
//
// The single root command builds a random partition tree, times tour
// construction over it and prints the benchmark report (see package bench).
// Settings come from defaults, then an optional TOML file (--config), then
// explicitly set flags, in that order.
//
// # Logging
//
// Progress is logged to stderr with charmbracelet/log; --verbose (-v)
// switches to debug level. The logger travels through context.Context.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for the command tree.
type CLI struct {
	Logger *log.Logger
}

// New creates a CLI logging to w at level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}
