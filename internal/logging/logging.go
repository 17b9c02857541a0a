// Package logging builds the hclog loggers used across palettecraft.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"
)

// Options configures New.
type Options struct {
	Name    string
	Level   string
	JSON    bool
	Verbose bool
	Output  io.Writer
}

// ParseLevel maps a level name to an hclog level. Unknown names yield Info.
func ParseLevel(s string) hclog.Level {
	level := hclog.LevelFromString(strings.TrimSpace(s))
	if level == hclog.NoLevel {
		return hclog.Info
	}
	return level
}

// ValidLevel reports whether s names a known log level.
func ValidLevel(s string) bool {
	return hclog.LevelFromString(strings.TrimSpace(s)) != hclog.NoLevel
}

// New creates a logger writing to opts.Output, or stderr when unset.
// Verbose forces debug level.
func New(opts Options) hclog.Logger {
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	level := ParseLevel(opts.Level)
	if opts.Verbose {
		level = hclog.Debug
	}

	name := opts.Name
	if name == "" {
		name = "palettecraft"
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:       name,
		Output:     out,
		Level:      level,
		JSONFormat: opts.JSON,
	})
}

// Discard returns a logger that drops everything.
func Discard() hclog.Logger {
	return hclog.NewNullLogger()
}
