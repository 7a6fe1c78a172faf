// Package logging builds the hclog logger shared by the CLI and loaders.
package logging

import (
	"io"

	"github.com/hashicorp/go-hclog"
)

// Name is the root logger name.
const Name = "blockhue"

// New returns a logger writing to w. quiet turns logging off; otherwise
// verbose selects Debug over Info.
func New(verbose, quiet bool, w io.Writer) hclog.Logger {
	opts := &hclog.LoggerOptions{
		Name:   Name,
		Output: w,
		Level:  Level(verbose, quiet),
	}
	if quiet {
		opts.Output = io.Discard
	}
	return hclog.New(opts)
}

// Level maps the verbosity flags to an hclog level.
func Level(verbose, quiet bool) hclog.Level {
	switch {
	case quiet:
		return hclog.Off
	case verbose:
		return hclog.Debug
	default:
		return hclog.Info
	}
}

// OrNull returns logger, or a logger that discards everything when it is nil.
func OrNull(logger hclog.Logger) hclog.Logger {
	if logger == nil {
		return hclog.NewNullLogger()
	}
	return logger
}
