// Package logging builds the zerolog.Logger shared by the placement and
// metasearch packages. Library callers that don't care about diagnostics
// get a disabled logger, so the default cost is zero.
package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Disabled returns a logger that discards everything. Used as the default
// when a cargo3d.Packer is constructed without an explicit logger.
func Disabled() zerolog.Logger {
	return zerolog.New(io.Discard).Level(zerolog.Disabled)
}

// NewConsole returns a human-readable console logger at the given level,
// for use by cmd/cargo3d.
func NewConsole(level zerolog.Level) zerolog.Logger {
	w := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}
